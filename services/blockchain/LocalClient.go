package blockchain

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/cloakchain/cloaknode/errors"
	"github.com/cloakchain/cloaknode/util"
)

// LocalClient is an in-process ClientI backed by in-memory state. The daemon
// wires it in until a real chain engine is attached; tests use it for
// end-to-end runs without mock plumbing.
type LocalClient struct {
	mu             sync.RWMutex
	topBlockIndex  uint64
	blocks         map[uint64]*BlockDetails
	difficulty     uint64
	txCount        uint64
	altBlockCount  uint64
	pool           map[string][]byte
	randomOutputs  map[uint64][]RandomOutput
	startTime      uint64
}

func NewLocalClient() *LocalClient {
	return &LocalClient{
		blocks: map[uint64]*BlockDetails{
			0: {Height: 0, MajorVersion: 1, MinorVersion: 0, Timestamp: uint64(time.Now().Unix())},
		},
		difficulty:    1,
		txCount:       1,
		pool:          make(map[string][]byte),
		randomOutputs: make(map[uint64][]RandomOutput),
		startTime:     uint64(time.Now().Unix()),
	}
}

func (l *LocalClient) Health(_ context.Context, _ bool) (int, string, error) {
	return http.StatusOK, "OK", nil
}

func (l *LocalClient) GetTopBlockIndex(_ context.Context) (uint64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.topBlockIndex, nil
}

func (l *LocalClient) GetBlockDetails(_ context.Context, blockIndex uint64) (*BlockDetails, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	details, ok := l.blocks[blockIndex]
	if !ok {
		return nil, errors.NewBlockNotFoundError("no block at index %d", blockIndex)
	}

	return details, nil
}

func (l *LocalClient) GetDifficultyForNextBlock(_ context.Context) (uint64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.difficulty, nil
}

func (l *LocalClient) GetTransactionCount(_ context.Context) (uint64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.txCount, nil
}

func (l *LocalClient) GetPoolTransactionCount(_ context.Context) (uint64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return uint64(len(l.pool)), nil
}

func (l *LocalClient) GetAlternativeBlockCount(_ context.Context) (uint64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.altBlockCount, nil
}

func (l *LocalClient) GetRandomOutputs(_ context.Context, amount uint64, count uint16) ([]RandomOutput, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	candidates := l.randomOutputs[amount]
	if uint16(len(candidates)) < count {
		out := make([]RandomOutput, len(candidates))
		copy(out, candidates)

		return out, nil
	}

	out := make([]RandomOutput, count)
	copy(out, candidates[:count])

	return out, nil
}

func (l *LocalClient) AddTransactionToPool(_ context.Context, transaction []byte) error {
	if len(transaction) == 0 {
		return errors.NewTxInvalidError("transaction is empty")
	}

	hash := util.TransactionHash(transaction)

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.pool[hash]; exists {
		return errors.NewTxRejectedError("transaction %s is already in the pool", hash)
	}

	l.pool[hash] = transaction

	return nil
}

func (l *LocalClient) GetStartTime(_ context.Context) (uint64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.startTime, nil
}

// AppendBlock advances the chain tip, recording metadata for the new top
// block and its transaction count.
func (l *LocalClient) AppendBlock(details *BlockDetails, transactions uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.topBlockIndex++
	details.Height = l.topBlockIndex
	l.blocks[l.topBlockIndex] = details
	l.txCount += transactions + 1
}

// SetRandomOutputs replaces the decoy candidates for an amount.
func (l *LocalClient) SetRandomOutputs(amount uint64, outputs []RandomOutput) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.randomOutputs[amount] = outputs
}

// SetDifficulty sets the difficulty reported for the next block.
func (l *LocalClient) SetDifficulty(difficulty uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.difficulty = difficulty
}
