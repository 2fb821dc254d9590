// Package blockchain defines the client interface the RPC front end uses to
// query the chain engine. The engine itself (consensus, storage, transaction
// pool) lives behind this interface and is externally synchronized; callers
// never take their own locks around it.
package blockchain

import (
	"context"
)

// BlockDetails carries the block metadata the RPC layer exposes.
type BlockDetails struct {
	Height       uint64
	MajorVersion uint64
	MinorVersion uint64
	Timestamp    uint64
}

// RandomOutput is one decoy output candidate for a given amount.
type RandomOutput struct {
	// GlobalIndex is the output's position in the global output set for
	// its amount.
	GlobalIndex uint64

	// PublicKey is the output's one-time public key.
	PublicKey [32]byte
}

// ClientI defines the chain-engine operations the RPC front end consumes.
// All methods return value types and are safe for concurrent use.
type ClientI interface {
	// Health reports the engine's health. checkLiveness true checks only
	// that the engine is running, false also checks its dependencies.
	Health(ctx context.Context, checkLiveness bool) (int, string, error)

	// GetTopBlockIndex returns the zero-based index of the chain tip.
	GetTopBlockIndex(ctx context.Context) (uint64, error)

	// GetBlockDetails returns metadata for the block at the given index.
	GetBlockDetails(ctx context.Context, blockIndex uint64) (*BlockDetails, error)

	// GetDifficultyForNextBlock returns the difficulty the next mined
	// block must meet.
	GetDifficultyForNextBlock(ctx context.Context) (uint64, error)

	// GetTransactionCount returns the total number of transactions on the
	// chain, coinbase transactions included.
	GetTransactionCount(ctx context.Context) (uint64, error)

	// GetPoolTransactionCount returns the number of transactions waiting
	// in the pool.
	GetPoolTransactionCount(ctx context.Context) (uint64, error)

	// GetAlternativeBlockCount returns the number of blocks known off the
	// main chain.
	GetAlternativeBlockCount(ctx context.Context) (uint64, error)

	// GetRandomOutputs returns up to count decoy outputs for the amount.
	// Fewer than count outputs may be returned when the chain doesn't
	// have enough distinct outputs of that amount.
	GetRandomOutputs(ctx context.Context, amount uint64, count uint16) ([]RandomOutput, error)

	// AddTransactionToPool validates a raw transaction and admits it to
	// the pool. A non-nil error carries the rejection reason.
	AddTransactionToPool(ctx context.Context, transaction []byte) error

	// GetStartTime returns the unix time the engine started.
	GetStartTime(ctx context.Context) (uint64, error)
}
