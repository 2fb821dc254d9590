package netsync

import (
	"context"
	"sync"

	"github.com/cloakchain/cloaknode/ulogger"
	"github.com/cloakchain/cloaknode/util"
)

// LocalClient is an in-process ClientI tracking network heights in memory.
// RelayTransaction only logs; there is no network behind it.
type LocalClient struct {
	logger         ulogger.Logger
	mu             sync.RWMutex
	networkHeight  uint64
	observedHeight uint64
}

func NewLocalClient(logger ulogger.Logger) *LocalClient {
	return &LocalClient{
		logger: logger,
	}
}

func (l *LocalClient) GetBlockchainHeight(_ context.Context) (uint64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.networkHeight, nil
}

func (l *LocalClient) GetObservedHeight(_ context.Context) (uint64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.observedHeight, nil
}

func (l *LocalClient) RelayTransaction(_ context.Context, transaction []byte) error {
	l.logger.Debugf("relaying transaction %s", util.TransactionHash(transaction))

	return nil
}

// SetHeights replaces the network and observed heights.
func (l *LocalClient) SetHeights(network, observed uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.networkHeight = network
	l.observedHeight = observed
}
