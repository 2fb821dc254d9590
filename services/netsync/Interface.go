// Package netsync defines the client interface the RPC front end uses to talk
// to the transaction-relay and chain-sync manager.
package netsync

import (
	"context"
)

// ClientI exposes the sync manager's network view and relay operation.
type ClientI interface {
	// GetBlockchainHeight returns the network's best known chain height.
	GetBlockchainHeight(ctx context.Context) (uint64, error)

	// GetObservedHeight returns the highest height any connected peer has
	// claimed.
	GetObservedHeight(ctx context.Context) (uint64, error)

	// RelayTransaction announces a pool-accepted raw transaction to the
	// network.
	RelayTransaction(ctx context.Context, transaction []byte) error
}
