// Package p2p defines the client interface the RPC front end uses to read
// connection and peer-list state from the network manager.
package p2p

import (
	"context"
)

// ClientI exposes the peer manager's read-only view. The manager handles its
// own synchronization; these calls may be made concurrently.
type ClientI interface {
	// GetConnectionsCount returns the total number of live connections,
	// incoming and outgoing combined.
	GetConnectionsCount(ctx context.Context) (uint64, error)

	// GetOutgoingConnectionsCount returns the number of connections this
	// node dialed out.
	GetOutgoingConnectionsCount(ctx context.Context) (uint64, error)

	// GetWhitePeerlistSize returns the number of peers on the white list.
	GetWhitePeerlistSize(ctx context.Context) (uint64, error)

	// GetGreyPeerlistSize returns the number of peers on the grey list.
	GetGreyPeerlistSize(ctx context.Context) (uint64, error)

	// GetPeerlist returns the white and grey peer lists as address strings.
	GetPeerlist(ctx context.Context) (white []string, grey []string, err error)
}
