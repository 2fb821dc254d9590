package p2p

import (
	"context"
	"sync"
)

// LocalClient is an in-process ClientI holding peer state in memory.
type LocalClient struct {
	mu                  sync.RWMutex
	whitePeers          []string
	greyPeers           []string
	incomingConnections uint64
	outgoingConnections uint64
}

func NewLocalClient() *LocalClient {
	return &LocalClient{}
}

func (l *LocalClient) GetConnectionsCount(_ context.Context) (uint64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.incomingConnections + l.outgoingConnections, nil
}

func (l *LocalClient) GetOutgoingConnectionsCount(_ context.Context) (uint64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.outgoingConnections, nil
}

func (l *LocalClient) GetWhitePeerlistSize(_ context.Context) (uint64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return uint64(len(l.whitePeers)), nil
}

func (l *LocalClient) GetGreyPeerlistSize(_ context.Context) (uint64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return uint64(len(l.greyPeers)), nil
}

func (l *LocalClient) GetPeerlist(_ context.Context) ([]string, []string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	white := make([]string, len(l.whitePeers))
	copy(white, l.whitePeers)

	grey := make([]string, len(l.greyPeers))
	copy(grey, l.greyPeers)

	return white, grey, nil
}

// SetPeerlist replaces both peer lists.
func (l *LocalClient) SetPeerlist(white, grey []string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.whitePeers = white
	l.greyPeers = grey
}

// SetConnectionCounts replaces the connection counters.
func (l *LocalClient) SetConnectionCounts(incoming, outgoing uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.incomingConnections = incoming
	l.outgoingConnections = outgoing
}
