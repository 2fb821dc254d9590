package p2p

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Mock implements the p2p.ClientI interface for testing purposes
type Mock struct {
	mock.Mock
}

// GetConnectionsCount mocks the GetConnectionsCount method
func (m *Mock) GetConnectionsCount(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)

	return args.Get(0).(uint64), args.Error(1)
}

// GetOutgoingConnectionsCount mocks the GetOutgoingConnectionsCount method
func (m *Mock) GetOutgoingConnectionsCount(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)

	return args.Get(0).(uint64), args.Error(1)
}

// GetWhitePeerlistSize mocks the GetWhitePeerlistSize method
func (m *Mock) GetWhitePeerlistSize(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)

	return args.Get(0).(uint64), args.Error(1)
}

// GetGreyPeerlistSize mocks the GetGreyPeerlistSize method
func (m *Mock) GetGreyPeerlistSize(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)

	return args.Get(0).(uint64), args.Error(1)
}

// GetPeerlist mocks the GetPeerlist method
func (m *Mock) GetPeerlist(ctx context.Context) ([]string, []string, error) {
	args := m.Called(ctx)

	if args.Error(2) != nil {
		return nil, nil, args.Error(2)
	}

	return args.Get(0).([]string), args.Get(1).([]string), args.Error(2)
}
