package netsync

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Mock implements the netsync.ClientI interface for testing purposes
type Mock struct {
	mock.Mock
}

// GetBlockchainHeight mocks the GetBlockchainHeight method
func (m *Mock) GetBlockchainHeight(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)

	return args.Get(0).(uint64), args.Error(1)
}

// GetObservedHeight mocks the GetObservedHeight method
func (m *Mock) GetObservedHeight(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)

	return args.Get(0).(uint64), args.Error(1)
}

// RelayTransaction mocks the RelayTransaction method
func (m *Mock) RelayTransaction(ctx context.Context, transaction []byte) error {
	args := m.Called(ctx, transaction)

	return args.Error(0)
}
