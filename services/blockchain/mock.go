package blockchain

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Mock implements the blockchain.ClientI interface for testing purposes
type Mock struct {
	mock.Mock
}

// Health mocks the Health method
func (m *Mock) Health(ctx context.Context, checkLiveness bool) (int, string, error) {
	args := m.Called(ctx, checkLiveness)

	if args.Error(2) != nil {
		return 0, "", args.Error(2)
	}

	return args.Int(0), args.String(1), args.Error(2)
}

// GetTopBlockIndex mocks the GetTopBlockIndex method
func (m *Mock) GetTopBlockIndex(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)

	return args.Get(0).(uint64), args.Error(1)
}

// GetBlockDetails mocks the GetBlockDetails method
func (m *Mock) GetBlockDetails(ctx context.Context, blockIndex uint64) (*BlockDetails, error) {
	args := m.Called(ctx, blockIndex)

	if args.Error(1) != nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*BlockDetails), args.Error(1)
}

// GetDifficultyForNextBlock mocks the GetDifficultyForNextBlock method
func (m *Mock) GetDifficultyForNextBlock(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)

	return args.Get(0).(uint64), args.Error(1)
}

// GetTransactionCount mocks the GetTransactionCount method
func (m *Mock) GetTransactionCount(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)

	return args.Get(0).(uint64), args.Error(1)
}

// GetPoolTransactionCount mocks the GetPoolTransactionCount method
func (m *Mock) GetPoolTransactionCount(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)

	return args.Get(0).(uint64), args.Error(1)
}

// GetAlternativeBlockCount mocks the GetAlternativeBlockCount method
func (m *Mock) GetAlternativeBlockCount(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)

	return args.Get(0).(uint64), args.Error(1)
}

// GetRandomOutputs mocks the GetRandomOutputs method
func (m *Mock) GetRandomOutputs(ctx context.Context, amount uint64, count uint16) ([]RandomOutput, error) {
	args := m.Called(ctx, amount, count)

	if args.Error(1) != nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]RandomOutput), args.Error(1)
}

// AddTransactionToPool mocks the AddTransactionToPool method
func (m *Mock) AddTransactionToPool(ctx context.Context, transaction []byte) error {
	args := m.Called(ctx, transaction)

	return args.Error(0)
}

// GetStartTime mocks the GetStartTime method
func (m *Mock) GetStartTime(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)

	return args.Get(0).(uint64), args.Error(1)
}
