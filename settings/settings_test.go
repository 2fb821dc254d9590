package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSettings(t *testing.T) {
	s := NewSettings()
	require.NotNil(t, s)
	require.NotNil(t, s.ChainCfgParams)

	assert.NotEmpty(t, s.ClientName)
	assert.NotZero(t, s.RPC.Port)

	// tiers default to locked
	assert.False(t, s.RPC.BlockExplorerEnabled)
	assert.False(t, s.RPC.BlockExplorerDetailedEnabled)

	// CORS defaults to disabled
	assert.Empty(t, s.RPC.CORSHeader)
}
