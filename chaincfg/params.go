// Package chaincfg defines the chain parameters for the cloak networks.
package chaincfg

import (
	"strings"

	"github.com/cloakchain/cloaknode/errors"
)

// Params holds the network-wide constants the daemon needs at runtime. The
// tables are fixed at compile time; a Params value is never mutated after
// selection.
type Params struct {
	// Name is the network name used to look the params up ("mainnet", "testnet").
	Name string

	// Ticker is the currency ticker appended to formatted amounts.
	Ticker string

	// AddressPrefix is the human-readable prefix every standard address
	// starts with.
	AddressPrefix string

	// AddressLength is the length of a standard base58 address, prefix
	// included.
	AddressLength int

	// Decimals is the number of decimal places in one coin unit.
	Decimals int

	// DifficultyTarget is the target number of seconds between blocks. The
	// network hashrate estimate is difficulty divided by this value.
	DifficultyTarget uint64

	// ForkHeights lists the heights at which consensus rules changed, in
	// ascending order.
	ForkHeights []uint64

	// CurrentForkIndex identifies which entry of ForkHeights is the
	// currently active rule set.
	CurrentForkIndex int

	// DefaultRPCPort is the port the daemon RPC server binds by default.
	DefaultRPCPort int
}

// SupportedHeight returns the activation height of the currently active fork,
// or zero when no forks are configured.
func (p *Params) SupportedHeight() uint64 {
	if len(p.ForkHeights) == 0 {
		return 0
	}

	return p.ForkHeights[p.CurrentForkIndex]
}

var MainNetParams = Params{
	Name:             "mainnet",
	Ticker:           "CLK",
	AddressPrefix:    "cloak",
	AddressLength:    98,
	Decimals:         2,
	DifficultyTarget: 30,
	ForkHeights:      []uint64{1, 40500, 187000, 350000, 440000, 620000, 700000},
	CurrentForkIndex: 6,
	DefaultRPCPort:   18981,
}

var TestNetParams = Params{
	Name:             "testnet",
	Ticker:           "tCLK",
	AddressPrefix:    "cloaktest",
	AddressLength:    102,
	Decimals:         2,
	DifficultyTarget: 30,
	ForkHeights:      []uint64{1, 100, 500},
	CurrentForkIndex: 2,
	DefaultRPCPort:   28981,
}

// GetChainParams returns the parameters for the named network.
func GetChainParams(network string) (*Params, error) {
	switch strings.ToLower(network) {
	case "mainnet", "":
		return &MainNetParams, nil
	case "testnet":
		return &TestNetParams, nil
	default:
		return nil, errors.NewConfigurationError("unknown network: %q", network)
	}
}
