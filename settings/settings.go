// Package settings builds the immutable runtime configuration for cloaknode
// from the gocore config store.
package settings

import (
	"github.com/cloakchain/cloaknode/chaincfg"
)

func NewSettings() *Settings {
	params, err := chaincfg.GetChainParams(getString("network", "mainnet"))
	if err != nil {
		panic(err)
	}

	return &Settings{
		ClientName:     getString("clientName", "cloaknode"),
		LogLevel:       getString("logLevel", "INFO"),
		Version:        getString("version", "0.1.0"),
		StatsPrefix:    getString("stats_prefix", ""),
		ChainCfgParams: params,
		RPC: RPCSettings{
			Host:                         getString("rpc_host", "127.0.0.1"),
			Port:                         getInt("rpc_port", params.DefaultRPCPort),
			CORSHeader:                   getString("rpc_cors_header", ""),
			FeeAddress:                   getString("rpc_fee_address", ""),
			FeeAmount:                    getUint64("rpc_fee_amount", 0),
			BlockExplorerEnabled:         getBool("rpc_enable_blockexplorer", false),
			BlockExplorerDetailedEnabled: getBool("rpc_enable_blockexplorer_detailed", false),
		},
		P2P: P2PSettings{
			Port: getInt("p2p_port", 18980),
		},
	}
}
