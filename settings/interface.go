package settings

import (
	"github.com/cloakchain/cloaknode/chaincfg"
)

// RPCSettings configures the daemon RPC front end. The struct is populated
// once at startup and never mutated; the RPC server closes over it.
type RPCSettings struct {
	Host string
	Port int

	// CORSHeader is the value emitted as Access-Control-Allow-Origin.
	// Empty disables CORS handling.
	CORSHeader string

	// FeeAddress and FeeAmount are advertised on /fee for wallets using
	// this node as a remote daemon.
	FeeAddress string
	FeeAmount  uint64

	// BlockExplorerEnabled unlocks the middle permission tier,
	// BlockExplorerDetailedEnabled the highest.
	BlockExplorerEnabled         bool
	BlockExplorerDetailedEnabled bool
}

type P2PSettings struct {
	Port int
}

type Settings struct {
	ClientName     string
	LogLevel       string
	Version        string
	StatsPrefix    string
	ChainCfgParams *chaincfg.Params

	RPC RPCSettings
	P2P P2PSettings
}
