package main

import (
	"context"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/cloakchain/cloaknode/services/blockchain"
	"github.com/cloakchain/cloaknode/services/netsync"
	"github.com/cloakchain/cloaknode/services/p2p"
	"github.com/cloakchain/cloaknode/services/rpc"
	"github.com/cloakchain/cloaknode/settings"
	"github.com/cloakchain/cloaknode/ulogger"
	"github.com/ordishs/gocore"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

// Name used by build script for the binaries. (Please keep on single line)
const progname = "cloaknode"

// Version & commit strings injected at build with -ldflags -X...
var version string
var commit string

func init() {
	gocore.SetInfo(progname, version, commit)
}

func main() {
	tSettings := settings.NewSettings()

	logger := ulogger.New(progname, ulogger.WithLevel(tSettings.LogLevel))

	logger.Infof("%s %s (%s), network %s", progname, version, commit, tSettings.ChainCfgParams.Name)

	go func() {
		profilerAddr, ok := gocore.Config().Get("profilerAddr")
		if ok {
			logger.Infof("Starting profiler on http://%s/debug/pprof", profilerAddr)
			logger.Fatalf("%v", http.ListenAndServe(profilerAddr, nil))
		}
	}()

	prometheusEndpoint, ok := gocore.Config().Get("prometheusEndpoint")
	if ok && prometheusEndpoint != "" {
		addr, _ := gocore.Config().Get("prometheusAddr", ":2112")
		logger.Infof("Starting prometheus endpoint on %s%s", addr, prometheusEndpoint)

		go func() {
			mux := http.NewServeMux()
			mux.Handle(prometheusEndpoint, promhttp.Handler())
			logger.Fatalf("%v", http.ListenAndServe(addr, mux))
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// In-process collaborators stand in until real engine clients are
	// attached.
	blockchainClient := blockchain.NewLocalClient()
	p2pClient := p2p.NewLocalClient()
	syncClient := netsync.NewLocalClient(logger.New("nsync"))

	rpcServer, err := rpc.New(logger.New("rpc"), tSettings, blockchainClient, p2pClient, syncClient)
	if err != nil {
		logger.Fatalf("failed to create RPC server: %v", err)
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := rpcServer.Init(gCtx); err != nil {
			return err
		}

		return rpcServer.Start(gCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatalf("daemon stopped with error: %v", err)
	}

	logger.Infof("%s shut down cleanly", progname)
	os.Exit(0)
}
