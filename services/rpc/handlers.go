package rpc

import (
	"encoding/hex"
	"encoding/json"
	"math"
	"net/http"
	"time"

	"github.com/cloakchain/cloaknode/errors"
	"github.com/cloakchain/cloaknode/util"
	"github.com/labstack/echo/v4"
)

// info reports the node's view of the chain and the network.
func (s *RPCServer) info(c echo.Context, _ []byte) (interface{}, int, *errors.Error) {
	start := time.Now()
	defer func() {
		prometheusHandleInfo.Observe(float64(time.Since(start).Microseconds()) / 1_000_000)
	}()

	ctx := c.Request().Context()

	topBlockIndex, err := s.blockchainClient.GetTopBlockIndex(ctx)
	if err != nil {
		return nil, 0, errors.NewServiceError("failed to read top block index", err)
	}

	height := topBlockIndex + 1

	syncHeight, err := s.syncClient.GetBlockchainHeight(ctx)
	if err != nil {
		return nil, 0, errors.NewServiceError("failed to read network height", err)
	}

	networkHeight := max(uint64(1), syncHeight)

	blockDetails, err := s.blockchainClient.GetBlockDetails(ctx, height-1)
	if err != nil {
		return nil, 0, errors.NewServiceError("failed to read top block details", err)
	}

	difficulty, err := s.blockchainClient.GetDifficultyForNextBlock(ctx)
	if err != nil {
		return nil, 0, errors.NewServiceError("failed to read next difficulty", err)
	}

	txCount, err := s.blockchainClient.GetTransactionCount(ctx)
	if err != nil {
		return nil, 0, errors.NewServiceError("failed to read transaction count", err)
	}

	poolSize, err := s.blockchainClient.GetPoolTransactionCount(ctx)
	if err != nil {
		return nil, 0, errors.NewServiceError("failed to read pool size", err)
	}

	altBlocks, err := s.blockchainClient.GetAlternativeBlockCount(ctx)
	if err != nil {
		return nil, 0, errors.NewServiceError("failed to read alt block count", err)
	}

	totalConnections, err := s.p2pClient.GetConnectionsCount(ctx)
	if err != nil {
		return nil, 0, errors.NewServiceError("failed to read connection count", err)
	}

	outgoingConnections, err := s.p2pClient.GetOutgoingConnectionsCount(ctx)
	if err != nil {
		return nil, 0, errors.NewServiceError("failed to read outgoing connection count", err)
	}

	whitePeers, err := s.p2pClient.GetWhitePeerlistSize(ctx)
	if err != nil {
		return nil, 0, errors.NewServiceError("failed to read white peerlist size", err)
	}

	greyPeers, err := s.p2pClient.GetGreyPeerlistSize(ctx)
	if err != nil {
		return nil, 0, errors.NewServiceError("failed to read grey peerlist size", err)
	}

	observedHeight, err := s.syncClient.GetObservedHeight(ctx)
	if err != nil {
		return nil, 0, errors.NewServiceError("failed to read observed height", err)
	}

	startTime, err := s.blockchainClient.GetStartTime(ctx)
	if err != nil {
		return nil, 0, errors.NewServiceError("failed to read start time", err)
	}

	params := s.settings.ChainCfgParams

	return &infoResponse{
		Height:     height,
		Difficulty: difficulty,
		// one coinbase transaction per block
		TxCount:                  txCount - height,
		TxPoolSize:               poolSize,
		AltBlocksCount:           altBlocks,
		OutgoingConnectionsCount: outgoingConnections,
		IncomingConnectionsCount: totalConnections - outgoingConnections,
		WhitePeerlistSize:        whitePeers,
		GreyPeerlistSize:         greyPeers,
		LastKnownBlockIndex:      max(uint64(1), observedHeight) - 1,
		NetworkHeight:            networkHeight,
		UpgradeHeights:           params.ForkHeights,
		SupportedHeight:          params.SupportedHeight(),
		Hashrate:                 uint64(math.Round(float64(difficulty) / float64(params.DifficultyTarget))),
		Synced:                   height == networkHeight,
		MajorVersion:             blockDetails.MajorVersion,
		MinorVersion:             blockDetails.MinorVersion,
		Version:                  s.settings.Version,
		Status:                   "OK",
		StartTime:                startTime,
	}, http.StatusOK, nil
}

// fee reports the fee address and amount this node charges wallets that use
// it as a remote daemon.
func (s *RPCServer) fee(_ echo.Context, _ []byte) (interface{}, int, *errors.Error) {
	start := time.Now()
	defer func() {
		prometheusHandleFee.Observe(float64(time.Since(start).Microseconds()) / 1_000_000)
	}()

	return &feeResponse{
		Address: s.settings.RPC.FeeAddress,
		Amount:  s.settings.RPC.FeeAmount,
		Status:  "OK",
	}, http.StatusOK, nil
}

func (s *RPCServer) height(c echo.Context, _ []byte) (interface{}, int, *errors.Error) {
	start := time.Now()
	defer func() {
		prometheusHandleHeight.Observe(float64(time.Since(start).Microseconds()) / 1_000_000)
	}()

	ctx := c.Request().Context()

	topBlockIndex, err := s.blockchainClient.GetTopBlockIndex(ctx)
	if err != nil {
		return nil, 0, errors.NewServiceError("failed to read top block index", err)
	}

	syncHeight, err := s.syncClient.GetBlockchainHeight(ctx)
	if err != nil {
		return nil, 0, errors.NewServiceError("failed to read network height", err)
	}

	return &heightResponse{
		Height:        topBlockIndex + 1,
		NetworkHeight: max(uint64(1), syncHeight),
		Status:        "OK",
	}, http.StatusOK, nil
}

func (s *RPCServer) peers(c echo.Context, _ []byte) (interface{}, int, *errors.Error) {
	start := time.Now()
	defer func() {
		prometheusHandlePeers.Observe(float64(time.Since(start).Microseconds()) / 1_000_000)
	}()

	white, grey, err := s.p2pClient.GetPeerlist(c.Request().Context())
	if err != nil {
		return nil, 0, errors.NewServiceError("failed to read peer lists", err)
	}

	if white == nil {
		white = []string{}
	}

	if grey == nil {
		grey = []string{}
	}

	return &peersResponse{
		Peers:     white,
		PeersGray: grey,
		Status:    "OK",
	}, http.StatusOK, nil
}

// sendTransaction submits a hex-encoded raw transaction to the pool and, on
// acceptance, relays it to the network. Decode and pool failures are encoded
// in the payload with an outer success: the caller inspects the payload's
// status field, not the HTTP status.
func (s *RPCServer) sendTransaction(c echo.Context, body []byte) (interface{}, int, *errors.Error) {
	start := time.Now()
	defer func() {
		prometheusHandleSendRawTransaction.Observe(float64(time.Since(start).Microseconds()) / 1_000_000)
	}()

	var req sendRawTransactionRequest
	if err := json.Unmarshal(body, &req); err != nil || req.TxAsHex == nil {
		return nil, 0, errors.NewMissingParamError("missing required json parameter: tx_as_hex")
	}

	transaction, err := hex.DecodeString(*req.TxAsHex)
	if err != nil {
		return &sendRawTransactionResponse{
			Status: "Failed",
			Error:  "Failed to parse transaction from hex buffer",
		}, http.StatusOK, nil
	}

	ctx := c.Request().Context()
	transactionHash := util.TransactionHash(transaction)

	s.logger.Debugf("Attempting to add transaction %s from /sendrawtransaction to pool", transactionHash)

	if err := s.blockchainClient.AddTransactionToPool(ctx, transaction); err != nil {
		reason := err.Error()

		var rpcErr *errors.Error
		if errors.As(err, &rpcErr) {
			reason = rpcErr.Message()
		}

		s.logger.Infof("Failed to add transaction %s from /sendrawtransaction to pool: %s", transactionHash, reason)

		return &sendRawTransactionResponse{
			TransactionHash: transactionHash,
			Status:          "Failed",
			Error:           reason,
		}, http.StatusOK, nil
	}

	if err := s.syncClient.RelayTransaction(ctx, transaction); err != nil {
		// the pool accepted it; the caller still gets a success payload
		s.logger.Errorf("Failed to relay transaction %s: %v", transactionHash, err)
	}

	return &sendRawTransactionResponse{
		TransactionHash: transactionHash,
		Status:          "OK",
		Error:           "",
	}, http.StatusOK, nil
}

// getRandomOuts fetches decoy outputs for each requested amount. Any amount
// the chain cannot fully satisfy aborts the whole request; callers must never
// build a ring from a partial decoy set.
func (s *RPCServer) getRandomOuts(c echo.Context, body []byte) (interface{}, int, *errors.Error) {
	start := time.Now()
	defer func() {
		prometheusHandleGetRandomOuts.Observe(float64(time.Since(start).Microseconds()) / 1_000_000)
	}()

	var req getRandomOutsRequest
	if err := json.Unmarshal(body, &req); err != nil || req.Amounts == nil {
		return nil, 0, errors.NewMissingParamError("missing required json parameter: amounts")
	}

	if req.OutsCount == nil {
		return nil, 0, errors.NewMissingParamError("missing required json parameter: outs_count")
	}

	numOutputs := *req.OutsCount
	if numOutputs > math.MaxUint16 {
		return nil, 0, errors.NewInvalidArgumentError("outs_count %d is too large", numOutputs)
	}

	ctx := c.Request().Context()
	params := s.settings.ChainCfgParams

	outs := make([]randomOutsForAmount, 0, len(*req.Amounts))

	for _, amount := range *req.Amounts {
		candidates, err := s.blockchainClient.GetRandomOutputs(ctx, amount, uint16(numOutputs))
		if err != nil {
			return nil, 0, errors.NewCantGetFakeOutputsError("failed to get fake outputs for amount %d", amount, err)
		}

		if uint64(len(candidates)) != numOutputs {
			return nil, 0, errors.NewCantGetFakeOutputsError(
				"Failed to get enough matching outputs for amount %d (%s). "+
					"Requested outputs: %d, found outputs: %d.\n"+
					"Note: If you are a public node operator, you can safely ignore this message. "+
					"It is only relevant to the user sending the transaction.",
				amount, util.FormatAmount(amount, params), numOutputs, len(candidates))
		}

		entry := randomOutsForAmount{
			Amount: amount,
			Outs:   make([]randomOut, 0, len(candidates)),
		}

		for _, candidate := range candidates {
			entry.Outs = append(entry.Outs, randomOut{
				GlobalAmountIndex: candidate.GlobalIndex,
				OutKey:            hex.EncodeToString(candidate.PublicKey[:]),
			})
		}

		outs = append(outs, entry)
	}

	return &getRandomOutsResponse{
		Outs:   outs,
		Status: "OK",
	}, http.StatusOK, nil
}
