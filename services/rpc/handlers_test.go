package rpc

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/cloakchain/cloaknode/chaincfg"
	"github.com/cloakchain/cloaknode/errors"
	"github.com/cloakchain/cloaknode/services/blockchain"
	"github.com/cloakchain/cloaknode/settings"
	"github.com/cloakchain/cloaknode/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInfo(t *testing.T) {
	setupMocks := func(ts *testServer, topBlockIndex, syncHeight uint64) {
		ts.blockchain.On("GetTopBlockIndex", mock.Anything).Return(topBlockIndex, nil)
		ts.blockchain.On("GetBlockDetails", mock.Anything, topBlockIndex).
			Return(&blockchain.BlockDetails{Height: topBlockIndex, MajorVersion: 6, MinorVersion: 0}, nil)
		ts.blockchain.On("GetDifficultyForNextBlock", mock.Anything).Return(uint64(3000), nil)
		ts.blockchain.On("GetTransactionCount", mock.Anything).Return(uint64(250), nil)
		ts.blockchain.On("GetPoolTransactionCount", mock.Anything).Return(uint64(7), nil)
		ts.blockchain.On("GetAlternativeBlockCount", mock.Anything).Return(uint64(2), nil)
		ts.blockchain.On("GetStartTime", mock.Anything).Return(uint64(1234), nil)
		ts.p2p.On("GetConnectionsCount", mock.Anything).Return(uint64(10), nil)
		ts.p2p.On("GetOutgoingConnectionsCount", mock.Anything).Return(uint64(4), nil)
		ts.p2p.On("GetWhitePeerlistSize", mock.Anything).Return(uint64(5), nil)
		ts.p2p.On("GetGreyPeerlistSize", mock.Anything).Return(uint64(2), nil)
		ts.netsync.On("GetBlockchainHeight", mock.Anything).Return(syncHeight, nil)
		ts.netsync.On("GetObservedHeight", mock.Anything).Return(uint64(50), nil)
	}

	t.Run("synced node", func(t *testing.T) {
		ts := newTestServer(t)
		setupMocks(ts, 99, 100)

		rec := ts.request(http.MethodGet, "/info", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp infoResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		assert.Equal(t, uint64(100), resp.Height)
		assert.Equal(t, uint64(100), resp.NetworkHeight)
		assert.True(t, resp.Synced)
		assert.Equal(t, uint64(3000), resp.Difficulty)
		assert.Equal(t, uint64(100), resp.Hashrate) // 3000 / 30s target
		assert.Equal(t, uint64(150), resp.TxCount)  // 250 total minus 100 coinbase
		assert.Equal(t, uint64(7), resp.TxPoolSize)
		assert.Equal(t, uint64(2), resp.AltBlocksCount)
		assert.Equal(t, uint64(4), resp.OutgoingConnectionsCount)
		assert.Equal(t, uint64(6), resp.IncomingConnectionsCount)
		assert.Equal(t, uint64(5), resp.WhitePeerlistSize)
		assert.Equal(t, uint64(2), resp.GreyPeerlistSize)
		assert.Equal(t, uint64(49), resp.LastKnownBlockIndex)
		assert.Equal(t, chaincfg.MainNetParams.ForkHeights, resp.UpgradeHeights)
		assert.Equal(t, chaincfg.MainNetParams.SupportedHeight(), resp.SupportedHeight)
		assert.Equal(t, uint64(6), resp.MajorVersion)
		assert.Equal(t, "1.2.3", resp.Version)
		assert.Equal(t, "OK", resp.Status)
		assert.Equal(t, uint64(1234), resp.StartTime)
	})

	t.Run("syncing node", func(t *testing.T) {
		ts := newTestServer(t)
		setupMocks(ts, 99, 200)

		rec := ts.request(http.MethodGet, "/info", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp infoResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		assert.Equal(t, uint64(100), resp.Height)
		assert.Equal(t, uint64(200), resp.NetworkHeight)
		assert.False(t, resp.Synced)
	})

	t.Run("isolated node clamps the network height", func(t *testing.T) {
		ts := newTestServer(t)
		setupMocks(ts, 0, 0)

		rec := ts.request(http.MethodGet, "/info", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp infoResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		assert.Equal(t, uint64(1), resp.NetworkHeight)
		assert.True(t, resp.Synced)
	})

	t.Run("collaborator failure", func(t *testing.T) {
		ts := newTestServer(t)
		ts.blockchain.On("GetTopBlockIndex", mock.Anything).
			Return(uint64(0), errors.NewServiceUnavailableError("engine down"))

		rec := ts.request(http.MethodGet, "/info", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "errorCode")
	})
}

func TestFee(t *testing.T) {
	ts := newTestServer(t, func(s *settings.Settings) {
		s.RPC.FeeAddress = testFeeAddress
		s.RPC.FeeAmount = 100
	})

	rec := ts.request(http.MethodGet, "/fee", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp feeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, testFeeAddress, resp.Address)
	assert.Equal(t, uint64(100), resp.Amount)
	assert.Equal(t, "OK", resp.Status)
}

func TestHeight(t *testing.T) {
	t.Run("reports local and network height", func(t *testing.T) {
		ts := newTestServer(t)
		ts.blockchain.On("GetTopBlockIndex", mock.Anything).Return(uint64(41), nil)
		ts.netsync.On("GetBlockchainHeight", mock.Anything).Return(uint64(50), nil)

		rec := ts.request(http.MethodGet, "/height", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp heightResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		assert.Equal(t, uint64(42), resp.Height)
		assert.Equal(t, uint64(50), resp.NetworkHeight)
		assert.Equal(t, "OK", resp.Status)
	})

	t.Run("network height is never zero", func(t *testing.T) {
		ts := newTestServer(t)
		ts.blockchain.On("GetTopBlockIndex", mock.Anything).Return(uint64(0), nil)
		ts.netsync.On("GetBlockchainHeight", mock.Anything).Return(uint64(0), nil)

		rec := ts.request(http.MethodGet, "/height", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp heightResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		assert.Equal(t, uint64(1), resp.NetworkHeight)
	})
}

func TestPeers(t *testing.T) {
	t.Run("returns both lists", func(t *testing.T) {
		ts := newTestServer(t)
		ts.p2p.On("GetPeerlist", mock.Anything).
			Return([]string{"1.2.3.4:18980"}, []string{"5.6.7.8:18980"}, nil)

		rec := ts.request(http.MethodGet, "/peers", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp peersResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		assert.Equal(t, []string{"1.2.3.4:18980"}, resp.Peers)
		assert.Equal(t, []string{"5.6.7.8:18980"}, resp.PeersGray)
		assert.Equal(t, "OK", resp.Status)
	})

	t.Run("empty lists serialize as arrays", func(t *testing.T) {
		ts := newTestServer(t)
		ts.p2p.On("GetPeerlist", mock.Anything).Return([]string(nil), []string(nil), nil)

		rec := ts.request(http.MethodGet, "/peers", "")
		require.Equal(t, http.StatusOK, rec.Code)

		assert.Contains(t, rec.Body.String(), `"peers":[]`)
		assert.Contains(t, rec.Body.String(), `"peers_gray":[]`)
	})
}

func TestSendRawTransaction(t *testing.T) {
	t.Run("missing tx_as_hex", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.request(http.MethodPost, "/sendrawtransaction", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"Failed"`)
		assert.Contains(t, rec.Body.String(), "tx_as_hex")
	})

	t.Run("invalid hex", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.request(http.MethodPost, "/sendrawtransaction", `{"tx_as_hex":"zz"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp sendRawTransactionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		assert.Equal(t, "Failed", resp.Status)
		assert.Equal(t, "Failed to parse transaction from hex buffer", resp.Error)
		assert.Empty(t, resp.TransactionHash)
	})

	t.Run("pool rejection", func(t *testing.T) {
		ts := newTestServer(t)
		ts.blockchain.On("AddTransactionToPool", mock.Anything, []byte{0x00}).
			Return(errors.NewTxRejectedError("transaction fee is too small"))

		rec := ts.request(http.MethodPost, "/sendrawtransaction", `{"tx_as_hex":"00"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp sendRawTransactionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		assert.Equal(t, "Failed", resp.Status)
		assert.Equal(t, "transaction fee is too small", resp.Error)
		assert.Equal(t, util.TransactionHash([]byte{0x00}), resp.TransactionHash)

		ts.netsync.AssertNotCalled(t, "RelayTransaction", mock.Anything, mock.Anything)
	})

	t.Run("accepted and relayed", func(t *testing.T) {
		ts := newTestServer(t)
		ts.blockchain.On("AddTransactionToPool", mock.Anything, []byte{0x00, 0x01}).Return(nil)
		ts.netsync.On("RelayTransaction", mock.Anything, []byte{0x00, 0x01}).Return(nil)

		rec := ts.request(http.MethodPost, "/sendrawtransaction", `{"tx_as_hex":"0001"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp sendRawTransactionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		assert.Equal(t, "OK", resp.Status)
		assert.Empty(t, resp.Error)
		assert.Equal(t, util.TransactionHash([]byte{0x00, 0x01}), resp.TransactionHash)

		ts.netsync.AssertCalled(t, "RelayTransaction", mock.Anything, []byte{0x00, 0x01})
	})

	t.Run("relay failure still reports success", func(t *testing.T) {
		ts := newTestServer(t)
		ts.blockchain.On("AddTransactionToPool", mock.Anything, []byte{0x02}).Return(nil)
		ts.netsync.On("RelayTransaction", mock.Anything, []byte{0x02}).
			Return(errors.NewServiceUnavailableError("no peers"))

		rec := ts.request(http.MethodPost, "/sendrawtransaction", `{"tx_as_hex":"02"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"OK"`)

		ts.logger.AssertNumberOfCalls(t, "Errorf", 1)
	})
}

func TestGetRandomOuts(t *testing.T) {
	makeOutputs := func(n int) []blockchain.RandomOutput {
		outputs := make([]blockchain.RandomOutput, n)
		for i := range outputs {
			outputs[i] = blockchain.RandomOutput{
				GlobalIndex: uint64(i),
				PublicKey:   [32]byte{byte(i + 1)},
			}
		}

		return outputs
	}

	t.Run("missing amounts", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.request(http.MethodPost, "/getrandom_outs", `{"outs_count":3}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "amounts")
	})

	t.Run("missing outs_count", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.request(http.MethodPost, "/getrandom_outs", `{"amounts":[100]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "outs_count")
	})

	t.Run("outs_count out of range", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.request(http.MethodPost, "/getrandom_outs", `{"amounts":[100],"outs_count":70000}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"errorCode":1`)
	})

	t.Run("insufficient decoys abort the request", func(t *testing.T) {
		ts := newTestServer(t)
		ts.blockchain.On("GetRandomOutputs", mock.Anything, uint64(100), uint16(5)).
			Return(makeOutputs(3), nil)

		rec := ts.request(http.MethodPost, "/getrandom_outs", `{"amounts":[100,200],"outs_count":5}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"errorCode":40`)
		assert.Contains(t, rec.Body.String(), "Requested outputs: 5, found outputs: 3")

		// the second amount is never fetched
		ts.blockchain.AssertNotCalled(t, "GetRandomOutputs", mock.Anything, uint64(200), uint16(5))
	})

	t.Run("full decoy sets", func(t *testing.T) {
		ts := newTestServer(t)
		ts.blockchain.On("GetRandomOutputs", mock.Anything, uint64(100), uint16(2)).
			Return(makeOutputs(2), nil)
		ts.blockchain.On("GetRandomOutputs", mock.Anything, uint64(200), uint16(2)).
			Return(makeOutputs(2), nil)

		rec := ts.request(http.MethodPost, "/getrandom_outs", `{"amounts":[100,200],"outs_count":2}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp getRandomOutsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		require.Len(t, resp.Outs, 2)
		assert.Equal(t, uint64(100), resp.Outs[0].Amount)
		assert.Equal(t, uint64(200), resp.Outs[1].Amount)
		require.Len(t, resp.Outs[0].Outs, 2)
		assert.Equal(t, uint64(1), resp.Outs[0].Outs[1].GlobalAmountIndex)
		assert.Equal(t, "0200000000000000000000000000000000000000000000000000000000000000", resp.Outs[0].Outs[1].OutKey)
		assert.Equal(t, "OK", resp.Status)
	})
}
