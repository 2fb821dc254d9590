package rpc

// Response payloads written by the handlers. Key names are part of the wire
// contract consumed by wallets and explorers.

type infoResponse struct {
	Height                   uint64   `json:"height"`
	Difficulty               uint64   `json:"difficulty"`
	TxCount                  uint64   `json:"tx_count"`
	TxPoolSize               uint64   `json:"tx_pool_size"`
	AltBlocksCount           uint64   `json:"alt_blocks_count"`
	OutgoingConnectionsCount uint64   `json:"outgoing_connections_count"`
	IncomingConnectionsCount uint64   `json:"incoming_connections_count"`
	WhitePeerlistSize        uint64   `json:"white_peerlist_size"`
	GreyPeerlistSize         uint64   `json:"grey_peerlist_size"`
	LastKnownBlockIndex      uint64   `json:"last_known_block_index"`
	NetworkHeight            uint64   `json:"network_height"`
	UpgradeHeights           []uint64 `json:"upgrade_heights"`
	SupportedHeight          uint64   `json:"supported_height"`
	Hashrate                 uint64   `json:"hashrate"`
	Synced                   bool     `json:"synced"`
	MajorVersion             uint64   `json:"major_version"`
	MinorVersion             uint64   `json:"minor_version"`
	Version                  string   `json:"version"`
	Status                   string   `json:"status"`
	StartTime                uint64   `json:"start_time"`
}

type feeResponse struct {
	Address string `json:"address"`
	Amount  uint64 `json:"amount"`
	Status  string `json:"status"`
}

type heightResponse struct {
	Height        uint64 `json:"height"`
	NetworkHeight uint64 `json:"network_height"`
	Status        string `json:"status"`
}

type peersResponse struct {
	Peers     []string `json:"peers"`
	PeersGray []string `json:"peers_gray"`
	Status    string   `json:"status"`
}

type sendRawTransactionRequest struct {
	TxAsHex *string `json:"tx_as_hex"`
}

type sendRawTransactionResponse struct {
	TransactionHash string `json:"transactionHash,omitempty"`
	Status          string `json:"status"`
	Error           string `json:"error"`
}

type getRandomOutsRequest struct {
	Amounts   *[]uint64 `json:"amounts"`
	OutsCount *uint64   `json:"outs_count"`
}

type randomOut struct {
	GlobalAmountIndex uint64 `json:"global_amount_index"`
	OutKey            string `json:"out_key"`
}

type randomOutsForAmount struct {
	Amount uint64      `json:"amount"`
	Outs   []randomOut `json:"outs"`
}

type getRandomOutsResponse struct {
	Outs   []randomOutsForAmount `json:"outs"`
	Status string                `json:"status"`
}
