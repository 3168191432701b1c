package dto

import "github.com/feral-file/ff-catalog/internal/providers/ethereum"

// PinStatusResponse represents the status of a pin job
type PinStatusResponse struct {
	Hash   string `json:"hash"`
	Status string `json:"status"`
}

// TransactionResponse represents a mined marketplace transaction
type TransactionResponse struct {
	TxHash      string `json:"tx_hash"`
	BlockNumber uint64 `json:"block_number"`
	From        string `json:"from"`
	TokenID     string `json:"token_id,omitempty"`
}

// MapTxResultToDTO maps a market transaction result
func MapTxResultToDTO(result *ethereum.TxResult) *TransactionResponse {
	resp := &TransactionResponse{
		TxHash:      result.TxHash,
		BlockNumber: result.BlockNumber,
		From:        result.From,
	}
	if result.TokenID != nil {
		resp.TokenID = result.TokenID.String()
	}
	return resp
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
