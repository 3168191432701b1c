package dto

import (
	"time"

	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/history"
)

// CatalogResponse is the catalog listing
type CatalogResponse struct {
	Items []domain.CatalogEntry `json:"items"`
	Total int                   `json:"total"`
}

// TransferResponse is one row of an ownership history
type TransferResponse struct {
	From            string           `json:"from"`
	To              string           `json:"to"`
	FromLabel       string           `json:"from_label"`
	ToLabel         string           `json:"to_label"`
	Kind            domain.EventType `json:"kind"`
	Timestamp       time.Time        `json:"timestamp"`
	TransactionHash string           `json:"transaction_hash"`
	LogIndex        uint             `json:"log_index"`
	BlockNumber     uint64           `json:"block_number"`
}

// HistoryResponse is a page of ownership history
type HistoryResponse struct {
	TokenID string             `json:"token_id"`
	Items   []TransferResponse `json:"items"`
	Total   int                `json:"total"`
	HasMore bool               `json:"has_more"`
}

// MapHistoryToDTO maps the visible page of a history
func MapHistoryToDTO(h *history.History, showAll bool) *HistoryResponse {
	page := h.Page(showAll)
	items := make([]TransferResponse, 0, len(page))
	for _, e := range page {
		items = append(items, TransferResponse{
			From:            e.From,
			To:              e.To,
			FromLabel:       e.FromLabel(),
			ToLabel:         e.ToLabel(),
			Kind:            e.Kind,
			Timestamp:       e.Timestamp,
			TransactionHash: e.TransactionHash,
			LogIndex:        e.LogIndex,
			BlockNumber:     e.BlockNumber,
		})
	}

	return &HistoryResponse{
		TokenID: h.TokenID,
		Items:   items,
		Total:   h.Len(),
		HasMore: !showAll && h.HasMore(),
	}
}
