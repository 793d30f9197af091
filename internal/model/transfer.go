package model

import "github.com/shopspring/decimal"

// Transfer is one JSONL record produced by the extractor: a single token
// transfer action matched by the account filter.
type Transfer struct {
	Account       string          `json:"account"`
	Date          string          `json:"date"`
	Timestamp     int64           `json:"timestamp"`
	Amount        decimal.Decimal `json:"amount"`
	Token         string          `json:"token"`
	From          string          `json:"from"`
	To            string          `json:"to"`
	BlockNum      uint64          `json:"block_num"`
	TransactionID string          `json:"transaction_id"`
	Memo          string          `json:"memo"`
	Contract      string          `json:"contract"`
	Action        string          `json:"action"`
}
