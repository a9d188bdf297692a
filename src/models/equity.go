package models

// MStockQuery carries the parameters of a hypothetical stock investment.
// SellDate may be empty, meaning "the latest available trading day".
type MStockQuery struct {
	Symbol         string
	InvestedAmount float64
	BuyDate        string
	SellDate       string
}

// -----------------------------------------------------------------------------

// MEquityResult is the outcome of marking a hypothetical stock purchase to
// market. Shares are fixed at the buy, gain/loss is measured against the
// invested amount.
type MEquityResult struct {
	Symbol          string  `json:"symbol"`
	BuyDate         string  `json:"buyDate"`
	SellDate        string  `json:"sellDate"`
	BuyPrice        float64 `json:"buyPrice"`
	SellPrice       float64 `json:"sellPrice"`
	Shares          float64 `json:"shares"`
	CostBasis       float64 `json:"costBasis"`
	ValueAtSell     float64 `json:"valueAtSell"`
	GainLoss        float64 `json:"gainLoss"`
	GainLossPercent float64 `json:"gainLossPercent"`
}
