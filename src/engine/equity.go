package engine

import (
	"investment-outlook/src/helpers"
	"investment-outlook/src/interfaces"
	"investment-outlook/src/logger"
	"investment-outlook/src/models"
)

// -----------------------------------------------------------------------------
// Equity Return Engine
// -----------------------------------------------------------------------------

// EquityEngine marks a hypothetical stock purchase to market using historical
// adjusted closes. It fetches the full series exactly once per computation.
type EquityEngine struct {
	Provider interfaces.IPriceHistoryProvider
	Logger   *logger.Logger
}

// -----------------------------------------------------------------------------

func NewEquityEngine(provider interfaces.IPriceHistoryProvider, log *logger.Logger) *EquityEngine {
	return &EquityEngine{
		Provider: provider,
		Logger:   log,
	}
}

// -----------------------------------------------------------------------------

// ComputeReturn computes the hypothetical gain/loss of investing
// q.InvestedAmount in q.Symbol on q.BuyDate and selling on q.SellDate, or at
// the latest available close when q.SellDate is empty.
func (e *EquityEngine) ComputeReturn(q models.MStockQuery) (*models.MEquityResult, error) {
	if err := validateStockQuery(q); err != nil {
		return nil, err
	}

	series, err := e.Provider.FetchDailyAdjusted(q.Symbol)
	if err != nil {
		return nil, err
	}

	buy, err := ResolveOnOrBefore(series, q.BuyDate)
	if err != nil {
		return nil, err
	}

	var sell models.MPricePoint
	if q.SellDate == "" {
		sell = series.Last()
	} else {
		sell, err = ResolveOnOrBefore(series, q.SellDate)
		if err != nil {
			return nil, err
		}
	}

	// Covers the degenerate request where sellDate < buyDate: the nearest
	// observation before the sell can land earlier than the buy observation.
	if sell.Date < buy.Date {
		return nil, helpers.Errorf(helpers.KindNoPriceData,
			"no price data for sell date %s for %s", q.SellDate, q.Symbol)
	}

	shares := q.InvestedAmount / buy.Close
	valueAtSell := shares * sell.Close
	gainLoss := valueAtSell - q.InvestedAmount
	gainLossPercent := gainLoss / q.InvestedAmount * 100

	return &models.MEquityResult{
		Symbol:          series.Symbol,
		BuyDate:         buy.Date,
		SellDate:        sell.Date,
		BuyPrice:        round4(buy.Close),
		SellPrice:       round4(sell.Close),
		Shares:          round6(shares),
		CostBasis:       round2(q.InvestedAmount),
		ValueAtSell:     round2(valueAtSell),
		GainLoss:        round2(gainLoss),
		GainLossPercent: round2(gainLossPercent),
	}, nil
}

// -----------------------------------------------------------------------------

// Historical returns the adjusted-close series for a symbol restricted to an
// optional [from, to] date window.
func (e *EquityEngine) Historical(symbol, from, to string) (*models.MPriceSeries, error) {
	if symbol == "" {
		return nil, helpers.Errorf(helpers.KindInvalidInput, "missing symbol")
	}
	if from != "" {
		if _, err := parseISO("from", from); err != nil {
			return nil, err
		}
	}
	if to != "" {
		if _, err := parseISO("to", to); err != nil {
			return nil, err
		}
	}

	series, err := e.Provider.FetchDailyAdjusted(symbol)
	if err != nil {
		return nil, err
	}
	return series.Window(from, to), nil
}

// -----------------------------------------------------------------------------

func validateStockQuery(q models.MStockQuery) error {
	if q.Symbol == "" {
		return helpers.Errorf(helpers.KindInvalidInput, "missing symbol")
	}
	if q.InvestedAmount <= 0 {
		return helpers.Errorf(helpers.KindInvalidInput,
			"investedAmount must be a positive number")
	}
	if q.BuyDate == "" {
		return helpers.Errorf(helpers.KindInvalidInput, "missing buyDate")
	}
	if _, err := parseISO("buyDate", q.BuyDate); err != nil {
		return err
	}
	if q.SellDate != "" {
		if _, err := parseISO("sellDate", q.SellDate); err != nil {
			return err
		}
	}
	return nil
}
