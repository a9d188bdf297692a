package engine

import "github.com/shopspring/decimal"

// -----------------------------------------------------------------------------

// Output rounding conventions: currency 2dp, prices 4dp, share counts 6dp.
// Done in decimal space to avoid the usual float snapping artifacts.

func round2(v float64) float64 { return roundN(v, 2) }
func round4(v float64) float64 { return roundN(v, 4) }
func round6(v float64) float64 { return roundN(v, 6) }

// -----------------------------------------------------------------------------

func roundN(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}
