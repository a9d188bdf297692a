package server

import (
	"strconv"
	"strings"

	"investment-outlook/src/engine"
	"investment-outlook/src/helpers"
	"investment-outlook/src/models"

	"github.com/gin-gonic/gin"
)

// -----------------------------------------------------------------------------
// Error mapping
// -----------------------------------------------------------------------------

// statusForKind is the explicit kind -> HTTP status table for the boundary.
func statusForKind(k helpers.Kind) int {
	switch k {
	case helpers.KindInvalidInput, helpers.KindNoPriceData, helpers.KindInvalidDateOrder:
		return 400
	case helpers.KindNotFound:
		return 404
	case helpers.KindRateLimited:
		return 429
	case helpers.KindProviderUnavailable:
		return 503
	default:
		return 500
	}
}

// -----------------------------------------------------------------------------

func (s *APIServer) writeError(c *gin.Context, err error) {
	kind := helpers.KindOf(err)
	c.JSON(statusForKind(kind), gin.H{
		"error": err.Error(),
		"kind":  kind.String(),
	})
}

// -----------------------------------------------------------------------------

func writeBadRequest(c *gin.Context, msg string) {
	c.JSON(400, gin.H{
		"error": msg,
		"kind":  helpers.KindInvalidInput.String(),
	})
}

// -----------------------------------------------------------------------------
// Query parsing
// -----------------------------------------------------------------------------

// floatQuery parses an optional float parameter. ok is false when the
// parameter is absent or malformed, mirroring lenient form coercion.
func floatQuery(c *gin.Context, name string) (float64, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// -----------------------------------------------------------------------------

func intQuery(c *gin.Context, name string) (int, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

// -----------------------------------------------------------------------------

// stockQueryFromRequest reads the stock leg parameters. present reports
// whether enough of them were supplied to attempt the leg at all.
func stockQueryFromRequest(c *gin.Context) (q models.MStockQuery, present bool) {
	q.Symbol = strings.ToUpper(strings.TrimSpace(c.Query("symbol")))
	q.InvestedAmount, _ = floatQuery(c, "investedAmount")
	q.BuyDate = strings.TrimSpace(c.Query("buyDate"))
	q.SellDate = strings.TrimSpace(c.Query("sellDate"))

	present = q.Symbol != "" && q.InvestedAmount > 0 && q.BuyDate != ""
	return q, present
}

// -----------------------------------------------------------------------------

// mortgageQueryFromRequest reads the real estate leg parameters. reBuyDate
// takes precedence over buyDate so both legs can share a request without the
// date parameters clashing.
func mortgageQueryFromRequest(c *gin.Context) (q models.MMortgageQuery, present bool) {
	var haveDPP, haveRate bool
	q.PurchasePrice, _ = floatQuery(c, "purchasePrice")
	q.DownPaymentPercent, haveDPP = floatQuery(c, "downPaymentPercent")
	q.AnnualInterestRate, haveRate = floatQuery(c, "annualInterestRate")
	q.BuyDate = strings.TrimSpace(c.Query("reBuyDate"))
	if q.BuyDate == "" {
		q.BuyDate = strings.TrimSpace(c.Query("buyDate"))
	}
	q.AsOfDate = strings.TrimSpace(c.Query("asOfDate"))
	q.AnnualAppreciationPercent, _ = floatQuery(c, "annualAppreciationPercent")
	q.LoanTermYears, _ = intQuery(c, "loanTermYears")

	present = q.PurchasePrice > 0 && haveDPP && haveRate && q.BuyDate != "" && q.AsOfDate != ""
	return q, present
}

// -----------------------------------------------------------------------------
// Stock
// -----------------------------------------------------------------------------

// GET /api/stock/hypothetical-return?symbol=&investedAmount=&buyDate=[&sellDate=]
func (s *APIServer) getStockHypotheticalReturn(c *gin.Context) {
	q, present := stockQueryFromRequest(c)
	if !present {
		writeBadRequest(c, "Missing or invalid: symbol, investedAmount (positive number), buyDate (YYYY-MM-DD)")
		return
	}

	result, err := s.Equity.ComputeReturn(q)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(200, result)
}

// -----------------------------------------------------------------------------

// GET /api/stock/historical?symbol=[&from=][&to=]
func (s *APIServer) getStockHistorical(c *gin.Context) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Query("symbol")))
	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	if symbol == "" {
		writeBadRequest(c, "Missing symbol")
		return
	}

	series, err := s.Equity.Historical(symbol, from, to)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(200, series)
}

// -----------------------------------------------------------------------------
// Real estate
// -----------------------------------------------------------------------------

// GET /api/real-estate/hypothetical?purchasePrice=&downPaymentPercent=&annualInterestRate=&buyDate=&asOfDate=
// Optional: annualAppreciationPercent=0, loanTermYears=30
func (s *APIServer) getRealEstateHypothetical(c *gin.Context) {
	q, present := mortgageQueryFromRequest(c)
	if !present {
		writeBadRequest(c, "Missing or invalid: purchasePrice (positive), downPaymentPercent, annualInterestRate, buyDate (YYYY-MM-DD), asOfDate (YYYY-MM-DD)")
		return
	}

	result, err := engine.ComputeRealEstate(q)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(200, result)
}

// -----------------------------------------------------------------------------

// GET /api/real-estate/value?address=
func (s *APIServer) getRealEstateValue(c *gin.Context) {
	address := strings.TrimSpace(c.Query("address"))
	if address == "" {
		writeBadRequest(c, "Missing address")
		return
	}

	value, err := s.Valuation.FetchValue(address)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(200, value)
}

// -----------------------------------------------------------------------------
// Compare
// -----------------------------------------------------------------------------

// GET /api/compare — optional stock params and optional real estate params;
// at least one set must be present. One failed leg still returns the other
// leg's result under "partial".
func (s *APIServer) getCompare(c *gin.Context) {
	stockQ, hasStock := stockQueryFromRequest(c)
	reQ, hasRE := mortgageQueryFromRequest(c)

	if !hasStock && !hasRE {
		writeBadRequest(c, "Provide either stock params (symbol, investedAmount, buyDate [, sellDate]) or real estate params (purchasePrice, downPaymentPercent, annualInterestRate, buyDate, asOfDate), or both.")
		return
	}

	out := models.MComparison{}
	var legErrors []string
	var firstErr error

	if hasStock {
		result, err := s.Equity.ComputeReturn(stockQ)
		if err != nil {
			legErrors = append(legErrors, "Stock: "+err.Error())
			firstErr = err
		} else {
			out.Stock = result
		}
	}

	if hasRE {
		result, err := engine.ComputeRealEstate(reQ)
		if err != nil {
			legErrors = append(legErrors, "Real estate: "+err.Error())
			if firstErr == nil {
				firstErr = err
			}
		} else {
			out.RealEstate = result
		}
	}

	if len(legErrors) > 0 {
		c.JSON(statusForKind(helpers.KindOf(firstErr)), gin.H{
			"error":   strings.Join(legErrors, "; "),
			"kind":    helpers.KindOf(firstErr).String(),
			"partial": out,
		})
		return
	}

	c.JSON(200, out)
}

// -----------------------------------------------------------------------------

// GET /api/compare/time-series — same params as /api/compare. Returns
// year-over-year values for charting.
func (s *APIServer) getCompareTimeSeries(c *gin.Context) {
	stockQ, hasStock := stockQueryFromRequest(c)
	reQ, hasRE := mortgageQueryFromRequest(c)

	if !hasStock && !hasRE {
		writeBadRequest(c, "Provide stock params and/or real estate params (same as Compare).")
		return
	}

	var stockPtr *models.MStockQuery
	var rePtr *models.MMortgageQuery
	if hasStock {
		stockPtr = &stockQ
	}
	if hasRE {
		rePtr = &reQ
	}

	out, err := s.TimeSeries.Build(stockPtr, rePtr)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(200, out)
}
