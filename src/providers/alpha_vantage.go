package providers

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"investment-outlook/src/helpers"
	"investment-outlook/src/interfaces"
	"investment-outlook/src/logger"
	"investment-outlook/src/models"

	"github.com/go-resty/resty/v2"
)

// -----------------------------------------------------------------------------
// AlphaVantageSource
// -----------------------------------------------------------------------------

// AlphaVantageSource fetches split/dividend-adjusted daily close history from
// the Alpha Vantage TIME_SERIES_DAILY_ADJUSTED endpoint. The free tier allows
// 25 requests/day, so an optional cache sits in front of the network call.
type AlphaVantageSource struct {
	Config models.MAlphaVantageConfig
	Cache  interfaces.IPriceCache
	Logger *logger.Logger
	client *resty.Client
	apiKey string
}

// -----------------------------------------------------------------------------

// NewAlphaVantageSource creates the provider. The API key is resolved by the
// caller at startup and passed in explicitly; an empty key makes every fetch
// fail with KindProviderUnavailable. cache may be nil.
func NewAlphaVantageSource(cfg models.MAlphaVantageConfig, apiKey string, net models.MNetworkConfig, cache interfaces.IPriceCache, log *logger.Logger) *AlphaVantageSource {
	client := newRestyClient(cfg.BaseURL, net)

	return &AlphaVantageSource{
		Config: cfg,
		Cache:  cache,
		Logger: log,
		client: client,
		apiKey: apiKey,
	}
}

// -----------------------------------------------------------------------------

func (s *AlphaVantageSource) Name() string {
	return "alpha-vantage"
}

// -----------------------------------------------------------------------------

// FetchDailyAdjusted retrieves the full adjusted daily series for a symbol,
// consulting the cache first when one is configured.
func (s *AlphaVantageSource) FetchDailyAdjusted(symbol string) (*models.MPriceSeries, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, helpers.Errorf(helpers.KindInvalidInput, "missing symbol")
	}
	if s.apiKey == "" {
		return nil, helpers.Errorf(helpers.KindProviderUnavailable,
			"%s is not set; get a free key at https://www.alphavantage.co/support/#api-key",
			s.Config.APIKeyEnv)
	}

	if s.Cache != nil {
		if series, ok, err := s.Cache.Load(symbol); err != nil {
			s.Logger.Warning("Cache load failed for %s: %v", symbol, err)
		} else if ok {
			s.Logger.Debug("Cache hit for %s (%d points)", symbol, series.Len())
			return series, nil
		}
	}

	resp, err := s.client.R().
		SetQueryParams(map[string]string{
			"function":   "TIME_SERIES_DAILY_ADJUSTED",
			"symbol":     symbol,
			"outputsize": s.Config.OutputSize,
			"apikey":     s.apiKey,
		}).
		Get("/query")

	if err != nil {
		return nil, helpers.Wrap(helpers.KindProviderUnavailable, err,
			"alpha vantage request failed for %s", symbol)
	}
	if resp.StatusCode() != 200 {
		return nil, helpers.Errorf(helpers.KindProviderUnavailable,
			"alpha vantage returned status %d for %s", resp.StatusCode(), symbol)
	}

	series, err := parseDailyAdjusted(symbol, resp.Body())
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Store(series); err != nil {
			s.Logger.Warning("Cache store failed for %s: %v", symbol, err)
		}
	}

	s.Logger.Info("Fetched %s: %d daily closes [%s -> %s]",
		series.Symbol, series.Len(), series.Dates[0], series.Last().Date)
	return series, nil
}

// -----------------------------------------------------------------------------

type avDailyResponse struct {
	MetaData     map[string]string            `json:"Meta Data"`
	Series       map[string]map[string]string `json:"Time Series (Daily)"`
	Note         string                       `json:"Note"`
	Information  string                       `json:"Information"`
	ErrorMessage string                       `json:"Error Message"`
}

// -----------------------------------------------------------------------------

// parseDailyAdjusted normalizes the Alpha Vantage payload into an ascending,
// deduplicated series. JSON object keys carry the dates, so an explicit sort
// is required.
func parseDailyAdjusted(symbol string, body []byte) (*models.MPriceSeries, error) {
	var resp avDailyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, helpers.Wrap(helpers.KindProviderUnavailable, err,
			"alpha vantage response unmarshal failed for %s", symbol)
	}

	if len(resp.Series) == 0 {
		if resp.Note != "" {
			return nil, helpers.Errorf(helpers.KindRateLimited, "alpha vantage: %s", resp.Note)
		}
		if resp.Information != "" {
			return nil, helpers.Errorf(helpers.KindRateLimited, "alpha vantage: %s", resp.Information)
		}
		if resp.ErrorMessage != "" {
			return nil, helpers.Errorf(helpers.KindNotFound, "alpha vantage: %s", resp.ErrorMessage)
		}
		return nil, helpers.Errorf(helpers.KindProviderUnavailable,
			"alpha vantage returned no time series for %s", symbol)
	}

	dates := make([]string, 0, len(resp.Series))
	for d := range resp.Series {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	series := &models.MPriceSeries{
		Symbol: symbol,
		Dates:  make([]string, 0, len(dates)),
		Closes: make([]float64, 0, len(dates)),
	}
	if meta := resp.MetaData["2. Symbol"]; meta != "" {
		series.Symbol = meta
	}

	for _, d := range dates {
		close, err := strconv.ParseFloat(resp.Series[d]["5. adjusted close"], 64)
		if err != nil || close <= 0 {
			// Skip malformed observations rather than poisoning the series.
			continue
		}
		series.Dates = append(series.Dates, d)
		series.Closes = append(series.Closes, close)
	}

	if series.Len() == 0 {
		return nil, helpers.Errorf(helpers.KindNotFound,
			"alpha vantage returned no usable closes for %s", symbol)
	}
	return series, nil
}
