package providers

import (
	"encoding/json"
	"strings"

	"investment-outlook/src/helpers"
	"investment-outlook/src/logger"
	"investment-outlook/src/models"

	"github.com/go-resty/resty/v2"
)

// -----------------------------------------------------------------------------
// RentCastSource
// -----------------------------------------------------------------------------

// RentCastSource fetches point-in-time AVM estimates from the RentCast
// /avm/value endpoint. The free tier allows 50 requests/month.
type RentCastSource struct {
	Config models.MRentCastConfig
	Logger *logger.Logger
	client *resty.Client
	apiKey string
}

// -----------------------------------------------------------------------------

// NewRentCastSource creates the provider. The API key is resolved by the
// caller at startup and passed in explicitly.
func NewRentCastSource(cfg models.MRentCastConfig, apiKey string, net models.MNetworkConfig, log *logger.Logger) *RentCastSource {
	client := newRestyClient(cfg.BaseURL, net)

	return &RentCastSource{
		Config: cfg,
		Logger: log,
		client: client,
		apiKey: apiKey,
	}
}

// -----------------------------------------------------------------------------

func (s *RentCastSource) Name() string {
	return "rentcast"
}

// -----------------------------------------------------------------------------

type rentCastValueResponse struct {
	Price           float64 `json:"price"`
	PriceRangeLow   float64 `json:"priceRangeLow"`
	PriceRangeHigh  float64 `json:"priceRangeHigh"`
	SubjectProperty struct {
		FormattedAddress string `json:"formattedAddress"`
	} `json:"subjectProperty"`
}

// -----------------------------------------------------------------------------

// FetchValue retrieves the current value estimate for a US address in the
// form "Street, City, State, Zip".
func (s *RentCastSource) FetchValue(address string) (*models.MPropertyValue, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, helpers.Errorf(helpers.KindInvalidInput, "missing address")
	}
	if s.apiKey == "" {
		return nil, helpers.Errorf(helpers.KindProviderUnavailable,
			"%s is not set; sign up at https://rentcast.io/ for a key", s.Config.APIKeyEnv)
	}

	resp, err := s.client.R().
		SetHeader("X-Api-Key", s.apiKey).
		SetQueryParam("address", address).
		Get("/avm/value")

	if err != nil {
		return nil, helpers.Wrap(helpers.KindProviderUnavailable, err,
			"rentcast request failed")
	}

	switch resp.StatusCode() {
	case 200:
		// fall through to parse
	case 401:
		return nil, helpers.Errorf(helpers.KindProviderUnavailable,
			"invalid %s or key not activated", s.Config.APIKeyEnv)
	case 404:
		return nil, helpers.Errorf(helpers.KindNotFound,
			"address not found or no value estimate available")
	case 429:
		return nil, helpers.Errorf(helpers.KindRateLimited,
			"rentcast rate limit exceeded (50 free requests/month)")
	default:
		return nil, helpers.Errorf(helpers.KindProviderUnavailable,
			"rentcast returned status %d", resp.StatusCode())
	}

	var parsed rentCastValueResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, helpers.Wrap(helpers.KindProviderUnavailable, err,
			"rentcast response unmarshal failed")
	}

	formatted := parsed.SubjectProperty.FormattedAddress
	if formatted == "" {
		formatted = address
	}

	s.Logger.Info("Valued %q at %.0f", formatted, parsed.Price)

	return &models.MPropertyValue{
		Address:          address,
		FormattedAddress: formatted,
		Price:            parsed.Price,
		PriceRangeLow:    parsed.PriceRangeLow,
		PriceRangeHigh:   parsed.PriceRangeHigh,
	}, nil
}
