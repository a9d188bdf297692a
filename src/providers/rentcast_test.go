package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"investment-outlook/src/helpers"
	"investment-outlook/src/models"
)

func newRentCastTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/avm/value" {
			t.Errorf("path = %s, want /avm/value", r.URL.Path)
		}
		if r.Header.Get("X-Api-Key") != "test-key" {
			t.Errorf("X-Api-Key = %q, want test-key", r.Header.Get("X-Api-Key"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func newRentCastSource(baseURL string) *RentCastSource {
	return NewRentCastSource(models.MRentCastConfig{
		BaseURL:   baseURL,
		APIKeyEnv: "RENTCAST_API_KEY",
	}, "test-key", testNetwork(), testLogger())
}

func TestFetchValue_Success(t *testing.T) {
	ts := newRentCastTestServer(t, 200, `{
		"price": 425000,
		"priceRangeLow": 395000,
		"priceRangeHigh": 455000,
		"subjectProperty": {"formattedAddress": "5500 Grand Lake Dr, San Antonio, TX 78244"}
	}`)
	defer ts.Close()

	value, err := newRentCastSource(ts.URL).FetchValue("5500 Grand Lake Dr, San Antonio, TX, 78244")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value.Price != 425000 {
		t.Errorf("price = %.0f, want 425000", value.Price)
	}
	if value.PriceRangeLow != 395000 || value.PriceRangeHigh != 455000 {
		t.Errorf("range = [%.0f, %.0f], want [395000, 455000]", value.PriceRangeLow, value.PriceRangeHigh)
	}
	if value.FormattedAddress != "5500 Grand Lake Dr, San Antonio, TX 78244" {
		t.Errorf("formattedAddress = %q", value.FormattedAddress)
	}
}

func TestFetchValue_UpstreamStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		kind   helpers.Kind
	}{
		{"bad key", 401, helpers.KindProviderUnavailable},
		{"no estimate", 404, helpers.KindNotFound},
		{"rate limited", 429, helpers.KindRateLimited},
		{"upstream failure", 502, helpers.KindProviderUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newRentCastTestServer(t, tt.status, `{}`)
			defer ts.Close()

			_, err := newRentCastSource(ts.URL).FetchValue("1 Main St, Springfield, IL, 62701")
			if err == nil {
				t.Fatal("expected error")
			}
			if helpers.KindOf(err) != tt.kind {
				t.Errorf("kind = %v, want %v (err: %v)", helpers.KindOf(err), tt.kind, err)
			}
		})
	}
}

func TestFetchValue_MissingKey(t *testing.T) {
	source := NewRentCastSource(models.MRentCastConfig{
		BaseURL:   "http://localhost:1",
		APIKeyEnv: "RENTCAST_API_KEY",
	}, "", testNetwork(), testLogger())

	_, err := source.FetchValue("1 Main St, Springfield, IL, 62701")
	if helpers.KindOf(err) != helpers.KindProviderUnavailable {
		t.Errorf("kind = %v, want KindProviderUnavailable", helpers.KindOf(err))
	}
}

func TestFetchValue_EmptyAddress(t *testing.T) {
	source := newRentCastSource("http://localhost:1")
	_, err := source.FetchValue("   ")
	if helpers.KindOf(err) != helpers.KindInvalidInput {
		t.Errorf("kind = %v, want KindInvalidInput", helpers.KindOf(err))
	}
}
