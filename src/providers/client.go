package providers

import (
	"time"

	"investment-outlook/src/models"

	"github.com/go-resty/resty/v2"
)

// -----------------------------------------------------------------------------

// newRestyClient builds the HTTP client both providers share: one attempt per
// request, fail fast on timeout, optional custom user agent.
func newRestyClient(baseURL string, net models.MNetworkConfig) *resty.Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(time.Duration(net.RequestTimeout) * time.Second)
	client.SetRetryCount(0)
	if net.UserAgent != "" {
		client.SetHeader("User-Agent", net.UserAgent)
	}
	return client
}
