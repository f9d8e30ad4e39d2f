package price_ingestion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	pricefeed_errors "pricefeed/internal"
	"pricefeed/internal/domain"
	"pricefeed/internal/util"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

const (
	indexPriceAction = "get_index_price"
	maxResponseBytes = 1 << 20

	indexPricePath  = "result.index_price"
	requestTimePath = "usIn"
)

// DeribitClient reads index prices from Deribit's public JSON-RPC over HTTP API.
type DeribitClient struct {
	HttpClient *http.Client
	BaseUrl    string
}

func NewDeribitClient(cfg util.DeribitConfig) DeribitClient {
	return DeribitClient{
		HttpClient: &http.Client{Timeout: cfg.Timeout},
		BaseUrl:    strings.TrimRight(cfg.BaseUrl, "/"),
	}
}

func (c DeribitClient) indexPriceUrl(ticker string) string {
	q := url.Values{}
	q.Set("index_name", ticker)
	return fmt.Sprintf("%s/%s?%s", c.BaseUrl, indexPriceAction, q.Encode())
}

func (c DeribitClient) GetIndexPrice(ctx context.Context, ticker string) (*domain.IndexPrice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.indexPriceUrl(ticker), nil)
	if err != nil {
		return nil, pricefeed_errors.ErrNetwork{Ticker: ticker, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, pricefeed_errors.ErrNetwork{Ticker: ticker, Err: err}
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return nil, pricefeed_errors.ErrNetwork{Ticker: ticker, StatusCode: response.StatusCode, Err: err}
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, pricefeed_errors.ErrNetwork{
			Ticker:     ticker,
			StatusCode: response.StatusCode,
			Err:        errors.New(upstreamErrorMessage(responseBytes, response.Status)),
		}
	}

	return parseIndexPrice(ticker, responseBytes)
}

func parseIndexPrice(ticker string, body []byte) (*domain.IndexPrice, error) {
	if !gjson.ValidBytes(body) {
		return nil, pricefeed_errors.ErrParse{Ticker: ticker, Err: errors.New("response is not valid JSON")}
	}

	parsed := gjson.ParseBytes(body)
	if rpcErr := parsed.Get("error"); rpcErr.Exists() {
		return nil, pricefeed_errors.ErrParse{
			Ticker: ticker,
			Err:    fmt.Errorf("upstream returned error: %s", rpcErr.Raw),
		}
	}

	priceField := parsed.Get(indexPricePath)
	if err := requireNumber(priceField); err != nil {
		return nil, pricefeed_errors.ErrParse{Ticker: ticker, Field: indexPricePath, Err: err}
	}
	price, err := decimal.NewFromString(priceField.Raw)
	if err != nil {
		return nil, pricefeed_errors.ErrParse{Ticker: ticker, Field: indexPricePath, Err: err}
	}
	if price.IsNegative() {
		return nil, pricefeed_errors.ErrParse{Ticker: ticker, Field: indexPricePath, Err: fmt.Errorf("negative price %s", price)}
	}

	usInField := parsed.Get(requestTimePath)
	if err := requireNumber(usInField); err != nil {
		return nil, pricefeed_errors.ErrParse{Ticker: ticker, Field: requestTimePath, Err: err}
	}
	observedAt, err := strconv.ParseInt(usInField.Raw, 10, 64)
	if err != nil {
		return nil, pricefeed_errors.ErrParse{Ticker: ticker, Field: requestTimePath, Err: err}
	}

	return &domain.IndexPrice{
		Ticker:           ticker,
		Price:            price.Round(domain.PriceScale),
		ObservedAtMicros: observedAt,
	}, nil
}

func requireNumber(r gjson.Result) error {
	if !r.Exists() {
		return errors.New("field is missing")
	}
	if r.Type != gjson.Number {
		return fmt.Errorf("expected a number, got %s", r.Raw)
	}
	return nil
}

func upstreamErrorMessage(body []byte, status string) string {
	if msg := gjson.GetBytes(body, "error.message"); msg.Exists() {
		return msg.String()
	}
	return status
}
