package currency

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// PopularCurrencies is offered when the currency list cannot be fetched
var PopularCurrencies = []string{
	"USD", "EUR", "GBP", "CNY", "JPY", "INR", "PKR", "BDT", "LKR", "NPR", "IDR", "MYR", "THB", "VND", "PHP", "KHR", "LAK", "MMK",
	"BRL", "ARS", "CLP", "COP", "PEN", "UYU", "BOB", "PYG", "VES", "MXN", "GTQ", "HNL", "NIO", "CRC", "DOP", "JMD", "TTD",
	"ZAR", "NGN", "EGP", "MAD", "TND", "KES", "UGX", "TZS", "RWF", "ETB", "GHS", "XOF", "XAF",
	"TRY", "IRR", "ILS", "JOD", "LBP", "SYP", "IQD", "KZT", "UZS", "KGS", "TJS", "TMT", "AFN",
	"RUB", "UAH", "BYN", "MDL", "GEL", "AMD", "AZN", "KRW", "TWD", "HKD", "SGD", "MNT",
	"AUD", "CAD", "CHF", "SEK", "NOK", "DKK", "NZD",
}

// Conversion is the result of converting Amount units of one currency
type Conversion struct {
	Amount float64 // converted amount
	Rate   float64 // units of the target currency per unit of the source
	Date   string  // date of the rates, as reported by the provider
}

// Client queries a Frankfurter-compatible exchange rate API
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a rate client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Currencies returns the sorted currency codes the provider supports. On any
// failure it returns a copy of PopularCurrencies together with the error.
func (c *Client) Currencies(ctx context.Context) ([]string, error) {
	data, err := c.get(ctx, "/currencies", nil)
	if err != nil {
		return fallback(), err
	}

	parsed := gjson.ParseBytes(data)
	if !parsed.IsObject() {
		return fallback(), fmt.Errorf("currencies: unexpected response")
	}
	var codes []string
	parsed.ForEach(func(key, _ gjson.Result) bool {
		codes = append(codes, key.String())
		return true
	})
	if len(codes) == 0 {
		return fallback(), fmt.Errorf("currencies: empty response")
	}
	sort.Strings(codes)
	return codes, nil
}

// Convert converts amount from one currency to another. Converting a
// currency to itself needs no request.
func (c *Client) Convert(ctx context.Context, amount float64, from, to string) (Conversion, error) {
	if amount < 0 {
		return Conversion{}, fmt.Errorf("convert: negative amount %v", amount)
	}
	if from == to {
		return Conversion{Amount: amount, Rate: 1}, nil
	}

	q := url.Values{
		"amount": {strconv.FormatFloat(amount, 'f', -1, 64)},
		"from":   {from},
		"to":     {to},
	}
	data, err := c.get(ctx, "/latest", q)
	if err != nil {
		return Conversion{}, err
	}

	rate := gjson.GetBytes(data, "rates."+to)
	if !rate.Exists() {
		return Conversion{}, fmt.Errorf("convert: no rate for %s in response", to)
	}
	conv := Conversion{
		Amount: rate.Float(),
		Date:   gjson.GetBytes(data, "date").String(),
	}
	if amount != 0 {
		conv.Rate = conv.Amount / amount
	}
	return conv, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode)
	}
	return data, nil
}

func fallback() []string {
	out := make([]string, len(PopularCurrencies))
	copy(out, PopularCurrencies)
	return out
}
