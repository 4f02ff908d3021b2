package currency

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateServer(t *testing.T, currencies string, calls *int) *httptest.Server {
	t.Helper()
	r := mux.NewRouter()
	r.HandleFunc("/currencies", func(w http.ResponseWriter, _ *http.Request) {
		if currencies == "" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		_, _ = io.WriteString(w, currencies)
	})
	r.HandleFunc("/latest", func(w http.ResponseWriter, req *http.Request) {
		*calls++
		q := req.URL.Query()
		assert.Equal(t, "10", q.Get("amount"))
		assert.Equal(t, "USD", q.Get("from"))
		_, _ = io.WriteString(w, `{"amount":10.0,"base":"USD","date":"2025-03-14","rates":{"`+q.Get("to")+`":9.25}}`)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestCurrenciesSorted(t *testing.T) {
	calls := 0
	srv := newRateServer(t, `{"USD":"United States Dollar","EUR":"Euro","AUD":"Australian Dollar"}`, &calls)
	c := NewClient(srv.URL, 5*time.Second)

	codes, err := c.Currencies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"AUD", "EUR", "USD"}, codes)
}

func TestCurrenciesFallback(t *testing.T) {
	calls := 0
	srv := newRateServer(t, "", &calls)
	c := NewClient(srv.URL, 5*time.Second)

	codes, err := c.Currencies(context.Background())
	require.Error(t, err, "Failure should still be reported for logging")
	assert.Equal(t, PopularCurrencies, codes)

	codes[0] = "XXX"
	assert.Equal(t, "USD", PopularCurrencies[0], "Fallback must be a copy")
}

func TestConvert(t *testing.T) {
	calls := 0
	srv := newRateServer(t, "{}", &calls)
	c := NewClient(srv.URL, 5*time.Second)

	conv, err := c.Convert(context.Background(), 10, "USD", "EUR")
	require.NoError(t, err)
	assert.InDelta(t, 9.25, conv.Amount, 1e-9)
	assert.InDelta(t, 0.925, conv.Rate, 1e-9)
	assert.Equal(t, "2025-03-14", conv.Date)
	assert.Equal(t, 1, calls)
}

func TestConvertSameCurrency(t *testing.T) {
	calls := 0
	srv := newRateServer(t, "{}", &calls)
	c := NewClient(srv.URL, 5*time.Second)

	conv, err := c.Convert(context.Background(), 42, "JPY", "JPY")
	require.NoError(t, err)
	assert.Equal(t, Conversion{Amount: 42, Rate: 1}, conv)
	assert.Zero(t, calls, "Same-currency conversion must not hit the network")
}

func TestConvertNegative(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", time.Second)
	_, err := c.Convert(context.Background(), -1, "USD", "EUR")
	assert.Error(t, err)
}
