package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"coinmind/internal/domain"
)

// Placeholder and failure texts shown instead of advice or tips
const (
	NoAdvice     = "No advice available."
	AdviceFailed = "Failed to fetch financial analysis."
	NoTip        = "No tip available."
	TipFailed    = "Failed to fetch financial tip."
)

// Advice output formats
const (
	FormatText  = "text"
	FormatAudio = "audio"
)

type adviceRequest struct {
	Days         int    `json:"days"`
	OutputFormat string `json:"output_format"`
	UserUUID     string `json:"user_uuid"`
}

// FinancialAdvice asks the backend to analyse the last days of transactions.
// Failures are reported both as the returned error and as Advice.Error so the
// caller can render the result without inspecting err.
func (c *Client) FinancialAdvice(ctx context.Context, days int) (domain.Advice, error) {
	data, err := c.advice(ctx, days, FormatText)
	if err != nil {
		return domain.Advice{Text: AdviceFailed, Error: AdviceFailed}, err
	}

	text := NormalizeText(gjson.GetBytes(data, "advice").String())
	if strings.TrimSpace(text) == "" {
		return domain.Advice{Text: NoAdvice}, nil
	}
	return domain.Advice{Text: text}, nil
}

// FinancialAdviceAudio returns the spoken analysis as raw audio bytes
func (c *Client) FinancialAdviceAudio(ctx context.Context, days int) ([]byte, error) {
	return c.advice(ctx, days, FormatAudio)
}

func (c *Client) advice(ctx context.Context, days int, format string) ([]byte, error) {
	id, err := c.userID(ctx)
	if err != nil {
		return nil, err
	}
	r, err := jsonRequest("Fetch financial analysis", http.MethodPost, "/api/advice",
		adviceRequest{Days: days, OutputFormat: format, UserUUID: id.String()})
	if err != nil {
		return nil, err
	}
	return c.do(ctx, r)
}

// FinancialTip fetches one short tip
func (c *Client) FinancialTip(ctx context.Context) (domain.Tip, error) {
	data, err := c.do(ctx, request{op: "Fetch financial tip", method: http.MethodPost, path: "/api/tip"})
	if err != nil {
		return domain.Tip{Text: TipFailed, Error: TipFailed}, err
	}

	text := NormalizeText(gjson.GetBytes(data, "tip").String())
	if strings.TrimSpace(text) == "" {
		return domain.Tip{Text: NoTip}, nil
	}
	return domain.Tip{Text: text}, nil
}

// NormalizeText turns literal "\n" sequences into newlines. Text that both
// starts and ends with the same quote character loses those quotes and the
// whitespace inside them; anything else is returned as is.
func NormalizeText(s string) string {
	s = strings.ReplaceAll(s, `\n`, "\n")
	for _, q := range []string{`"`, "'"} {
		if strings.HasPrefix(s, q) && strings.HasSuffix(s, q) {
			if len(s) < 2 {
				return ""
			}
			return strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}
