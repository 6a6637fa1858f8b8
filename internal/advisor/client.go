// Package advisor provides a client for the external text-completion
// advisory service. The service is an opaque collaborator: it consumes a
// prompt plus a serialized snapshot of the user's finances and returns free
// text, or JSON for the structured extraction use cases. Failures and
// unparseable responses degrade to empty values; they never crash a caller.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/finchapp/finch/internal/model"
	"go.uber.org/zap"
)

const (
	defaultTimeout = 30 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

// ErrUnavailable indicates no advisor is configured.
var ErrUnavailable = errors.New("advisor: not configured")

// Config holds the advisory service connection settings.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client calls the advisory service.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *zap.Logger
}

// NewClient creates a client for the given configuration. Returns nil when
// no base URL is configured; a nil client degrades every call to its empty
// result.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		return nil
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{cfg: cfg, http: &http.Client{}, logger: logger}
}

// Advise sends a free-form prompt with the health snapshot and chat history
// and returns the advisory text. Any failure returns an empty string.
func (c *Client) Advise(ctx context.Context, prompt string, snapshot model.FinancialHealth, history []Message) string {
	if c == nil {
		return ""
	}

	contextBlob, err := json.Marshal(snapshot)
	if err != nil {
		return ""
	}

	text, err := c.complete(ctx, completionRequest{
		Model:   c.cfg.Model,
		Prompt:  prompt,
		Context: string(contextBlob),
		History: history,
	})
	if err != nil {
		c.logger.Warn("advisory call failed",
			zap.String("op", "advisor.Advise"),
			zap.Error(err),
		)
		return ""
	}
	return text
}

// ScanBill asks the service to extract structured bill fields from raw
// document text. Returns nil on any failure or unparseable response.
func (c *Client) ScanBill(ctx context.Context, text string) *model.BillScanResult {
	var result model.BillScanResult
	if !c.extract(ctx, "advisor.ScanBill",
		"Extract the biller, amount, due date (YYYY-MM-DD), tax deductibility, and a one-line summary from this bill. Respond with a single JSON object with keys biller, amount, dueDate, isTaxDeductible, summary.",
		text, &result) {
		return nil
	}
	if result.Biller == "" && result.Amount == 0 {
		return nil
	}
	return &result
}

// ExtractTransactions asks the service to parse and categorize transactions
// from raw statement text. Returns nil on any failure.
func (c *Client) ExtractTransactions(ctx context.Context, text string) []model.Transaction {
	var txs []model.Transaction
	if !c.extract(ctx, "advisor.ExtractTransactions",
		"Extract every transaction from this statement. Respond with a JSON array of objects with keys date (YYYY-MM-DD), description, amount, category.",
		text, &txs) {
		return nil
	}
	return txs
}

// DetectSubscriptions asks the service to identify recurring subscriptions
// in raw statement text. Returns nil on any failure.
func (c *Client) DetectSubscriptions(ctx context.Context, text string) []model.Subscription {
	var subs []model.Subscription
	if !c.extract(ctx, "advisor.DetectSubscriptions",
		"Identify recurring subscriptions in this statement. Respond with a JSON array of objects with keys name, amount, cycle (WEEKLY, FORTNIGHTLY, MONTHLY, QUARTERLY, YEARLY), category.",
		text, &subs) {
		return nil
	}
	return subs
}

// extract runs a structured-extraction prompt and unmarshals the response
// JSON into v. Parse failures are soft: logged and reported as false.
func (c *Client) extract(ctx context.Context, op, prompt, text string, v interface{}) bool {
	if c == nil {
		return false
	}

	raw, err := c.complete(ctx, completionRequest{
		Model:   c.cfg.Model,
		Prompt:  prompt,
		Context: text,
	})
	if err != nil {
		c.logger.Warn("advisory extraction failed",
			zap.String("op", op),
			zap.Error(err),
		)
		return false
	}

	payload := stripFences(raw)
	if payload == "" {
		return false
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		c.logger.Warn("advisory response did not parse",
			zap.String("op", op),
			zap.Error(err),
		)
		return false
	}
	return true
}

// complete performs one request against the completion endpoint.
func (c *Client) complete(ctx context.Context, reqBody completionRequest) (string, error) {
	if c == nil {
		return "", ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("advisor: encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v1/complete", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("advisor: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("advisor: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("advisor: unexpected status %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("advisor: reading response: %w", err)
	}

	var parsed completionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("advisor: parsing response: %w", err)
	}
	return parsed.Text, nil
}

// stripFences removes a surrounding markdown code fence, if present, and
// trims to the outermost JSON delimiters.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.IndexAny(s, "[{")
	if start < 0 {
		return ""
	}
	end := strings.LastIndexAny(s, "]}")
	if end < start {
		return ""
	}
	return s[start : end+1]
}
