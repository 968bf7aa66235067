package whatsapp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"Backend-EvalApp/src/models"
)

// Fonnte expects Indonesian numbers; the country code is a fixed literal.
const countryCode = "62"

// Sender dispatches one WhatsApp message. The trigger depends on this
// interface so tests can assert dispatch calls synchronously.
type Sender interface {
	Send(ctx context.Context, cfg models.AppSettings, target, message string) error
}

// Client is a thin adapter over the Fonnte send API: a form-encoded POST
// with the API key in the Authorization header, answered by a JSON body
// whose status field signals acceptance.
type Client struct {
	HTTP *http.Client
}

func NewClient() *Client {
	return &Client{HTTP: &http.Client{Timeout: 30 * time.Second}}
}

func (c *Client) Send(ctx context.Context, cfg models.AppSettings, target, message string) error {
	form := url.Values{}
	form.Set("target", target)
	form.Set("message", message)
	form.Set("countryCode", countryCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.WaBaseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", cfg.WaAPIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode gateway reply: %w", err)
	}

	if !statusOK(body["status"]) {
		return fmt.Errorf("gateway rejected message: %v", body)
	}
	return nil
}

// statusOK interprets the boolean-ish status field of the gateway reply.
func statusOK(v interface{}) bool {
	switch s := v.(type) {
	case bool:
		return s
	case string:
		return strings.EqualFold(s, "true")
	case float64:
		return s != 0
	default:
		return false
	}
}
