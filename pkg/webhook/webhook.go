// Package webhook posts analysis reports to HTTP endpoints.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ccollicutt/flightcheck/internal/ctxlog"
	"github.com/ccollicutt/flightcheck/pkg/config"
	"github.com/ccollicutt/flightcheck/pkg/output"
)

const userAgent = "flightcheck-webhook"

// maxResponseBody bounds how much of a reply is kept.
const maxResponseBody = 1024 * 1024

// Client sends analysis reports to webhook endpoints.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new webhook client.
func NewClient() *Client {
	return &Client{httpClient: &http.Client{}}
}

// Response contains the result of one delivery.
type Response struct {
	Target     string
	StatusCode int
	Body       string
	Duration   time.Duration
	Error      error
}

// Success returns true if the webhook answered with a 2xx status.
func (r *Response) Success() bool {
	return r.Error == nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// Send posts report as JSON to hook.URL.
func (c *Client) Send(ctx context.Context, report *output.Report, hook config.WebhookConfig) *Response {
	start := time.Now()
	resp := &Response{Target: hook.Name}
	if resp.Target == "" {
		resp.Target = hook.URL
	}
	fail := func(err error) *Response {
		resp.Error = err
		resp.Duration = time.Since(start)
		return resp
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return fail(fmt.Errorf("marshaling report: %w", err))
	}

	timeout := hook.Timeout
	if timeout <= 0 {
		timeout = config.DefaultWebhookTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, hook.URL, bytes.NewReader(payload))
	if err != nil {
		return fail(fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Flightcheck-Report", report.ID)
	if hook.Token != "" {
		req.Header.Set("Authorization", "Bearer "+hook.Token)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return fail(fmt.Errorf("request failed: %w", err))
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBody))
	if err != nil {
		return fail(fmt.Errorf("reading response: %w", err))
	}

	resp.StatusCode = httpResp.StatusCode
	resp.Body = string(body)
	resp.Duration = time.Since(start)
	if resp.StatusCode >= 400 {
		resp.Error = fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return resp
}

// Notify sends report to every hook whose trigger matches. Failures are
// logged and returned but never abort the remaining deliveries.
func (c *Client) Notify(ctx context.Context, hooks []config.WebhookConfig, report *output.Report) []*Response {
	log := ctxlog.FromContext(ctx)
	var responses []*Response

	for _, hook := range hooks {
		if !hook.ShouldFire(report.HasIssues()) {
			continue
		}
		resp := c.Send(ctx, report, hook)
		if resp.Success() {
			log.Info("webhook sent", "target", resp.Target, "status", resp.StatusCode, "duration", resp.Duration)
		} else {
			log.Warn("webhook failed", "target", resp.Target, "error", resp.Error)
		}
		responses = append(responses, resp)
	}

	return responses
}
