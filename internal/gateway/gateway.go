// Package gateway forwards a single prompt to the Gemini REST API and hands
// back raw generated text. It is a pass-through: it does not interpret the
// prompt, attempts no retries, and surfaces upstream failures with whatever
// detail the provider supplied.
package gateway

import (
	"context"
	"fmt"
	"net"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fireplan-nl/fireplan/internal/config"
)

// Category classifies a gateway failure for user-facing guidance.
type Category string

const (
	CategoryTimeout     Category = "timeout"
	CategoryUnreachable Category = "unreachable"
	CategoryUpstream    Category = "upstream"
	CategoryOther       Category = "other"
)

// Error is a categorized gateway failure. Detail carries the provider's raw
// error body for upstream HTTP failures and is otherwise empty.
type Error struct {
	Category Category
	Message  string
	Detail   string
}

func (e *Error) Error() string {
	return e.Message
}

// Client calls the Gemini generateContent endpoint.
type Client struct {
	http     *fasthttp.Client
	endpoint string
	model    string
	apiKey   string
	timeout  time.Duration
	logger   *zap.Logger
}

// NewClient constructs a gateway client from the Gemini configuration.
func NewClient(cfg config.GeminiConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		http:     &fasthttp.Client{},
		endpoint: cfg.Endpoint,
		model:    cfg.Model,
		apiKey:   cfg.APIKey,
		timeout:  cfg.Timeout(),
		logger:   logger,
	}
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

// Generate sends the prompt upstream and returns the extracted text. The call
// is bounded by the configured upstream timeout (or an earlier context
// deadline); once it fires the attempt is over — cancellation is advisory
// only and nothing is retried.
func (c *Client) Generate(ctx context.Context, promptText string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &Error{Category: CategoryTimeout, Message: "The AI request was cancelled before it started. Please try again."}
	}

	body, err := json.Marshal(generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: promptText}}}},
	})
	if err != nil {
		return "", &Error{Category: CategoryOther, Message: fmt.Sprintf("failed to encode provider request: %v", err)}
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.endpoint, c.model))
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)
	req.SetBody(body)

	start := time.Now()
	err = c.http.DoTimeout(req, resp, c.effectiveTimeout(ctx))
	elapsed := time.Since(start)

	if err != nil {
		c.logger.Error("upstream call failed",
			zap.String("op", "gateway.Generate"),
			zap.Duration("duration", elapsed),
			zap.Error(err),
		)
		return "", classify(err)
	}

	status := resp.StatusCode()
	payload := append([]byte(nil), resp.Body()...)

	if status < 200 || status > 299 {
		c.logger.Error("upstream returned error status",
			zap.String("op", "gateway.Generate"),
			zap.Int("status", status),
			zap.Duration("duration", elapsed),
		)
		return "", &Error{
			Category: CategoryUpstream,
			Message:  upstreamMessage(payload, status),
			Detail:   string(payload),
		}
	}

	c.logger.Info("upstream call completed",
		zap.String("op", "gateway.Generate"),
		zap.Int("status", status),
		zap.Duration("duration", elapsed),
	)

	return ExtractText(payload), nil
}

// effectiveTimeout is the configured budget, shortened if the caller's
// context expires earlier.
func (c *Client) effectiveTimeout(ctx context.Context) time.Duration {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	return timeout
}

func classify(err error) *Error {
	switch {
	case err == fasthttp.ErrTimeout || err == fasthttp.ErrDialTimeout || err == fasthttp.ErrTLSHandshakeTimeout:
		return &Error{Category: CategoryTimeout, Message: "The AI request timed out. Please try again."}
	default:
		if _, ok := err.(net.Error); ok {
			return &Error{Category: CategoryUnreachable, Message: "Could not reach the AI service. Check your connection and try again."}
		}
		return &Error{Category: CategoryUnreachable, Message: "Could not reach the AI service. Check your connection and try again.", Detail: err.Error()}
	}
}

// upstreamMessage pulls a human-readable message out of a provider error
// body, falling back to the HTTP status.
func upstreamMessage(payload []byte, status int) string {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(payload, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	return fmt.Sprintf("AI service returned status %d", status)
}
