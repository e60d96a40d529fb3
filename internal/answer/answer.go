// Package answer talks to the question-answering service. A question is a
// single JSON POST; the reply is the text in the "resposta" field.
package answer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/teacherbob/teacherbob/internal/errors"
	"github.com/teacherbob/teacherbob/internal/logger"
)

// DefaultEndpoint is where the service listens when run locally.
const DefaultEndpoint = "http://127.0.0.1:8000/perguntar"

// maxBodyBytes bounds how much of a response is read.
const maxBodyBytes = 4 << 20

// Question is the request body. Subject and Topic serialize as null when unset.
type Question struct {
	Text    string  `json:"texto"`
	Subject *string `json:"materia"`
	Topic   *string `json:"topico"`
}

// NewQuestion builds a question, mapping empty subject or topic to null.
func NewQuestion(text, subject, topic string) Question {
	q := Question{Text: text}
	if subject != "" {
		q.Subject = &subject
	}
	if topic != "" {
		q.Topic = &topic
	}
	return q
}

// Reply is the success body.
type Reply struct {
	Text string `json:"resposta"`
}

// errorBody is the shape of error responses from the service.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// Asker sends a question and returns the reply text.
type Asker interface {
	Ask(ctx context.Context, q Question) (string, error)
}

// Client is an HTTP Asker.
type Client struct {
	endpoint string
	timeout  time.Duration
	http     *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds each request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient returns a client posting to endpoint.
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		http:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL questions are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Ask posts q and returns the reply text. Any non-2xx status, transport failure
// or undecodable body is returned as an *errors.Error.
func (c *Client) Ask(ctx context.Context, q Question) (string, error) {
	log := logger.WithComponent("answer")

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	payload, err := json.Marshal(q)
	if err != nil {
		return "", errors.E(errors.Op("answer.Ask"), errors.KindInvalid, "cannot encode question", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", errors.E(errors.Op("answer.Ask"), errors.KindInvalid, "cannot build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	log.Debug("sending question", "endpoint", c.endpoint, "subject", deref(q.Subject), "topic", deref(q.Topic), "chars", len(q.Text))

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			log.Warn("question timed out", "endpoint", c.endpoint, "after", time.Since(start))
			return "", errors.AnswerTimeout(c.endpoint, err)
		}
		log.Error("request failed", "endpoint", c.endpoint, "error", err)
		return "", errors.AnswerRequestFailed(c.endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		log.Error("reading response failed", "status", resp.StatusCode, "error", err)
		return "", errors.AnswerRequestFailed(c.endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := parseDetail(body)
		log.Warn("service returned an error", "status", resp.StatusCode, "detail", detail)
		return "", errors.AnswerStatus(resp.StatusCode, detail)
	}

	var reply struct {
		Text *string `json:"resposta"`
	}
	if err := json.Unmarshal(body, &reply); err != nil {
		log.Error("malformed reply", "error", err)
		return "", errors.AnswerDecodeFailed(err)
	}
	if reply.Text == nil {
		log.Error("reply has no resposta field")
		return "", errors.AnswerDecodeFailed(fmt.Errorf("missing resposta field"))
	}

	log.Info("reply received", "status", resp.StatusCode, "elapsed", time.Since(start), "chars", len(*reply.Text))
	return *reply.Text, nil
}

// parseDetail extracts the "detail" explanation from an error body. It is either
// a string or a structured validation list; the latter is returned as raw JSON.
func parseDetail(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(eb.Detail, &s); err == nil {
		return s
	}
	return string(eb.Detail)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
