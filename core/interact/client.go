package interact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/koscakluka/vf-runtime-client/core/state"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const DefaultEndpoint = "https://general-runtime.voiceflow.com"

const maxErrorBodySize = 4 << 10

// StatusError is returned when the endpoint replies with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("non-OK HTTP status: %s", e.Status)
	}
	return fmt.Sprintf("non-OK HTTP status: %s: %s", e.Status, e.Body)
}

// Client talks to the interaction endpoint of a single version.
type Client struct {
	endpoint  string
	versionID string
	apiKey    string
	headers   http.Header

	httpClient *http.Client
}

type ClientOption func(*Client)

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithAPIKey sends key in the Authorization header of every request.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) { c.apiKey = key }
}

func WithHeader(key, value string) ClientOption {
	return func(c *Client) { c.headers.Add(key, value) }
}

func NewClient(endpoint, versionID string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint:  strings.TrimRight(endpoint, "/"),
		versionID: versionID,
		headers:   http.Header{},
	}
	if c.endpoint == "" {
		c.endpoint = DefaultEndpoint
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport,
			otelhttp.WithSpanNameFormatter(func(operationName string, request *http.Request) string {
				return operationName + " " + request.URL.Path
			}),
		)}
	}
	return c
}

// InitialState fetches the state a new conversation starts from.
func (c *Client) InitialState(ctx context.Context) (*state.State, error) {
	ctx, span := tracer.Start(ctx, "fetch initial state")
	defer span.End()
	span.SetAttributes(attribute.String("request.version_id", c.versionID))

	endpoint, err := url.JoinPath(c.endpoint, "interact", c.versionID, "state")
	if err != nil {
		err = fmt.Errorf("error building state URL: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var initial state.State
	if err := c.do(ctx, span, http.MethodGet, endpoint, nil, &initial); err != nil {
		return nil, err
	}
	return &initial, nil
}

// Interact sends one interaction and returns the runtime's reply.
func (c *Client) Interact(ctx context.Context, body RequestContext) (*ResponseContext, error) {
	ctx, span := tracer.Start(ctx, "interact")
	defer span.End()
	span.SetAttributes(attribute.String("request.version_id", c.versionID))
	if body.Request != nil {
		span.SetAttributes(attribute.String("request.type", string(body.Request.Type)))
	}

	endpoint, err := url.JoinPath(c.endpoint, "interact", c.versionID)
	if err != nil {
		err = fmt.Errorf("error building interact URL: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var response ResponseContext
	if err := c.do(ctx, span, http.MethodPost, endpoint, body, &response); err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("response.trace_count", len(response.Trace)))
	return &response, nil
}

func (c *Client) do(ctx context.Context, span trace.Span, method, endpoint string, body, out any) error {
	fail := func(err error) error {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	var reader io.Reader
	if body != nil {
		requestBodyBytes, err := json.Marshal(body)
		if err != nil {
			return fail(fmt.Errorf("error marshalling JSON: %w", err))
		}
		reader = bytes.NewReader(requestBodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fail(fmt.Errorf("error creating HTTP request: %w", err))
	}
	for key, values := range c.headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	span.SetAttributes(attribute.String("request.url", req.URL.String()))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fail(fmt.Errorf("error sending request: %w", err))
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("response.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
		if errorBody, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize)); err == nil {
			statusErr.Body = strings.TrimSpace(string(errorBody))
		}
		logger.WarnContext(ctx, "interaction endpoint returned an error",
			"url", endpoint,
			"status", resp.StatusCode,
		)
		return fail(statusErr)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fail(fmt.Errorf("error unmarshalling JSON: %w", err))
	}
	return nil
}
