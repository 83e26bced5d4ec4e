package runtimeclient

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/koscakluka/vf-runtime-client/core/interact"
	"github.com/koscakluka/vf-runtime-client/core/state"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

var (
	ErrMissingVersionID  = errors.New("versionID is required")
	ErrNotStarted        = errors.New("conversation has not been started")
	ErrConversationEnded = errors.New("conversation has ended")
)

// App runs a single conversation against the runtime. Calls are serialized;
// only one interaction is in flight at a time.
type App struct {
	mu sync.Mutex

	sessionID     string
	config        Config
	clientOptions []interact.ClientOption
	interactor    Interactor

	initialState *state.State
	current      *Context
}

func NewApp(config Config, opts ...AppOption) (*App, error) {
	if config.VersionID == "" {
		return nil, ErrMissingVersionID
	}

	app := &App{
		sessionID: uuid.NewString(),
		config:    config,
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.interactor == nil {
		app.interactor = interact.NewClient(config.Endpoint, config.VersionID, app.clientOptions...)
	}

	return app, nil
}

// SessionID identifies this App in traces and logs.
func (a *App) SessionID() string { return a.sessionID }

// Start launches the conversation from the version's initial state with the
// configured variables. Calling Start again restarts the conversation.
func (a *App) Start(ctx context.Context) (*Context, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.initialState == nil {
		initial, err := a.interactor.InitialState(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch initial state: %w", err)
		}
		a.initialState = initial
	}

	return a.interact(ctx, a.initialState.WithVariables(a.config.Variables), nil)
}

// SendText sends the user's text. Blank text advances the conversation
// without a request.
func (a *App) SendText(ctx context.Context, text string) (*Context, error) {
	if strings.TrimSpace(text) == "" {
		return a.SendRequest(ctx, nil)
	}
	return a.SendRequest(ctx, interact.NewTextRequest(text))
}

func (a *App) SendIntent(ctx context.Context, name string, entities ...interact.Entity) (*Context, error) {
	return a.SendRequest(ctx, interact.NewIntentRequest(name, entities...))
}

// SendRequest continues the conversation from the current state.
func (a *App) SendRequest(ctx context.Context, request *interact.Request) (*Context, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current == nil {
		return nil, ErrNotStarted
	}
	if a.current.IsEnding() {
		return nil, ErrConversationEnded
	}

	return a.interact(ctx, a.current.appState.State.Clone(), request)
}

// Context returns the latest snapshot, nil before Start.
func (a *App) Context() *Context {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

func (a *App) IsEnding() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current != nil && a.current.IsEnding()
}

func (a *App) interact(ctx context.Context, current state.State, request *interact.Request) (*Context, error) {
	ctx, span := tracer.Start(ctx, "app interaction")
	defer span.End()

	requestType := "launch"
	if request != nil {
		requestType = string(request.Type)
	}
	span.SetAttributes(
		attribute.String("session.id", a.sessionID),
		attribute.String("request.type", requestType),
	)

	response, err := a.interactor.Interact(ctx, interact.RequestContext{
		State:   current,
		Request: request,
		Config:  interact.RequestConfig{TTS: a.config.DataConfig.TTS},
	})
	if err == nil && response == nil {
		err = errors.New("empty response")
	}
	if err != nil {
		err = fmt.Errorf("failed to interact: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		interactionCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("request.type", requestType),
			attribute.Bool("error", true),
		))
		return nil, err
	}

	appState := newAppState(response.State, response.Trace)
	a.current = newContext(appState, a.config.DataConfig)

	span.SetAttributes(
		attribute.Int("response.trace_count", len(appState.Trace)),
		attribute.Bool("response.end", appState.End),
	)
	interactionCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("request.type", requestType),
		attribute.Bool("error", false),
	))
	logger.DebugContext(ctx, "interaction completed",
		"session_id", a.sessionID,
		"request_type", requestType,
		"traces", len(appState.Trace),
		"end", appState.End,
	)

	return a.current, nil
}
