package runtimeclient

import (
	"context"
	"net/http"

	"github.com/koscakluka/vf-runtime-client/core/interact"
	"github.com/koscakluka/vf-runtime-client/core/state"
	"github.com/koscakluka/vf-runtime-client/core/trace"
)

type Config struct {
	// VersionID selects the project version to talk to. Required.
	VersionID string
	// Endpoint of the runtime, defaults to interact.DefaultEndpoint.
	Endpoint   string
	DataConfig DataConfig
	// Variables are merged over the initial state's variables on Start.
	Variables map[string]any
}

type DataConfig struct {
	// TTS asks the runtime to synthesize speech for speak traces.
	TTS bool
	// SSML keeps SSML markup in speak messages returned by Context.Response.
	SSML bool
	// IncludeTypes lists trace types returned by Context.Response in
	// addition to speak and end traces.
	IncludeTypes []trace.Type
}

// Interactor performs the round trips to the interaction endpoint.
// *interact.Client is the default implementation.
type Interactor interface {
	InitialState(ctx context.Context) (*state.State, error)
	Interact(ctx context.Context, body interact.RequestContext) (*interact.ResponseContext, error)
}

type AppOption func(*App)

func WithInteractor(interactor Interactor) AppOption {
	return func(a *App) { a.interactor = interactor }
}

// WithHTTPClient is ignored when WithInteractor is used.
func WithHTTPClient(httpClient *http.Client) AppOption {
	return func(a *App) { a.clientOptions = append(a.clientOptions, interact.WithHTTPClient(httpClient)) }
}

// WithAPIKey is ignored when WithInteractor is used.
func WithAPIKey(key string) AppOption {
	return func(a *App) { a.clientOptions = append(a.clientOptions, interact.WithAPIKey(key)) }
}
