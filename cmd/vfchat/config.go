package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	runtimeclient "github.com/koscakluka/vf-runtime-client/core"
	"github.com/koscakluka/vf-runtime-client/core/interact"
	"github.com/koscakluka/vf-runtime-client/core/trace"
)

type config struct {
	VersionID    string   `env:"VF_VERSION_ID"`
	Endpoint     string   `env:"VF_ENDPOINT"`
	APIKey       string   `env:"VF_API_KEY"`
	TTS          bool     `env:"VF_TTS"`
	SSML         bool     `env:"VF_SSML"`
	IncludeTypes []string `env:"VF_INCLUDE_TYPES" envSeparator:","`
}

// loadConfig reads the environment after loading envFile. A missing env file
// is not an error.
func loadConfig(envFile string) (config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return config{}, fmt.Errorf("failed to load env file %q: %w", envFile, err)
		}
	}

	cfg := config{Endpoint: interact.DefaultEndpoint}
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

func (c config) appConfig() (runtimeclient.Config, error) {
	if c.VersionID == "" {
		return runtimeclient.Config{}, errors.New("a version ID is required, set VF_VERSION_ID or --version-id")
	}

	includeTypes := make([]trace.Type, 0, len(c.IncludeTypes))
	for _, name := range c.IncludeTypes {
		traceType := trace.Type(name)
		if !traceType.IsKnown() {
			return runtimeclient.Config{}, fmt.Errorf("unknown trace type %q in include types", name)
		}
		includeTypes = append(includeTypes, traceType)
	}

	return runtimeclient.Config{
		VersionID: c.VersionID,
		Endpoint:  c.Endpoint,
		DataConfig: runtimeclient.DataConfig{
			TTS:          c.TTS,
			SSML:         c.SSML,
			IncludeTypes: includeTypes,
		},
	}, nil
}
