package main

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	runtimeclient "github.com/koscakluka/vf-runtime-client/core"
	"github.com/spf13/cobra"
)

func chatCmd(envFile *string) *cobra.Command {
	var overrides config

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive conversation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*envFile)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("version-id") {
				cfg.VersionID = overrides.VersionID
			}
			if flags.Changed("endpoint") {
				cfg.Endpoint = overrides.Endpoint
			}
			if flags.Changed("tts") {
				cfg.TTS = overrides.TTS
			}
			if flags.Changed("ssml") {
				cfg.SSML = overrides.SSML
			}
			if flags.Changed("include") {
				cfg.IncludeTypes = overrides.IncludeTypes
			}

			appConfig, err := cfg.appConfig()
			if err != nil {
				return err
			}

			var opts []runtimeclient.AppOption
			if cfg.APIKey != "" {
				opts = append(opts, runtimeclient.WithAPIKey(cfg.APIKey))
			}
			app, err := runtimeclient.NewApp(appConfig, opts...)
			if err != nil {
				return err
			}

			program := tea.NewProgram(newChatModel(cmd.Context(), app))
			_, err = program.Run()
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&overrides.VersionID, "version-id", "", "version to talk to (VF_VERSION_ID)")
	flags.StringVar(&overrides.Endpoint, "endpoint", "", "runtime endpoint (VF_ENDPOINT)")
	flags.BoolVar(&overrides.TTS, "tts", false, "request synthesized speech (VF_TTS)")
	flags.BoolVar(&overrides.SSML, "ssml", false, "keep SSML markup in messages (VF_SSML)")
	flags.StringSliceVar(&overrides.IncludeTypes, "include", nil, "extra trace types to show (VF_INCLUDE_TYPES)")

	return cmd
}

// conversationApp is the part of *runtimeclient.App the chat model uses.
type conversationApp interface {
	Start(ctx context.Context) (*runtimeclient.Context, error)
	SendText(ctx context.Context, text string) (*runtimeclient.Context, error)
}

type responseMsg struct {
	conversation *runtimeclient.Context
	err          error
}

type chatModel struct {
	ctx context.Context
	app conversationApp

	input   textinput.Model
	spinner spinner.Model

	lines   []string
	width   int
	waiting bool
	ended   bool
}

func newChatModel(ctx context.Context, app conversationApp) chatModel {
	if ctx == nil {
		ctx = context.Background()
	}

	input := textinput.New()
	input.Placeholder = "Say something..."
	input.Prompt = "> "
	input.Focus()

	return chatModel{
		ctx:     ctx,
		app:     app,
		input:   input,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		width:   defaultWidth,
		waiting: true,
	}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.start())
}

func (m chatModel) start() tea.Cmd {
	return func() tea.Msg {
		conversation, err := m.app.Start(m.ctx)
		return responseMsg{conversation: conversation, err: err}
	}
}

func (m chatModel) send(text string) tea.Cmd {
	return func() tea.Msg {
		conversation, err := m.app.SendText(m.ctx, text)
		return responseMsg{conversation: conversation, err: err}
	}
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.waiting || m.ended {
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			m.lines = append(m.lines, userStyle.Render("> "+text))
			m.waiting = true
			return m, tea.Batch(m.spinner.Tick, m.send(text))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(m.input.Prompt) - 1
		return m, nil

	case responseMsg:
		m.waiting = false
		if msg.err != nil {
			m.lines = append(m.lines, errorStyle.Render(msg.err.Error()))
			return m, nil
		}
		m.lines = append(m.lines, renderResponse(newTraceRenderer(m.width), msg.conversation)...)
		if msg.conversation.IsEnding() {
			m.ended = true
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) View() string {
	var b strings.Builder
	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	switch {
	case m.ended:
	case m.waiting:
		b.WriteString(m.spinner.View() + dimStyle.Render(" waiting for the assistant"))
		b.WriteString("\n")
	default:
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	return b.String()
}
