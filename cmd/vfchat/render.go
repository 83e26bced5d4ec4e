package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	runtimeclient "github.com/koscakluka/vf-runtime-client/core"
	"github.com/koscakluka/vf-runtime-client/core/dispatch"
	"github.com/koscakluka/vf-runtime-client/core/trace"
	"github.com/muesli/reflow/wordwrap"
)

var (
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true)
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	choiceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("31"))
	endStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("35")).Italic(true)
)

const defaultWidth = 80

// newTraceRenderer renders every trace type as a single block of text
// wrapped to width.
func newTraceRenderer(width int) dispatch.TraceProcessor[string] {
	if width <= 0 {
		width = defaultWidth
	}
	wrap := func(text string) string { return wordwrap.String(text, width) }

	return dispatch.NewTraceProcessor(dispatch.Handlers[string]{
		Speak: dispatch.SpeakHandlerMap[string]{
			HandleSpeech: func(message, _ string) string {
				return assistantStyle.Render(wrap(message))
			},
			HandleAudio: func(_, src string) string {
				return dimStyle.Render(wrap("audio: " + src))
			},
		},
		Choice: func(choices []trace.Choice) string {
			options := make([]string, 0, len(choices))
			for i, choice := range choices {
				options = append(options, fmt.Sprintf("[%d] %s", i+1, choice.Name))
			}
			return choiceStyle.Render(wrap(strings.Join(options, "  ")))
		},
		Block: func(blockID string) string {
			return dimStyle.Render("block " + blockID)
		},
		Flow: func(diagramID string) string {
			return dimStyle.Render("flow " + diagramID)
		},
		Debug: func(message string) string {
			return dimStyle.Render(wrap("debug: " + message))
		},
		Stream: func(src string, action trace.StreamAction, _ string) string {
			return dimStyle.Render(wrap(fmt.Sprintf("stream %s %s", action, src)))
		},
		Visual: func(image string, device trace.DeviceType, dimensions *trace.Dimensions, _ trace.CanvasVisibility) string {
			line := "image " + image
			if dimensions != nil {
				line += fmt.Sprintf(" (%dx%d)", dimensions.Width, dimensions.Height)
			}
			if device != "" {
				line += " on " + string(device)
			}
			return dimStyle.Render(wrap(line))
		},
		End: func() string {
			return endStyle.Render("conversation ended")
		},
	})
}

// renderResponse renders the response of conversation. Traces the renderer
// fails on are shown as errors and do not stop the rest of the response.
func renderResponse(render dispatch.TraceProcessor[string], conversation *runtimeclient.Context) []string {
	lines := []string{}
	for _, t := range conversation.Response() {
		line, err := render(t)
		if err != nil {
			lines = append(lines, errorStyle.Render(err.Error()))
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
