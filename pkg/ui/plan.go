package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bindle-dev/bindle/pkg/rules"
	"github.com/charmbracelet/lipgloss"
)

var (
	pathStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#1a1a8c", Dark: "#8cb4ff"})

	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#006400", Dark: "#73d893"})

	optionStyle = lipgloss.NewStyle().
			Faint(true)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff6b6b"})
)

// RenderError formats a fatal error for stderr
func RenderError(err error, format Format) string {
	msg := fmt.Sprintf("Error: %v", err)
	if Detect(format) == FormatTerminal {
		return errorStyle.Render(msg)
	}
	return msg
}

// RenderPlan renders the resolved pipeline for one path
func RenderPlan(path string, plan []rules.ResolvedStep, format Format) string {
	var b strings.Builder

	if Detect(format) == FormatTerminal {
		b.WriteString(pathStyle.Render(path))
	} else {
		b.WriteString(path)
	}
	b.WriteString("\n")

	for i, step := range plan {
		b.WriteString(fmt.Sprintf("  %d. ", i+1))
		if Detect(format) == FormatTerminal {
			b.WriteString(stepStyle.Render(step.Name))
		} else {
			b.WriteString(step.Name)
		}
		if opts := renderOptions(step.Options); opts != "" {
			b.WriteString(" ")
			if Detect(format) == FormatTerminal {
				b.WriteString(optionStyle.Render(opts))
			} else {
				b.WriteString(opts)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderOptions renders step options as a stable, compact key=value list
func renderOptions(opts map[string]interface{}) string {
	if len(opts) == 0 {
		return ""
	}

	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, opts[k]))
	}
	return "(" + strings.Join(parts, " ") + ")"
}
