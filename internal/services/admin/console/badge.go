package console

import (
	"github.com/fatih/color"
)

type tone int

const (
	toneNeutral tone = iota
	toneGood
	toneWarn
	toneBad
	toneInfo
	toneAccent
)

// palette colours badges when the output is a terminal.
type palette struct {
	enabled bool
	tones   map[tone]*color.Color
	strong  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		enabled: enabled,
		tones: map[tone]*color.Color{
			toneNeutral: color.New(color.FgHiBlack),
			toneGood:    color.New(color.FgGreen),
			toneWarn:    color.New(color.FgYellow),
			toneBad:     color.New(color.FgRed),
			toneInfo:    color.New(color.FgBlue),
			toneAccent:  color.New(color.FgMagenta),
		},
		strong: color.New(color.Bold),
	}
	for _, c := range p.tones {
		setColor(c, enabled)
	}
	setColor(p.strong, enabled)
	return p
}

func setColor(c *color.Color, enabled bool) {
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}

func (p palette) paint(t tone, text string) string {
	return p.tones[t].Sprint(text)
}

func (p palette) badge(t tone, text string) string {
	return p.paint(t, "["+text+"]")
}

func (p palette) red(text string) string  { return p.paint(toneBad, text) }
func (p palette) bold(text string) string { return p.strong.Sprint(text) }

// statusTone maps the status vocabulary shared by bulk operations, email
// accounts, meetings, contacts and health checks to a colour.
func statusTone(status string) tone {
	switch status {
	case "completed", "active", "healthy", "confirmed", "resolved", "connected":
		return toneGood
	case "processing", "in_progress", "scheduled", "contacted":
		return toneInfo
	case "pending", "warning", "new", "inactive":
		return toneWarn
	case "failed", "error", "cancelled", "disconnected":
		return toneBad
	default:
		return toneNeutral
	}
}

func (p palette) status(status string) string {
	return p.badge(statusTone(status), orDefault(status, "unknown"))
}

// thresholdTone is red above high, yellow above medium, green otherwise.
func thresholdTone(value, medium, high int) tone {
	switch {
	case value > high:
		return toneBad
	case value > medium:
		return toneWarn
	default:
		return toneGood
	}
}

// Health thresholds for the monitoring indicators.
const (
	errorsWarnAbove = 5
	errorsBadAbove  = 10
	staleWarnAbove  = 2
	staleBadAbove   = 5
)

func auditActionTone(action string) tone {
	switch action {
	case "user_login":
		return toneInfo
	case "analysis_created":
		return toneGood
	case "user_created":
		return toneAccent
	case "user_updated":
		return toneWarn
	case "user_deleted":
		return toneBad
	default:
		return toneNeutral
	}
}

func errorTypeTone(kind string) tone {
	switch kind {
	case "analysis_failed":
		return toneBad
	case "api_error":
		return toneWarn
	case "database_error":
		return toneAccent
	default:
		return toneNeutral
	}
}

func roleTone(role string) tone {
	if role == "admin" {
		return toneAccent
	}
	return toneInfo
}
