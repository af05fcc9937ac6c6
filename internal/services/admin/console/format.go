package console

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const notAvailable = "N/A"

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

func parseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// formatTimestamp renders a backend timestamp in local time, "N/A" when
// empty, or the raw value when it cannot be parsed.
func formatTimestamp(value string) string {
	if strings.TrimSpace(value) == "" {
		return notAvailable
	}
	ts, ok := parseTimestamp(value)
	if !ok {
		return value
	}
	return ts.Local().Format("2006-01-02 15:04:05")
}

// formatRelative renders a timestamp as "3 hours ago" relative to now.
func formatRelative(value string, now time.Time) string {
	ts, ok := parseTimestamp(value)
	if !ok {
		if strings.TrimSpace(value) == "" {
			return "Never"
		}
		return value
	}
	return humanize.RelTime(ts, now, "ago", "from now")
}

// formatTimeRange renders "date start - end" for a meeting.
func formatTimeRange(start, end string) string {
	startTS, ok := parseTimestamp(start)
	if !ok {
		return formatTimestamp(start)
	}
	endTS, ok := parseTimestamp(end)
	if !ok {
		return startTS.Local().Format("2006-01-02 15:04")
	}
	return fmt.Sprintf("%s %s - %s", startTS.Local().Format("2006-01-02"),
		startTS.Local().Format("15:04"), endTS.Local().Format("15:04"))
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// formatFileSize renders bytes in 1024 steps with at most two decimals.
func formatFileSize(bytes int64) string {
	if bytes <= 0 {
		return notAvailable
	}
	exp := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if exp >= len(sizeUnits) {
		exp = len(sizeUnits) - 1
	}
	value := math.Round(float64(bytes)/math.Pow(1024, float64(exp))*100) / 100
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + sizeUnits[exp]
}

// truncate shortens text to max runes with a trailing "...".
func truncate(text string, max int) string {
	if text == "" {
		return "No message"
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// detailsText flattens free-form audit/error details for searching and
// display.
func detailsText(details any) string {
	switch v := details.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func titleCase(value string) string {
	value = strings.ReplaceAll(value, "_", " ")
	words := strings.Fields(value)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
