package logging

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
)

func FormatEventLine(event Event) string {
	ts := event.Time.Format("15:04:05")
	level := strings.ToUpper(event.Level.String())
	fields := ""
	if len(event.Fields) > 0 {
		keys := orderedFieldKeys(event.Level, event.Fields)
		parts := make([]string, 0, len(keys))
		for _, key := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", key, formatFieldValue(event.Fields[key])))
		}
		fields = " " + strings.Join(parts, " ")
	}
	return fmt.Sprintf("%s [%s] %s%s\n", ts, level, event.Message, fields)
}

// Bytes is a field value rendered as a human readable size.
type Bytes int64

func (b Bytes) String() string {
	if b < 0 {
		return fmt.Sprintf("%d B", int64(b))
	}
	return humanize.Bytes(uint64(b))
}

func formatFieldValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "<nil>"
	case error:
		return quoteIfSpaced(v.Error())
	case fmt.Stringer:
		return quoteIfSpaced(v.String())
	case string:
		if v == "" {
			return `""`
		}
		return quoteIfSpaced(v)
	default:
		return fmt.Sprintf("%v", value)
	}
}

func quoteIfSpaced(value string) string {
	if strings.ContainsAny(value, " \t\n\"") {
		return fmt.Sprintf("%q", value)
	}
	return value
}

// orderedFieldKeys sorts keys alphabetically, keeping "error" last so the
// cause of a failure ends the line.
func orderedFieldKeys(_ slog.Level, fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	hasError := false
	for key := range fields {
		if key == "error" {
			hasError = true
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	if hasError {
		keys = append(keys, "error")
	}
	return keys
}
