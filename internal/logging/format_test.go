package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestFormatEventLine(t *testing.T) {
	event := Event{
		Time:    time.Date(2026, 1, 2, 13, 4, 5, 0, time.Local),
		Level:   slog.LevelInfo,
		Message: "Created: out/Icon-App-20x20@1x.png (20x20)",
		Fields: map[string]any{
			"width": 20,
			"file":  "Icon-App-20x20@1x.png",
		},
	}
	want := "13:04:05 [INFO] Created: out/Icon-App-20x20@1x.png (20x20) file=Icon-App-20x20@1x.png width=20\n"
	if got := FormatEventLine(event); got != want {
		t.Fatalf("FormatEventLine() = %q, want %q", got, want)
	}
}

func TestOrderedFieldKeys_ErrorLast(t *testing.T) {
	fields := map[string]any{
		"path":  "/tmp/x",
		"error": "permission denied",
		"op":    "write",
	}
	keys := orderedFieldKeys(0, fields)
	if got := strings.Join(keys, ","); got != "op,path,error" {
		t.Fatalf("orderedFieldKeys() = %s", got)
	}
}

func TestFormatFieldValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil", value: nil, want: "<nil>"},
		{name: "empty string", value: "", want: `""`},
		{name: "spaced string", value: "two words", want: `"two words"`},
		{name: "error", value: errors.New("disk full"), want: `"disk full"`},
		{name: "bytes", value: Bytes(2048), want: `"2.0 kB"`},
		{name: "int", value: 167, want: "167"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatFieldValue(tt.value); got != tt.want {
				t.Fatalf("formatFieldValue(%v) = %s, want %s", tt.value, got, tt.want)
			}
		})
	}
}

func TestLogger_DebugGated(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, false)
	logger.Debug("hidden")
	logger.Info("shown", Field("count", 15))
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("debug line written while debug disabled: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "[INFO] shown count=15") {
		t.Fatalf("info line missing: %q", buf.String())
	}

	logger.SetDebugEnabled(true)
	logger.Debugf("now %s", "visible")
	if !strings.Contains(buf.String(), "[DEBUG] now visible") {
		t.Fatalf("debug line missing after enabling: %q", buf.String())
	}
}

func TestLogger_NilIsNoop(t *testing.T) {
	var logger *Logger
	logger.Info("ignored")
	logger.Warn("ignored")
	logger.Error("ignored")
	logger.Debug("ignored")
	logger.SetDebugEnabled(true)
}

func TestFormatEventANSI_ContainsMessageAndFields(t *testing.T) {
	out := FormatEventANSI(Event{
		Time:    time.Now(),
		Level:   slog.LevelWarn,
		Message: "lock busy",
		Fields:  map[string]any{"path": "/tmp/icongen.lock"},
	})
	for _, want := range []string{"lock busy", "WARN", "path", "/tmp/icongen.lock"} {
		if !strings.Contains(out, want) {
			t.Fatalf("FormatEventANSI() missing %q in %q", want, out)
		}
	}
}

func TestAttrsToMap_FlattensGroups(t *testing.T) {
	fields := attrsToMap([]slog.Attr{
		Field("file", "Icon-App-40x40@2x.png"),
		slog.Group("size", slog.Int("w", 80), slog.Int("h", 80)),
		{},
	})
	if len(fields) != 3 {
		t.Fatalf("attrsToMap() = %v", fields)
	}
	if fields["size.w"] != int64(80) || fields["size.h"] != int64(80) {
		t.Fatalf("group members not flattened: %v", fields)
	}
}
