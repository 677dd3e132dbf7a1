package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseLevel(tc.in)
			if got != tc.want || (err != nil) != tc.wantErr {
				t.Fatalf("ParseLevel(%q)=(%v,%v)", tc.in, got, err)
			}
		})
	}
}

func TestForTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, slog.LevelInfo)
	For(l.Logger, "flight").Info("mode changed", "mode", "auto_flight")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode: %v (%s)", err, buf.String())
	}
	if rec["component"] != "flight" || rec["mode"] != "auto_flight" {
		t.Fatalf("unexpected record %v", rec)
	}
}

func TestFanoutLevels(t *testing.T) {
	var all, warn bytes.Buffer
	h := fanout{
		slog.NewJSONHandler(&all, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewJSONHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}
	l := slog.New(h).With("component", "audio")
	l.Debug("quiet")
	l.Warn("no audio device")

	if n := bytes.Count(all.Bytes(), []byte("\n")); n != 2 {
		t.Fatalf("debug handler got %d records", n)
	}
	if n := bytes.Count(warn.Bytes(), []byte("\n")); n != 1 {
		t.Fatalf("warn handler got %d records", n)
	}
	if !bytes.Contains(warn.Bytes(), []byte(`"component":"audio"`)) {
		t.Fatalf("attrs not propagated: %s", warn.String())
	}
	if h.Enabled(context.Background(), slog.LevelDebug-4) {
		t.Fatal("level below every handler should be disabled")
	}
}
