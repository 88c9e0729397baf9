// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" DEBUG ", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConfigText(t *testing.T) {
	var buf bytes.Buffer
	logger, err := Config("warn", "", &buf)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hidden")
	logger.Warn("shown", "target", "c")

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("info record written at warn level: %q", got)
	}
	if !strings.Contains(got, "msg=shown") || !strings.Contains(got, "target=c") {
		t.Errorf("text record = %q", got)
	}
}

func TestConfigJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := Config("debug", "JSON", &buf)
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("assembled", "enums", 2)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("record is not JSON: %v (%q)", err, buf.String())
	}
	if rec["msg"] != "assembled" || rec["enums"] != float64(2) {
		t.Errorf("record = %v", rec)
	}
}

func TestConfigUnknownFormat(t *testing.T) {
	if _, err := Config("info", "xml", &bytes.Buffer{}); err == nil {
		t.Error("Config(xml) succeeded")
	}
}

func TestDiscard(t *testing.T) {
	Discard().Error("dropped")
}
