package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"info":  zapcore.InfoLevel,
		"bogus": zapcore.InfoLevel,
		"":      zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "skydrop.log")

	Init("debug", logFile, false)
	defer Sync()

	Info("target hit")
	Sugar.Debugf("score %d", 3)
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "target hit") {
		t.Errorf("log file missing info entry: %q", out)
	}
	if !strings.Contains(out, "score 3") {
		t.Errorf("log file missing debug entry: %q", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "skydrop.log")

	Init("warn", logFile, false)
	defer Sync()

	Debug("quiet")
	Warn("loud")
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if strings.Contains(string(data), "quiet") {
		t.Error("debug entry written at warn level")
	}
	if !strings.Contains(string(data), "loud") {
		t.Error("warn entry missing")
	}
}
