package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitJSONFormat(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	old := Log
	defer func() { Log = old }()

	var buf bytes.Buffer
	Init(&buf)
	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", Log.GetLevel())
	}

	Component("weapon").WithField("fuse", 1.5).Debug("armed")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["component"] != "weapon" || entry["msg"] != "armed" || entry["fuse"] != 1.5 {
		t.Errorf("entry = %v", entry)
	}
}

func TestInitDefaultsToInfoText(t *testing.T) {
	t.Setenv("LOG_LEVEL", "bogus")
	t.Setenv("LOG_FORMAT", "")
	old := Log
	defer func() { Log = old }()

	var buf bytes.Buffer
	Init(&buf)
	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want info", Log.GetLevel())
	}

	Log.Debug("hidden")
	Log.Info("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "msg=shown") {
		t.Errorf("output = %q", out)
	}
}
