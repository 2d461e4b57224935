package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	for _, env := range []string{"development", "production", ""} {
		log, err := New(env)
		if err != nil {
			t.Fatalf("New(%q) failed: %v", env, err)
		}
		if log == nil {
			t.Fatalf("New(%q) returned nil logger", env)
		}
	}
}

func TestNewWithDefaults(t *testing.T) {
	if log := NewWithDefaults(); log == nil {
		t.Fatal("NewWithDefaults returned nil logger")
	}
}

func TestLogEntriesAreStructuredJSON(t *testing.T) {
	var buf bytes.Buffer

	encoderConfig := zap.NewProductionEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(&buf),
		zapcore.DebugLevel,
	)
	log := zap.New(core)
	defer log.Sync()

	log.Info("coupon applied", zap.String("code", "SAVE10"), zap.Int("percent", 10))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not valid JSON: %v", err)
	}
	if entry["msg"] != "coupon applied" {
		t.Errorf("expected message field, got %v", entry["msg"])
	}
	if entry["code"] != "SAVE10" {
		t.Errorf("expected structured code field, got %v", entry["code"])
	}
}
