package app

import (
	"testing"
	"time"

	"github.com/arpent/strum/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesRuntimeContext(t *testing.T) {
	cfg := config.Config{
		Address:              "127.0.0.1:6600",
		VolumeStep:           5,
		StatusUpdateInterval: 1500 * time.Millisecond,
		LogFile:              "trace.log",
	}

	payload := startupTracePayload(cfg)

	if payload["address"] != "127.0.0.1:6600" {
		t.Fatalf("expected address in payload, got %v", payload["address"])
	}
	if payload["volumeStep"] != 5 {
		t.Fatalf("expected volume step 5, got %v", payload["volumeStep"])
	}
	if payload["pollEveryMS"] != int64(1500) {
		t.Fatalf("expected poll interval 1500, got %v", payload["pollEveryMS"])
	}
	if payload["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", payload["logFile"])
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
}
