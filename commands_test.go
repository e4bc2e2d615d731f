package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/RianAsmara/lost-beacons/sim"
	"github.com/RianAsmara/lost-beacons/trace"
)

func TestRunWritesTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.trace")
	cmd := runCmd(&globalFlags{logLevel: "info"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--scenario", filepath.Join("assets", "skirmish.yaml"), "--seed", "3", "--trace", path})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	var res sim.Result
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatalf("stdout is not a result: %v\n%s", err, out.String())
	}
	if res.Outcome == "" || res.Seed != 3 {
		t.Errorf("result = %+v", res)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	var decisions, outcomes int
	_, err = trace.Replay(f, map[string]trace.Handler{
		trace.TypeDecision: func(trace.Envelope) error { decisions++; return nil },
		trace.TypeOutcome:  func(trace.Envelope) error { outcomes++; return nil },
	})
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if decisions == 0 || outcomes != 1 {
		t.Errorf("trace has %d decisions and %d outcomes, want some and 1", decisions, outcomes)
	}
}

func TestRunTraceCreateError(t *testing.T) {
	cmd := runCmd(&globalFlags{logLevel: "info"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--scenario", filepath.Join("assets", "skirmish.yaml"), "--trace", filepath.Join(t.TempDir(), "missing", "run.trace")})
	err := cmd.ExecuteContext(context.Background())
	if err == nil || !strings.Contains(err.Error(), "create trace") {
		t.Errorf("err = %v, want create trace error", err)
	}
}
