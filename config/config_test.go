package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"dispatch/controller"
	"dispatch/hallcalls"
	"dispatch/types"
)

const sampleConfig = `
floors: 12
cars: 3
verbosity: 2
stepInterval: 250ms
dispatch:
  boundary: exclusive
  midTransitStops: false
  merge: sorted
  wake: broadcast
  riders: scan
  fullLoadFactor: 0.7
scenario:
  - step: 0
    kind: hall
    floor: 5
    direction: up
  - step: 2
    kind: cab
    car: 1
    floor: 9
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Writing %s: %v", path, err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	opts, _ := cfg.Options()
	if opts != controller.DefaultOptions() {
		t.Errorf("Default config should resolve to the default options.\nExpected: %+v\nWas: %+v", controller.DefaultOptions(), opts)
	}
	if cfg.Floors != 10 || cfg.Cars != 1 {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "dispatch.yaml", sampleConfig)

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Floors != 12 || cfg.Cars != 3 || cfg.Verbosity != 2 || cfg.StepInterval != 250*time.Millisecond {
		t.Errorf("Top-level fields not as expected: %+v", cfg)
	}
	if cfg.Steps != 60 {
		t.Errorf("Unset fields should keep their defaults, steps=%d", cfg.Steps)
	}

	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options failed: %v", err)
	}
	expected := controller.Options{
		Boundary:        types.BoundaryExclusive,
		MidTransitStops: false,
		Merge:           controller.MergeSorted,
		Wake:            hallcalls.WakeBroadcast,
		Riders:          controller.RidersScan,
		FullLoadFactor:  0.7,
	}
	if opts != expected {
		t.Errorf("Options not as expected.\nExpected: %+v\nWas: %+v", expected, opts)
	}

	if len(cfg.Scenario) != 2 || cfg.Scenario[1].Car != 1 || cfg.Scenario[1].Floor != 9 {
		t.Errorf("Scenario not as expected: %+v", cfg.Scenario)
	}
	if d, _ := cfg.Scenario[0].ParsedDirection(); d != types.DIR_Up {
		t.Errorf("Scenario direction not parsed: %v", d)
	}
}

func TestLoad_EnvFileAndEnvironment(t *testing.T) {
	envPath := writeFile(t, ".env", "DISPATCH_FLOORS=6\nDISPATCH_WAKE=broadcast\nDISPATCH_RIDERS=scan\nDISPATCH_CARS=2\n")
	t.Setenv("DISPATCH_CARS", "4")
	t.Setenv("DISPATCH_MID_TRANSIT_STOPS", "false")

	cfg, err := Load("", envPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Floors != 6 || cfg.Dispatch.Wake != "broadcast" || cfg.Dispatch.Riders != "scan" {
		t.Errorf(".env values not applied: %+v", cfg)
	}
	if cfg.Cars != 4 {
		t.Errorf("Process environment should win over .env, cars=%d", cfg.Cars)
	}
	if cfg.Dispatch.MidTransitStops {
		t.Errorf("DISPATCH_MID_TRANSIT_STOPS not applied")
	}
}

func TestLoad_MissingEnvFileIgnored(t *testing.T) {
	if _, err := Load("", filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("Missing .env should be skipped, got %v", err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"boundary":  "dispatch:\n  boundary: sideways\n",
		"wake":      "dispatch:\n  wake: queue\n",
		"merge":     "dispatch:\n  merge: zip\n",
		"riders":    "dispatch:\n  riders: behind\n",
		"floors":    "floors: 0\n",
		"cars":      "cars: 0\n",
		"load":      "dispatch:\n  fullLoadFactor: 1.5\n",
		"kind":      "scenario:\n  - kind: teleport\n",
		"direction": "scenario:\n  - kind: hall\n    direction: left\n",
	}

	for name, content := range cases {
		path := writeFile(t, name+".yaml", content)
		if _, err := Load(path, ""); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", name, err)
		}
	}
}

func TestLoad_InvalidEnvValue(t *testing.T) {
	t.Setenv("DISPATCH_FLOORS", "many")
	if _, err := Load("", ""); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}
