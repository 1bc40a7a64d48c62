package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"dispatch/controller"
	"dispatch/hallcalls"
	"dispatch/types"

	"github.com/golang/glog"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Dispatch struct {
	Boundary        string  `yaml:"boundary"`
	MidTransitStops bool    `yaml:"midTransitStops"`
	Merge           string  `yaml:"merge"`
	Wake            string  `yaml:"wake"`
	Riders          string  `yaml:"riders"`
	FullLoadFactor  float64 `yaml:"fullLoadFactor"`
}

// Stimulus is one scripted input applied before the given step.
type Stimulus struct {
	Step      int     `yaml:"step"`
	Kind      string  `yaml:"kind"`
	Car       int     `yaml:"car"`
	Floor     int     `yaml:"floor"`
	Direction string  `yaml:"direction"`
	Load      float64 `yaml:"load"`
}

type Config struct {
	Floors       int           `yaml:"floors"`
	Cars         int           `yaml:"cars"`
	Verbosity    int           `yaml:"verbosity"`
	Steps        int           `yaml:"steps"`
	StepInterval time.Duration `yaml:"stepInterval"`
	Dispatch     Dispatch      `yaml:"dispatch"`
	Scenario     []Stimulus    `yaml:"scenario"`
}

func Default() Config {
	return Config{
		Floors:       10,
		Cars:         1,
		Verbosity:    1,
		Steps:        60,
		StepInterval: 500 * time.Millisecond,
		Dispatch: Dispatch{
			Boundary:        "inclusive",
			MidTransitStops: true,
			Merge:           "union",
			Wake:            "single",
			Riders:          "sticky",
			FullLoadFactor:  0.55,
		},
	}
}

// Load reads the YAML file at path on top of the defaults, then applies
// the .env file at envPath and the process environment. Empty paths and
// a missing .env file are skipped.
func Load(path, envPath string) (Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return cfg, err
		}
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("decoding %s: %w", path, err)
		}
	}

	env := map[string]string{}
	if envPath != "" {
		fileEnv, err := godotenv.Read(envPath)
		if err == nil {
			env = fileEnv
		} else if !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("reading %s: %w", envPath, err)
		} else {
			glog.V(1).Infof("No env file at %s", envPath)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := env[key]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"DISPATCH_FLOORS":    &c.Floors,
		"DISPATCH_CARS":      &c.Cars,
		"DISPATCH_VERBOSITY": &c.Verbosity,
	}
	for key, dst := range ints {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, key, v)
			}
			*dst = n
		}
	}

	strs := map[string]*string{
		"DISPATCH_BOUNDARY": &c.Dispatch.Boundary,
		"DISPATCH_MERGE":    &c.Dispatch.Merge,
		"DISPATCH_WAKE":     &c.Dispatch.Wake,
		"DISPATCH_RIDERS":   &c.Dispatch.Riders,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = strings.TrimSpace(v)
		}
	}

	if v, ok := lookup("DISPATCH_MID_TRANSIT_STOPS"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: DISPATCH_MID_TRANSIT_STOPS=%q", ErrInvalidConfig, v)
		}
		c.Dispatch.MidTransitStops = b
	}
	if v, ok := lookup("DISPATCH_FULL_LOAD_FACTOR"); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%w: DISPATCH_FULL_LOAD_FACTOR=%q", ErrInvalidConfig, v)
		}
		c.Dispatch.FullLoadFactor = f
	}
	return nil
}

func (c Config) Validate() error {
	if c.Floors < 1 {
		return fmt.Errorf("%w: floors must be positive, got %d", ErrInvalidConfig, c.Floors)
	}
	if c.Cars < 1 {
		return fmt.Errorf("%w: need at least one elevator, got %d", ErrInvalidConfig, c.Cars)
	}
	if c.Dispatch.FullLoadFactor <= 0 || c.Dispatch.FullLoadFactor > 1 {
		return fmt.Errorf("%w: fullLoadFactor %v outside (0,1]", ErrInvalidConfig, c.Dispatch.FullLoadFactor)
	}
	if _, err := c.Options(); err != nil {
		return err
	}
	for i, st := range c.Scenario {
		if _, err := st.ParsedDirection(); err != nil {
			return fmt.Errorf("%w: scenario[%d]: %v", ErrInvalidConfig, i, err)
		}
		switch st.Kind {
		case "hall", "cab", "load":
		default:
			return fmt.Errorf("%w: scenario[%d]: unknown kind %q", ErrInvalidConfig, i, st.Kind)
		}
	}
	return nil
}

// Options resolves the dispatch policy names.
func (c Config) Options() (controller.Options, error) {
	opts := controller.DefaultOptions()
	opts.MidTransitStops = c.Dispatch.MidTransitStops
	opts.FullLoadFactor = c.Dispatch.FullLoadFactor

	switch c.Dispatch.Boundary {
	case "", "inclusive":
		opts.Boundary = types.BoundaryInclusive
	case "exclusive":
		opts.Boundary = types.BoundaryExclusive
	default:
		return opts, fmt.Errorf("%w: unknown boundary %q", ErrInvalidConfig, c.Dispatch.Boundary)
	}

	switch c.Dispatch.Wake {
	case "", "single":
		opts.Wake = hallcalls.WakeSingle
	case "broadcast":
		opts.Wake = hallcalls.WakeBroadcast
	default:
		return opts, fmt.Errorf("%w: unknown wake policy %q", ErrInvalidConfig, c.Dispatch.Wake)
	}

	merge, err := controller.ParseMergeVariant(c.Dispatch.Merge)
	if err != nil {
		return opts, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	opts.Merge = merge

	riders, err := controller.ParseRiderPolicy(c.Dispatch.Riders)
	if err != nil {
		return opts, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	opts.Riders = riders

	return opts, nil
}

func (s Stimulus) ParsedDirection() (types.Direction, error) {
	return types.ParseDirection(s.Direction)
}
