package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"dispatch/config"
	"dispatch/controller"
	"dispatch/sim"
	"dispatch/trace"

	"github.com/golang/glog"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config")
	envPath := flag.String("env", ".env", "Path to .env file")
	tracePath := flag.String("trace", "-", "Trace output path, - for stdout, empty to disable")
	interactive := flag.Bool("interactive", false, "Drive the building from the keyboard")
	steps := flag.Int("steps", 0, "Number of steps to simulate, overrides config")
	flag.Parse()
	defer glog.Flush()

	cfg, err := config.Load(*configPath, *envPath)
	if err != nil {
		glog.Exitf("Loading config: %v", err)
	}
	if *steps > 0 {
		cfg.Steps = *steps
	}

	verbositySet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "v" {
			verbositySet = true
		}
	})
	if !verbositySet {
		if err := flag.Set("v", strconv.Itoa(cfg.Verbosity)); err != nil {
			glog.Warningf("Setting verbosity %d: %v", cfg.Verbosity, err)
		}
	}

	opts, err := cfg.Options()
	if err != nil {
		glog.Exitf("Resolving dispatch options: %v", err)
	}

	runID := sim.NewRunID()
	rec, closeTrace, err := openTrace(*tracePath, runID)
	if err != nil {
		glog.Exitf("Opening trace: %v", err)
	}
	defer closeTrace()

	building := sim.NewBuilding(cfg.Floors, cfg.Cars, runID, rec)
	if _, err := controller.Initialize(building.Cars(), building.Floors(), opts); err != nil {
		glog.Exitf("Initializing scheduler: %v", err)
	}
	building.Start()

	if *interactive {
		runInteractive(building, cfg)
	} else {
		runScenario(building, cfg)
	}
	printSummary(building)
}

func openTrace(path, runID string) (*trace.Recorder, func(), error) {
	switch path {
	case "":
		return trace.Nop(), func() {}, nil
	case "-":
		return trace.NewConsole(runID), func() {}, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return trace.New(file, runID), func() { file.Close() }, nil
}

func runScenario(b *sim.Building, cfg config.Config) {
	for b.StepCount() < cfg.Steps {
		for _, st := range cfg.Scenario {
			if st.Step != b.StepCount() {
				continue
			}
			if err := applyStimulus(b, st); err != nil {
				glog.Warningf("Step %d: %v", st.Step, err)
			}
		}
		b.Step()
	}
}

func applyStimulus(b *sim.Building, st config.Stimulus) error {
	switch st.Kind {
	case "hall":
		dir, err := st.ParsedDirection()
		if err != nil {
			return err
		}
		return b.CallHall(st.Floor, dir)
	case "cab":
		return b.PressCab(st.Car, st.Floor)
	case "load":
		return b.SetLoad(st.Car, st.Load)
	}
	return fmt.Errorf("unknown stimulus kind %q", st.Kind)
}

func printSummary(b *sim.Building) {
	fmt.Printf("Run %s after %d steps\n", b.RunID, b.StepCount())
	for _, st := range b.Snapshot() {
		dest := "-"
		if st.HasDestination {
			dest = strconv.Itoa(st.Destination)
		}
		fmt.Printf("  elevator %d: floor %d, destination %s, riders %v, load %.2f, up %t, down %t\n",
			st.ID, st.Floor, dest, st.Pressed, st.Load, st.UpLamp, st.DownLamp)
	}
}
