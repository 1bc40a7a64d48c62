package main

import (
	"fmt"
	"math"
	"time"

	"dispatch/config"
	"dispatch/sim"
	"dispatch/types"

	"github.com/eiannone/keyboard"
	"github.com/golang/glog"
)

type keyPress struct {
	char rune
	key  keyboard.Key
}

func readKeys(keys chan<- keyPress) {
	for {
		char, key, err := keyboard.GetSingleKey()
		if err != nil {
			glog.Errorf("Reading key: %v", err)
			close(keys)
			return
		}
		keys <- keyPress{char, key}
	}
}

// runInteractive steps the building on a ticker and applies key presses
// between steps. Stimuli and steps share this goroutine.
func runInteractive(b *sim.Building, cfg config.Config) {
	keys := make(chan keyPress)
	go readKeys(keys)

	ticker := time.NewTicker(cfg.StepInterval)
	defer ticker.Stop()

	fmt.Println("u/d <floor>: hall call, c <floor>: cab press, n: next car, +/-: load, space: step, q: quit")

	selected := 0
	var prefix rune
	for {
		select {
		case <-ticker.C:
			b.Step()

		case kp, ok := <-keys:
			if !ok || kp.key == keyboard.KeyCtrlC || kp.key == keyboard.KeyEsc || kp.char == 'q' {
				return
			}

			if prefix != 0 && kp.char >= '0' && kp.char <= '9' {
				floor := int(kp.char - '0')
				var err error
				switch prefix {
				case 'u':
					err = b.CallHall(floor, types.DIR_Up)
				case 'd':
					err = b.CallHall(floor, types.DIR_Down)
				case 'c':
					err = b.PressCab(selected, floor)
				}
				if err != nil {
					glog.Warning(err)
				}
				prefix = 0
				continue
			}
			prefix = 0

			switch {
			case kp.key == keyboard.KeySpace || kp.char == ' ':
				b.Step()
			case kp.char == 'u' || kp.char == 'd' || kp.char == 'c':
				prefix = kp.char
			case kp.char == 'n':
				selected = (selected + 1) % len(b.Cars())
				fmt.Printf("Selected elevator %d\n", selected)
			case kp.char == '+' || kp.char == '-':
				load := b.Snapshot()[selected].Load
				if kp.char == '+' {
					load += 0.1
				} else {
					load -= 0.1
				}
				load = math.Round(math.Min(1, math.Max(0, load))*10) / 10
				if err := b.SetLoad(selected, load); err != nil {
					glog.Warning(err)
				}
				fmt.Printf("Elevator %d load %.1f\n", selected, load)
			}
		}
	}
}
