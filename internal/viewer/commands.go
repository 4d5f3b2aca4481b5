package viewer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bin-viewer/internal/commands"
)

// Toggles are the display settings the console can change. Each setter persists the choice.
type Toggles struct {
	SetFPS  func(on bool) error
	SetGrid func(on bool) error
}

// RegisterCommands adds the viewer's console commands to r. clock returns the current frame time.
func RegisterCommands(r *commands.Registry, a *App, clock func() time.Duration, t Toggles) {
	list := commands.NewFlagSet("list")
	r.Register("list", "", list, func() error {
		a.log.Info("parts", "names", strings.Join(a.Graph().Names(), ", "))
		return nil
	})

	sel := commands.NewFlagSet("select")
	r.Register("select", "<name>", sel, func() error {
		name := strings.Join(sel.Args(), " ")
		if name == "" {
			return errors.New("select: missing part name")
		}
		if !a.SelectByName(name, clock()) {
			return fmt.Errorf("select: no part named %q", name)
		}
		s := a.State()
		a.log.Info(s.Description, "name", s.CurrentName)
		return nil
	})

	gate := commands.NewFlagSet("gate")
	r.Register("gate", "", gate, func() error {
		if !a.ToggleGate(clock()) {
			return fmt.Errorf("gate: no part named %q", a.dispatcher.GateName())
		}
		return nil
	})

	if t.SetFPS != nil {
		fps := commands.NewFlagSet("fps")
		r.Register("fps", "on|off", fps, func() error {
			on, err := commands.ParseOnOff(fps.Args())
			if err != nil {
				return fmt.Errorf("fps: %w", err)
			}
			return t.SetFPS(on)
		})
	}
	if t.SetGrid != nil {
		grid := commands.NewFlagSet("grid")
		r.Register("grid", "on|off", grid, func() error {
			on, err := commands.ParseOnOff(grid.Args())
			if err != nil {
				return fmt.Errorf("grid: %w", err)
			}
			return t.SetGrid(on)
		})
	}
}
