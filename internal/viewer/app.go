// Package viewer is the single-threaded core of the bin viewer: it owns the scene, the selection
// state and the animations, and is driven by input events and frame timestamps. It has no
// rendering dependency; the graphics layer feeds it and draws what it holds.
package viewer

import (
	"errors"
	"log/slog"
	"time"

	"bin-viewer/internal/camera"
	"bin-viewer/internal/input"
	"bin-viewer/internal/layout"
	"bin-viewer/internal/motion"
	"bin-viewer/internal/pick"
	"bin-viewer/internal/scenegraph"
	"bin-viewer/internal/selection"
)

// Options configures New.
type Options struct {
	Width, Height int
	GateName      string
	Logger        *slog.Logger
}

// App is the live viewer state.
type App struct {
	log        *slog.Logger
	scene      layout.Scene
	cam        *camera.Camera
	viewport   input.Rect
	funnel     *input.Funnel
	dispatcher *selection.Dispatcher
	state      selection.State
	platforms  []platform
}

// platform is an oscillating node advanced by its own fixed-interval ticker.
type platform struct {
	node   scenegraph.NodeID
	axis   int
	osc    *motion.Oscillator
	ticker *motion.Ticker
}

// New builds the app for a scene built by layout.Build.
func New(scene layout.Scene, opts Options) (*App, error) {
	if scene.Graph == nil {
		return nil, errors.New("viewer: scene has no graph")
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	d, err := selection.NewDispatcher(scene.Graph, scene.Catalog, selection.WithGateName(opts.GateName))
	if err != nil {
		return nil, err
	}
	if _, ok := scene.Graph.Lookup(d.GateName()); !ok {
		log.Warn("gate entity not in scene", "name", d.GateName())
	}
	a := &App{
		log:        log,
		scene:      scene,
		cam:        camera.New(opts.Width, opts.Height),
		funnel:     input.NewFunnel(),
		dispatcher: d,
	}
	a.Resize(opts.Width, opts.Height)
	for _, o := range scene.Oscillations {
		a.platforms = append(a.platforms, platform{
			node:   o.Node,
			axis:   o.Axis,
			osc:    motion.NewOscillator(o.Start, o.Min, o.Max, o.Step),
			ticker: motion.NewTicker(o.Interval),
		})
	}
	return a, nil
}

// Graph returns the scene graph.
func (a *App) Graph() *scenegraph.Graph {
	return a.scene.Graph
}

// Ground returns the ground plane node.
func (a *App) Ground() scenegraph.NodeID {
	return a.scene.Ground
}

// Camera returns the picking camera. Orbit and zoom act on it directly.
func (a *App) Camera() *camera.Camera {
	return a.cam
}

// State returns the current selection state.
func (a *App) State() selection.State {
	return a.state
}

// Viewport returns the interactive surface rectangle.
func (a *App) Viewport() input.Rect {
	return a.viewport
}

// Resize updates the viewport and the camera aspect. Call before the next frame renders.
func (a *App) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	a.viewport = input.Rect{Width: float32(width), Height: float32(height)}
	a.cam.SetViewport(width, height)
	a.log.Debug("viewport resized", "width", width, "height", height)
}

// HandleEvent funnels, normalizes and picks a pointer event and dispatches the selection.
// Touch releases, events without coordinates, duplicates of the same gesture and misses leave
// the state untouched.
func (a *App) HandleEvent(ev input.PointerEvent) (pick.Hit, bool) {
	if ev.Kind == input.TouchEnd {
		return pick.Hit{}, false
	}
	if !a.funnel.Accept(ev) {
		return pick.Hit{}, false
	}
	x, y, ok := input.Normalize(ev, a.viewport)
	if !ok {
		return pick.Hit{}, false
	}
	hit, ok := pick.Pick(x, y, a.cam, a.scene.Graph)
	if !ok {
		return pick.Hit{}, false
	}
	a.selectEntity(hit.Entity, ev.Time, ev.Kind.String())
	return hit, true
}

// SelectByName selects an entity without a pointer (console). It reports whether name exists.
func (a *App) SelectByName(name string, now time.Duration) bool {
	id, ok := a.scene.Graph.Lookup(name)
	if !ok {
		return false
	}
	a.selectEntity(id, now, "console")
	return true
}

// ToggleGate selects the gate entity, which toggles it.
func (a *App) ToggleGate(now time.Duration) bool {
	return a.SelectByName(a.dispatcher.GateName(), now)
}

func (a *App) selectEntity(id scenegraph.NodeID, now time.Duration, source string) {
	wasOpen := a.state.GateOpen
	a.state = a.dispatcher.Select(a.state, id, now)
	a.log.Info("part selected", "name", a.state.CurrentName, "source", source)
	if a.state.GateOpen != wasOpen {
		a.log.Info("gate toggled", "state", a.dispatcher.Gate().State().String())
	}
}

// Update advances animations to now: gate rotation, selection pulses and platform oscillation.
func (a *App) Update(now time.Duration) {
	a.dispatcher.Update(now)
	for _, p := range a.platforms {
		n := a.scene.Graph.Node(p.node)
		for i := p.ticker.Due(now); i > 0; i-- {
			v := p.osc.Tick()
			switch p.axis {
			case 0:
				n.Local.Position.X = v
			case 1:
				n.Local.Position.Y = v
			default:
				n.Local.Position.Z = v
			}
		}
	}
}

// GateAngle returns the gate's current rotation.
func (a *App) GateAngle() float32 {
	return a.dispatcher.Gate().Angle()
}
