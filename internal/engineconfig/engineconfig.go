package engineconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// DefaultPath is the prefs file, relative to the process working directory.
const DefaultPath = "config/viewer.json"

// EnvPrefix prefixes every environment override, e.g. BINVIEW_SHOW_FPS=true.
const EnvPrefix = "BINVIEW_"

// Prefs holds viewer preferences. Persisted across runs; environment variables override the file.
type Prefs struct {
	ShowFPS      bool   `json:"show_fps" env:"SHOW_FPS"`
	ShowMemAlloc bool   `json:"show_memalloc" env:"SHOW_MEMALLOC"`
	GridVisible  bool   `json:"grid_visible" env:"GRID_VISIBLE"`
	Fullscreen   bool   `json:"fullscreen" env:"FULLSCREEN"`
	WindowWidth  int    `json:"window_width" env:"WINDOW_WIDTH"`
	WindowHeight int    `json:"window_height" env:"WINDOW_HEIGHT"`
	TargetFPS    int    `json:"target_fps" env:"TARGET_FPS"`
	LogPath      string `json:"log_path" env:"LOG_PATH"`
	LayoutPath   string `json:"layout_path,omitempty" env:"LAYOUT_PATH"`
	StylePath    string `json:"style_path,omitempty" env:"STYLE_PATH"`
	GateName     string `json:"gate_name" env:"GATE_NAME"`
}

// Default returns default preferences (debug overlays off, grid off, 1280x720 window).
func Default() Prefs {
	return Prefs{
		WindowWidth:  1280,
		WindowHeight: 720,
		TargetFPS:    60,
		LogPath:      "logs/viewer.log",
		GateName:     "Servo Gate",
	}
}

// Load reads prefs from path and applies environment overrides. A missing file yields Default();
// a malformed file or malformed environment value is an error.
func Load(path string) (Prefs, error) {
	return LoadWithDotEnv(path, "")
}

// LoadWithDotEnv is Load with variables from a dotenv file layered under the process
// environment. An empty or missing dotEnvPath is ignored.
func LoadWithDotEnv(path, dotEnvPath string) (Prefs, error) {
	p, err := ReadFile(path)
	if err != nil {
		return p, err
	}
	environ, err := environment(dotEnvPath)
	if err != nil {
		return Default(), err
	}
	if err := env.ParseWithOptions(&p, env.Options{Prefix: EnvPrefix, Environment: environ}); err != nil {
		return Default(), fmt.Errorf("parse env: %w", err)
	}
	return p.normalized(), nil
}

// ReadFile reads prefs from path without environment overrides. A missing file yields Default().
func ReadFile(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Default(), fmt.Errorf("read prefs: %w", err)
	default:
		if err := json.Unmarshal(data, &p); err != nil {
			return Default(), fmt.Errorf("parse prefs %s: %w", path, err)
		}
	}
	return p.normalized(), nil
}

// Store applies console changes to the prefs file. It edits the file's own values, so
// environment overrides active in this run are never written back.
type Store struct {
	path string
	file Prefs
}

// OpenStore reads the prefs file at path for later updates.
func OpenStore(path string) (*Store, error) {
	p, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, file: p}, nil
}

// Update applies fn to the stored prefs and saves them.
func (s *Store) Update(fn func(*Prefs)) error {
	fn(&s.file)
	return Save(s.path, s.file)
}

// normalized replaces unusable values with defaults.
func (p Prefs) normalized() Prefs {
	d := Default()
	if p.WindowWidth <= 0 || p.WindowHeight <= 0 {
		p.WindowWidth, p.WindowHeight = d.WindowWidth, d.WindowHeight
	}
	if p.TargetFPS <= 0 {
		p.TargetFPS = d.TargetFPS
	}
	if p.GateName == "" {
		p.GateName = d.GateName
	}
	return p
}

// Save writes prefs to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
