package ui

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed viewer.css
var defaultCSS string

// DefaultStylesheet parses the embedded viewer stylesheet.
func DefaultStylesheet() *Stylesheet {
	sheet, err := ParseCSS(defaultCSS)
	if err != nil {
		panic(fmt.Sprintf("ui: embedded stylesheet: %v", err))
	}
	return sheet
}

// Engine owns the active stylesheet and the info panel laid out with it.
type Engine struct {
	sheet *Stylesheet
	panel *InfoPanel
}

// New returns an engine using the embedded stylesheet.
func New() *Engine {
	sheet := DefaultStylesheet()
	return &Engine{sheet: sheet, panel: NewInfoPanel(sheet)}
}

// LoadCSS replaces the stylesheet with the file at path.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return fmt.Errorf("ui: %s: %w", path, err)
	}
	e.sheet = sheet
	e.panel = NewInfoPanel(sheet)
	return nil
}

// Stylesheet returns the current stylesheet.
func (e *Engine) Stylesheet() *Stylesheet {
	return e.sheet
}

// InfoPanel returns the panel styled by the current stylesheet.
func (e *Engine) InfoPanel() *InfoPanel {
	return e.panel
}
