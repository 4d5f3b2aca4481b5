package terminal

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"bin-viewer/internal/commands"
	"bin-viewer/internal/logger"
)

const (
	BarHeight = 40
	prompt    = "> "
	fontSize  = 18
	padding   = 8
	// Log lines drawn above the input bar.
	maxLinesOnScreen = 12
	lineHeight       = fontSize + 4
	maxLineRunes     = 160
)

var (
	barColor     = rl.NewColor(40, 40, 40, 255)
	barEdgeColor = rl.NewColor(80, 80, 80, 255)
	historyColor = rl.NewColor(24, 24, 24, 230)
)

// Terminal is the console at the bottom of the screen, toggled with ESC. Lines starting with
// "cmd " run through the command registry; anything else prints the command list.
type Terminal struct {
	log   *logger.Logger
	reg   *commands.Registry
	input string
	open  bool
}

// New returns a closed console that echoes and runs lines through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen reports whether the console is visible and capturing the keyboard.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Update handles ESC and, while open, typing, paste, backspace and enter. Call once per frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.open = !t.open
	}
	if !t.open {
		return
	}
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
	if ctrl && rl.IsKeyPressed(rl.KeyV) {
		t.input += rl.GetClipboardText()
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			t.input += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.input) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.input)
		t.input = t.input[:len(t.input)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.input != "" {
		t.Submit(t.input)
		t.input = ""
	}
}

// Submit runs one console line and logs the outcome.
func (t *Terminal) Submit(line string) {
	t.log.Info(prompt + line)
	args, isCmd, err := commands.Parse(line)
	switch {
	case err != nil:
		t.log.Warn("console", "err", err)
	case !isCmd:
		for _, u := range t.reg.Usage() {
			t.log.Info(u)
		}
	default:
		if err := t.reg.Execute(args); err != nil {
			t.log.Warn("console", "err", err)
		}
	}
}

// Draw draws the input bar and the most recent log lines above it.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	barY := int32(rl.GetScreenHeight()) - BarHeight

	histH := int32(maxLinesOnScreen*lineHeight + padding)
	histY := barY - histH
	if histY < 0 {
		histH, histY = barY, 0
	}
	rl.DrawRectangle(0, histY, screenW, histH, historyColor)
	lines := t.log.Lines()
	if len(lines) > maxLinesOnScreen {
		lines = lines[len(lines)-maxLinesOnScreen:]
	}
	for i, line := range lines {
		if utf8.RuneCountInString(line) > maxLineRunes {
			line = string([]rune(line)[:maxLineRunes-3]) + "..."
		}
		rl.DrawText(line, padding, histY+padding+int32(i*lineHeight), fontSize, rl.LightGray)
	}

	rl.DrawRectangle(0, barY, screenW, BarHeight, barColor)
	rl.DrawRectangle(0, barY, screenW, 1, barEdgeColor)
	rl.DrawText(prompt+t.input+"|", padding, barY+padding+2, fontSize, rl.White)
}
