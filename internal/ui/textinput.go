package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const maxHistory = 20

type TextInput struct {
	Text     string
	Prompt   string
	IsActive bool
	X, Y     int
	Width    int
	Height   int
	OnSubmit func(string)

	History    []string
	historyPos int
}

func NewTextInput(x, y, width, height int, prompt string, onSubmit func(string)) *TextInput {
	return &TextInput{
		Prompt:   prompt,
		X:        x,
		Y:        y,
		Width:    width,
		Height:   height,
		OnSubmit: onSubmit,
	}
}

func (ti *TextInput) Update() {
	if !ti.IsActive {
		return
	}

	ti.Text += string(ebiten.AppendInputChars(nil))

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(ti.Text) > 0 {
		ti.Text = ti.Text[:len(ti.Text)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		ti.recall(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		ti.recall(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ti.Text = ""
		ti.IsActive = false
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ti.Submit()
	}
}

// Submit hands the trimmed text to OnSubmit and records it in the history.
func (ti *TextInput) Submit() {
	cmd := strings.TrimSpace(ti.Text)
	ti.Text = ""
	ti.IsActive = false
	if cmd == "" {
		return
	}
	ti.History = append(ti.History, cmd)
	if len(ti.History) > maxHistory {
		ti.History = ti.History[len(ti.History)-maxHistory:]
	}
	ti.historyPos = len(ti.History)
	if ti.OnSubmit != nil {
		ti.OnSubmit(cmd)
	}
}

// recall steps through previous commands; stepping past the newest clears the line.
func (ti *TextInput) recall(delta int) {
	if len(ti.History) == 0 {
		return
	}
	ti.historyPos += delta
	if ti.historyPos < 0 {
		ti.historyPos = 0
	}
	if ti.historyPos >= len(ti.History) {
		ti.historyPos = len(ti.History)
		ti.Text = ""
		return
	}
	ti.Text = ti.History[ti.historyPos]
}

func (ti *TextInput) Draw(screen *ebiten.Image) {
	x, y, width, height := float32(ti.X), float32(ti.Y), float32(ti.Width), float32(ti.Height)

	bgColor := color.RGBA{50, 50, 50, 255}
	if ti.IsActive {
		bgColor = color.RGBA{80, 80, 80, 255}
	}
	vector.DrawFilledRect(screen, x, y, width, height, bgColor, false)
	vector.StrokeRect(screen, x, y, width, height, 1, color.White, false)

	displayTxt := ti.Prompt + ti.Text
	if ti.IsActive {
		displayTxt += "_" // Cursor
	}

	ebitenutil.DebugPrintAt(screen, displayTxt, ti.X+5, ti.Y+(ti.Height-16)/2)
}

// IsClicked checks if the mouse click is within the text input bounds
func (ti *TextInput) IsClicked(mouseX, mouseY int) bool {
	return mouseX >= ti.X && mouseX <= ti.X+ti.Width &&
		mouseY >= ti.Y && mouseY <= ti.Y+ti.Height
}
