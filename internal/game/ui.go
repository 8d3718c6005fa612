package game

import (
	"fmt"

	"cratedrop/internal/components"
	"cratedrop/internal/engine"
	"cratedrop/internal/manip"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func (g *Game) DrawUI() {
	if g.showHelp {
		rl.DrawText("Left-drag: rotate crate   Right-drag: move / throw", 10, 10, 20, rl.DarkGray)
		rl.DrawText("R: reset   F1: toggle help", 10, 35, 20, rl.DarkGray)
	}
	rl.DrawFPS(10, 60)

	g.drawTuningPanel()
	g.drawModeBadge()
}

// drawTuningPanel exposes the bounce parameters live; values apply on the
// next floor contact.
func (g *Game) drawTuningPanel() {
	rb := engine.GetComponent[*components.Rigidbody](g.Crate)
	if rb == nil {
		return
	}

	screenW := int32(rl.GetScreenWidth())
	panelX := float32(screenW - 230)

	gui.Panel(rl.Rectangle{X: panelX, Y: 10, Width: 220, Height: 120}, "Physics")

	rb.Bounciness = gui.Slider(
		rl.Rectangle{X: panelX + 80, Y: 44, Width: 100, Height: 16},
		"Bounce", fmt.Sprintf("%.2f", rb.Bounciness),
		rb.Bounciness, 0, 1,
	)
	rb.Friction = gui.Slider(
		rl.Rectangle{X: panelX + 80, Y: 68, Width: 100, Height: 16},
		"Friction", fmt.Sprintf("%.2f", rb.Friction),
		rb.Friction, 0, 1,
	)

	if gui.Button(rl.Rectangle{X: panelX + 10, Y: 94, Width: 200, Height: 24}, "Reset Crate") {
		g.resetCrate()
	}
}

func (g *Game) drawModeBadge() {
	var label string
	var color rl.Color
	switch g.controller.Mode {
	case manip.ModeRotating:
		label = "ROTATING"
		color = rl.Yellow
	case manip.ModeMoving:
		label = "MOVING"
		color = rl.Orange
	default:
		return
	}
	rl.DrawText(label, 10, 90, 20, color)
}
