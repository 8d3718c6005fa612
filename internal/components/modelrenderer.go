package components

import (
	"cratedrop/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Highlight is the manipulation feedback level of a rendered object.
type Highlight int

const (
	HighlightNone   Highlight = 0
	HighlightDim    Highlight = 1 // grabbed for rotation
	HighlightBright Highlight = 2 // grabbed for movement
)

type ModelRenderer struct {
	engine.BaseComponent
	Model     rl.Model
	Color     rl.Color
	Highlight Highlight
}

func NewModelRenderer(model rl.Model, color rl.Color) *ModelRenderer {
	return &ModelRenderer{
		Model: model,
		Color: color,
	}
}

// TintColor is the base color lightened by the current highlight level.
func (m *ModelRenderer) TintColor() rl.Color {
	switch m.Highlight {
	case HighlightDim:
		return lighten(m.Color, 0.35)
	case HighlightBright:
		return lighten(m.Color, 0.65)
	default:
		return m.Color
	}
}

func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	scale := g.Transform.Scale
	scaleMatrix := rl.MatrixScale(scale.X, scale.Y, scale.Z)

	// Pitch about the local right axis first, then yaw about world up
	rot := g.Transform.Rotation
	rotMatrix := rl.MatrixMultiply(rl.MatrixRotateX(rot.X), rl.MatrixRotateY(rot.Y))

	pos := g.Transform.Position
	transMatrix := rl.MatrixTranslate(pos.X, pos.Y, pos.Z)

	// Combine: scale -> rotate -> translate
	m.Model.Transform = rl.MatrixMultiply(rl.MatrixMultiply(scaleMatrix, rotMatrix), transMatrix)

	rl.DrawModel(m.Model, rl.Vector3Zero(), 1.0, m.TintColor())
}

func (m *ModelRenderer) Unload() {
	rl.UnloadModel(m.Model)
}

func lighten(c rl.Color, amount float32) rl.Color {
	mix := func(v uint8) uint8 {
		return uint8(float32(v) + (255-float32(v))*amount)
	}
	return rl.Color{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}
