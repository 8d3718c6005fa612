package game

import (
	"log"

	"cratedrop/internal/audio"
	"cratedrop/internal/camera"
	"cratedrop/internal/components"
	"cratedrop/internal/engine"
	"cratedrop/internal/input"
	"cratedrop/internal/manip"
	"cratedrop/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	crateSize   = 2.0
	spawnHeight = 8.0
)

var spawnPosition = rl.Vector3{X: 0, Y: spawnHeight, Z: 0}

type Game struct {
	Scene  *engine.Scene
	World  *physics.World
	Camera *camera.Camera
	Crate  *engine.GameObject

	controller *manip.Controller
	tracker    input.Tracker
	audio      *audio.Manager
	showHelp   bool
}

func New() *Game {
	return &Game{
		Scene:    engine.NewScene("CrateDrop"),
		World:    physics.NewWorld(),
		showHelp: true,
	}
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(1280, 720, "Crate Drop")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)

	g.audio = audio.Init("assets/sounds/impact.wav")
	defer g.audio.Close()

	// Mesh creation needs the OpenGL context, so the scene is built here
	g.setupScene()
	defer g.unloadScene()

	log.Printf("Game: scene ready, crate spawned at y=%.1f", spawnHeight)

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func (g *Game) setupScene() {
	g.Crate = engine.NewGameObject("Crate")
	g.Crate.Transform.Position = spawnPosition

	mesh := rl.GenMeshCube(crateSize, crateSize, crateSize)
	model := rl.LoadModelFromMesh(mesh)
	g.Crate.AddComponent(components.NewModelRenderer(model, rl.Orange))
	g.Crate.AddComponent(components.NewBoxCollider(rl.Vector3{X: crateSize, Y: crateSize, Z: crateSize}))
	g.Crate.AddComponent(components.NewRigidbody())

	g.Crate.Start()
	g.Scene.AddGameObject(g.Crate)
	g.World.AddObject(g.Crate)
	g.World.OnFloorImpact = g.audio.PlayImpact

	g.Camera = camera.New(
		rl.Vector3{X: 11, Y: 9, Z: 11},
		rl.Vector3{X: 0, Y: 2, Z: 0},
	)
	g.controller = manip.New(g.Camera, g.Crate, g.World.Bounds)
}

func (g *Game) unloadScene() {
	if mr := engine.GetComponent[*components.ModelRenderer](g.Crate); mr != nil {
		mr.Unload()
	}
}

func (g *Game) Update() {
	deltaTime := rl.GetFrameTime()
	if deltaTime > physics.MaxStep {
		deltaTime = physics.MaxStep
	}

	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
	sample := g.tracker.Poll()

	// Pointer events first, then free fall; the integrator only runs
	// while nothing is grabbed.
	g.controller.Update(sample, aspect)
	g.Scene.Update(deltaTime)
	if g.controller.Mode == manip.ModeIdle {
		g.World.Step(deltaTime)
	}

	if rl.IsKeyPressed(rl.KeyR) {
		g.resetCrate()
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.showHelp = !g.showHelp
	}
}

// resetCrate respawns the crate above the floor with all motion cleared.
func (g *Game) resetCrate() {
	g.Crate.Transform.Position = spawnPosition
	g.Crate.Transform.Rotation = rl.Vector3{}
	if rb := engine.GetComponent[*components.Rigidbody](g.Crate); rb != nil {
		rb.Velocity = rl.Vector3{}
		rb.AngularVelocity = rl.Vector3{}
		rb.Wake()
	}
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(g.Camera.GetRaylibCamera())
	g.drawFloor()
	g.drawBounds()
	for _, obj := range g.Scene.GameObjects {
		if mr := engine.GetComponent[*components.ModelRenderer](obj); mr != nil {
			mr.Draw()
		}
	}
	rl.EndMode3D()

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) drawFloor() {
	b := g.World.Bounds
	rl.DrawPlane(
		rl.Vector3{},
		rl.Vector2{X: b.XMax * 2, Y: b.ZMax * 2},
		rl.NewColor(45, 45, 60, 255),
	)
	rl.DrawGrid(int32(b.XMax*2), 1)
}

// drawBounds sketches the invisible walls and ceiling as a faint wire box.
func (g *Game) drawBounds() {
	b := g.World.Bounds
	center := rl.Vector3{Y: b.YMax / 2}
	size := rl.Vector3{X: b.XMax * 2, Y: b.YMax, Z: b.ZMax * 2}
	rl.DrawCubeWiresV(center, size, rl.Fade(rl.SkyBlue, 0.25))
}
