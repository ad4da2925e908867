package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/atharvRsharma/Pendulums/internal/chain"
	"github.com/atharvRsharma/Pendulums/internal/motion"
	"github.com/atharvRsharma/Pendulums/internal/sim"
)

const (
	screenWidth  = 800
	screenHeight = 800
	targetFPS    = 60

	// Ortho window of the world, matching the projection the path and
	// constants were tuned for.
	worldMin = -2.0
	worldMax = 2.0

	bobRadius = 0.04
)

var (
	colBg    = rl.NewColor(10, 10, 10, 255)
	colRod   = rl.NewColor(180, 180, 180, 255)
	colBob   = rl.NewColor(230, 41, 55, 255)
	colTrace = rl.NewColor(120, 120, 120, 255)
	colText  = rl.NewColor(140, 140, 140, 255)
	colWarn  = rl.NewColor(230, 41, 55, 255)
)

// App drives the interactive window: one integration step per frame, then
// draw; mouse presses edit the chain between frames.
type App struct {
	sim     *sim.Simulation
	running bool
	quit    bool
}

// Run opens the window and blocks until it is closed.
func Run(s *sim.Simulation) {
	rl.InitWindow(screenWidth, screenHeight, "Pendulum System")
	defer rl.CloseWindow()
	rl.SetTargetFPS(targetFPS)

	app := &App{sim: s, running: true}
	for !rl.WindowShouldClose() && !app.quit {
		app.Update()
		app.Draw()
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) {
		a.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.running = !a.running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.sim.Reset()
	}

	// Press transitions only, never held state.
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		a.sim.AddLink()
	}
	if rl.IsMouseButtonPressed(rl.MouseRightButton) {
		a.sim.RemoveLink()
	}

	if a.running {
		a.sim.Step()
	}
}

// toScreen maps a world point into window pixels.
func toScreen(p chain.Point) rl.Vector2 {
	x := (p.X - worldMin) / (worldMax - worldMin) * screenWidth
	y := (worldMax - p.Y) / (worldMax - worldMin) * screenHeight
	return rl.NewVector2(float32(x), float32(y))
}

func (a *App) Draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(colBg)

	a.drawTrace()
	a.drawChain()
	a.drawHUD()
}

func (a *App) drawTrace() {
	points := a.sim.Trace().Points()
	for i := 1; i < len(points); i++ {
		rl.DrawLineV(toScreen(points[i-1]), toScreen(points[i]), colTrace)
	}
}

func (a *App) drawChain() {
	joints := chain.JointPositions(a.sim.Chain())

	prev := toScreen(joints[0])
	for _, joint := range joints[1:] {
		cur := toScreen(joint)
		rl.DrawLineV(prev, cur, colRod)
		prev = cur
	}

	// Bobs over the rods, pivot marker last.
	screenRadius := float32(bobRadius / (worldMax - worldMin) * screenWidth)
	for _, joint := range joints[1:] {
		rl.DrawCircleV(toScreen(joint), screenRadius, colBob)
	}
	rl.DrawCircleV(toScreen(joints[0]), screenRadius/2, colRod)
}

func (a *App) drawHUD() {
	rl.DrawText(fmt.Sprintf("links %d", a.sim.Chain().Len()), 10, 10, 20, colText)
	rl.DrawText(fmt.Sprintf("t %.1fs", a.sim.Time()), 10, 34, 20, colText)
	rl.DrawText("LMB add  RMB remove  SPACE pause  R reset  Q quit", 10, screenHeight-30, 20, colText)

	if !a.running {
		rl.DrawText("PAUSED", screenWidth-110, 10, 20, colText)
	}
	if motion.Diverged(a.sim.Chain()) {
		rl.DrawText("DIVERGED", screenWidth-120, 34, 20, colWarn)
	}
}
