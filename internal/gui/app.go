package gui

import (
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/sandbox2d/internal/body"
	"github.com/san-kum/sandbox2d/internal/config"
	"github.com/san-kum/sandbox2d/internal/experiment"
	"github.com/san-kum/sandbox2d/internal/physics"
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColDebug   = rl.NewColor(0, 200, 0, 255)
)

// maxDt caps a frame's step after a stall, e.g. while the window is
// being dragged.
const maxDt = 0.1

// App is the raylib window driver. The window size is the scene size.
type App struct {
	Exp       *experiment.Experiment
	Running   bool
	Time      float64
	Telemetry []float64
	MaxHist   int
}

func initWindow(w, h int32) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(w, h, "sandbox")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func NewApp(exp *experiment.Experiment) *App {
	return &App{
		Exp:       exp,
		Running:   true,
		Telemetry: make([]float64, 0, 200),
		MaxHist:   200,
	}
}

// Run opens a window sized to the scene and blocks until it is closed.
func Run(exp *experiment.Experiment) {
	scene := exp.Scene()
	initWindow(int32(scene.Width), int32(scene.Height))
	defer rl.CloseWindow()

	NewApp(exp).RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			return
		}
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	scene := a.Exp.Scene()

	if rl.IsWindowResized() {
		scene.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyD) {
		scene.Debug = !scene.Debug
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.reset()
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		a.click(rl.GetMousePosition())
	}

	scene = a.Exp.Scene()
	scene.RecordFrame(rl.GetTime())
	if !a.Running {
		return
	}

	dt := min(float64(rl.GetFrameTime()), maxDt)
	scene.Tick(dt)
	a.Time += dt

	a.Telemetry = append(a.Telemetry, a.kinetic())
	if len(a.Telemetry) > a.MaxHist {
		a.Telemetry = a.Telemetry[1:]
	}
}

// click spawns a circle at the cursor, or randomizes attraction in
// particle mode and logs the new rules.
func (a *App) click(pos rl.Vector2) {
	if a.Exp.Mode() == physics.ModeParticle {
		cfg := a.Exp.Config()
		reg := a.Exp.Particles()
		reg.RandomizeAttraction(cfg.Attraction.Min, cfg.Attraction.Max)
		for _, line := range reg.Format() {
			log.Print(line)
		}
		return
	}
	a.Exp.Scene().AddBody(body.NewCircle(float64(pos.X), float64(pos.Y), config.DefaultRadius))
}

func (a *App) reset() {
	scene := a.Exp.Scene()
	w, h := scene.Width, scene.Height
	if err := a.Exp.Reset(); err != nil {
		log.Printf("reset: %v", err)
		return
	}
	a.Exp.Scene().Resize(w, h)
	a.Time = 0
	a.Telemetry = a.Telemetry[:0]
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	scene := a.Exp.Scene()
	if scene.Debug {
		a.drawDebug()
	}
	a.drawBodies()
	a.DrawHUD()

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	scene := a.Exp.Scene()
	rl.DrawText(fmt.Sprintf("FPS: %d", scene.FPS()), 5, 5, 16, ColDebug)
	if scene.Debug {
		rl.DrawText(fmt.Sprintf("Number of bodies: %d", scene.Len()), 5, 25, 16, ColDebug)
	}

	status, col := "RUNNING", ColSelect
	if !a.Running {
		status, col = "PAUSED", ColTextDim
	}
	w, h := int32(scene.Width), int32(scene.Height)
	rl.DrawText(status, w-90, 5, 16, col)
	rl.DrawText(fmt.Sprintf(":: %s  t=%.1fs", a.Exp.Mode(), a.Time), 5, h-20, 14, ColText)
	rl.DrawText("[SPACE] PAUSE  [D] DEBUG  [R] RESET  [CLICK] SPAWN  [Q] QUIT", w-470, h-20, 12, ColTextDim)

	a.DrawTelemetry()
}
