package game

import (
	"fmt"
	"orbitdemo/internal/components"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"
)

var (
	colorPanel  = rl.NewColor(24, 24, 32, 220)
	colorWidget = rl.NewColor(38, 38, 50, 255)
	colorBorder = rl.NewColor(99, 102, 241, 255)
	colorText   = rl.NewColor(200, 200, 215, 255)
)

const (
	panelWidth    = 300
	panelHeight   = 190
	panelTextSize = 14
)

func applyPanelStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorWidget))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBorder))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, panelTextSize)
}

// DrawUI draws the help line, frame stats and the orbit readout. F1 opens the
// tuning panel.
func (g *Game) DrawUI() {
	rl.DrawText("Mouse to orbit, wheel to zoom, "+g.moveHint(), 10, 10, 20, rl.DarkGray)
	rl.DrawText("F1 tuning panel, Esc to quit", 10, 35, 20, rl.DarkGray)
	rl.DrawFPS(10, 60)

	if ctrl, ok := g.controller(); ok {
		rl.DrawText(fmt.Sprintf("Yaw %.2f  Pitch %.2f  Distance %.2f", ctrl.Yaw, ctrl.Pitch, ctrl.Distance), 10, 85, 16, rl.Yellow)
	}

	if g.DebugMode {
		stats := g.World.Renderer.Stats
		rl.DrawText(fmt.Sprintf("Update:  %.2f ms", g.updateMs), 10, 110, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Draw:    %.2f ms", g.drawMs), 10, 130, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Drawn %d  Culled %d  Stand-ins %d", stats.Drawn, stats.Culled, stats.Fallbacks), 10, 150, 16, rl.Lime)
		g.drawTuningPanel()
	}
}

func (g *Game) drawTuningPanel() {
	x := float32(rl.GetScreenWidth() - panelWidth - 10)
	y := float32(10)
	rl.DrawRectangle(int32(x), int32(y), panelWidth, panelHeight, colorPanel)
	rl.DrawRectangleLines(int32(x), int32(y), panelWidth, panelHeight, colorBorder)
	rl.DrawText("Tuning", int32(x)+10, int32(y)+8, 18, colorText)

	labelX := int32(x) + 10
	sliderX := x + 120
	row := func(i int) float32 { return y + 40 + float32(i)*32 }

	rl.DrawText("Look", labelX, int32(row(0))+4, 14, colorText)
	g.camera.LookSensitivity = gui.Slider(rl.Rectangle{X: sliderX, Y: row(0), Width: 120, Height: 20},
		"", fmt.Sprintf("%.3f", g.camera.LookSensitivity), g.camera.LookSensitivity, 0.001, 0.05)

	rl.DrawText("Zoom", labelX, int32(row(1))+4, 14, colorText)
	g.camera.ZoomSensitivity = gui.Slider(rl.Rectangle{X: sliderX, Y: row(1), Width: 120, Height: 20},
		"", fmt.Sprintf("%.3f", g.camera.ZoomSensitivity), g.camera.ZoomSensitivity, 0.001, 0.05)

	rl.DrawText("Speed", labelX, int32(row(2))+4, 14, colorText)
	g.locomotion.Speed = gui.Slider(rl.Rectangle{X: sliderX, Y: row(2), Width: 120, Height: 20},
		"", fmt.Sprintf("%.1f", g.locomotion.Speed), g.locomotion.Speed, 0, 10)

	r := g.World.Renderer
	r.ShowColliders = gui.CheckBox(rl.Rectangle{X: float32(labelX), Y: row(3), Width: 18, Height: 18},
		"Show colliders", r.ShowColliders)
}

func (g *Game) moveHint() string {
	return fmt.Sprintf("%s/%s to walk", g.locomotion.Forward, g.locomotion.Backward)
}

func (g *Game) controller() (*components.CameraController, bool) {
	w := g.World.ECS()
	e := g.World.Scene.Camera
	controllers := ecs.NewMap1[components.CameraController](w)
	if e.IsZero() || !w.Alive(e) || !controllers.HasAll(e) {
		return nil, false
	}
	return controllers.Get(e), true
}
