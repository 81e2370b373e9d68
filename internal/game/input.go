package game

import (
	"orbitdemo/internal/config"
	"orbitdemo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var rlKeys = map[engine.KeyCode]int32{
	engine.KeyW:         rl.KeyW,
	engine.KeyA:         rl.KeyA,
	engine.KeyS:         rl.KeyS,
	engine.KeyD:         rl.KeyD,
	engine.KeyQ:         rl.KeyQ,
	engine.KeyE:         rl.KeyE,
	engine.KeyUp:        rl.KeyUp,
	engine.KeyDown:      rl.KeyDown,
	engine.KeyLeft:      rl.KeyLeft,
	engine.KeyRight:     rl.KeyRight,
	engine.KeySpace:     rl.KeySpace,
	engine.KeyLeftShift: rl.KeyLeftShift,
	engine.KeyEscape:    rl.KeyEscape,
	engine.KeyF1:        rl.KeyF1,
}

var polledKeys = engine.AllKeys()

// pollInput copies this frame's raylib input into the Input resource.
// Pointer and wheel events are skipped while the cursor belongs to the UI.
func pollInput(in *engine.Input, cfg config.InputConfig, pointer bool) {
	if pointer {
		if delta := rl.GetMouseDelta(); delta.X != 0 || delta.Y != 0 {
			in.Motion.Send(engine.MouseMotion{DX: delta.X, DY: delta.Y})
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			in.Wheel.Send(engine.MouseWheel{Y: wheel * cfg.WheelScale})
		}
	}

	for _, code := range polledKeys {
		if key, ok := rlKeys[code]; ok {
			in.Keys.Set(code, rl.IsKeyDown(key))
		}
	}
}
