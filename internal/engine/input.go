package engine

import (
	"fmt"
	"sort"
	"strings"
)

// KeyCode names a physical key independently of the windowing backend.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyLeftShift
	KeyEscape
	KeyF1
)

var keyNames = map[string]KeyCode{
	"W":      KeyW,
	"A":      KeyA,
	"S":      KeyS,
	"D":      KeyD,
	"Q":      KeyQ,
	"E":      KeyE,
	"UP":     KeyUp,
	"DOWN":   KeyDown,
	"LEFT":   KeyLeft,
	"RIGHT":  KeyRight,
	"SPACE":  KeySpace,
	"LSHIFT": KeyLeftShift,
	"ESCAPE": KeyEscape,
	"F1":     KeyF1,
}

// ParseKey resolves a key name from configuration ("W", "up", "Space").
func ParseKey(name string) (KeyCode, error) {
	if code, ok := keyNames[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return code, nil
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}

func (k KeyCode) String() string {
	for name, code := range keyNames {
		if code == k {
			return name
		}
	}
	return "UNKNOWN"
}

// AllKeys returns every bindable key, in a stable order.
func AllKeys() []KeyCode {
	keys := make([]KeyCode, 0, len(keyNames))
	for _, code := range keyNames {
		keys = append(keys, code)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Keyboard holds the held state of every key, refreshed once per frame.
type Keyboard struct {
	held map[KeyCode]bool
}

func (k *Keyboard) Set(code KeyCode, down bool) {
	if k.held == nil {
		k.held = make(map[KeyCode]bool)
	}
	k.held[code] = down
}

// Pressed reports whether the key is currently held. It fires every frame
// the key is down, not just on the transition.
func (k *Keyboard) Pressed(code KeyCode) bool {
	return k.held[code]
}

// Input is the scene-level resource the platform layer fills each frame.
type Input struct {
	Motion Events[MouseMotion]
	Wheel  Events[MouseWheel]
	Keys   Keyboard
}
