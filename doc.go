// Package vpad is a virtual touch gamepad for [Ebitengine] games.
//
// It turns raw multi-touch finger samples into a fixed array of logical
// button flags, the same array the rest of an input system would read if
// the flags came from physical keys. Two touch philosophies are arbitrated
// per game context: a fixed on-screen keypad with an 8-sector directional
// wheel, and discrete tap gestures from a platform recognizer.
//
// # Quick start
//
//	sys := vpad.New(vpad.Config{})
//	rec := vpad.NewTapRecognizer(sys.Tap)
//	sys.SetRecognizer(rec)
//
//	var touches vpad.TouchSource
//
//	// In your ebiten.Game Update:
//	sys.PreProcess()
//	touches.Feed(sys, screenW, screenH)
//	rec.Update(screenW, screenH)
//	sys.Process()
//	if sys.Pressed(vpad.InputJump) { ... }
//
//	// In Draw:
//	sys.Draw(vpad.ImageCanvas{Dst: screen})
//
// # Game modes and modal screens
//
// Each game mode (title, gameplay, inventory, pause, ...) has its own pad
// behavior, selected by [System.GameModeChanged]. Modal overlays — dialog
// text boxes, save/load, yes/no prompts, stage selects — are reported via
// [System.ScreenChanged]; opening one saves the current touch
// configuration on a stack and closing restores it exactly, so nested
// overlays unwind cleanly.
//
// Which touch sources are live per context comes from a [Settings] table,
// loadable from a user TOML file with [LoadSettings].
//
// All methods must be called from the game loop goroutine; the system has
// no internal locking.
//
// [Ebitengine]: https://ebitengine.org
package vpad
