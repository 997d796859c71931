package vpad

import "image/color"

// Input identifies one slot in the logical button-flag array. The set is
// closed: every abstract button the game reads — movement, actions, menu
// entries, function/debug keys — has exactly one slot, independent of
// whether a touch zone, a tap gesture, or a physical key produced it.
type Input int

const (
	InputLeft Input = iota
	InputRight
	InputUp
	InputDown

	InputJump
	InputFire

	InputPrevWeapon
	InputNextWeapon

	InputInventory
	InputMap

	InputEscape
	InputF1
	InputF2
	InputF3
	InputF4
	InputF5
	InputF6
	InputF7
	InputF8
	InputF9
	InputF10
	InputF11
	InputF12

	InputFreezeFrame
	InputFrameAdvance
	InputDebugFly

	// InputCount is the size of the flag array. Not a valid Input.
	InputCount
)

// GameMode identifies which part of the game currently owns the screen.
// Exactly one mode pad is active at a time, selected by this value.
type GameMode int

const (
	ModeNone      GameMode = iota // no mode yet (boot)
	ModeNormal                    // regular gameplay
	ModeInventory                 // inventory screen
	ModeMapSystem                 // map screen
	ModeIsland                    // island cutscene
	ModeCredits                   // credits roll
	ModeIntro                     // intro movie
	ModeTitle                     // title screen
	ModePaused                    // pause overlay
	ModeOptions                   // options overlay

	modeCount
)

// Screen identifies a modal overlay that opens on top of a game mode and
// later closes, restoring the prior touch configuration.
type Screen int

const (
	ScreenTextBox      Screen = iota // scripted dialog text box
	ScreenSaveLoad                   // save/load profile screen
	ScreenYesNo                      // yes/no prompt
	ScreenStageSelect1               // stage select, first variant
	ScreenStageSelect2               // stage select, second variant
)

// TouchMode selects which touch-event sources are live.
type TouchMode int

const (
	TouchOnly       TouchMode = iota // continuous finger tracking only
	GestureOnly                      // discrete tap gestures only
	TouchAndGesture                  // both sources live
)

// String returns a short name for the touch mode, used by the debug HUD.
func (m TouchMode) String() string {
	switch m {
	case TouchOnly:
		return "touch"
	case GestureOnly:
		return "gesture"
	case TouchAndGesture:
		return "both"
	}
	return "invalid"
}

// Context is a key into the per-context touch-mode settings table. Each
// UI context the player can configure separately gets one key.
type Context int

const (
	ContextTitle Context = iota
	ContextMovies
	ContextInventory
	ContextMapSystem
	ContextPause
	ContextOptions
	ContextSaveLoad
	ContextDialog

	contextCount
)

// TouchID identifies one finger for the duration of its contact. Values
// come from the platform; they may be reused after the finger lifts.
type TouchID int64

// Colors for pad drawing. Pressed zones and wheel sectors flip from the
// released gold to red while a finger holds them.
var (
	ColorReleased color.Color = color.RGBA{R: 0xff, G: 0xcf, B: 0x33, A: 0xff}
	ColorPressed  color.Color = color.RGBA{R: 0xff, A: 0xff}
	ColorMarker   color.Color = color.RGBA{R: 0xff, G: 0xcf, B: 0x33, A: 0xff}
)
