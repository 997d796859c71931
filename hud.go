package vpad

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// String returns a short name for the game mode, used by the debug HUD.
func (m GameMode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeNormal:
		return "normal"
	case ModeInventory:
		return "inventory"
	case ModeMapSystem:
		return "map"
	case ModeIsland:
		return "island"
	case ModeCredits:
		return "credits"
	case ModeIntro:
		return "intro"
	case ModeTitle:
		return "title"
	case ModePaused:
		return "paused"
	case ModeOptions:
		return "options"
	}
	return "invalid"
}

// DrawDebugHUD prints the system's live state in the top-left corner.
// Development aid only; not gated by the visibility switch.
func (s *System) DrawDebugHUD(dst *ebiten.Image) {
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf(
		"vpad: %s / %s\nfingers: %d ignored: %d\ntaps: %d stack: %d",
		s.gameMode, s.touchMode,
		len(s.tracker.fingers), len(s.tracker.ignored),
		len(s.taps.taps), len(s.stack)), 4, 4)
}
