package vpad

import "fmt"

// contextFrame is the configuration snapshot saved when a modal overlay
// opens. Popping restores all four fields verbatim. The game mode is part
// of the frame because suppressDraw belongs to whichever pad was active
// at push time, not whichever is active at pop time.
type contextFrame struct {
	mode         TouchMode
	gameMode     GameMode
	suppressDraw bool
	textbox      bool
}

// screenConfig maps each modal screen kind to its settings context and to
// how the text-box flag is decided. Most kinds force text-box mode off;
// the dialog text box and the second stage-select variant derive it from
// the resulting touch mode so rapid-advance-on-tap stays available there.
var screenConfig = map[Screen]struct {
	ctx             Context
	textboxFromMode bool
}{
	ScreenTextBox:      {ContextDialog, true},
	ScreenSaveLoad:     {ContextSaveLoad, false},
	ScreenYesNo:        {ContextDialog, false},
	ScreenStageSelect1: {ContextDialog, false},
	ScreenStageSelect2: {ContextDialog, true},
}

// dispatch routes one tracked finger position through the active mode pad.
func (s *System) dispatch(p Point) {
	s.pads[s.gameMode].update(s, p)
}

// drawActive renders the active pad unless its drawing is suppressed.
func (s *System) drawActive(cv Canvas) {
	pad := &s.pads[s.gameMode]
	if pad.suppressDraw {
		return
	}
	pad.draw(s, cv)
}

// GameModeChanged makes the pad for the new mode active, runs its enter
// behavior, and absorbs any fingers held through the transition.
func (s *System) GameModeChanged(m GameMode) {
	if m < 0 || m >= modeCount {
		panic(fmt.Sprintf("vpad: game-mode change to unknown mode %d", m))
	}

	s.gameMode = m
	if enter := s.pads[m].onEnter; enter != nil {
		enter(s)
	}
	s.tracker.ignoreAll()
}

// SetPadHidden hides or shows the pad for one game mode without changing
// its dispatch. The flag is saved and restored by modal screen changes.
func (s *System) SetPadHidden(m GameMode, hidden bool) {
	if m < 0 || m >= modeCount {
		panic(fmt.Sprintf("vpad: pad visibility for unknown mode %d", m))
	}
	s.pads[m].suppressDraw = hidden
}

// GameMode returns the game mode whose pad is currently active.
func (s *System) GameMode() GameMode {
	return s.gameMode
}

// ScreenChanged handles a modal overlay opening (enter = true) or closing.
// Opening pushes the current configuration and applies the screen kind's
// own; closing pops and restores it exactly. A pop with nothing pushed is
// ignored, so unmatched enter/leave pairs cannot corrupt state. Fingers
// held across the change are absorbed in both directions.
func (s *System) ScreenChanged(screen Screen, enter bool) {
	s.tracker.ignoreAll()

	if !enter {
		if len(s.stack) == 0 {
			return
		}
		f := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]

		s.setTouchMode(f.mode)
		s.pads[f.gameMode].suppressDraw = f.suppressDraw
		s.textboxMode = f.textbox
		return
	}

	cfg, ok := screenConfig[screen]
	if !ok {
		panic(fmt.Sprintf("vpad: screen change for unknown screen %d", screen))
	}

	s.stack = append(s.stack, contextFrame{
		mode:         s.touchMode,
		gameMode:     s.gameMode,
		suppressDraw: s.pads[s.gameMode].suppressDraw,
		textbox:      s.textboxMode,
	})

	s.setTouchMode(s.settings.Mode(cfg.ctx))
	if cfg.textboxFromMode {
		s.textboxMode = s.touchMode != TouchOnly
	} else {
		s.textboxMode = false
	}
}
