package vpad

import "testing"

func TestContextStackRoundTrip(t *testing.T) {
	s := newTestSystem()
	s.settings.SetMode(ContextSaveLoad, GestureOnly)

	s.GameModeChanged(ModeNormal)
	s.textboxMode = true
	s.pads[ModeNormal].suppressDraw = true
	before := s.touchMode

	s.ScreenChanged(ScreenSaveLoad, true)
	if s.touchMode != GestureOnly {
		t.Fatal("entering save/load should apply its configured mode")
	}
	if s.textboxMode {
		t.Fatal("save/load should force text-box mode off")
	}

	s.ScreenChanged(ScreenSaveLoad, false)
	if s.touchMode != before {
		t.Error("touch mode not restored")
	}
	if !s.textboxMode {
		t.Error("text-box flag not restored")
	}
	if !s.pads[ModeNormal].suppressDraw {
		t.Error("draw-suppressed flag not restored")
	}
}

func TestContextStackNesting(t *testing.T) {
	s := newTestSystem()
	s.settings.SetMode(ContextDialog, GestureOnly)
	s.settings.SetMode(ContextSaveLoad, TouchAndGesture)

	s.GameModeChanged(ModeNormal) // touch-only

	s.ScreenChanged(ScreenTextBox, true)
	if s.touchMode != GestureOnly || !s.textboxMode {
		t.Fatal("text box should enable gesture mode and derive text-box on")
	}

	s.ScreenChanged(ScreenSaveLoad, true) // nested over the text box
	if s.touchMode != TouchAndGesture || s.textboxMode {
		t.Fatal("nested save/load should override the text box config")
	}

	s.ScreenChanged(ScreenSaveLoad, false)
	if s.touchMode != GestureOnly || !s.textboxMode {
		t.Error("leaving the nested screen should restore the text box config")
	}

	s.ScreenChanged(ScreenTextBox, false)
	if s.touchMode != TouchOnly || s.textboxMode {
		t.Error("leaving the text box should restore gameplay config")
	}
}

func TestPopEmptyStackIsNoop(t *testing.T) {
	s := newTestSystem()
	s.GameModeChanged(ModeNormal)
	mode := s.touchMode

	s.ScreenChanged(ScreenYesNo, false) // unmatched leave

	if s.touchMode != mode || s.textboxMode || len(s.stack) != 0 {
		t.Error("unmatched leave should change nothing")
	}
}

func TestTextboxDerivation(t *testing.T) {
	tests := []struct {
		name       string
		screen     Screen
		dialogMode TouchMode
		want       bool
	}{
		{"textbox with gestures", ScreenTextBox, TouchAndGesture, true},
		{"textbox touch-only", ScreenTextBox, TouchOnly, false},
		{"second stage select with gestures", ScreenStageSelect2, GestureOnly, true},
		{"second stage select touch-only", ScreenStageSelect2, TouchOnly, false},
		{"yes/no always off", ScreenYesNo, TouchAndGesture, false},
		{"first stage select always off", ScreenStageSelect1, GestureOnly, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSystem()
			s.settings.SetMode(ContextDialog, tt.dialogMode)
			s.GameModeChanged(ModeNormal)

			s.ScreenChanged(tt.screen, true)
			if s.textboxMode != tt.want {
				t.Errorf("textboxMode = %v, want %v", s.textboxMode, tt.want)
			}
		})
	}
}

func TestScreenChangeIgnoresFingersBothDirections(t *testing.T) {
	s := newTestSystem()
	s.GameModeChanged(ModeNormal)

	s.Touch(1, 50, 850)
	s.ScreenChanged(ScreenYesNo, true)
	s.Touch(1, 50, 850)
	s.Process()
	if s.Pressed(InputJump) {
		t.Error("finger held into the overlay must not press")
	}

	s.TouchUp(1)
	s.Touch(2, 50, 850)
	s.ScreenChanged(ScreenYesNo, false)
	s.Touch(2, 50, 850)
	s.Process()
	if s.Pressed(InputJump) {
		t.Error("finger held out of the overlay must not press")
	}
}

// --- Mode pad behavior ---

func TestTextboxModeHoldsFire(t *testing.T) {
	s := newTestSystem()
	s.settings.SetMode(ContextDialog, TouchAndGesture)
	s.GameModeChanged(ModeNormal)
	s.ScreenChanged(ScreenTextBox, true)

	// Any tracked finger anywhere asserts fire, bypassing hit-testing.
	s.Touch(1, 500, 500)
	s.Process()
	if !s.Pressed(InputFire) {
		t.Error("text-box mode should hold fire")
	}
	if s.Pressed(InputJump) {
		t.Error("text-box mode should bypass zone hit-testing")
	}
}

func TestPausedPadProxiesNormal(t *testing.T) {
	s := newTestSystem()
	s.settings.SetMode(ContextDialog, TouchAndGesture)
	s.settings.SetMode(ContextPause, TouchAndGesture)
	s.GameModeChanged(ModeNormal)
	s.ScreenChanged(ScreenTextBox, true) // normal pad now in text-box mode

	s.GameModeChanged(ModePaused)
	s.Touch(1, 500, 500)
	s.Process()

	// The paused pad dispatches via the normal pad's current config.
	if !s.Pressed(InputFire) {
		t.Error("paused pad should proxy the normal pad's text-box behavior")
	}
}

func TestOptionsPadProxiesNormalDraw(t *testing.T) {
	s := newTestSystem()
	s.settings.SetMode(ContextOptions, TouchOnly)
	s.GameModeChanged(ModeOptions)

	cv := &fakeCanvas{w: 320, h: 240}
	s.Draw(cv)
	if cv.strokes == 0 {
		t.Error("options pad should draw the gameplay overlay")
	}
}

func TestDrawSuppressedPad(t *testing.T) {
	s := newTestSystem()
	s.GameModeChanged(ModeNormal)
	s.pads[ModeNormal].suppressDraw = true

	cv := &fakeCanvas{w: 320, h: 240}
	s.Draw(cv)
	if cv.strokes != 0 || cv.lines != 0 {
		t.Error("suppressed pad should not draw")
	}
}

func TestGestureOnlyDrawsNothing(t *testing.T) {
	s := newTestSystem()
	s.settings.SetMode(ContextTitle, GestureOnly)
	s.GameModeChanged(ModeTitle)

	cv := &fakeCanvas{w: 320, h: 240}
	s.Draw(cv)
	if cv.strokes != 0 || cv.lines != 0 {
		t.Error("gesture-only mode should draw no overlay")
	}
}

func TestModesWithoutContextDefaultToBoth(t *testing.T) {
	s := newTestSystem()
	s.GameModeChanged(ModeIsland)
	if s.touchMode != TouchAndGesture {
		t.Error("island mode should default to both sources")
	}

	s.GameModeChanged(ModeCredits)
	if s.touchMode != TouchAndGesture {
		t.Error("credits mode should default to both sources")
	}

	s.GameModeChanged(ModeNone)
	if s.touchMode != TouchOnly {
		t.Error("none mode should force touch-only")
	}
}
