package vpad

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Finger int64   `json:"finger,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Mode   string  `json:"mode,omitempty"`
	Screen string  `json:"screen,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

var scriptModes = map[string]GameMode{
	"none":      ModeNone,
	"normal":    ModeNormal,
	"inventory": ModeInventory,
	"map":       ModeMapSystem,
	"island":    ModeIsland,
	"credits":   ModeCredits,
	"intro":     ModeIntro,
	"title":     ModeTitle,
	"paused":    ModePaused,
	"options":   ModeOptions,
}

var scriptScreens = map[string]Screen{
	"textbox":       ScreenTextBox,
	"saveload":      ScreenSaveLoad,
	"yesno":         ScreenYesNo,
	"stage_select1": ScreenStageSelect1,
	"stage_select2": ScreenStageSelect2,
}

// ScriptRunner sequences injected input events and mode changes across
// frames for automated testing. Call Step once per frame between
// PreProcess and Process.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script.
//
// Supported actions: "touch" (finger, x, y in device space), "release"
// (finger), "tap" (x, y normalized), "mode" (mode), "enter_screen" /
// "leave_screen" (screen), and "wait" (frames).
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for _, st := range script.Steps {
		if err := validateStep(st); err != nil {
			return nil, err
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

func validateStep(st scriptStep) error {
	switch st.Action {
	case "touch", "release", "tap", "wait":
		return nil
	case "mode":
		if _, ok := scriptModes[st.Mode]; !ok {
			return fmt.Errorf("parse input script: unknown mode %q", st.Mode)
		}
	case "enter_screen", "leave_screen":
		if _, ok := scriptScreens[st.Screen]; !ok {
			return fmt.Errorf("parse input script: unknown screen %q", st.Screen)
		}
	default:
		return fmt.Errorf("parse input script: unknown action %q", st.Action)
	}
	return nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the script by one frame.
func (r *ScriptRunner) Step(s *System) {
	if r.done {
		return
	}
	// Let pending injections drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "touch":
		s.InjectTouch(TouchID(st.Finger), st.X, st.Y)
	case "release":
		s.InjectTouchUp(TouchID(st.Finger))
	case "tap":
		s.InjectTap(st.X, st.Y)
	case "mode":
		s.GameModeChanged(scriptModes[st.Mode])
	case "enter_screen":
		s.ScreenChanged(scriptScreens[st.Screen], true)
	case "leave_screen":
		s.ScreenChanged(scriptScreens[st.Screen], false)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
