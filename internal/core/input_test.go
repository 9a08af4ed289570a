package core

import "testing"

func TestInputStateSetAndHeld(t *testing.T) {
	in := NewInputState()

	if in.Held(ActionLeft) {
		t.Error("Nothing should be held in a fresh input state")
	}

	in.Set(ActionLeft, true)
	if !in.Held(ActionLeft) {
		t.Error("ActionLeft should be held after Set(true)")
	}
	if in.Held(ActionRight) {
		t.Error("ActionRight should not be held")
	}

	// Level-triggered: the flag stays up until released
	if !in.Held(ActionLeft) {
		t.Error("ActionLeft should still be held on a second read")
	}

	in.Set(ActionLeft, false)
	if in.Held(ActionLeft) {
		t.Error("ActionLeft should be released after Set(false)")
	}
}

func TestInputStateClear(t *testing.T) {
	in := NewInputState()
	in.Set(ActionLeft, true)
	in.Set(ActionShoot, true)

	in.Clear()

	if in.Held(ActionLeft) || in.Held(ActionShoot) {
		t.Error("Clear should release all actions")
	}
}

func TestInputStateZeroValue(t *testing.T) {
	// The zero value must be usable without NewInputState
	var in InputState

	if in.Held(ActionShoot) {
		t.Error("Zero-value input state should hold nothing")
	}

	in.Set(ActionShoot, true)
	if !in.Held(ActionShoot) {
		t.Error("Set on zero-value input state should work")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionShoot, "Shoot"},
		{ActionPause, "Pause"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if tc.action.String() != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, tc.action.String(), tc.expected)
		}
	}
}
