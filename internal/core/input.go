package core

// Action is a semantic input, decoupled from physical keys.
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionFire    // space: shoot, launch, grapple
	ActionPause   // p
	ActionRestart // r, after the demo is over
	ActionConfirm // enter in menus
	ActionBack    // esc / b
	ActionQuit    // q, ctrl+c

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionFire:    "Fire",
	ActionPause:   "Pause",
	ActionRestart: "Restart",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionQuit:    "Quit",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is the set of actions triggered during one tick.
type InputFrame struct {
	bits uint32
}

// NewInputFrame returns a frame with the given actions set.
func NewInputFrame(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks a as triggered. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether a was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool { return f.bits == 0 }

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() { f.bits = 0 }
