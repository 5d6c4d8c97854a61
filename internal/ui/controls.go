package ui

// Action is what a control asks the app to do.
type Action uint8

const (
	ActionNone Action = iota
	ActionRegenerate
	ActionFullscreen
)

const (
	buttonW      = 112
	buttonH      = 28
	buttonMargin = 12
)

// Button is a clickable rectangle in screen pixels.
type Button struct {
	Action     Action
	Label      string
	X, Y, W, H int
}

// Contains reports whether the point lies inside the button.
func (b Button) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// LayoutButtons places the regenerate and fullscreen buttons along the top
// right edge of a screen screenW pixels wide.
func LayoutButtons(screenW int, fullscreen bool) []Button {
	label := "Fullscreen"
	if fullscreen {
		label = "Exit full"
	}
	x := screenW - buttonMargin - buttonW
	if x < buttonMargin {
		x = buttonMargin
	}
	return []Button{
		{Action: ActionFullscreen, Label: label, X: x, Y: buttonMargin, W: buttonW, H: buttonH},
		{Action: ActionRegenerate, Label: "Regenerate", X: x, Y: 2*buttonMargin + buttonH, W: buttonW, H: buttonH},
	}
}

// HitTest returns the action of the first button containing (x, y).
func HitTest(buttons []Button, x, y int) Action {
	for _, b := range buttons {
		if b.Contains(x, y) {
			return b.Action
		}
	}
	return ActionNone
}
