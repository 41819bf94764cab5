package preview

import "github.com/gdamore/tcell/v2"

// Action represents a user-requested preview action.
type Action uint8

const (
	ActionNone Action = iota
	ActionScrollN
	ActionScrollS
	ActionScrollE
	ActionScrollW
	ActionNewSeed
	ActionRegenerate
	ActionFillUp
	ActionFillDown
	ActionSmoothUp
	ActionSmoothDown
	ActionToggleConnectAll
	ActionToggleRegions
	ActionToggleEdges
	ActionNextTheme
	ActionQuit
)

// keyToAction maps a tcell key event to a preview action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionScrollN
	case tcell.KeyDown:
		return ActionScrollS
	case tcell.KeyRight:
		return ActionScrollE
	case tcell.KeyLeft:
		return ActionScrollW
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return ActionScrollN
	case 'j', 'J':
		return ActionScrollS
	case 'l', 'L':
		return ActionScrollE
	case 'h', 'H':
		return ActionScrollW
	case 'n', 'N':
		return ActionNewSeed
	case 'r', 'R':
		return ActionRegenerate
	case '+', '=':
		return ActionFillUp
	case '-', '_':
		return ActionFillDown
	case ']':
		return ActionSmoothUp
	case '[':
		return ActionSmoothDown
	case 'c', 'C':
		return ActionToggleConnectAll
	case 'p', 'P':
		return ActionToggleRegions
	case 'e', 'E':
		return ActionToggleEdges
	case 't', 'T':
		return ActionNextTheme
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// actionToDelta converts a scroll action to (dx, dy).
func actionToDelta(a Action) (int, int) {
	switch a {
	case ActionScrollN:
		return 0, -1
	case ActionScrollS:
		return 0, 1
	case ActionScrollE:
		return 1, 0
	case ActionScrollW:
		return -1, 0
	}
	return 0, 0
}
