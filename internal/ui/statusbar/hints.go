package statusbar

import "github.com/riordanpawley/weekplan/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeNormal:
		return "h/l: day  j/k: task  n: new  e: edit  Space: done  d: delete  m: move  /: search  f: filter  ?: help  q: quit"
	case types.ModeMove:
		return "h/l: target day  m/Enter: drop  Esc: cancel"
	case types.ModeSearch:
		return "Type to filter  Enter: keep  Esc: clear"
	default:
		return ""
	}
}
