// File: internal/wizard/wizard.go
// Brief: The wizard page state machine: advance/retreat transitions and guards.

// Package wizard computes page transitions. Advance and Retreat are total,
// pure functions over (page, model) and structural inverses of each other;
// they live side by side so the inverse relationship stays obvious and
// testable. The only branch in the flow is the editor advice screen, which
// both directions derive from the model's editor answer.
package wizard

import "github.com/example/kickstart/internal/selection"

// Advance returns the page that follows p given the current answers. The
// terminal page returns itself; a guarded page (see CanAdvance) also returns
// itself rather than failing.
func Advance(p selection.Page, m selection.Model) selection.Page {
	switch p {
	case selection.PageGetStarted:
		return selection.PageEditor
	case selection.PageEditor:
		if m.Editor == selection.EditorUnset {
			return p
		}
		return advicePage(m.Editor)
	case selection.PageIntelliJAdvice, selection.PageVSCodeAdvice, selection.PageOtherEditorAdvice:
		return selection.PageDataFormats
	case selection.PageDataFormats:
		return selection.PageDatabase
	case selection.PageDatabase:
		return selection.PageLogging
	case selection.PageLogging:
		return selection.PageFinish
	case selection.PageFinish:
		return p
	default:
		return p
	}
}

// Retreat returns the page that precedes p given the current answers. The
// initial page returns itself. Retreating from the data-formats page
// re-derives the advice screen from the model so the back path retraces the
// branch the user actually took.
func Retreat(p selection.Page, m selection.Model) selection.Page {
	switch p {
	case selection.PageGetStarted:
		return p
	case selection.PageEditor:
		return selection.PageGetStarted
	case selection.PageIntelliJAdvice, selection.PageVSCodeAdvice, selection.PageOtherEditorAdvice:
		return selection.PageEditor
	case selection.PageDataFormats:
		return advicePage(m.Editor)
	case selection.PageDatabase:
		return selection.PageDataFormats
	case selection.PageLogging:
		return selection.PageDatabase
	case selection.PageFinish:
		return selection.PageLogging
	default:
		return p
	}
}

// CanAdvance reports whether a forward transition is permitted from p. The
// editor page is the only transition gated by model state: it stays put
// until an editor has been chosen. The terminal page reports false because
// its forward action is a no-op.
func CanAdvance(p selection.Page, m selection.Model) bool {
	switch p {
	case selection.PageEditor:
		return m.Editor != selection.EditorUnset
	case selection.PageFinish:
		return false
	default:
		return true
	}
}

// advicePage picks the advice screen for an editor answer. Anything other
// than the two first-class editors, including unset, lands on the generic
// advice screen.
func advicePage(e selection.Editor) selection.Page {
	switch e {
	case selection.EditorIntelliJ:
		return selection.PageIntelliJAdvice
	case selection.EditorVSCode:
		return selection.PageVSCodeAdvice
	default:
		return selection.PageOtherEditorAdvice
	}
}
