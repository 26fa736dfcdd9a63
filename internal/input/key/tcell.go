package key

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// tcellKeys maps terminal special keys to Key values.
var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyF1:         KeyF1,
	tcell.KeyF2:         KeyF2,
	tcell.KeyF3:         KeyF3,
	tcell.KeyF4:         KeyF4,
	tcell.KeyF5:         KeyF5,
	tcell.KeyF6:         KeyF6,
	tcell.KeyF7:         KeyF7,
	tcell.KeyF8:         KeyF8,
	tcell.KeyF9:         KeyF9,
	tcell.KeyF10:        KeyF10,
	tcell.KeyF11:        KeyF11,
	tcell.KeyF12:        KeyF12,
	tcell.KeyPause:      KeyPause,
	tcell.KeyPrint:      KeyPrintScreen,
}

// convertTcellMod converts tcell modifiers to our Modifier type.
func convertTcellMod(m tcell.ModMask) Modifier {
	var mods Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(ModMeta)
	}
	return mods
}

// FromTcell converts a terminal key event into an Event.
//
// Terminals report Ctrl+letter as a control code; those become the letter
// with ModCtrl. Upper-case runes carry an implicit Shift. Control codes that
// collide with named keys (Ctrl+I is Tab, Ctrl+M is Enter, Ctrl+H is
// Backspace) are reported as the named key.
func FromTcell(ev *tcell.EventKey) Event {
	if ev == nil {
		return Event{}
	}
	mods := convertTcellMod(ev.Modifiers())
	at := ev.When()
	if at.IsZero() {
		at = time.Now()
	}

	k := ev.Key()
	switch {
	case k == tcell.KeyRune:
		r := ev.Rune()
		if unicode.IsUpper(r) {
			mods = mods.With(ModShift)
		}
		return Event{Key: KeyRune, Rune: r, Modifiers: mods, Timestamp: at}
	case k == tcell.KeyBacktab:
		return Event{Key: KeyTab, Modifiers: mods.With(ModShift), Timestamp: at}
	}

	if named, ok := tcellKeys[k]; ok {
		return Event{Key: named, Modifiers: mods, Timestamp: at}
	}

	switch {
	case k == tcell.KeyCtrlSpace:
		return Event{Key: KeyRune, Rune: ' ', Modifiers: mods.With(ModCtrl), Timestamp: at}
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		r := 'a' + rune(k-tcell.KeyCtrlA)
		return Event{Key: KeyRune, Rune: r, Modifiers: mods.With(ModCtrl), Timestamp: at}
	}

	return Event{Key: KeyNone, Modifiers: mods, Timestamp: at}
}
