package model

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/bnema/tilemux/internal/cli/styles"
	"github.com/bnema/tilemux/internal/domain/entity"
	"github.com/bnema/tilemux/internal/infrastructure/plugin"
)

// keySequences are the xterm encodings of the keys bubbletea decodes into
// named key types.
var keySequences = map[tea.KeyType]string{
	tea.KeyUp:         "\x1b[A",
	tea.KeyDown:       "\x1b[B",
	tea.KeyRight:      "\x1b[C",
	tea.KeyLeft:       "\x1b[D",
	tea.KeyShiftTab:   "\x1b[Z",
	tea.KeyHome:       "\x1b[H",
	tea.KeyEnd:        "\x1b[F",
	tea.KeyPgUp:       "\x1b[5~",
	tea.KeyPgDown:     "\x1b[6~",
	tea.KeyInsert:     "\x1b[2~",
	tea.KeyDelete:     "\x1b[3~",
	tea.KeyCtrlUp:     "\x1b[1;5A",
	tea.KeyCtrlDown:   "\x1b[1;5B",
	tea.KeyCtrlRight:  "\x1b[1;5C",
	tea.KeyCtrlLeft:   "\x1b[1;5D",
	tea.KeyShiftUp:    "\x1b[1;2A",
	tea.KeyShiftDown:  "\x1b[1;2B",
	tea.KeyShiftRight: "\x1b[1;2C",
	tea.KeyShiftLeft:  "\x1b[1;2D",
	tea.KeyF1:         "\x1bOP",
	tea.KeyF2:         "\x1bOQ",
	tea.KeyF3:         "\x1bOR",
	tea.KeyF4:         "\x1bOS",
	tea.KeyF5:         "\x1b[15~",
	tea.KeyF6:         "\x1b[17~",
	tea.KeyF7:         "\x1b[18~",
	tea.KeyF8:         "\x1b[19~",
	tea.KeyF9:         "\x1b[20~",
	tea.KeyF10:        "\x1b[21~",
	tea.KeyF11:        "\x1b[23~",
	tea.KeyF12:        "\x1b[24~",
}

// keyBytes re-encodes a decoded key press into what a shell expects on its
// pty. Unknown keys encode to nil.
func keyBytes(k tea.KeyMsg) []byte {
	var b []byte
	switch {
	case k.Type == tea.KeyRunes:
		b = []byte(string(k.Runes))
		if k.Paste {
			return b
		}
	case k.Type == tea.KeySpace:
		b = []byte{' '}
	case k.Type >= 0 && k.Type < 32, k.Type == tea.KeyBackspace:
		b = []byte{byte(k.Type)}
	default:
		seq, ok := keySequences[k.Type]
		if !ok {
			return nil
		}
		b = []byte(seq)
	}
	if k.Alt {
		b = append([]byte{ansi.ESC}, b...)
	}
	return b
}

// PlayHints renders the status bar help of every mode from the key map.
func PlayHints(keys styles.PlayKeyMap, h help.Model) plugin.Hints {
	return plugin.Hints{
		entity.InputModeNormal: h.ShortHelpView(keys.ShortHelp()),
		entity.InputModeLocked: h.ShortHelpView([]key.Binding{keys.Unlock}),
		entity.InputModePane:   h.ShortHelpView(keys.PaneHelp()),
		entity.InputModeResize: h.ShortHelpView(keys.ResizeHelp()),
		entity.InputModeScroll: h.ShortHelpView(keys.ScrollHelp()),
	}
}
