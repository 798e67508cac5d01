package dirpeek

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type Styles struct {
	BorderColor tcell.Color
	TitleColor  tcell.Color

	EntryStyle         tcell.Style
	SelectedEntryStyle tcell.Style
	ContentTextColor   tcell.Color
}

// Style takes its colours from the tview theme.
var Style = Styles{
	BorderColor: tview.Styles.BorderColor,
	TitleColor:  tview.Styles.TitleColor,

	EntryStyle:         tcell.StyleDefault.Foreground(tview.Styles.PrimaryTextColor),
	SelectedEntryStyle: tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	ContentTextColor:   tview.Styles.PrimaryTextColor,
}
