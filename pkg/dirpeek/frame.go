package dirpeek

import (
	"github.com/datatug/dirpeek/pkg/browser"
	"github.com/datatug/dirpeek/pkg/chroma2tcell"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	filesProportion   = 3
	contentProportion = 7
)

// frame is one full render of both panels. It is rebuilt from the model on
// every draw so layout always follows the current screen size.
type frame struct {
	*tview.Flex
	files   *tview.List
	content *tview.TextView
}

func newFrame(model *browser.Model) *frame {
	f := &frame{
		files:   newFilesPanel(model),
		content: newContentPanel(model),
	}
	f.Flex = tview.NewFlex().
		AddItem(f.files, 0, filesProportion, false).
		AddItem(f.content, 0, contentProportion, false)
	return f
}

func newFilesPanel(model *browser.Model) *tview.List {
	list := tview.NewList().
		ShowSecondaryText(false).
		SetMainTextStyle(Style.EntryStyle).
		SetSelectedStyle(Style.SelectedEntryStyle)
	for _, entry := range model.Entries() {
		list.AddItem(tview.Escape(entry.Name()), "", 0, nil)
	}
	if model.Len() > 0 {
		list.SetCurrentItem(model.Selected())
	}
	setPanelBox(list.Box, "Files")
	return list
}

func newContentPanel(model *browser.Model) *tview.TextView {
	tv := tview.NewTextView().
		SetWrap(true).
		SetWordWrap(true).
		SetTextColor(Style.ContentTextColor)
	text := model.Content()
	if colorized, ok := colorizeSelected(model); ok {
		tv.SetDynamicColors(true)
		text = colorized
	} else {
		tv.SetDynamicColors(false)
	}
	tv.SetText(text)
	setPanelBox(tv.Box, "Content")
	return tv
}

var colorizeFile = chroma2tcell.ColorizeFile

func colorizeSelected(model *browser.Model) (string, bool) {
	if model.Source() != browser.SourceFile {
		return "", false
	}
	entry, ok := model.SelectedEntry()
	if !ok {
		return "", false
	}
	colorized, ok, err := colorizeFile(entry.Name(), model.Content())
	if err != nil || !ok {
		return "", false
	}
	return colorized, true
}

func setPanelBox(box *tview.Box, title string) {
	box.SetBorder(true).
		SetBorderColor(Style.BorderColor).
		SetTitle(title).
		SetTitleColor(Style.TitleColor).
		SetTitleAlign(tview.AlignLeft)
}

func (f *frame) draw(screen tcell.Screen) {
	width, height := screen.Size()
	screen.Clear()
	f.SetRect(0, 0, width, height)
	f.Draw(screen)
	screen.Show()
}
