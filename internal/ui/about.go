package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Version is set at build time via ldflags:
//
//	go build -ldflags "-X github.com/shhac/gradebook/internal/ui.Version=1.2.3"
var Version = "dev"

// ShowAboutDialog displays information about Gradebook.
func ShowAboutDialog(parent fyne.Window) {
	content := container.NewVBox(
		widget.NewLabelWithStyle("Gradebook", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Track courses and grades across semesters"),
		widget.NewLabel("Version "+Version),
	)
	dialog.ShowCustom("About Gradebook", "Close", content, parent)
}
