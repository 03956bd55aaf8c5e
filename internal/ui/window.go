package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/gradebook/internal/command"
	apperrors "github.com/shhac/gradebook/internal/errors"
	"github.com/shhac/gradebook/internal/model"
)

// AppController defines the app-level operations needed by the UI.
type AppController interface {
	Status() *model.StatusState
	Logger() *slog.Logger
	Commands() *command.Handler
}

// MainWindow is the host shell window. It shows where grade data is kept
// and lets the user copy the path or check that the file is readable.
type MainWindow struct {
	window fyne.Window
	state  *model.StatusState
	logger *slog.Logger
	app    AppController

	copyButton  *widget.Button
	checkButton *widget.Button
	aboutButton *widget.Button
}

// NewMainWindow creates the main window bound to the app's status state.
func NewMainWindow(fyneApp fyne.App, app AppController) *MainWindow {
	w := &MainWindow{
		window: fyneApp.NewWindow("Gradebook"),
		state:  app.Status(),
		logger: app.Logger(),
		app:    app,
	}

	w.copyButton = widget.NewButton("Copy Path", w.copyLocation)
	w.checkButton = widget.NewButton("Check Data", w.checkData)
	w.aboutButton = widget.NewButton("About", func() { ShowAboutDialog(w.window) })

	w.setContent()
	w.window.Resize(fyne.NewSize(640, 220))
	return w
}

func (w *MainWindow) setContent() {
	location := widget.NewLabelWithData(w.state.Location)
	location.Wrapping = fyne.TextWrapBreak

	bridge := widget.NewLabelWithData(w.state.BridgeAddress)
	status := widget.NewLabelWithData(w.state.Message)
	status.Truncation = fyne.TextTruncateEllipsis

	form := widget.NewForm(
		widget.NewFormItem("Data file", location),
		widget.NewFormItem("Bridge", bridge),
	)

	w.window.SetContent(container.NewBorder(
		nil,
		status,
		nil,
		nil,
		container.NewVBox(form, container.NewHBox(w.copyButton, w.checkButton, w.aboutButton)),
	))
}

// Window returns the underlying Fyne window.
func (w *MainWindow) Window() fyne.Window {
	return w.window
}

func (w *MainWindow) copyLocation() {
	location, _ := w.state.Location.Get()
	if location == "" {
		_ = w.state.Message.Set("Data location unknown")
		return
	}
	w.window.Clipboard().SetContent(location)
	_ = w.state.Message.Set("Copied data location")
	w.logger.Debug("copied data location", slog.String("path", location))
}

// checkData loads the document once to confirm it can be read.
func (w *MainWindow) checkData() {
	data, err := w.app.Commands().LoadData()
	if err != nil {
		w.ShowError(err)
		return
	}
	if data == "{}" {
		_ = w.state.Message.Set("Grade data is empty")
		return
	}
	_ = w.state.Message.Set(fmt.Sprintf("Grade data readable (%d bytes)", len(data)))
}

// ShowError puts the classified error in the status line and a dialog.
func (w *MainWindow) ShowError(err error) {
	uiErr := apperrors.ClassifyError(err)
	if uiErr == nil {
		return
	}
	w.logger.Warn("showing error",
		slog.String("title", uiErr.Title),
		slog.String("severity", uiErr.Severity.String()),
		slog.Any("error", err))

	_ = w.state.Message.Set(uiErr.Title + ": " + uiErr.Error())
	dialog.ShowInformation(uiErr.Title, uiErr.Body(), w.window)
}
