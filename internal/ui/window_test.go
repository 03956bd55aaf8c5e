package ui

import (
	"errors"
	"log/slog"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/gradebook/internal/command"
	apperrors "github.com/shhac/gradebook/internal/errors"
	"github.com/shhac/gradebook/internal/logging"
	"github.com/shhac/gradebook/internal/model"
	"github.com/shhac/gradebook/internal/storage"
)

type fakeController struct {
	state    *model.StatusState
	commands *command.Handler
}

func (f *fakeController) Status() *model.StatusState { return f.state }
func (f *fakeController) Logger() *slog.Logger       { return logging.NewNopLogger() }
func (f *fakeController) Commands() *command.Handler { return f.commands }

type unreadableRepository struct{}

func (unreadableRepository) Save(string) error { return nil }
func (unreadableRepository) Load() (string, error) {
	return "", &apperrors.IOError{Op: "load document", Err: errors.New("is a directory")}
}
func (unreadableRepository) Locate() string { return "/data/grade_data.json" }

func newController(repo storage.Repository) *fakeController {
	return &fakeController{
		state:    model.NewStatusState(),
		commands: command.NewHandler(repo, logging.NewNopLogger()),
	}
}

func message(t *testing.T, state *model.StatusState) string {
	t.Helper()
	msg, err := state.Message.Get()
	require.NoError(t, err)
	return msg
}

func TestNewMainWindow(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	mw := NewMainWindow(app, newController(storage.NewMemoryRepository()))

	require.NotNil(t, mw.Window())
	assert.Equal(t, "Gradebook", mw.Window().Title())
	assert.NotNil(t, mw.copyButton)
	assert.NotNil(t, mw.checkButton)
}

func TestMainWindow_CopyLocation(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	ctrl := newController(storage.NewMemoryRepository())
	mw := NewMainWindow(app, ctrl)
	require.NoError(t, ctrl.state.Location.Set("/home/ana/.local/share/com.gradebook.desktop/grade_data.json"))

	test.Tap(mw.copyButton)

	assert.Equal(t, "/home/ana/.local/share/com.gradebook.desktop/grade_data.json", mw.Window().Clipboard().Content())
	assert.Equal(t, "Copied data location", message(t, ctrl.state))
}

func TestMainWindow_CopyLocationUnknown(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	ctrl := newController(storage.NewMemoryRepository())
	mw := NewMainWindow(app, ctrl)

	test.Tap(mw.copyButton)

	assert.Equal(t, "Data location unknown", message(t, ctrl.state))
}

func TestMainWindow_CheckData(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	repo := storage.NewMemoryRepository()
	ctrl := newController(repo)
	mw := NewMainWindow(app, ctrl)

	test.Tap(mw.checkButton)
	assert.Equal(t, "Grade data is empty", message(t, ctrl.state))

	require.NoError(t, repo.Save(`{"term":"Fall"}`))
	test.Tap(mw.checkButton)
	assert.Equal(t, "Grade data readable (15 bytes)", message(t, ctrl.state))

	require.NoError(t, repo.Save("{}"))
	test.Tap(mw.checkButton)
	assert.Equal(t, "Grade data is empty", message(t, ctrl.state))
}

func TestMainWindow_CheckDataError(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	ctrl := newController(unreadableRepository{})
	mw := NewMainWindow(app, ctrl)

	test.Tap(mw.checkButton)

	assert.Equal(t, "Could Not Access Data: load document: is a directory", message(t, ctrl.state))
	assert.NotNil(t, mw.Window().Canvas().Overlays().Top(), "error dialog should be shown")
}
