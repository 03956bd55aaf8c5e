package command

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/shhac/gradebook/internal/errors"
	"github.com/shhac/gradebook/internal/logging"
	"github.com/shhac/gradebook/internal/storage"
)

// failingRepository fails every read and write.
type failingRepository struct {
	err error
}

func (f failingRepository) Save(string) error     { return f.err }
func (f failingRepository) Load() (string, error) { return "", f.err }
func (f failingRepository) Locate() string        { return "/unwritable/grade_data.json" }

func newMemoryHandler() *Handler {
	return NewHandler(storage.NewMemoryRepository(), logging.NewNopLogger())
}

func TestHandler_LoadDefault(t *testing.T) {
	h := newMemoryHandler()

	got, err := h.LoadData()
	require.NoError(t, err)
	assert.Equal(t, "{}", got)
}

func TestHandler_SaveThenLoad(t *testing.T) {
	h := newMemoryHandler()

	require.NoError(t, h.SaveData(`{"activeSemesterId":null,"semesters":[]}`))

	got, err := h.LoadData()
	require.NoError(t, err)
	assert.Equal(t, `{"activeSemesterId":null,"semesters":[]}`, got)
}

func TestHandler_ErrorsAreText(t *testing.T) {
	cause := &apperrors.IOError{Op: "save document", Err: errors.New("no space left on device")}
	h := NewHandler(failingRepository{err: cause}, logging.NewNopLogger())

	err := h.SaveData("{}")
	require.Error(t, err)
	var cmdErr *Error
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, SaveData, cmdErr.Command)
	assert.Equal(t, "save document: no space left on device", cmdErr.Message)
	assert.ErrorIs(t, err, cause)

	_, err = h.LoadData()
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, LoadData, cmdErr.Command)

	assert.Equal(t, "/unwritable/grade_data.json", h.GetDataLocation())
}

func TestHandler_Invoke(t *testing.T) {
	h := newMemoryHandler()

	got, err := h.Invoke(LoadData, nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", got)

	got, err = h.Invoke(SaveData, map[string]string{ArgData: `{"term":"Fall"}`})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = h.Invoke(LoadData, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"term":"Fall"}`, got)

	got, err = h.Invoke(GetDataLocation, nil)
	require.NoError(t, err)
	assert.Equal(t, storage.MemoryLocation, got)
}

func TestHandler_InvokeRejects(t *testing.T) {
	tests := []struct {
		name    string
		command string
		args    map[string]string
		wantIs  error
	}{
		{"unknown command", "delete_data", nil, apperrors.ErrUnknownCommand},
		{"missing data", SaveData, map[string]string{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newMemoryHandler()

			_, err := h.Invoke(tt.command, tt.args)
			require.Error(t, err)
			var cmdErr *Error
			require.ErrorAs(t, err, &cmdErr)
			assert.Equal(t, tt.command, cmdErr.Command)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}

			got, err := h.LoadData()
			require.NoError(t, err)
			assert.Equal(t, "{}", got, "a rejected command must not write")
		})
	}
}

func TestHandler_FileBacked(t *testing.T) {
	root := filepath.Join(t.TempDir(), "gradebook")
	store, err := storage.NewDocumentStore(storage.DirContext(root), logging.NewNopLogger())
	require.NoError(t, err)
	h := NewHandler(store, logging.NewNopLogger())

	location, err := h.Invoke(GetDataLocation, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, storage.DocumentFileName), location)

	_, err = h.Invoke(SaveData, map[string]string{ArgData: "A"})
	require.NoError(t, err)
	_, err = h.Invoke(SaveData, map[string]string{ArgData: "B"})
	require.NoError(t, err)

	got, err := h.Invoke(LoadData, nil)
	require.NoError(t, err)
	assert.Equal(t, "B", got)
}

func TestHandler_Names(t *testing.T) {
	assert.Equal(t, []string{"save_data", "load_data", "get_data_location"}, newMemoryHandler().Names())
}
