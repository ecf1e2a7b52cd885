package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePrefStore struct {
	dark bool
}

func (f *fakePrefStore) LoadDarkMode() (bool, error) { return f.dark, nil }
func (f *fakePrefStore) SaveDarkMode(on bool) error {
	f.dark = on
	return nil
}

func TestUIDerivesThemeFromStorage(t *testing.T) {
	ui, err := NewUI(&fakePrefStore{dark: true})
	require.NoError(t, err)
	assert.True(t, ui.DarkMode())
	assert.True(t, ui.SidebarOpen())
}

func TestToggleDarkModePersists(t *testing.T) {
	prefs := &fakePrefStore{}
	ui, err := NewUI(prefs)
	require.NoError(t, err)

	require.NoError(t, ui.ToggleDarkMode())
	assert.True(t, ui.DarkMode())
	assert.True(t, prefs.dark)

	require.NoError(t, ui.ToggleDarkMode())
	assert.False(t, ui.DarkMode())
	assert.False(t, prefs.dark)
}

func TestToggleSidebarIsEphemeral(t *testing.T) {
	prefs := &fakePrefStore{}
	ui, err := NewUI(prefs)
	require.NoError(t, err)

	ui.ToggleSidebar()
	assert.False(t, ui.SidebarOpen())
	assert.False(t, prefs.dark, "sidebar state never touches persisted prefs")
}
