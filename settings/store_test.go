package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_MissingFileYieldsDefaults(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", FileName))
	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, Default().MoveSpeed, cfg.MoveSpeed)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", FileName))

	cfg := Default()
	cfg.MoveSpeed = 0.8
	cfg.Is24Hour = true
	cfg.AMPMSide = "Trailing"
	cfg.TimeZone = "Asia/Tokyo"
	cfg.SelectedFont = "basic"
	cfg.HueBanList = "0.1,0.5"
	cfg.Sound = true
	require.NoError(t, store.Save(cfg))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	// No temp files left behind
	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStore_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("move_speed: 0.2\nis_24_hour: true\n"), 0o644))

	cfg, err := NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 0.2, cfg.MoveSpeed)
	assert.True(t, cfg.Is24Hour)
	assert.Equal(t, 80.0, cfg.FontSize)
	assert.True(t, cfg.ShowAMPM)
}

func TestStore_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("move_speed: [unclosed\n"), 0o644))

	cfg, err := NewStore(path).Load()
	require.Error(t, err)
	require.NotNil(t, cfg, "defaults returned alongside the error")
	assert.Equal(t, 0.5, cfg.MoveSpeed)
}

func TestStore_LoadNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("move_speed: 7\nampm_scale: 0.3\n"), 0o644))

	cfg, err := NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 1.0, cfg.MoveSpeed)
	assert.Equal(t, 0.25, cfg.AMPMScale)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	t.Setenv("HOME", "/tmp/home-test")
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, AppDirName, filepath.Base(filepath.Dir(path)))
	assert.Equal(t, FileName, filepath.Base(path))
}
