package gameconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadUnparseableFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadKeepsDefaultsForOmittedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("world_size: 8\nstart_world: hills\n"), 0644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, p.WorldSize)
	assert.Equal(t, "hills", p.StartWorld)
	assert.Equal(t, Default().RandomBlocks, p.RandomBlocks)
	assert.True(t, p.ShowFPS)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("start_world: moon\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start_world")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "game.yaml")
	want := Prefs{
		WorldSize:      24,
		RandomBlocks:   10,
		MaxStackHeight: 5,
		StartWorld:     "pyramid",
		ShowHelp:       true,
		ShowFPS:        false,
		Fullscreen:     true,
	}

	require.NoError(t, Save(want, path))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestValidateDetectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Prefs)
		wantErr string
	}{
		{
			name:    "non positive world size",
			mutate:  func(p *Prefs) { p.WorldSize = 0 },
			wantErr: "world_size",
		},
		{
			name:    "negative random blocks",
			mutate:  func(p *Prefs) { p.RandomBlocks = -1 },
			wantErr: "random_blocks",
		},
		{
			name:    "zero stack height",
			mutate:  func(p *Prefs) { p.MaxStackHeight = 0 },
			wantErr: "max_stack_height",
		},
		{
			name:    "unknown start world",
			mutate:  func(p *Prefs) { p.StartWorld = "volcano" },
			wantErr: "start_world",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
