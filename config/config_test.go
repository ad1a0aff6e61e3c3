package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modit/config"
)

func TestDefaults(t *testing.T) {
	cfg, err := config.New(config.WithInput("graph.txt"))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultNMax, cfg.NMax)
	assert.Equal(t, config.DefaultEMax, cfg.EMax)
	assert.Equal(t, config.InfiniteDelta, cfg.Delta)
	assert.False(t, cfg.Undirected)
	assert.Empty(t, cfg.OutputPath)
}

func TestOptionsApplyLeftToRight(t *testing.T) {
	cfg, err := config.New(
		config.WithInput("a.txt"),
		config.WithNodeBound(3),
		config.WithNodeBound(4), // later option wins
		config.WithEdgeBound(2),
		config.WithDelta(7),
		config.WithUndirected(),
	)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.NMax)
	assert.Equal(t, 2, cfg.EMax)
	assert.Equal(t, int64(7), cfg.Delta)
	assert.True(t, cfg.Undirected)
}

func TestValidation(t *testing.T) {
	cases := []struct {
		name string
		opts []config.Option
		want error
	}{
		{"missing input", nil, config.ErrNoInput},
		{"bad n_max", []config.Option{config.WithInput("g"), config.WithNodeBound(1)}, config.ErrBadNodeBound},
		{"bad e_max", []config.Option{config.WithInput("g"), config.WithEdgeBound(0)}, config.ErrBadEdgeBound},
		{"bad delta", []config.Option{config.WithInput("g"), config.WithDelta(-5)}, config.ErrBadDelta},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.New(tc.opts...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFromFileOverridesOnlyNamedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modit.yaml")
	doc := "input: from-file.txt\nn_max: 3\nundirected: true\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	fileOpt, err := config.FromFile(path)
	require.NoError(t, err)

	cfg, err := config.New(fileOpt)
	require.NoError(t, err)

	assert.Equal(t, "from-file.txt", cfg.InputPath)
	assert.Equal(t, 3, cfg.NMax)
	assert.True(t, cfg.Undirected)
	assert.Equal(t, config.DefaultEMax, cfg.EMax, "unnamed keys keep defaults")

	// Flags after the file option still win.
	cfg, err = config.New(fileOpt, config.WithNodeBound(4))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.NMax)
}

func TestFromFileErrors(t *testing.T) {
	_, err := config.FromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, config.ErrBadConfigFile)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- not yaml"), 0o644))
	_, err = config.FromFile(path)
	require.ErrorIs(t, err, config.ErrBadConfigFile)
}
