package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	assert.Equal(COLOR_AUTO, cfg.Color)
	assert.NotNil(cfg.Define)
	assert.NoError(cfg.Validate())

	cfg, err := Load("")
	assert.NoError(err)
	assert.Equal(Default(), cfg)
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		yaml string
		cfg  Config
		err  error
	}){
		{"empty", "", Config{Color: COLOR_AUTO, Define: map[string]string{}}, nil},
		{"full", strings.Join([]string{
			"verbose: true",
			"color: never",
			"fps: 30",
			"frames: /tmp/frames",
			"seed: 42",
			"trace: si",
			"define:",
			"  width: \"320\"",
			"  title: '\"demo\"'",
		}, "\n"), Config{
			Verbose: true,
			Color:   COLOR_NEVER,
			Fps:     30,
			Frames:  "/tmp/frames",
			Seed:    42,
			Trace:   "si",
			Define:  map[string]string{"width": "320", "title": `"demo"`},
		}, nil},
		{"color", "color: purple", Config{}, ErrColorInvalid("purple")},
		{"fps", "fps: -1", Config{}, ErrFrameRate},
	}

	for _, entry := range table {
		cfg := Default()
		err := cfg.Decode(strings.NewReader(entry.yaml))
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.name)
			continue
		}
		assert.NoError(err, entry.name)
		assert.Equal(entry.cfg, *cfg, entry.name)
	}
}

func TestDecodeUnknown(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	err := cfg.Decode(strings.NewReader("colour: never\n"))
	assert.Error(err)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "twoq.yaml")
	assert.NoError(os.WriteFile(path, []byte("color: always\nfps: 12\n"), 0o644))

	cfg, err := Load(path)
	assert.NoError(err)
	assert.Equal(COLOR_ALWAYS, cfg.Color)
	assert.Equal(12, cfg.Fps)
	assert.True(cfg.UseColor(os.Stdout.Fd()))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	var le *ErrLoad
	assert.ErrorAs(err, &le)
	assert.ErrorIs(err, os.ErrNotExist)
}

func TestPath(t *testing.T) {
	assert := assert.New(t)

	t.Setenv(ENV_CONFIG, "/etc/twoq.yaml")
	assert.Equal("/etc/twoq.yaml", Path(""))
	assert.Equal("local.yaml", Path("local.yaml"))
}

func TestUseColor(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	cfg.Color = COLOR_NEVER
	assert.False(cfg.UseColor(os.Stdout.Fd()))

	// A regular file is never a terminal.
	inf, err := os.CreateTemp(t.TempDir(), "out")
	assert.NoError(err)
	defer inf.Close()

	cfg.Color = COLOR_AUTO
	assert.False(cfg.UseColor(inf.Fd()))
}
