package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/funtimes-shades/internal/effect"
	"github.com/coreman2200/funtimes-shades/internal/pixel"
)

const sample = `
driver: spi
color_order: GRB
brightness: 127
effect: plasma
palette: lava
layout:
  kind: shades
cycle:
  auto: false
  interval_s: 20
  hue_ms: 40
power:
  budget_ma: 1500
  white_cap: 600
spi:
  port: /dev/spidev0.0
  speed_hz: 2500000
messages:
  - "HI "
text:
  - message: 0
    style: rainbow
  - message: 0
    fg: "#00ff00"
    bg: "#000008"
program:
  version: seq.v1
  loop: true
  clips:
    - name: warmup
      effect: rider
      duration_s: 10
      params:
        brightness:
          keys:
            - {t: 0, v: 0}
            - {t: 2, v: 255, ease: smooth}
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "spi", c.Driver)
	require.NotNil(t, c.Brightness)
	assert.Equal(t, 127, *c.Brightness)
	assert.True(t, c.FlipEveryRow())
	assert.False(t, c.AutoCycle())
	assert.Equal(t, 1500.0, c.Power.BudgetMA)
	assert.Equal(t, []string{"HI "}, c.Messages)
	require.NotNil(t, c.Program)
	require.Len(t, c.Program.Clips, 1)
	assert.Equal(t, 10.0, c.Program.Clips[0].DurationS)
	assert.Len(t, c.Program.Clips[0].Params["brightness"].Keys, 2)
	assert.NoError(t, c.Program.Validate())

	styles, err := c.TextStyles()
	require.NoError(t, err)
	require.Len(t, styles, 2)
	assert.Equal(t, effect.Rainbow, styles[0].Style)
	assert.Equal(t, pixel.Lime, styles[1].FG)
	assert.Equal(t, pixel.RGB{B: 8}, styles[1].BG)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	on, dim, flip := true, 0, false
	in := &Config{
		Driver:     "sim",
		Brightness: &dim,
		Effect:     "rider",
		Cycle:      CycleCfg{Auto: &on},
		Layout:     LayoutCfg{Kind: "serpentine", Width: 4, Height: 2, FlipEveryRow: &flip},
	}
	require.NoError(t, Save(path, in))
	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	require.NotNil(t, out.Brightness, "zero brightness must survive a save")
	assert.Equal(t, 0, *out.Brightness)
	assert.False(t, out.FlipEveryRow())
}

func TestBadInput(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	c := &Config{Text: []TextCfg{{Style: "sparkly"}}}
	_, err = c.TextStyles()
	assert.Error(t, err)

	c = &Config{Text: []TextCfg{{FG: "green"}}}
	_, err = c.TextStyles()
	assert.Error(t, err)
	assert.True(t, (&Config{}).AutoCycle())
}
