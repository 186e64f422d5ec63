package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/funtimes-shades/internal/app"
	"github.com/coreman2200/funtimes-shades/internal/config"
)

func newCore(t *testing.T) *app.Core {
	t.Helper()
	off := false
	core, err := app.Build(&config.Config{Cycle: config.CycleCfg{Auto: &off}}, nil)
	require.NoError(t, err)
	return core
}

func TestHueKeepsMovingAcrossEffects(t *testing.T) {
	core := newCore(t)
	fx := newSimulator(core)

	_, err := fx.effect("rider", time.Second)
	require.NoError(t, err)
	first := core.Eng.Ctx.Hue
	assert.NotZero(t, first)

	st, err := fx.effect("glitter", time.Second)
	require.NoError(t, err)
	assert.NotEqual(t, first, core.Eng.Ctx.Hue)
	assert.Positive(t, st.Frames)
	assert.True(t, fx.now.Equal(time.Unix(2, 0)), "one clock across runs")
}

func TestUnknownEffect(t *testing.T) {
	fx := newSimulator(newCore(t))
	_, err := fx.effect("nope", time.Second)
	assert.Error(t, err)
}

func TestStatsAverage(t *testing.T) {
	assert.Zero(t, stats{}.AvgMA())
	assert.Equal(t, 5.0, stats{Frames: 2, SumMA: 10}.AvgMA())
}
