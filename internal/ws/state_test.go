package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/funtimes-shades/internal/config"
	diag "github.com/coreman2200/funtimes-shades/internal/diagnostics"
	"github.com/coreman2200/funtimes-shades/internal/effect"
	"github.com/coreman2200/funtimes-shades/internal/frame"
	"github.com/coreman2200/funtimes-shades/internal/layout"
	"github.com/coreman2200/funtimes-shades/internal/render"
	"github.com/coreman2200/funtimes-shades/internal/rng"
)

type fixture struct {
	st  *State
	srv *httptest.Server
	url string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	c := effect.NewContext(frame.New(layout.Shades), rng.New(rng.DefaultSeed), nil)
	eng, err := render.NewEngine(effect.NewCatalog(nil), c, nil, effect.SideRain)
	require.NoError(t, err)
	eng.SetAutoCycle(false)

	st := NewState(eng, layout.Shades, 50)
	st.CurrentDriver = "sim"
	st.Cfg = &config.Config{Driver: "sim"}
	st.ConfigPath = filepath.Join(t.TempDir(), "shades.yaml")
	eng.OnFrame = st.Frame

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", st.HandleFramesWS)
	mux.HandleFunc("/diag", st.HandleDiagWS)
	mux.HandleFunc("/control", st.HandleControlWS)
	mux.HandleFunc("/health", st.HandleHealth)
	mux.HandleFunc("/effects", st.HandleEffects)
	srv := httptest.NewServer(mux)

	ctx, cancel := context.WithCancel(context.Background())
	go eng.Run(ctx)
	go st.RunBroadcast(ctx)
	t.Cleanup(func() {
		cancel()
		srv.Close()
	})
	return &fixture{st: st, srv: srv, url: "ws" + strings.TrimPrefix(srv.URL, "http")}
}

func (f *fixture) dial(t *testing.T, path string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(f.url+path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, b, err := conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, v))
}

func TestFramesSocketSendsTopologyThenFrames(t *testing.T) {
	f := newFixture(t)
	conn := f.dial(t, "/ws")

	var top Topology
	readJSON(t, conn, &top)
	assert.Equal(t, 16, top.Width)
	assert.Equal(t, 5, top.Height)
	assert.Equal(t, 68, top.Count)
	require.Len(t, top.Cells, 80)
	assert.Equal(t, -1, top.Cells[0])
	assert.Equal(t, 0, top.Cells[1])
	assert.Len(t, top.Effects, int(effect.NumIDs))
	assert.Equal(t, "sim", top.Driver)

	var fm frameMsg
	readJSON(t, conn, &fm)
	assert.Len(t, fm.RGB, 68*3)
	assert.NotZero(t, fm.FrameID)
}

func TestControlSelectsEffectAndSaves(t *testing.T) {
	f := newFixture(t)
	conn := f.dial(t, "/control")

	require.NoError(t, conn.WriteJSON(map[string]any{"effect": "plasma", "brightness": 127}))
	var top Topology
	readJSON(t, conn, &top)

	require.Eventually(t, func() bool {
		st := f.st.Eng.Status()
		return st.Effect == "plasma" && st.Brightness == 127
	}, 2*time.Second, 10*time.Millisecond)

	saved, err := config.Load(f.st.ConfigPath)
	require.NoError(t, err)
	assert.Equal(t, "plasma", saved.Effect)
	require.NotNil(t, saved.Brightness)
	assert.Equal(t, 127, *saved.Brightness)
}

func TestControlClampsPreviewRate(t *testing.T) {
	f := newFixture(t)
	conn := f.dial(t, "/control")

	require.NoError(t, conn.WriteJSON(map[string]any{"fps": 2e9}))
	var top Topology
	readJSON(t, conn, &top)

	resp, err := http.Get(f.srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	var h map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&h))
	assert.Equal(t, float64(MaxFPS), h["fps"])

	saved, err := config.Load(f.st.ConfigPath)
	require.NoError(t, err)
	assert.Equal(t, MaxFPS, saved.FPS)

	// the broadcast loop picks up the new rate and keeps streaming
	frames := f.dial(t, "/ws")
	readJSON(t, frames, &top)
	var fm frameMsg
	readJSON(t, frames, &fm)
	assert.NotZero(t, fm.FrameID)
}

func TestClampFPS(t *testing.T) {
	assert.Equal(t, DefaultFPS, ClampFPS(0))
	assert.Equal(t, DefaultFPS, ClampFPS(-5))
	assert.Equal(t, MinFPS, ClampFPS(0.5))
	assert.Equal(t, 60, ClampFPS(60))
	assert.Equal(t, MaxFPS, ClampFPS(1e12))

	st := NewState(nil, layout.Shades, 1<<40)
	assert.Equal(t, MaxFPS, st.FPS)
}

func TestZeroBrightnessIsSaved(t *testing.T) {
	f := newFixture(t)
	conn := f.dial(t, "/control")
	require.NoError(t, conn.WriteJSON(map[string]any{"brightness": 0}))
	var top Topology
	readJSON(t, conn, &top)

	saved, err := config.Load(f.st.ConfigPath)
	require.NoError(t, err)
	require.NotNil(t, saved.Brightness)
	assert.Equal(t, 0, *saved.Brightness)
}

func TestDiagnosticsForTests(t *testing.T) {
	f := newFixture(t)
	d := f.dial(t, "/diag")
	require.Eventually(t, func() bool {
		f.st.mu.RLock()
		defer f.st.mu.RUnlock()
		return len(f.st.diagClients) == 1
	}, time.Second, 5*time.Millisecond)

	ctl := f.dial(t, "/control")
	require.NoError(t, ctl.WriteJSON(map[string]any{"runTest": "bogus"}))
	var got diag.Diagnostic
	readJSON(t, d, &got)
	assert.Equal(t, diag.TestUnknown, got.Code)

	require.NoError(t, ctl.WriteJSON(map[string]any{"runTest": "solid_white"}))
	readJSON(t, d, &got)
	assert.Equal(t, diag.TestRunning, got.Code)
	readJSON(t, d, &got)
	assert.Equal(t, diag.TestDone, got.Code)
	assert.Equal(t, "solid_white", got.Detail)

	require.Eventually(t, func() bool {
		return f.st.Eng.Status().Effect == "sideRain"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestHealthAndEffects(t *testing.T) {
	f := newFixture(t)

	resp, err := http.Get(f.srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	var h map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&h))
	assert.Equal(t, 68.0, h["count"])
	assert.Equal(t, "sim", h["driver"])

	resp2, err := http.Get(f.srv.URL + "/effects")
	require.NoError(t, err)
	defer resp2.Body.Close()
	var names []string
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&names))
	assert.Contains(t, names, "pizzaTime")
}
