package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-shades/internal/calib"
	"github.com/coreman2200/funtimes-shades/internal/config"
	diag "github.com/coreman2200/funtimes-shades/internal/diagnostics"
	"github.com/coreman2200/funtimes-shades/internal/frame"
	"github.com/coreman2200/funtimes-shades/internal/layout"
	"github.com/coreman2200/funtimes-shades/internal/palette"
	"github.com/coreman2200/funtimes-shades/internal/pixel"
	"github.com/coreman2200/funtimes-shades/internal/render"
	"github.com/coreman2200/funtimes-shades/internal/sequence"
)

const writeWait = 200 * time.Millisecond

// client serializes writes; gorilla allows one writer per connection.
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *client) write(b []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, b)
}

// State bridges the engine to the preview, diagnostics and control sockets.
// Engine changes are posted as commands; frames arrive through Frame.
type State struct {
	mu     sync.RWMutex
	Eng    *render.Engine
	Player *sequence.Player
	Mapper layout.Mapper
	FPS    int

	ConfigPath    string
	Cfg           *config.Config
	CurrentDriver string

	latest    []pixel.RGB
	frameID   uint64
	sentID    uint64
	startTime time.Time

	clients     map[*websocket.Conn]*client
	diagClients map[*websocket.Conn]*client
	diags       chan diag.Diagnostic
	monitor     *diag.Monitor
	upgrader    websocket.Upgrader
}

// Preview stream rate bounds.
const (
	DefaultFPS = 30
	MinFPS     = 1
	MaxFPS     = 240
)

// ClampFPS bounds a requested preview rate; 0 or less picks DefaultFPS.
func ClampFPS(v float64) int {
	switch {
	case v <= 0:
		return DefaultFPS
	case v < MinFPS:
		return MinFPS
	case v > MaxFPS:
		return MaxFPS
	}
	return int(v)
}

func NewState(eng *render.Engine, m layout.Mapper, fps int) *State {
	return &State{
		Eng:         eng,
		Mapper:      m,
		FPS:         ClampFPS(float64(fps)),
		startTime:   time.Now(),
		clients:     map[*websocket.Conn]*client{},
		diagClients: map[*websocket.Conn]*client{},
		diags:       make(chan diag.Diagnostic, 16),
		monitor:     diag.NewMonitor(5 * time.Second),
		upgrader:    websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
	}
}

// Frame is the engine's OnFrame hook. It only stores the frame; RunBroadcast
// does the network writes.
func (s *State) Frame(px []pixel.RGB) {
	s.mu.Lock()
	s.latest = px
	s.frameID++
	s.mu.Unlock()
}

// RunBroadcast streams the newest frame at FPS and flushes queued
// diagnostics until ctx is done.
func (s *State) RunBroadcast(ctx context.Context) {
	s.mu.RLock()
	fps := s.FPS
	s.mu.RUnlock()
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case d := <-s.diags:
			s.sendDiag(d)
		case now := <-ticker.C:
			s.mu.Lock()
			if s.FPS != fps {
				fps = s.FPS
				ticker.Reset(time.Second / time.Duration(fps))
			}
			var px []pixel.RGB
			id := s.frameID
			if id != s.sentID {
				px = s.latest
				s.sentID = id
			}
			s.mu.Unlock()
			if px != nil {
				s.broadcastFrame(id, px)
			}
			s.checkHealth(now)
		}
	}
}

func (s *State) checkHealth(now time.Time) {
	if s.Cfg == nil {
		return
	}
	s.mu.RLock()
	p := render.Params{BudgetMA: s.Cfg.Power.BudgetMA, Knee: s.Cfg.Power.Knee}
	s.mu.RUnlock()
	for _, d := range s.monitor.Check(now, s.Eng.Status(), p) {
		s.sendDiag(d)
	}
}

func (s *State) accept(w http.ResponseWriter, r *http.Request, set map[*websocket.Conn]*client) (*client, bool) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Debug().Err(err).Str("path", r.URL.Path).Msg("upgrade")
		return nil, false
	}
	c := &client{conn: conn}
	s.mu.Lock()
	set[conn] = c
	s.mu.Unlock()
	return c, true
}

// drain reads until the peer goes away, then forgets the connection.
func (s *State) drain(c *client, set map[*websocket.Conn]*client) {
	defer func() {
		s.mu.Lock()
		delete(set, c.conn)
		s.mu.Unlock()
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *State) HandleFramesWS(w http.ResponseWriter, r *http.Request) {
	c, ok := s.accept(w, r, s.clients)
	if !ok {
		return
	}
	s.sendTopology(c)
	go s.drain(c, s.clients)
}

func (s *State) HandleDiagWS(w http.ResponseWriter, r *http.Request) {
	c, ok := s.accept(w, r, s.diagClients)
	if !ok {
		return
	}
	go s.drain(c, s.diagClients)
}

func (s *State) HandleControlWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	c := &client{conn: conn}
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg map[string]any
		if err := json.Unmarshal(data, &msg); err != nil {
			s.PushDiag(diag.Diagnostic{
				Severity: diag.Warn, Code: diag.ControlInvalid, Summary: "Control message is not JSON",
				Detail: err.Error(),
			})
			continue
		}
		s.applyControl(msg)
		s.sendTopology(c)
	}
}

func (s *State) HandleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	resp := map[string]any{
		"frame_id": s.frameID,
		"uptime_s": time.Since(s.startTime).Seconds(),
		"count":    s.Mapper.Visible(),
		"fps":      s.FPS,
		"driver":   s.CurrentDriver,
	}
	s.mu.RUnlock()
	resp["status"] = s.Eng.Status()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *State) HandleEffects(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.Eng.Cat.List())
}

func (s *State) applyControl(msg map[string]any) {
	if v, ok := msg["effect"].(string); ok {
		s.Eng.Post(func(e *render.Engine) {
			if err := e.SelectName(v); err != nil {
				s.PushDiag(diag.Diagnostic{Severity: diag.Warn, Code: diag.ControlInvalid, Summary: err.Error()})
			}
		})
		s.update(func(c *config.Config) { c.Effect = v })
	}
	if v, ok := msg["next"].(bool); ok && v {
		s.Eng.Post(func(e *render.Engine) { e.Next() })
	}
	if v, ok := msg["brightness"].(float64); ok {
		b := render.ClampU8(v)
		s.Eng.Post(func(e *render.Engine) { e.SetBrightness(b) })
		s.update(func(c *config.Config) {
			saved := int(b)
			c.Brightness = &saved
		})
	}
	if v, ok := msg["brightnessUp"].(bool); ok && v {
		s.Eng.Post(func(e *render.Engine) { e.BrightnessUp() })
	}
	if v, ok := msg["hue"].(float64); ok {
		h := render.ClampU8(v)
		s.Eng.Post(func(e *render.Engine) { e.Ctx.Hue = h })
	}
	if v, ok := msg["autoCycle"].(bool); ok {
		s.Eng.Post(func(e *render.Engine) { e.SetAutoCycle(v) })
		s.update(func(c *config.Config) { c.Cycle.Auto = &v })
	}
	if v, ok := msg["palette"].(string); ok {
		if p, found := palette.ByName(v); found {
			s.Eng.Post(func(e *render.Engine) { e.Ctx.Palette = p })
			s.update(func(c *config.Config) { c.Palette = v })
		} else {
			s.PushDiag(diag.Diagnostic{
				Severity: diag.Warn, Code: diag.ControlInvalid, Summary: "Unknown palette",
				Evidence: map[string]any{"name": v},
			})
		}
	}
	if v, ok := msg["fps"].(float64); ok {
		fps := ClampFPS(v)
		s.mu.Lock()
		s.FPS = fps
		s.mu.Unlock()
		s.update(func(c *config.Config) { c.FPS = fps })
	}
	if v, ok := msg["program"].(string); ok {
		s.programControl(v)
	}
	if v, ok := msg["runTest"].(string); ok {
		s.runTest(v)
	}

	// Persist config after any change
	s.saveConfig()
}

func (s *State) programControl(op string) {
	if s.Player == nil {
		s.PushDiag(diag.Diagnostic{Severity: diag.Warn, Code: diag.ControlInvalid, Summary: "No program loaded"})
		return
	}
	p := s.Player
	var fn func()
	switch op {
	case "start":
		fn = p.Start
	case "stop":
		fn = p.Stop
	case "pause":
		fn = p.Pause
	case "resume":
		fn = p.Resume
	default:
		s.PushDiag(diag.Diagnostic{
			Severity: diag.Warn, Code: diag.ControlInvalid, Summary: "Unknown program command",
			Evidence: map[string]any{"op": op},
		})
		return
	}
	s.Eng.Post(func(*render.Engine) { fn() })
}

func (s *State) runTest(name string) {
	kind, err := calib.ParseKind(name)
	if err != nil {
		s.PushDiag(diag.Diagnostic{
			Severity: diag.Warn, Code: diag.TestUnknown, Summary: "Unknown test name",
			Evidence: map[string]any{"name": name},
		})
		return
	}
	s.PushDiag(diag.Diagnostic{Severity: diag.Info, Code: diag.TestRunning, Summary: "Running test", Detail: name})
	r := calib.NewRunner(calib.Plan{Kind: kind})
	r.OnDone = func(k calib.Kind) {
		s.PushDiag(diag.Diagnostic{Severity: diag.Info, Code: diag.TestDone, Summary: "Test complete", Detail: string(k)})
	}
	s.Eng.Post(func(e *render.Engine) { e.Play("test:"+name, r) })
}

func (s *State) update(fn func(c *config.Config)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Cfg != nil {
		fn(s.Cfg)
	}
}

func (s *State) saveConfig() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ConfigPath == "" || s.Cfg == nil {
		return
	}
	if err := config.Save(s.ConfigPath, s.Cfg); err != nil {
		log.Warn().Err(err).Str("path", s.ConfigPath).Msg("save config")
	}
}

// Topology tells preview clients how to place the strip on the grid: Cells
// holds the LED index for each (x, y) in row-major order, -1 where unlit.
type Topology struct {
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Count   int      `json:"count"`
	Cells   []int    `json:"cells"`
	Effects []string `json:"effects"`
	Driver  string   `json:"driver"`
	Status  any      `json:"status"`
}

func (s *State) topology() Topology {
	s.mu.RLock()
	m, drv := s.Mapper, s.CurrentDriver
	s.mu.RUnlock()
	cells := make([]int, 0, m.Width()*m.Height())
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			i := m.Index(x, y)
			if i >= m.Visible() {
				i = -1
			}
			cells = append(cells, i)
		}
	}
	return Topology{
		Width:   m.Width(),
		Height:  m.Height(),
		Count:   m.Visible(),
		Cells:   cells,
		Effects: s.Eng.Cat.List(),
		Driver:  drv,
		Status:  s.Eng.Status(),
	}
}

func (s *State) sendTopology(c *client) {
	b, _ := json.Marshal(s.topology())
	if err := c.write(b); err != nil {
		log.Debug().Err(err).Msg("write topology")
	}
}

type frameMsg struct {
	T       int64  `json:"t"`
	FrameID uint64 `json:"frame_id"`
	RGB     []byte `json:"rgb"`
}

func (s *State) broadcastFrame(id uint64, px []pixel.RGB) {
	b, _ := json.Marshal(frameMsg{T: time.Now().UnixNano(), FrameID: id, RGB: frame.Bytes(px, pixel.OrderRGB)})
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		if err := c.write(b); err != nil {
			log.Debug().Err(err).Msg("write frame")
		}
	}
}

// PushDiag queues d for the diagnostics socket. Safe from the engine
// goroutine; drops when the queue is full.
func (s *State) PushDiag(d diag.Diagnostic) {
	select {
	case s.diags <- d:
	default:
		log.Debug().Str("code", d.Code).Msg("diagnostic dropped")
	}
}

func (s *State) sendDiag(d diag.Diagnostic) {
	b, _ := json.Marshal(d)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.diagClients {
		_ = c.write(b)
	}
}
