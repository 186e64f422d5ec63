// Package diagnostics turns engine state into operator-facing messages for
// the diagnostics socket.
package diagnostics

import (
	"fmt"
	"time"

	"github.com/coreman2200/funtimes-shades/internal/render"
)

type Severity string

const (
	Info Severity = "info"
	Warn Severity = "warning"
	Err  Severity = "error"
)

type Diagnostic struct {
	Severity       Severity       `json:"severity"`
	Code           string         `json:"code"`
	Summary        string         `json:"summary"`
	Detail         string         `json:"detail,omitempty"`
	LikelyCauses   []string       `json:"likely_causes,omitempty"`
	SuggestedFixes []string       `json:"suggested_fixes,omitempty"`
	Evidence       map[string]any `json:"evidence,omitempty"`
}

// Codes pushed by the server.
const (
	TestRunning    = "TEST.RUNNING"
	TestDone       = "TEST.DONE"
	TestUnknown    = "TEST.UNKNOWN"
	PowerNearLimit = "POWER.NEAR_LIMIT"
	PowerLimited   = "POWER.LIMITED"
	FrameOverrun   = "FRAME.OVERRUN"
	DriverFallback = "DRIVER.FALLBACK"
	ControlInvalid = "CONTROL.INVALID"
)

// Power reports whether the estimated draw is approaching or pinned at the
// budget. A zero budget never warns.
func Power(st render.Status, p render.Params) (Diagnostic, bool) {
	if p.BudgetMA <= 0 {
		return Diagnostic{}, false
	}
	frac := st.EstMA / p.BudgetMA
	ev := map[string]any{"est_ma": st.EstMA, "budget_ma": p.BudgetMA}
	switch {
	case frac >= 0.99:
		return Diagnostic{
			Severity:     Warn,
			Code:         PowerLimited,
			Summary:      "Frame is being dimmed to stay within the power budget",
			Detail:       fmt.Sprintf("%.0f of %.0f mA", st.EstMA, p.BudgetMA),
			LikelyCauses: []string{"bright full-frame effect", "brightness set high"},
			SuggestedFixes: []string{
				"lower brightness",
				"raise power.budget_ma if the supply allows it",
			},
			Evidence: ev,
		}, true
	case frac >= knee(p):
		return Diagnostic{
			Severity: Info,
			Code:     PowerNearLimit,
			Summary:  "Estimated current is inside the limiter knee",
			Evidence: ev,
		}, true
	}
	return Diagnostic{}, false
}

func knee(p render.Params) float64 {
	if p.Knee <= 0 || p.Knee >= 1 {
		return 0.9
	}
	return p.Knee
}

// Overrun reports effects whose render time exceeds their own frame delay.
func Overrun(st render.Status) (Diagnostic, bool) {
	if st.DelayMS <= 0 || st.RenderMS <= float64(st.DelayMS) {
		return Diagnostic{}, false
	}
	return Diagnostic{
		Severity:       Warn,
		Code:           FrameOverrun,
		Summary:        fmt.Sprintf("%s renders slower than its frame delay", st.Effect),
		LikelyCauses:   []string{"host CPU contention", "debug build"},
		SuggestedFixes: []string{"disable the preview stream", "build without the fxdebug tag"},
		Evidence: map[string]any{
			"render_ms": st.RenderMS,
			"delay_ms":  st.DelayMS,
		},
	}, true
}

// Fallback describes a driver that could not be opened.
func Fallback(want, got string) Diagnostic {
	return Diagnostic{
		Severity: Err,
		Code:     DriverFallback,
		Summary:  fmt.Sprintf("%s driver unavailable, running on %s", want, got),
		LikelyCauses: []string{
			"SPI not enabled on the host",
			"no permission on /dev/spidev*",
		},
		SuggestedFixes: []string{"enable SPI and reboot", "run with -driver sim"},
	}
}

// Monitor de-duplicates periodic checks so a persistent condition is pushed
// once per Every rather than on every frame.
type Monitor struct {
	Every time.Duration
	last  map[string]time.Time
}

func NewMonitor(every time.Duration) *Monitor {
	return &Monitor{Every: every, last: map[string]time.Time{}}
}

// Check runs the periodic checks and returns the ones due for reporting.
func (m *Monitor) Check(now time.Time, st render.Status, p render.Params) []Diagnostic {
	var out []Diagnostic
	for _, f := range []func() (Diagnostic, bool){
		func() (Diagnostic, bool) { return Power(st, p) },
		func() (Diagnostic, bool) { return Overrun(st) },
	} {
		d, ok := f()
		if !ok {
			continue
		}
		if t, seen := m.last[d.Code]; seen && now.Sub(t) < m.Every {
			continue
		}
		m.last[d.Code] = now
		out = append(out, d)
	}
	return out
}
