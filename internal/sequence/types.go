package sequence

// Keyframe represents a value at time T (seconds) with an easing function
// that applies to the segment starting at this keyframe.
type Keyframe struct {
	T    float64 `json:"t" yaml:"t"`
	V    float64 `json:"v" yaml:"v"`
	Ease string  `json:"ease,omitempty" yaml:"ease,omitempty"` // "linear","smooth","cubic","quad"
}

// Envelope is a sorted list of keyframes; Eval(t) interpolates a value.
type Envelope struct {
	Keys []Keyframe `json:"keys" yaml:"keys"`
}

// Clip is one segment of a show: an effect held for a duration, with
// optional parameter automation (e.g. "brightness").
type Clip struct {
	Name      string              `json:"name" yaml:"name"`
	Effect    string              `json:"effect" yaml:"effect"`
	DurationS float64             `json:"durationS" yaml:"duration_s"`
	Params    map[string]Envelope `json:"params,omitempty" yaml:"params,omitempty"`
}

// Program is a full sequence of clips.
type Program struct {
	Version string `json:"version" yaml:"version"` // e.g., "seq.v1"
	Loop    bool   `json:"loop,omitempty" yaml:"loop,omitempty"`
	Clips   []Clip `json:"clips" yaml:"clips"`
}

// PlayerState enumerates sequencer states.
type PlayerState string

const (
	Idle    PlayerState = "idle"
	Running PlayerState = "running"
	Paused  PlayerState = "paused"
)

// Hooks are dependency-injected callbacks into the render engine.
type Hooks struct {
	// SetEffect switches the engine to the named effect.
	SetEffect func(name string) error
	// SetParam sets a numeric engine knob.
	SetParam func(name string, v float64)
}

// Player owns the current Program timeline and uses Hooks to drive the engine.
// It is not safe for concurrent use; tick it from the engine goroutine.
type Player struct {
	State PlayerState

	prog Program
	nowS float64 // position within program
	idx  int     // current clip index

	hooks Hooks
}
