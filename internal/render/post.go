package render

import "github.com/coreman2200/funtimes-shades/internal/pixel"

// PostPipeline groups post stages; all are optional.
type PostPipeline struct {
	Brightness func([]pixel.RGB, Params)
	Limiter    func([]pixel.RGB, Params)
}

func DefaultPost() PostPipeline {
	return PostPipeline{Brightness: ApplyBrightness, Limiter: DefaultLimiter}
}

// ApplyBrightness scales every LED by p.Brightness.
func ApplyBrightness(buf []pixel.RGB, p Params) {
	if p.Brightness == 255 {
		return
	}
	for i := range buf {
		buf[i] = buf[i].Scale(p.Brightness)
	}
}

// EstimateMA estimates the frame's current draw.
func EstimateMA(buf []pixel.RGB, chanMA float64) float64 {
	var sum int
	for _, c := range buf {
		sum += int(c.R) + int(c.G) + int(c.B)
	}
	return float64(sum) / 255 * chanMA
}

// DefaultLimiter applies a two-stage limiter:
// 1) Per-LED white cap: scales (R,G,B) so R+G+B <= WhiteCap.
// 2) Global current budget: scales the whole frame to stay under BudgetMA,
// starting gently at Knee*BudgetMA.
func DefaultLimiter(buf []pixel.RGB, p Params) {
	if p.WhiteCap > 0 && p.WhiteCap < 765 {
		for i, c := range buf {
			s := int(c.R) + int(c.G) + int(c.B)
			if s > p.WhiteCap {
				buf[i] = scaleBy(c, float64(p.WhiteCap)/float64(s))
			}
		}
	}

	if p.BudgetMA <= 0 {
		return
	}
	chanMA := p.ChanMA
	if chanMA <= 0 {
		chanMA = 20
	}
	knee := p.Knee
	if knee <= 0 || knee >= 1 {
		knee = 0.9
	}
	total := EstimateMA(buf, chanMA)
	if total <= 0 {
		return
	}
	ratio := total / p.BudgetMA
	if ratio <= knee {
		return
	}
	s := p.BudgetMA / total
	if ratio <= 1 {
		// map ratio in [knee,1] to scale in [1, budget/total]
		t := (ratio - knee) / (1 - knee)
		s = 1 - t*(1-s)
	}
	applyGlobalScale(buf, s)
}

func applyGlobalScale(buf []pixel.RGB, s float64) {
	if s >= 1 {
		return
	}
	for i := range buf {
		buf[i] = scaleBy(buf[i], s)
	}
}

// scaleBy scales down, rounding toward zero so limits are never exceeded.
func scaleBy(c pixel.RGB, s float64) pixel.RGB {
	return pixel.RGB{
		R: uint8(float64(c.R) * s),
		G: uint8(float64(c.G) * s),
		B: uint8(float64(c.B) * s),
	}
}
