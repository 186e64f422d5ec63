package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/coreman2200/funtimes-shades/internal/effect"
	"github.com/coreman2200/funtimes-shades/internal/pixel"
	"github.com/coreman2200/funtimes-shades/internal/sequence"
)

type PowerCfg struct {
	BudgetMA float64 `yaml:"budget_ma"`
	ChanMA   float64 `yaml:"chan_ma"`
	WhiteCap int     `yaml:"white_cap"` // max R+G+B per LED, 765 = none
	Knee     float64 `yaml:"knee"`
}

type LayoutCfg struct {
	Kind         string `yaml:"kind"` // "shades" | "serpentine" | "raster"
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	FlipEveryRow *bool  `yaml:"flip_every_row,omitempty"` // serpentine only, default on
}

type SPI struct {
	Port    string `yaml:"port"`     // e.g. /dev/spidev0.0, "" for the first
	SpeedHz int    `yaml:"speed_hz"` // e.g. 2500000
}

type CycleCfg struct {
	Auto      *bool   `yaml:"auto,omitempty"`
	IntervalS float64 `yaml:"interval_s"`
	HueMS     int     `yaml:"hue_ms"`
}

// TextCfg overrides one scroller slot. Colors are "#rrggbb".
type TextCfg struct {
	Message int    `yaml:"message"`
	Style   string `yaml:"style"` // "normal" | "rainbow"
	FG      string `yaml:"fg,omitempty"`
	BG      string `yaml:"bg,omitempty"`
}

type Config struct {
	Driver     string `yaml:"driver"` // "spi" | "console" | "sim"
	ColorOrder string `yaml:"color_order"`
	Brightness *int   `yaml:"brightness,omitempty"` // 0..255, unset keeps the default
	FPS        int    `yaml:"fps"`        // preview stream rate
	Seed       uint16 `yaml:"seed"`
	Effect     string `yaml:"effect"`
	Palette    string `yaml:"palette,omitempty"`

	Layout   LayoutCfg `yaml:"layout"`
	Cycle    CycleCfg  `yaml:"cycle"`
	Power    PowerCfg  `yaml:"power"`
	SPI      SPI       `yaml:"spi,omitempty"`
	Messages []string  `yaml:"messages,omitempty"`
	Text     []TextCfg `yaml:"text,omitempty"`

	Program *sequence.Program `yaml:"program,omitempty"`
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// TextStyles converts the scroller overrides; slots past len(c.Text) keep
// their defaults.
func (c *Config) TextStyles() ([]effect.TextStyle, error) {
	out := make([]effect.TextStyle, 0, len(c.Text))
	for i, t := range c.Text {
		st := effect.DefaultText[i%len(effect.DefaultText)]
		st.Message = t.Message
		switch strings.ToLower(t.Style) {
		case "", "normal":
			st.Style = effect.Normal
		case "rainbow":
			st.Style = effect.Rainbow
		default:
			return nil, fmt.Errorf("text %d: unknown style %q", i, t.Style)
		}
		var err error
		if t.FG != "" {
			if st.FG, err = pixel.ParseHex(t.FG); err != nil {
				return nil, fmt.Errorf("text %d fg: %w", i, err)
			}
		}
		if t.BG != "" {
			if st.BG, err = pixel.ParseHex(t.BG); err != nil {
				return nil, fmt.Errorf("text %d bg: %w", i, err)
			}
		}
		out = append(out, st)
	}
	return out, nil
}

// FlipEveryRow reports whether a serpentine layout reverses odd rows
// (default on).
func (c *Config) FlipEveryRow() bool {
	return c.Layout.FlipEveryRow == nil || *c.Layout.FlipEveryRow
}

// AutoCycle reports whether effects rotate on their own (default on).
func (c *Config) AutoCycle() bool {
	return c.Cycle.Auto == nil || *c.Cycle.Auto
}
