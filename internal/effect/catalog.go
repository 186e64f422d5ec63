package effect

type Entry struct {
	ID   ID
	Name string
	New  func() Effect
}

// Catalog maps effect IDs and names to constructors, in play order.
type Catalog struct {
	entries []Entry
	byName  map[string]int
}

// NewCatalog builds the full menu. text overrides the scroller styles in
// order; missing entries keep DefaultText.
func NewCatalog(text []TextStyle) *Catalog {
	styles := DefaultText
	copy(styles[:], text)

	c := &Catalog{byName: map[string]int{}}
	c.register(ThreeSine, func() Effect { return &threeSine{} })
	c.register(Plasma, func() Effect { return &plasma{} })
	c.register(Rider, func() Effect { return &rider{} })
	c.register(Glitter, func() Effect { return glitter{} })
	c.register(ColorFill, func() Effect { return &colorFill{} })
	c.register(ThreeDee, func() Effect { return threeDee{} })
	c.register(SideRain, func() Effect { return sideRain{} })
	c.register(Confetti, func() Effect { return confetti{} })
	c.register(SlantBars, func() Effect { return &slantBars{} })
	for i, st := range styles {
		st := st
		c.register(ScrollText0+ID(i), func() Effect { return NewScroller(st) })
	}
	c.register(PizzaTime, func() Effect { return &sprite{dots: pizzaDots} })
	c.register(BaseballEyes, func() Effect { return &sprite{dots: baseballDots} })
	return c
}

func (c *Catalog) register(id ID, fn func() Effect) {
	c.byName[id.String()] = len(c.entries)
	c.entries = append(c.entries, Entry{ID: id, Name: id.String(), New: fn})
}

func (c *Catalog) Get(name string) (Entry, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

func (c *Catalog) ByID(id ID) (Entry, bool) {
	if !id.Valid() {
		return Entry{}, false
	}
	return c.entries[id], true
}

func (c *Catalog) Len() int { return len(c.entries) }

// List returns the effect names in play order.
func (c *Catalog) List() []string {
	out := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e.Name)
	}
	return out
}

// Next is the effect after id, wrapping to the first.
func (c *Catalog) Next(id ID) ID {
	return ID((int(id) + 1) % len(c.entries))
}
