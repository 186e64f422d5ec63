package font

// Messages is the scroller's message table. Character 0 marks the end of a
// message.
type Messages []string

var DefaultMessages = Messages{
	"PIZZA TIME ",
	"RGB SHADES ",
	"HELLO WORLD ",
	"GO TEAM! ",
	"PARTY * ",
	"BEEP BOOP ",
	"HAVE FUN ",
}

// Char returns character i of message msg, or 0 past the end. Message
// indices wrap around the table.
func (m Messages) Char(msg, i int) byte {
	if len(m) == 0 {
		return 0
	}
	s := m[msg%len(m)]
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}

// Glyph is the glyph for ch; the end-of-message marker draws blank.
func (m Messages) Glyph(ch byte) Glyph {
	if ch == 0 {
		return Glyph{}
	}
	return Lookup(ch)
}
