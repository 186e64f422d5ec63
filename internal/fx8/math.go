package fx8

// Scale8 returns i * (scale/256), treating scale 255 as full scale.
func Scale8(i, scale uint8) uint8 {
	return uint8((uint16(i) * (1 + uint16(scale))) >> 8)
}

// Scale8Video is Scale8 but never rounds a non-zero input down to zero.
func Scale8Video(i, scale uint8) uint8 {
	j := uint8((uint16(i) * uint16(scale)) >> 8)
	if i != 0 && scale != 0 {
		j++
	}
	return j
}

// Qadd8 adds with saturation at 255.
func Qadd8(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// Qsub8 subtracts with saturation at 0.
func Qsub8(a, b uint8) uint8 {
	if b > a {
		return 0
	}
	return a - b
}

// Qmul8 multiplies with saturation: min(255, a*b).
func Qmul8(a, b uint8) uint8 {
	p := uint16(a) * uint16(b)
	if p > 255 {
		return 255
	}
	return uint8(p)
}

// Abs8 is |v| clamped into a byte.
func Abs8(v int) uint8 {
	if v < 0 {
		v = -v
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
