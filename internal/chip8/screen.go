package chip8

// Screen dimension constants.
const (
	// ScreenWidth is the framebuffer width in pixels.
	ScreenWidth = 64

	// ScreenHeight is the framebuffer height in pixels.
	ScreenHeight = 32
)

// Screen is the monochrome 64x32 framebuffer. Each row is a 64-bit mask with
// column 0 at the most significant bit. The version counter increases on
// every content change so a host renderer can cache its last drawn frame and
// redraw only when the version moved on.
type Screen struct {
	rows    [ScreenHeight]uint64
	version uint64
}

// Rows returns a snapshot of the framebuffer row masks.
func (s *Screen) Rows() [ScreenHeight]uint64 {
	return s.rows
}

// Version returns the framebuffer content version. It changes whenever the
// framebuffer is cleared or drawn to.
func (s *Screen) Version() uint64 {
	return s.version
}

// clear resets every pixel to off.
func (s *Screen) clear() {
	s.rows = [ScreenHeight]uint64{}
	s.version++
}

// drawSprite XOR-blits a sprite at column x, row y and reports whether any
// already lit pixel was toggled off. Each sprite byte is one row of up to 8
// pixels. Columns beyond 63 are lost rather than wrapped, matching the fixed
// 64-bit row width, and sprite rows beyond row 31 are clipped.
func (s *Screen) drawSprite(sprite []byte, x, y byte) bool {
	collision := false

	rows := len(sprite)
	if limit := ScreenHeight - int(y); rows > limit {
		rows = limit
	}

	shift := 56 - int(x)
	for row := 0; row < rows; row++ {
		var mask uint64
		if shift >= 0 {
			mask = uint64(sprite[row]) << shift
		} else {
			mask = uint64(sprite[row]) >> -shift
		}

		target := &s.rows[int(y)+row]
		if *target&mask != 0 {
			collision = true
		}
		*target ^= mask
	}

	s.version++
	return collision
}
