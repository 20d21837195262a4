package chip8

import "strings"

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Framebuffer is the 64x32 monochrome display, stored row-major.
type Framebuffer [DisplayWidth * DisplayHeight]bool

// Pixel returns whether the pixel at the given coordinates is on. Coordinates
// outside of the display wrap around.
func (f *Framebuffer) Pixel(x, y int) bool {
	return f[offset(x, y)]
}

// Clear turns all pixels off.
func (f *Framebuffer) Clear() {
	*f = Framebuffer{}
}

// Lit returns the number of pixels that are on.
func (f *Framebuffer) Lit() int {
	count := 0
	for _, on := range f {
		if on {
			count++
		}
	}
	return count
}

// String returns one line per display row, with '#' for pixels that are on and
// '.' for pixels that are off.
func (f *Framebuffer) String() string {
	var sb strings.Builder
	sb.Grow((DisplayWidth + 1) * DisplayHeight)
	for y := range DisplayHeight {
		for x := range DisplayWidth {
			if f[y*DisplayWidth+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// drawSprite XORs an 8 pixel wide sprite onto the framebuffer at the given
// position. Pixels beyond the display edges wrap around. It returns true if any
// pixel that was on has been turned off.
func (f *Framebuffer) drawSprite(x, y int, sprite []byte) bool {
	collision := false
	for row, line := range sprite {
		for col := range 8 {
			if line&(0x80>>col) == 0 {
				continue
			}
			idx := offset(x+col, y+row)
			if f[idx] {
				collision = true
			}
			f[idx] = !f[idx]
		}
	}
	return collision
}

func offset(x, y int) int {
	x %= DisplayWidth
	if x < 0 {
		x += DisplayWidth
	}
	y %= DisplayHeight
	if y < 0 {
		y += DisplayHeight
	}
	return y*DisplayWidth + x
}
