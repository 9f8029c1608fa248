package entity

import "time"

// Animation is the view of an animation the simulation needs.
// Frame images and drawing belong to the renderer.
type Animation interface {
	Start()
	Update(elapsed time.Duration)
	HasLooped() bool
	Looping() bool
}

// FrameClock is a time-only animation: a fixed number of equally long frames
type FrameClock struct {
	Frames        int
	FrameDuration time.Duration
	Loop          bool

	elapsed time.Duration
	looped  bool
}

// NewFrameClock creates a frame clock
func NewFrameClock(frames int, frameDuration time.Duration, loop bool) *FrameClock {
	return &FrameClock{
		Frames:        frames,
		FrameDuration: frameDuration,
		Loop:          loop,
	}
}

// Start rewinds the clock to the first frame
func (c *FrameClock) Start() {
	c.elapsed = 0
	c.looped = false
}

// Update advances the clock
func (c *FrameClock) Update(elapsed time.Duration) {
	total := c.Total()
	c.elapsed += elapsed
	if c.elapsed < total {
		return
	}
	c.looped = true
	if c.Loop && total > 0 {
		c.elapsed %= total
	} else {
		c.elapsed = total
	}
}

// HasLooped returns true once a full cycle has played since Start
func (c *FrameClock) HasLooped() bool {
	return c.looped
}

// Looping returns true if the animation restarts after its last frame
func (c *FrameClock) Looping() bool {
	return c.Loop
}

// Total returns the duration of one cycle
func (c *FrameClock) Total() time.Duration {
	return time.Duration(c.Frames) * c.FrameDuration
}

// Frame returns the current frame index (for rendering)
func (c *FrameClock) Frame() int {
	if c.FrameDuration <= 0 || c.Frames == 0 {
		return 0
	}
	f := int(c.elapsed / c.FrameDuration)
	if f >= c.Frames {
		f = c.Frames - 1
	}
	return f
}
