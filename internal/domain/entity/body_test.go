package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRect_Intersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 10, H: 10}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 10, H: 10}, false},
		{"separate", Rect{X: 50, Y: 50, W: 10, H: 10}, false},
		{"zero width", Rect{X: 5, Y: 5, W: 0, H: 10}, false},
		{"fractional overlap", Rect{X: 9.5, Y: 0, W: 10, H: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(base))
		})
	}
}

func TestRect_Expand(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}.Expand(10)
	assert.Equal(t, Rect{X: 0, Y: 10, W: 50, H: 60}, r)
}

func TestBody_Geometry(t *testing.T) {
	b := &Body{X: 10, Y: 20, W: 30, H: 40}

	assert.Equal(t, Rect{X: 10, Y: 20, W: 30, H: 40}, b.Bounds())
	assert.Equal(t, 25.0, b.CenterX())
	assert.Equal(t, 40.0, b.CenterY())

	b.SetVelocity(2, -3)
	b.Integrate()
	assert.Equal(t, 12.0, b.X)
	assert.Equal(t, 17.0, b.Y)

	b.SetPosition(0, 0)
	assert.Equal(t, 0.0, b.X)
	assert.Equal(t, 0.0, b.Y)
}

func TestFacing(t *testing.T) {
	assert.Equal(t, FacingRight, FacingLeft.Flip())
	assert.Equal(t, FacingLeft, FacingRight.Flip())
	assert.Equal(t, -1.0, FacingLeft.Sign())
	assert.Equal(t, 1.0, FacingRight.Sign())
	assert.Equal(t, "left", FacingLeft.String())
}

func TestFrameClock(t *testing.T) {
	t.Run("one shot clamps on last frame", func(t *testing.T) {
		c := NewFrameClock(4, 100*time.Millisecond, false)
		c.Start()

		c.Update(250 * time.Millisecond)
		assert.False(t, c.HasLooped())
		assert.Equal(t, 2, c.Frame())

		c.Update(200 * time.Millisecond)
		assert.True(t, c.HasLooped())
		assert.Equal(t, 3, c.Frame())
		assert.False(t, c.Looping())
	})

	t.Run("looping wraps around", func(t *testing.T) {
		c := NewFrameClock(4, 100*time.Millisecond, true)
		c.Update(450 * time.Millisecond)
		assert.True(t, c.HasLooped())
		assert.Equal(t, 0, c.Frame())
	})

	t.Run("start rewinds", func(t *testing.T) {
		c := NewFrameClock(2, 50*time.Millisecond, false)
		c.Update(time.Second)
		c.Start()
		assert.False(t, c.HasLooped())
		assert.Equal(t, 0, c.Frame())
		assert.Equal(t, 100*time.Millisecond, c.Total())
	})
}

func TestBody_CircleRadius(t *testing.T) {
	assert.Equal(t, 0.0, (&Body{W: 10, H: 24}).CircleRadius(), "no fallback to the box size")
	assert.Equal(t, 5.0, (&Body{W: 10, H: 24, Radius: 5}).CircleRadius())
}
