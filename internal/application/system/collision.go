package system

import (
	"math"
	"math/rand"

	"github.com/younwookim/portalcrawler/internal/domain/entity"
)

const (
	// edgeInset keeps vertical samples off the exact tile boundary
	edgeInset = 2.0

	// overlapTieThreshold treats nearly equal overlaps as vertical
	overlapTieThreshold = 0.5

	bounceVelocity   = -1.2
	bounceNudge      = 1.2
	knockOffVelocity = 1.5
	knockOffNudge    = 1.2
)

// ResolveTiles resolves a body against the tile grid one axis at a time.
// Each axis samples the tile the leading edge enters at body position plus
// velocity, so a velocity larger than a tile can skip thin obstacles.
// Surface changes are reported to c when it is non-nil. Returns the tiles
// the body collided with (for the debug overlay).
func ResolveTiles(b *entity.Body, grid *entity.TileGrid, c entity.Collidable) []entity.Tile {
	var hit []entity.Tile

	if b.VX != 0 {
		if t, ok := resolveTilesX(b, grid); ok {
			hit = append(hit, t)
		}
	}

	if b.VY != 0 {
		if t, ok := resolveTilesY(b, grid, c); ok {
			hit = append(hit, t)
		}
	}

	return hit
}

func resolveTilesX(b *entity.Body, grid *entity.TileGrid) (entity.Tile, bool) {
	futureX := b.X + b.VX
	midY := b.Y + b.H/2

	var col int
	if b.VX > 0 {
		col = grid.Col(futureX + b.W)
	} else {
		col = grid.Col(futureX)
	}

	tile, ok := grid.TileAt(col, grid.Row(midY))
	if !ok || !tile.Solid() {
		return entity.Tile{}, false
	}

	tileX, _ := grid.Origin(tile)
	if b.VX > 0 {
		b.X = tileX - b.W
	} else {
		b.X = tileX + float64(grid.TileWidth)
	}
	b.VX = 0
	return tile, true
}

func resolveTilesY(b *entity.Body, grid *entity.TileGrid, c entity.Collidable) (entity.Tile, bool) {
	futureY := b.Y + b.VY
	movingDown := b.VY > 0

	var row int
	if movingDown {
		row = grid.Row(futureY + b.H)
	} else {
		row = grid.Row(futureY)
	}

	left, leftOK := grid.TileAt(grid.Col(b.X+edgeInset), row)
	right, rightOK := grid.TileAt(grid.Col(b.X+b.W-edgeInset), row)

	var tile entity.Tile
	switch {
	case leftOK && left.Solid():
		tile = left
	case rightOK && right.Solid():
		tile = right
	default:
		// Only confirmed empty tiles mean falling, off-grid samples do not
		if (leftOK || rightOK) && movingDown && c != nil {
			c.SetFalling()
		}
		return entity.Tile{}, false
	}

	_, tileY := grid.Origin(tile)
	if movingDown {
		b.Y = tileY - b.H
	} else {
		b.Y = tileY + float64(grid.TileHeight)
	}
	b.VY = 0

	if c != nil {
		switch tile.Type {
		case entity.TilePlatform:
			c.SetOnPlatform()
		case entity.TileGround:
			c.SetOnGround()
		}
	}
	return tile, true
}

// BoxOverlap reports whether the bounding boxes share interior area
func BoxOverlap(a, b *entity.Body) bool {
	return a.Bounds().Intersects(b.Bounds())
}

// CircleOverlap reports whether the bounding circles around the centers overlap
func CircleOverlap(a, b *entity.Body) bool {
	dx := a.CenterX() - b.CenterX()
	dy := a.CenterY() - b.CenterY()
	r := a.CircleRadius() + b.CircleRadius()
	return dx*dx+dy*dy < r*r
}

// PreciseCollision is the two-stage box and circle test. It is symmetric.
func PreciseCollision(a, b *entity.Body) bool {
	return BoxOverlap(a, b) && CircleOverlap(a, b)
}

// ResolveBodies separates two overlapping bodies. The response is centered
// on a: a is pushed out horizontally or bounced on top of b, and b only
// moves when it sits on top of a. rng picks the nudge direction for a
// motionless a.
func ResolveBodies(a, b *entity.Body, rng *rand.Rand) {
	if !PreciseCollision(a, b) {
		return
	}

	dx := a.CenterX() - b.CenterX()
	dy := a.CenterY() - b.CenterY()
	overlapX := (a.W/2 + b.W/2) - math.Abs(dx)
	overlapY := (a.H/2 + b.H/2) - math.Abs(dy)
	if overlapX <= 0 || overlapY <= 0 {
		return
	}

	vertical := math.Abs(overlapX-overlapY) <= overlapTieThreshold || overlapY < overlapX
	if !vertical {
		if dx > 0 {
			a.X += overlapX
		} else {
			a.X -= overlapX
		}
		a.VX = 0
		return
	}

	if dy < 0 {
		// a landed on b
		if a.Y+a.H <= b.Y {
			return
		}
		a.Y = b.Y - a.H
		a.VY = bounceVelocity
		a.X += nudgeDirection(a.VX, rng) * bounceNudge
		return
	}

	// b sits on a
	if b.Y+b.H <= a.Y {
		return
	}
	b.Y = a.Y - b.H
	b.VY = knockOffVelocity
	if dx < 0 {
		b.X += knockOffNudge
	} else {
		b.X -= knockOffNudge
	}
}

func nudgeDirection(vx float64, rng *rand.Rand) float64 {
	switch {
	case vx > 0:
		return 1
	case vx < 0:
		return -1
	case rng != nil && rng.Float64() <= 0.5:
		return -1
	default:
		return 1
	}
}

// Interactable is anything the player can touch to trigger
type Interactable interface {
	Physics() *entity.Body
}

// FirstOverlap returns the first candidate precisely overlapping body
func FirstOverlap[T Interactable](body *entity.Body, candidates []T) (T, bool) {
	for _, c := range candidates {
		if PreciseCollision(body, c.Physics()) {
			return c, true
		}
	}
	var zero T
	return zero, false
}
