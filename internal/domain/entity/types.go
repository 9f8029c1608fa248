package entity

import "math"

// EntityID is a unique identifier for an entity
type EntityID uint32

// Kind tags the concrete variant behind an Actor
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindEffect
	KindPortal
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindEffect:
		return "effect"
	case KindPortal:
		return "portal"
	default:
		return "unknown"
	}
}

// TileType represents the collision class of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TilePlatform
	TileGround
)

// String returns the string representation of the tile type
func (t TileType) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TilePlatform:
		return "platform"
	case TileGround:
		return "ground"
	default:
		return "unknown"
	}
}

// Tile represents a single cell of the level grid
type Tile struct {
	Col, Row int
	Type     TileType
	Code     int // source map code, -1 for empty
}

// Solid returns true if bodies cannot pass through the tile
func (t Tile) Solid() bool {
	return t.Type != TileEmpty
}

// TileGrid holds the level's tiles indexed [col][row].
// It is built once by the level loader and never mutated while simulating.
type TileGrid struct {
	MapWidth   int
	MapHeight  int
	TileWidth  int
	TileHeight int
	tiles      [][]Tile
}

// NewTileGrid creates a grid with every cell set to an empty tile
func NewTileGrid(mapWidth, mapHeight, tileWidth, tileHeight int) *TileGrid {
	tiles := make([][]Tile, mapWidth)
	for col := range tiles {
		tiles[col] = make([]Tile, mapHeight)
		for row := range tiles[col] {
			tiles[col][row] = Tile{Col: col, Row: row, Type: TileEmpty, Code: -1}
		}
	}
	return &TileGrid{
		MapWidth:   mapWidth,
		MapHeight:  mapHeight,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		tiles:      tiles,
	}
}

// Set assigns a tile type at the given cell. Out-of-range cells are ignored.
// Only loaders call this.
func (g *TileGrid) Set(col, row int, tileType TileType, code int) {
	if !g.valid(col, row) {
		return
	}
	g.tiles[col][row] = Tile{Col: col, Row: row, Type: tileType, Code: code}
}

// TileAt returns the tile at the given cell, or false when the cell is off the grid
func (g *TileGrid) TileAt(col, row int) (Tile, bool) {
	if !g.valid(col, row) {
		return Tile{}, false
	}
	return g.tiles[col][row], true
}

// Col converts a world x coordinate to a column index
func (g *TileGrid) Col(x float64) int {
	return int(math.Floor(x / float64(g.TileWidth)))
}

// Row converts a world y coordinate to a row index
func (g *TileGrid) Row(y float64) int {
	return int(math.Floor(y / float64(g.TileHeight)))
}

// Origin returns the world position of a tile's top-left corner
func (g *TileGrid) Origin(t Tile) (x, y float64) {
	return float64(t.Col * g.TileWidth), float64(t.Row * g.TileHeight)
}

// PixelWidth returns the width of the whole map in world units
func (g *TileGrid) PixelWidth() int {
	return g.MapWidth * g.TileWidth
}

// PixelHeight returns the height of the whole map in world units
func (g *TileGrid) PixelHeight() int {
	return g.MapHeight * g.TileHeight
}

// TilePoint is a cell coordinate
type TilePoint struct {
	Col, Row int
}

// SpawnCandidates returns every empty cell sitting directly on top of a
// tile of the given surface type. Columns closer than padding to either
// map edge are skipped.
func (g *TileGrid) SpawnCandidates(surface TileType, padding int) []TilePoint {
	var points []TilePoint
	for row := 0; row < g.MapHeight-1; row++ {
		for col := padding; col < g.MapWidth-padding; col++ {
			current, ok := g.TileAt(col, row)
			if !ok {
				continue
			}
			below, ok := g.TileAt(col, row+1)
			if !ok {
				continue
			}
			if current.Type == TileEmpty && below.Type == surface {
				points = append(points, TilePoint{Col: col, Row: row})
			}
		}
	}
	return points
}

func (g *TileGrid) valid(col, row int) bool {
	return col >= 0 && col < g.MapWidth && row >= 0 && row < g.MapHeight
}
