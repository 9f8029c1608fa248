package system

import (
	"github.com/younwookim/portalcrawler/internal/domain/entity"
	"github.com/younwookim/portalcrawler/internal/infrastructure/config"
)

// BuildTileGrid converts parsed map data into a TileGrid.
// Codes below PlatformEnds become platforms and codes below GroundEnds
// become ground; anything else stays empty.
func BuildTileGrid(m *config.MapData, maps config.MapsConfig) *entity.TileGrid {
	grid := entity.NewTileGrid(m.Width, m.Height, m.TileWidth, m.TileHeight)

	for row, codes := range m.Codes {
		for col, code := range codes {
			grid.Set(col, row, classifyTile(code, maps), code)
		}
	}
	return grid
}

func classifyTile(code int, maps config.MapsConfig) entity.TileType {
	switch {
	case code == config.EmptyCode:
		return entity.TileEmpty
	case maps.IsPlatformCode(code):
		return entity.TilePlatform
	case maps.IsGroundCode(code):
		return entity.TileGround
	default:
		return entity.TileEmpty
	}
}
