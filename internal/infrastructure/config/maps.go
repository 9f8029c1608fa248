package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInvalidMap is returned for map files that cannot be used
var ErrInvalidMap = errors.New("invalid map")

// EmptyCode marks a cell without a tile
const EmptyCode = -1

// MapData is a parsed level file
type MapData struct {
	Name       string
	Width      int
	Height     int
	TileWidth  int // after default size substitution and scaling
	TileHeight int
	Images     []string
	Codes      [][]int // [row][col]
}

// ParseMap reads the text map format:
//
//	W H TW TH
//	// comment
//	#c image.png
//	#map
//	-1,-1,12,...
//
// A 16x16 tile header is replaced by the default tile size, then scaled.
func ParseMap(r io.Reader, name string, physics PhysicsConfig, maps MapsConfig) (*MapData, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read map %s: %w", name, err)
		}
		return nil, fmt.Errorf("map %s is empty: %w", name, ErrInvalidMap)
	}

	m, err := parseHeader(scanner.Text(), name, physics)
	if err != nil {
		return nil, err
	}

	inGrid := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		if !inGrid {
			switch {
			case strings.HasPrefix(line, "#map"):
				inGrid = true
			case strings.HasPrefix(line, "#"):
				if len(line) > 3 {
					m.Images = append(m.Images, strings.TrimSpace(line[3:]))
				}
			default:
				return nil, fmt.Errorf("map %s: unexpected line %q before #map: %w", name, line, ErrInvalidMap)
			}
			continue
		}

		row, err := parseRow(line, m.Width, maps)
		if err != nil {
			return nil, fmt.Errorf("map %s row %d: %w", name, len(m.Codes), err)
		}
		m.Codes = append(m.Codes, row)
		if len(m.Codes) >= m.Height {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read map %s: %w", name, err)
	}

	if !inGrid {
		return nil, fmt.Errorf("map %s has no #map section: %w", name, ErrInvalidMap)
	}
	if len(m.Codes) != m.Height {
		return nil, fmt.Errorf("map %s has %d rows, header says %d: %w", name, len(m.Codes), m.Height, ErrInvalidMap)
	}
	return m, nil
}

func parseHeader(line, name string, physics PhysicsConfig) (*MapData, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return nil, fmt.Errorf("map %s header needs 4 values, got %d: %w", name, len(fields), ErrInvalidMap)
	}

	vals := make([]int, 4)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("map %s header value %q: %w", name, f, ErrInvalidMap)
		}
		vals[i] = v
	}

	w, h, tw, th := vals[0], vals[1], vals[2], vals[3]
	if w <= 0 || h <= 0 || tw <= 0 || th <= 0 {
		return nil, fmt.Errorf("map %s has non-positive dimensions: %w", name, ErrInvalidMap)
	}

	if tw == 16 && th == 16 && physics.DefaultTileSize > 0 {
		tw, th = physics.DefaultTileSize, physics.DefaultTileSize
	}
	scale := physics.TileScale
	if scale <= 0 {
		scale = 1
	}

	return &MapData{
		Name:       name,
		Width:      w,
		Height:     h,
		TileWidth:  tw * scale,
		TileHeight: th * scale,
	}, nil
}

// parseRow reads one CSV row. Short rows leave the remaining cells empty,
// extra columns are ignored.
func parseRow(line string, width int, maps MapsConfig) ([]int, error) {
	row := make([]int, width)
	for i := range row {
		row[i] = EmptyCode
	}

	cells := strings.Split(line, ",")
	for col := 0; col < width && col < len(cells); col++ {
		cell := strings.TrimSpace(cells[col])
		if cell == "" {
			continue
		}
		code, err := strconv.Atoi(cell)
		if err != nil {
			return nil, fmt.Errorf("column %d: bad tile code %q: %w", col, cell, ErrInvalidMap)
		}
		if code != EmptyCode && (code < 0 || code >= maps.GroundEnds) {
			return nil, fmt.Errorf("column %d: tile code %d out of range: %w", col, code, ErrInvalidMap)
		}
		row[col] = code
	}
	return row, nil
}

// IsPlatformCode reports whether a code maps to the platform class
func (c MapsConfig) IsPlatformCode(code int) bool {
	return code >= 0 && code < c.PlatformEnds
}

// IsGroundCode reports whether a code maps to the ground class
func (c MapsConfig) IsGroundCode(code int) bool {
	return code >= c.PlatformEnds && code < c.GroundEnds
}
