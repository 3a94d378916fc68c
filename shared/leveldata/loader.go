package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Property names read from Tiled maps.
const (
	PropCode        = "code"
	EntitiesGroup   = "entities"
	defaultTileCode = CodeWall
)

// LoadTMX converts a Tiled map into an authoring grid. Every non-empty tile
// in a tile layer becomes a wall unless its tileset tile carries a "code"
// property. Objects in the "entities" group with a "code" property place a
// marker at the cell under their center. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) ([]string, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.Width <= 0 || levelMap.Height <= 0 {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrEmptyGrid)
	}

	b := NewBuilder(levelMap.Width, levelMap.Height)

	for _, layer := range levelMap.Layers {
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				code := defaultTileCode
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					if c, ok := codeProperty(tilesetTile.Properties.GetString(PropCode)); ok {
						code = c
					}
				}
				b.Set(x, y, code)
			}
		}
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, og := range levelMap.ObjectGroups {
		if og.Name != EntitiesGroup {
			continue
		}
		for _, o := range og.Objects {
			code, ok := codeProperty(o.Properties.GetString(PropCode))
			if !ok {
				continue
			}
			cx, cy := o.X+o.Width/2, o.Y+o.Height/2
			if o.GID != 0 {
				// Tile objects are anchored at their bottom-left corner.
				cy = o.Y - o.Height/2
			}
			b.Set(int(cx/tileW), int(cy/tileH), code)
		}
	}

	return b.Grid(), nil
}

// LoadTMXLevel loads and parses a Tiled map.
func LoadTMXLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	grid, err := LoadTMX(fsys, tmxPath)
	if err != nil {
		return nil, err
	}
	lvl, err := Parse(grid)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", tmxPath, err)
	}
	return lvl, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, parses
// each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, match := range matches {
		lvl, err := LoadTMXLevel(fsys, match)
		if err != nil {
			return nil, nil, err
		}
		stem := strings.TrimSuffix(path.Base(match), ".tmx")
		levels[stem] = lvl
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}

func codeProperty(v string) (Code, bool) {
	r := []rune(v)
	if len(r) != 1 {
		return 0, false
	}
	c := Code(r[0])
	return c, c.Valid()
}
