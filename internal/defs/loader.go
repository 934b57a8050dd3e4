// internal/defs/loader.go
package defs

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/WChurchill/qualified-immunity/pkg/geom"
)

var ErrInvalidLevel = errors.New("invalid level definition")

// DefaultLevel returns the layout of the original first level.
func DefaultLevel() LevelDefinition {
	return LevelDefinition{
		Name: "default",
		Wall: WallDefinition{
			Columns:        10,
			Rows:           10,
			CellSize:       40,
			Origin:         geom.V(300, 0),
			GapChance:      0.05,
			RandomRotation: true,
		},
		Hostiles: HostileScatter{
			Count:  100,
			Width:  800,
			Height: 600,
		},
	}
}

// LoadLevel reads a level file. Keys missing from the file keep the values of
// DefaultLevel.
func LoadLevel(path string) (LevelDefinition, error) {
	level := DefaultLevel()
	data, err := os.ReadFile(path)
	if err != nil {
		return level, errors.Wrapf(err, "read level %s", path)
	}
	if err := DecodeLevel(data, &level); err != nil {
		return level, errors.Wrapf(err, "level %s", path)
	}
	return level, nil
}

// DecodeLevel parses YAML into level and validates it.
func DecodeLevel(data []byte, level *LevelDefinition) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(level); err != nil && err != io.EOF {
		return errors.Wrap(err, "decode yaml")
	}
	return level.Validate()
}

func (l LevelDefinition) Validate() error {
	if l.Wall.Columns < 0 || l.Wall.Rows < 0 {
		return errors.Wrapf(ErrInvalidLevel, "wall grid %dx%d", l.Wall.Columns, l.Wall.Rows)
	}
	if l.Wall.Columns*l.Wall.Rows > 0 && l.Wall.CellSize <= 0 {
		return errors.Wrapf(ErrInvalidLevel, "wall.cell_size=%v", l.Wall.CellSize)
	}
	if l.Wall.GapChance < 0 || l.Wall.GapChance > 1 {
		return errors.Wrapf(ErrInvalidLevel, "wall.gap_chance=%v outside [0, 1]", l.Wall.GapChance)
	}
	if l.Hostiles.Count < 0 {
		return errors.Wrapf(ErrInvalidLevel, "hostiles.count=%d", l.Hostiles.Count)
	}
	if l.Hostiles.Width < 0 || l.Hostiles.Height < 0 {
		return errors.Wrapf(ErrInvalidLevel, "hostiles area %vx%v", l.Hostiles.Width, l.Hostiles.Height)
	}
	return nil
}
