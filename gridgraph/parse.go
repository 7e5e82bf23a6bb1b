package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvpath/astar"
)

// Map alphabet used by ParseRows, ParseText and LoadFile.
const (
	CellWall  = '#' // impassable
	CellOpen  = '.' // passable, cost 1
	CellStart = 'S' // passable, cost 1, start position
	CellGoal  = 'G' // passable, cost 1, goal position
	// '1'…'9' are passable cells with that entry cost.
)

// MapFile is the YAML map format read by LoadFile and Decode.
//
//	name: detour
//	connectivity: 4
//	rows:
//	  - "S.."
//	  - "##."
//	  - "G.."
type MapFile struct {
	Name         string   `yaml:"name,omitempty"`
	Connectivity int      `yaml:"connectivity,omitempty"` // 4 (default) or 8
	Rows         []string `yaml:"rows"`
}

// ParseRows builds a grid from rows written in the map alphabet. Exactly one
// 'S' and one 'G' are required. Rows must have equal length.
func ParseRows(rows []string, conn Connectivity) (*GridGraph, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	values := make([][]int, len(rows))
	opts := DefaultGridOptions()
	opts.Conn = conn
	var haveStart, haveGoal bool

	for y, row := range rows {
		values[y] = make([]int, 0, len(row))
		for x, ch := range []byte(row) {
			switch {
			case ch == CellWall:
				values[y] = append(values[y], 0)
			case ch == CellOpen:
				values[y] = append(values[y], 1)
			case ch >= '1' && ch <= '9':
				values[y] = append(values[y], int(ch-'0'))
			case ch == CellStart || ch == CellGoal:
				p := astar.Point{X: x, Y: y}
				if ch == CellStart {
					if haveStart {
						return nil, fmt.Errorf("%w: second start at %v", ErrBadMap, p)
					}
					opts.Start, haveStart = p, true
				} else {
					if haveGoal {
						return nil, fmt.Errorf("%w: second goal at %v", ErrBadMap, p)
					}
					opts.Goal, haveGoal = p, true
				}
				values[y] = append(values[y], 1)
			default:
				return nil, fmt.Errorf("%w: unexpected %q at row %d col %d", ErrBadMap, ch, y, x)
			}
		}
	}
	if !haveStart || !haveGoal {
		return nil, fmt.Errorf("%w: map needs exactly one %q and one %q", ErrBadMap, CellStart, CellGoal)
	}

	return NewGridGraph(values, opts)
}

// ParseText reads a plain-text map, one row per line. Trailing carriage
// returns and trailing blank lines are ignored.
func ParseText(r io.Reader, conn Connectivity) (*GridGraph, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read map: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	return ParseRows(rows, conn)
}

// Decode reads a YAML MapFile from r and builds its grid.
func Decode(r io.Reader) (*GridGraph, *MapFile, error) {
	var mf MapFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&mf); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadMap, err)
	}

	var conn Connectivity
	switch mf.Connectivity {
	case 0, 4:
		conn = Conn4
	case 8:
		conn = Conn8
	default:
		return nil, nil, fmt.Errorf("%w: connectivity must be 4 or 8, got %d", ErrBadMap, mf.Connectivity)
	}

	gg, err := ParseRows(mf.Rows, conn)
	if err != nil {
		return nil, nil, err
	}
	return gg, &mf, nil
}

// LoadFile reads a map from disk. Files ending in .yaml or .yml are decoded
// as MapFile; anything else is parsed as plain text with conn connectivity.
// For YAML files the connectivity declared in the file wins.
func LoadFile(path string, conn Connectivity) (*GridGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridgraph: open map: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		gg, _, err := Decode(f)
		return gg, err
	default:
		return ParseText(f, conn)
	}
}
