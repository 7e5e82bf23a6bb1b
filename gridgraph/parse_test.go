package gridgraph_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/astar"
	"github.com/katalvlaran/lvpath/gridgraph"
)

func TestParseText(t *testing.T) {
	src := "S.#\r\n.9.\r\n#.G\r\n\r\n"
	gg, err := gridgraph.ParseText(strings.NewReader(src), gridgraph.Conn4)
	require.NoError(t, err)

	assert.Equal(t, 3, gg.Width)
	assert.Equal(t, 3, gg.Height)
	assert.Equal(t, astar.Point{X: 0, Y: 0}, gg.Start)
	assert.Equal(t, astar.Point{X: 2, Y: 2}, gg.Goal)
	assert.Equal(t, [][]int{{1, 1, 0}, {1, 9, 1}, {0, 1, 1}}, gg.CellValues)
}

func TestParseRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"Empty", nil, gridgraph.ErrEmptyGrid},
		{"NoGoal", []string{"S.."}, gridgraph.ErrBadMap},
		{"TwoStarts", []string{"S.S", "..G"}, gridgraph.ErrBadMap},
		{"TwoGoals", []string{"S.G", "..G"}, gridgraph.ErrBadMap},
		{"BadRune", []string{"S?G"}, gridgraph.ErrBadMap},
		{"Ragged", []string{"S..", ".G"}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.ParseRows(tc.rows, gridgraph.Conn4)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestDecode(t *testing.T) {
	src := `
name: detour
connectivity: 8
rows:
  - "S.."
  - "##."
  - "G.."
`
	gg, mf, err := gridgraph.Decode(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "detour", mf.Name)
	assert.Equal(t, gridgraph.Conn8, gg.Conn)
	assert.Equal(t, astar.Point{X: 0, Y: 2}, gg.Goal)

	_, _, err = gridgraph.Decode(strings.NewReader("connectivity: 6\nrows: [\"SG\"]\n"))
	assert.ErrorIs(t, err, gridgraph.ErrBadMap)

	_, _, err = gridgraph.Decode(strings.NewReader("rowz: [\"SG\"]\n"))
	assert.ErrorIs(t, err, gridgraph.ErrBadMap, "unknown fields are rejected")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yml := filepath.Join(dir, "m.yaml")
	require.NoError(t, os.WriteFile(yml, []byte("rows:\n  - \"S#\"\n  - \".G\"\n"), 0o600))
	gg, err := gridgraph.LoadFile(yml, gridgraph.Conn8)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Conn4, gg.Conn, "YAML default connectivity wins over the argument")

	txt := filepath.Join(dir, "m.txt")
	require.NoError(t, os.WriteFile(txt, []byte("S#\n.G\n"), 0o600))
	gg, err = gridgraph.LoadFile(txt, gridgraph.Conn8)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Conn8, gg.Conn)

	_, err = gridgraph.LoadFile(filepath.Join(dir, "missing.txt"), gridgraph.Conn4)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRender(t *testing.T) {
	gg, err := gridgraph.ParseRows([]string{
		"S.3",
		"#..",
		"G.#",
	}, gridgraph.Conn4)
	require.NoError(t, err)

	assert.Equal(t, "S.3\n#..\nG.#\n", gg.Render(nil))

	path := []astar.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2}}
	assert.Equal(t, "S*3\n#*.\nG*#\n", gg.Render(path))
}
