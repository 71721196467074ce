package maze

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	os.Exit(m.Run())
}

// scriptedSource replays a fixed sequence of indexes.
type scriptedSource struct {
	seq []int
	pos int
}

func (s *scriptedSource) Intn(n int) int {
	if s.pos >= len(s.seq) {
		return 0
	}
	v := s.seq[s.pos] % n
	s.pos++
	return v
}

func newBoard(t *testing.T, width, height uint) *Board {
	t.Helper()
	b, err := NewBoard(width, height)
	if err != nil {
		t.Fatalf("NewBoard(%d, %d) error = %v", width, height, err)
	}
	return b
}

// fromRows builds a board from text rows using '#' for walls, ' ' for
// empty cells and 'x' for the exit.
func fromRows(t *testing.T, rows ...string) *Board {
	t.Helper()
	b := newBoard(t, uint(len(rows[0])), uint(len(rows)))
	for y, row := range rows {
		for x, ch := range row {
			switch ch {
			case ' ':
				b.Set(uint(x), uint(y), TileEmpty)
			case 'x':
				b.Set(uint(x), uint(y), TileExit)
			}
		}
	}
	return b
}
