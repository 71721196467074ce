package maze

import (
	"context"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazeband/internal/telemetry"
)

// passage is the lattice spacing between rooms. Every other cell along each
// axis is a room; the cells between them are walls that may be knocked out.
const passage = 2

// Log receives debug output from maze generation.
var Log = logrus.New()

// IndexSource picks uniformly random indexes in [0, n).
// *rand.Rand satisfies it.
type IndexSource interface {
	Intn(n int) int
}

// NewIndexSource returns a time-seeded source for production use.
func NewIndexSource() IndexSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Generate carves a maze into an all-wall board using randomized Prim's
// algorithm, then turns the last carved room into the exit.
//
// The carved cells form a spanning tree over the rooms reachable from the
// start, so exactly one path joins any two open cells. Boards too small to
// hold a second room keep only the start room and get no exit.
func Generate(ctx context.Context, b *Board, src IndexSource) {
	tracer := telemetry.Tracer("maze")
	_, span := tracer.Start(ctx, "maze.generate")
	defer span.End()

	startTime := time.Now()

	start := b.start
	b.Set(start.X, start.Y, TileEmpty)

	frontier := b.Neighbors(start.X, start.Y, passage, b.IsWall)

	var (
		last   Coord
		carved int
		popped int
	)
	for len(frontier) > 0 {
		i := src.Intn(len(frontier))
		wall := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		popped++

		rooms := b.Neighbors(wall.X, wall.Y, passage, b.IsEmpty)
		connections := b.Neighbors(wall.X, wall.Y, 1, b.IsEmpty)

		// A wall that already touches an open cell is part of the tree.
		if len(rooms) == 0 || len(connections) > 0 {
			continue
		}

		room := rooms[src.Intn(len(rooms))]
		between := midpoint(room, wall)
		b.Set(between.X, between.Y, TileEmpty)
		b.Set(wall.X, wall.Y, TileEmpty)

		last = wall
		carved++
		frontier = append(frontier, b.Neighbors(wall.X, wall.Y, passage, b.IsWall)...)
	}

	if carved > 0 {
		b.Set(last.X, last.Y, TileExit)
	}

	Log.WithFields(logrus.Fields{
		"width":  b.size.X,
		"height": b.size.Y,
		"rooms":  carved + 1,
		"popped": popped,
		"exit_x": last.X,
		"exit_y": last.Y,
	}).Debug("maze generated")

	span.SetAttributes(
		attribute.Int64("maze.width", int64(b.size.X)),
		attribute.Int64("maze.height", int64(b.size.Y)),
		attribute.Int("maze.rooms", carved+1),
		attribute.Int("maze.frontier_pops", popped),
		attribute.Bool("maze.has_exit", carved > 0),
		attribute.Int64("maze.generation_ms", time.Since(startTime).Milliseconds()),
	)
}
