package maze

// PathToExit returns the shortest sequence of moves that takes the player
// from its current position to the exit. ok is false when no exit can be
// reached.
func PathToExit(v View) (path []Direction, ok bool) {
	width, height := v.Width(), v.Height()
	if width == 0 || height == 0 {
		return nil, false
	}

	type step struct {
		from Coord
		dir  Direction
	}

	origin := v.Player()
	index := func(c Coord) uint { return c.X + c.Y*width }
	visited := make([]bool, width*height)
	prev := make(map[Coord]step)
	visited[index(origin)] = true

	queue := []Coord{origin}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if v.Get(cur.X, cur.Y) == TileExit {
			for cur != origin {
				s := prev[cur]
				path = append(path, s.dir)
				cur = s.from
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path, true
		}

		for _, d := range Directions {
			next, ok := cur.Step(d)
			if !ok || next.X >= width || next.Y >= height || visited[index(next)] {
				continue
			}
			if !v.Get(next.X, next.Y).IsPassable() {
				continue
			}
			visited[index(next)] = true
			prev[next] = step{from: cur, dir: d}
			queue = append(queue, next)
		}
	}

	return nil, false
}
