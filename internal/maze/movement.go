package maze

// MoveUp moves the player one row up if that cell is open.
func (b *Board) MoveUp() { b.Move(Up) }

// MoveDown moves the player one row down if that cell is open.
func (b *Board) MoveDown() { b.Move(Down) }

// MoveLeft moves the player one column left if that cell is open.
func (b *Board) MoveLeft() { b.Move(Left) }

// MoveRight moves the player one column right if that cell is open.
func (b *Board) MoveRight() { b.Move(Right) }

// Move steps the player in direction d. Steps off the board or into a wall
// leave the player in place. Entering the exit marks the board done.
func (b *Board) Move(d Direction) {
	next, ok := b.player.Step(d)
	if !ok || !b.InBounds(next.X, next.Y) {
		return
	}

	tile := b.Get(next.X, next.Y)
	if tile == TileExit {
		b.done = true
	}
	if tile != TileWall {
		b.player = next
	}
}
