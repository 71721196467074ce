package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/samdwyer/mazeband/internal/maze"
)

// Session is one maze from generation until the player quits or restarts.
type Session struct {
	ID      uuid.UUID
	Board   *maze.Board
	Moves   int
	Started time.Time
}

// NewSession builds and generates a fresh maze.
func NewSession(ctx context.Context, width, height uint, src maze.IndexSource) (*Session, error) {
	board, err := maze.NewBoard(width, height)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	maze.Generate(ctx, board, src)

	return &Session{
		ID:      uuid.New(),
		Board:   board,
		Started: time.Now(),
	}, nil
}

// Elapsed returns how long the session has been running.
func (s *Session) Elapsed() time.Duration {
	return time.Since(s.Started)
}
