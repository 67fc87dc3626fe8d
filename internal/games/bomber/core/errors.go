package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNoBlockCells means the random layout pass placed no destructible
	// block, so there is nowhere to hide the door.
	ErrNoBlockCells = errors.New("no block cells to hide the door")

	// ErrEnemyPlacement means the bounded resample loop found no free spawn cell.
	ErrEnemyPlacement = errors.New("no free enemy spawn cell")

	// ErrInvalidSettings is wrapped by Settings.Validate failures.
	ErrInvalidSettings = errors.New("invalid settings")
)

// LevelGenerationError reports a degenerate level build step.
// Callers recover by regenerating with relaxed constraints.
type LevelGenerationError struct {
	Level    int
	Stage    string // "layout" or "enemies"
	Attempts int
	Err      error
}

func (e *LevelGenerationError) Error() string {
	return fmt.Sprintf("level %d: %s generation failed after %d attempts: %v", e.Level, e.Stage, e.Attempts, e.Err)
}

func (e *LevelGenerationError) Unwrap() error {
	return e.Err
}
