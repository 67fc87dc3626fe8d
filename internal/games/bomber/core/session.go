package core

import (
	"math/rand"
	"time"
)

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseInit Phase = iota
	PhasePlaying
	PhaseLevelComplete
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhasePlaying:
		return "playing"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session owns one game: the grid, every entity pool and the player's stats.
// It is not safe for concurrent use; a single loop drives intents and ticks.
type Session struct {
	settings Settings
	rng      *rand.Rand

	tick       uint64
	phase      Phase
	score      int
	level      int
	clearTimer time.Duration

	grid       *Grid
	door       Door
	player     *Player
	bombs      []Bomb
	explosions []Explosion
	enemies    []Enemy
	powerUps   []PowerUp

	report LevelReport
	events eventQueue
}

// NewSession validates the settings and starts a game at level 1.
func NewSession(settings Settings, seed int64) (*Session, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		settings: settings,
		rng:      rand.New(rand.NewSource(seed)),
	}
	s.Restart()
	return s, nil
}

// Restart resets score, level and player stats and builds level 1.
// Pending events are kept so listeners still see the previous game's last tick.
func (s *Session) Restart() {
	s.phase = PhaseInit
	s.score = 0
	s.level = 1
	s.player = &Player{
		Alive:       true,
		MaxBombs:    s.settings.StartBombs,
		BlastRadius: s.settings.StartRadius,
	}
	s.startLevel()
}

// startLevel clears the transient pools and builds the current level.
func (s *Session) startLevel() {
	s.bombs = nil
	s.explosions = nil
	s.powerUps = nil
	s.clearTimer = 0

	lvl, report := BuildLevel(s.rng, s.settings, s.level)
	s.grid = lvl.Grid
	s.door = lvl.Door
	s.enemies = lvl.Enemies
	s.report = report

	s.player.Pos = s.settings.Start
	s.phase = PhasePlaying
}

// completeLevel handles the player stepping through an active door.
func (s *Session) completeLevel() {
	s.level++
	s.emit(Event{Kind: EventLevelAdvanced, Pos: s.door.Pos})

	if s.settings.LevelClearDelay > 0 {
		s.phase = PhaseLevelComplete
		s.clearTimer = s.settings.LevelClearDelay
		return
	}
	s.startLevel()
}

// Tick advances the simulation by dt. Nothing moves once the game is over.
func (s *Session) Tick(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	s.tick++

	switch s.phase {
	case PhaseGameOver, PhaseInit:
		return
	case PhaseLevelComplete:
		s.clearTimer -= dt
		if s.clearTimer <= 0 {
			s.startLevel()
		}
		return
	}

	// Fade first so a blast created this tick keeps its full fade time
	s.updateExplosions(dt)
	s.updateBombs(dt)
	if s.phase != PhasePlaying {
		return
	}
	s.updateEnemies(dt)
	s.checkCollisions()
}

// updateBombs burns every fuse and detonates the expired bombs in placement order.
func (s *Session) updateBombs(dt time.Duration) {
	var expired []Bomb
	kept := s.bombs[:0]
	for _, b := range s.bombs {
		b.Fuse -= dt
		if b.Fuse <= 0 {
			expired = append(expired, b)
			continue
		}
		kept = append(kept, b)
	}
	s.bombs = kept

	for _, b := range expired {
		if s.phase == PhaseGameOver {
			// Bombs still due in the fatal tick never go off
			break
		}
		s.detonate(b)
	}
}

// updateExplosions fades explosions and drops the finished ones.
func (s *Session) updateExplosions(dt time.Duration) {
	kept := s.explosions[:0]
	for _, e := range s.explosions {
		e.Remaining -= dt
		if e.Remaining > 0 {
			kept = append(kept, e)
		}
	}
	s.explosions = kept
}

// Move tries to step the player one cell. Illegal moves are silently ignored.
func (s *Session) Move(d Dir) {
	if s.phase != PhasePlaying || !s.player.Alive {
		return
	}
	target := s.player.Pos.Step(d)
	if !s.grid.IsEmpty(target) || s.hasBomb(target) {
		return
	}

	s.player.Pos = target
	s.collectPowerUp(target)

	if s.door.Active && s.door.Pos == target {
		s.completeLevel()
	}
}

// PlaceBomb drops a bomb on the player's cell if the bomb limit allows it.
func (s *Session) PlaceBomb() {
	if s.phase != PhasePlaying || !s.player.Alive {
		return
	}
	if s.liveBombs(s.player) >= s.player.MaxBombs || s.hasBomb(s.player.Pos) {
		return
	}

	s.bombs = append(s.bombs, Bomb{
		Pos:    s.player.Pos,
		Fuse:   s.settings.Fuse,
		Radius: s.player.BlastRadius,
		owner:  s.player,
	})
	s.emit(Event{Kind: EventBombPlaced, Pos: s.player.Pos})
}

func (s *Session) liveBombs(owner *Player) int {
	n := 0
	for _, b := range s.bombs {
		if b.owner == owner {
			n++
		}
	}
	return n
}

func (s *Session) hasBomb(c Coord) bool {
	for _, b := range s.bombs {
		if b.Pos == c {
			return true
		}
	}
	return false
}

// emit stamps an event with the current tick, score and level and queues it.
func (s *Session) emit(e Event) {
	e.Tick = s.tick
	e.Score = s.score
	e.Level = s.level
	s.events.push(e)
}

// DrainEvents returns the events emitted since the previous call.
func (s *Session) DrainEvents() []Event {
	return s.events.drain()
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the cumulative score.
func (s *Session) Score() int { return s.score }

// Level returns the current level number, starting at 1.
func (s *Session) Level() int { return s.level }

// Player returns a copy of the player.
func (s *Session) Player() Player { return *s.player }

// Door returns a copy of the door.
func (s *Session) Door() Door { return s.door }

// EnemiesLeft returns the number of living enemies.
func (s *Session) EnemiesLeft() int { return len(s.enemies) }

// LevelReport describes the generation of the current level.
func (s *Session) LevelReport() LevelReport { return s.report }

// Settings returns the settings the session was created with.
func (s *Session) Settings() Settings { return s.settings }
