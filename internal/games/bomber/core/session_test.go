package core

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
	"time"
)

func TestNewSessionRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{"even_width", func(s *Settings) { s.Width = 16 }},
		{"too_small", func(s *Settings) { s.Width, s.Height = 3, 3 }},
		{"zero_radius", func(s *Settings) { s.StartRadius = 0 }},
		{"density", func(s *Settings) { s.BlockDensity = 1.5 }},
		{"cooldown_range", func(s *Settings) { s.EnemyCooldownMax = s.EnemyCooldownMin / 2 }},
		{"start_outside_pocket", func(s *Settings) { s.Start = C(5, 5) }},
		{"no_retries", func(s *Settings) { s.SpawnRetries = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := DefaultSettings()
			tt.modify(&st)
			_, err := NewSession(st, 1)
			if !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("got %v, expected ErrInvalidSettings", err)
			}
		})
	}
}

func TestNewSessionStartsLevelOne(t *testing.T) {
	s, err := NewSession(DefaultSettings(), 42)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	if s.Phase() != PhasePlaying {
		t.Errorf("phase got %v, expected playing", s.Phase())
	}
	if s.Level() != 1 {
		t.Errorf("level got %d, expected 1", s.Level())
	}
	p := s.Player()
	if p.Pos != C(1, 1) || !p.Alive || p.MaxBombs != 1 || p.BlastRadius != 2 {
		t.Errorf("player got %+v, expected alive at (1,1) with 1 bomb and radius 2", p)
	}
	if got, want := s.EnemiesLeft()+s.LevelReport().MissingEnemies, 5; got != want {
		t.Errorf("enemies got %d, expected %d", got, want)
	}
}

func TestPlaceBombTwiceSameCell(t *testing.T) {
	s := newArena(t, 7, 7)
	s.player.MaxBombs = 3

	s.PlaceBomb()
	s.PlaceBomb()

	if len(s.bombs) != 1 {
		t.Errorf("got %d bombs, expected 1", len(s.bombs))
	}
	if got := countKind(s.DrainEvents(), EventBombPlaced); got != 1 {
		t.Errorf("got %d BombPlaced events, expected 1", got)
	}
}

func TestPlaceBombRespectsMaxBombs(t *testing.T) {
	s := newArena(t, 7, 7)

	s.PlaceBomb()
	s.Move(DirRight)
	s.PlaceBomb()

	if got := s.liveBombs(s.player); got != 1 {
		t.Errorf("got %d live bombs, expected 1", got)
	}

	s.player.MaxBombs = 2
	s.PlaceBomb()
	if got := s.liveBombs(s.player); got != 2 {
		t.Errorf("got %d live bombs, expected 2", got)
	}
}

func TestBombCopiesRadiusAtPlacement(t *testing.T) {
	s := newArena(t, 7, 7)

	s.PlaceBomb()
	s.player.BlastRadius = 5

	if got := s.bombs[0].Radius; got != 2 {
		t.Errorf("radius got %d, expected 2", got)
	}
}

func TestMoveBlocked(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Session)
		dir   Dir
	}{
		{"border_wall", func(*Session) {}, DirUp},
		{"pillar", func(s *Session) { s.player.Pos = C(1, 2) }, DirRight},
		{"block", func(s *Session) { s.grid.Set(C(2, 1), TileBlock) }, DirRight},
		{"bomb", func(s *Session) { placeTestBomb(s, C(2, 1), 1) }, DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newArena(t, 7, 7)
			tt.setup(s)
			before := s.Player().Pos

			s.Move(tt.dir)

			if got := s.Player().Pos; got != before {
				t.Errorf("position got %v, expected %v", got, before)
			}
			if events := s.DrainEvents(); events != nil {
				t.Errorf("got %d events, expected none", len(events))
			}
		})
	}
}

func TestMoveOffOwnBomb(t *testing.T) {
	s := newArena(t, 7, 7)

	s.PlaceBomb()
	s.Move(DirDown)

	if got := s.Player().Pos; got != C(1, 2) {
		t.Errorf("position got %v, expected (1,2)", got)
	}
	s.Move(DirUp)
	if got := s.Player().Pos; got != C(1, 2) {
		t.Errorf("walked back onto a bomb: got %v", got)
	}
}

func openDoorAt(s *Session, c Coord) {
	s.grid.Set(s.door.Pos, TileEmpty)
	s.door = Door{Pos: c, Active: true}
}

func TestDoorTransitAdvancesLevel(t *testing.T) {
	s := newArena(t, 7, 7)
	openDoorAt(s, C(2, 1))
	s.player.MaxBombs = 3
	s.player.BlastRadius = 4
	s.score = 250

	s.Move(DirRight)

	if s.Level() != 2 {
		t.Fatalf("level got %d, expected 2", s.Level())
	}
	if s.Phase() != PhasePlaying {
		t.Errorf("phase got %v, expected playing", s.Phase())
	}
	p := s.Player()
	if p.Pos != s.settings.Start {
		t.Errorf("player got %v, expected start %v", p.Pos, s.settings.Start)
	}
	if p.MaxBombs != 3 || p.BlastRadius != 4 {
		t.Errorf("stats got bombs=%d radius=%d, expected 3 and 4", p.MaxBombs, p.BlastRadius)
	}
	if s.Score() != 250 {
		t.Errorf("score got %d, expected 250", s.Score())
	}
	if s.Door().Active || !s.Door().Hidden {
		t.Errorf("new door got %+v, expected hidden and inactive", s.Door())
	}
	if got, want := s.EnemiesLeft()+s.LevelReport().MissingEnemies, EnemyCount(s.settings, 2); got != want {
		t.Errorf("enemies got %d, expected %d", got, want)
	}
	if s.LevelReport().Level != 2 {
		t.Errorf("report level got %d, expected 2", s.LevelReport().Level)
	}

	events := s.DrainEvents()
	if len(events) != 1 || events[0].Kind != EventLevelAdvanced || events[0].Level != 2 {
		t.Errorf("events got %+v, expected one LevelAdvanced at level 2", events)
	}
}

func TestInactiveDoorIsNotAnExit(t *testing.T) {
	s := newArena(t, 7, 7)
	openDoorAt(s, C(2, 1))
	s.door.Active = false

	s.Move(DirRight)

	if s.Level() != 1 {
		t.Errorf("level got %d, expected 1", s.Level())
	}
}

func TestLevelClearDelay(t *testing.T) {
	s := newArena(t, 7, 7)
	s.settings.LevelClearDelay = time.Second
	openDoorAt(s, C(2, 1))
	placeTestBomb(s, C(1, 3), 1)

	s.Move(DirRight)

	if s.Phase() != PhaseLevelComplete {
		t.Fatalf("phase got %v, expected level complete", s.Phase())
	}
	if s.Level() != 2 {
		t.Errorf("level got %d, expected 2", s.Level())
	}

	// Intents are ignored while the level is being cleared
	s.Move(DirLeft)
	s.PlaceBomb()
	if got := s.Player().Pos; got != C(2, 1) {
		t.Errorf("player moved during level clear: %v", got)
	}

	s.Tick(ms(999))
	if s.Phase() != PhaseLevelComplete {
		t.Fatalf("phase got %v after 999ms, expected level complete", s.Phase())
	}
	if len(s.bombs) != 1 || s.bombs[0].Fuse != s.settings.Fuse {
		t.Errorf("bomb fuse burned during level clear: %+v", s.bombs)
	}

	s.Tick(ms(1))
	if s.Phase() != PhasePlaying {
		t.Fatalf("phase got %v, expected playing", s.Phase())
	}
	if len(s.bombs) != 0 {
		t.Errorf("got %d bombs on the new level, expected 0", len(s.bombs))
	}
	if got := s.Player().Pos; got != s.settings.Start {
		t.Errorf("player got %v, expected %v", got, s.settings.Start)
	}
}

func TestRestartResetsGame(t *testing.T) {
	s := newArena(t, 7, 7)
	s.PlaceBomb()
	detonateNow(s)
	if s.Phase() != PhaseGameOver {
		t.Fatalf("phase got %v, expected game over", s.Phase())
	}
	s.score = 500
	s.player.MaxBombs = 4

	s.Restart()

	if s.Phase() != PhasePlaying {
		t.Errorf("phase got %v, expected playing", s.Phase())
	}
	if s.Score() != 0 || s.Level() != 1 {
		t.Errorf("got score=%d level=%d, expected 0 and 1", s.Score(), s.Level())
	}
	p := s.Player()
	if !p.Alive || p.MaxBombs != 1 || p.BlastRadius != 2 || p.Pos != C(1, 1) {
		t.Errorf("player got %+v, expected a fresh player", p)
	}
	if len(s.bombs) != 0 || len(s.explosions) != 0 || len(s.powerUps) != 0 {
		t.Error("pools not cleared on restart")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	s := newArena(t, 7, 7)
	s.player.Pos = C(5, 3)
	addTestEnemy(s, C(3, 3))
	placeTestBomb(s, C(1, 1), 1)
	detonateNow(s)

	snap := s.Snapshot()
	snap.Grid.Set(C(1, 1), TileBlock)
	snap.Explosions[0].Cells[0] = C(9, 9)
	snap.Player.MaxBombs = 99

	if s.grid.At(C(1, 1)) != TileEmpty {
		t.Error("snapshot grid shares memory with the session")
	}
	if s.explosions[0].Cells[0] == C(9, 9) {
		t.Error("snapshot explosion cells share memory with the session")
	}
	if s.player.MaxBombs == 99 {
		t.Error("snapshot player shares memory with the session")
	}
}

func TestSnapshotLookups(t *testing.T) {
	s := newArena(t, 7, 7)
	addTestEnemy(s, C(5, 1))
	s.powerUps = []PowerUp{{Pos: C(3, 5), Kind: PowerUpExtraBlast}}
	s.PlaceBomb()

	snap := s.Snapshot()

	if b, ok := snap.BombAt(C(1, 1)); !ok || b.Radius != 2 {
		t.Errorf("BombAt got %+v %v, expected radius 2 bomb", b, ok)
	}
	if !snap.EnemyAt(C(5, 1)) || snap.EnemyAt(C(1, 1)) {
		t.Error("EnemyAt mismatch")
	}
	if p, ok := snap.PowerUpAt(C(3, 5)); !ok || p.Kind != PowerUpExtraBlast {
		t.Errorf("PowerUpAt got %+v %v", p, ok)
	}
	if _, ok := snap.ExplosionAt(C(1, 1)); ok {
		t.Error("ExplosionAt reported a blast before detonation")
	}
	if !snap.Alive() {
		t.Error("expected alive player")
	}
}

// playRandom drives a session with seeded random intents.
func playRandom(s *Session, seed int64, ticks int) {
	rng := rand.New(rand.NewSource(seed))
	for range ticks {
		switch rng.Intn(8) {
		case 0:
			s.PlaceBomb()
		case 1, 2, 3, 4:
			s.Move(AllDirs[rng.Intn(len(AllDirs))])
		}
		s.Tick(ms(50))
		s.DrainEvents()
		if s.Phase() == PhaseGameOver {
			s.Restart()
		}
	}
}

func TestDeterminism(t *testing.T) {
	a, err := NewSession(DefaultSettings(), 12345)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	b, err := NewSession(DefaultSettings(), 12345)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	playRandom(a, 7, 2000)
	playRandom(b, 7, 2000)

	sa, sb := a.Snapshot(), b.Snapshot()
	if sa.Tick != sb.Tick {
		t.Errorf("Tick mismatch: %d vs %d", sa.Tick, sb.Tick)
	}
	if sa.Score != sb.Score {
		t.Errorf("Score mismatch: %d vs %d", sa.Score, sb.Score)
	}
	if !reflect.DeepEqual(sa, sb) {
		t.Error("snapshots differ for the same seed and intents")
	}
}

func TestStatsAndDoorAreMonotonic(t *testing.T) {
	st := DefaultSettings()
	st.PowerUpChance = 0.6
	s, err := NewSession(st, 3)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	rng := rand.New(rand.NewSource(11))

	prev := s.Player()
	prevDoor := s.Door()
	prevLevel := s.Level()
	for range 5000 {
		switch rng.Intn(6) {
		case 0:
			s.PlaceBomb()
		default:
			s.Move(AllDirs[rng.Intn(len(AllDirs))])
		}
		s.Tick(ms(50))

		p := s.Player()
		if p.MaxBombs < prev.MaxBombs || p.BlastRadius < prev.BlastRadius {
			t.Fatalf("stats decreased: %+v -> %+v", prev, p)
		}
		d := s.Door()
		if s.Level() == prevLevel && prevDoor.Active && !d.Active {
			t.Fatal("door deactivated within a level")
		}
		if d.Active && (d.Hidden || s.EnemiesLeft() > 0) {
			t.Fatalf("door active while hidden=%v enemies=%d", d.Hidden, s.EnemiesLeft())
		}
		if got := s.liveBombs(s.player); got > p.MaxBombs {
			t.Fatalf("live bombs %d exceed max %d", got, p.MaxBombs)
		}

		if s.Phase() == PhaseGameOver {
			break
		}
		prev, prevDoor, prevLevel = p, d, s.Level()
	}
}

func TestEventsCarryTickAndScore(t *testing.T) {
	s := newArena(t, 7, 7)
	s.player.Pos = C(5, 1)
	s.grid.Set(C(1, 3), TileBlock)
	s.settings.PowerUpChance = 0

	placeTestBomb(s, C(1, 1), 2)
	detonateNow(s)

	events := s.DrainEvents()
	if len(events) != 1 {
		t.Fatalf("got %d events, expected 1", len(events))
	}
	e := events[0]
	if e.Kind != EventExplosion || e.Score != 10 || e.Tick != 1 || e.Level != 1 {
		t.Errorf("event got %+v", e)
	}
	if e.Cells != 5 {
		t.Errorf("cells got %d, expected 5", e.Cells)
	}
	if s.DrainEvents() != nil {
		t.Error("events drained twice")
	}
}
