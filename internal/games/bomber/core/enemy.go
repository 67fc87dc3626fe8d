package core

import "time"

// updateEnemies advances every enemy's move cooldown. An enemy whose cooldown
// expires steps forward if the cell ahead is empty and bomb-free, otherwise it
// turns to a random direction and stays put this round.
func (s *Session) updateEnemies(dt time.Duration) {
	for i := range s.enemies {
		e := &s.enemies[i]
		e.Cooldown -= dt
		if e.Cooldown > 0 {
			continue
		}
		e.Cooldown = s.randomCooldown()

		next := e.Pos.Step(e.Dir)
		if s.grid.IsEmpty(next) && !s.hasBomb(next) {
			e.Pos = next
			continue
		}
		e.Dir = AllDirs[s.rng.Intn(len(AllDirs))]
	}
}

// randomCooldown returns a duration in [EnemyCooldownMin, EnemyCooldownMax).
func (s *Session) randomCooldown() time.Duration {
	lo, hi := s.settings.EnemyCooldownMin, s.settings.EnemyCooldownMax
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(s.rng.Int63n(int64(hi-lo)))
}
