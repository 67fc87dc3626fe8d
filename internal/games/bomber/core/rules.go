package core

// detonate resolves a bomb whose fuse ran out: it scans the four directions,
// destroys blocks, reveals the door, drops power-ups and kills whatever stands
// in the blast. Other bombs in the blast are not triggered early.
func (s *Session) detonate(b Bomb) {
	cells := []Coord{b.Pos}
	var blocks []Coord

	for _, d := range AllDirs {
		for i := 1; i <= b.Radius; i++ {
			dx, dy := d.Delta()
			c := b.Pos.Add(dx*i, dy*i)

			tile := s.grid.At(c) // out of bounds reads as wall
			if tile == TileWall {
				break
			}

			cells = append(cells, c)

			if tile == TileBlock {
				blocks = append(blocks, c)
				break
			}
		}
	}

	// A blast that kills the player still scores its blocks and enemies but
	// cannot open the door. The game ends after the blast is resolved, so
	// PlayerDied carries the final score.
	playerHit := false
	for _, c := range cells {
		if s.player.Alive && s.player.Pos == c {
			playerHit = true
			s.player.Alive = false
		}
	}

	for _, c := range blocks {
		s.destroyBlock(c)
	}

	s.explosions = append(s.explosions, Explosion{
		Cells:     cells,
		Remaining: s.settings.ExplosionFade,
	})
	s.emit(Event{Kind: EventExplosion, Pos: b.Pos, Cells: len(cells)})

	for _, c := range cells {
		s.killEnemiesAt(c)
	}

	if playerHit {
		s.endGame()
	}
}

// destroyBlock clears a block hit by a blast.
func (s *Session) destroyBlock(c Coord) {
	s.grid.Set(c, TileEmpty)
	s.score += s.settings.BlockPoints

	if c == s.door.Pos {
		s.door.Hidden = false
		s.tryOpenDoor()
		return
	}

	if s.rng.Float64() < s.settings.PowerUpChance {
		kind := PowerUpExtraBlast
		if s.rng.Float64() < s.settings.ExtraBombWeight {
			kind = PowerUpExtraBomb
		}
		s.powerUps = append(s.powerUps, PowerUp{Pos: c, Kind: kind})
	}
}

// killEnemiesAt removes every enemy standing on c.
func (s *Session) killEnemiesAt(c Coord) {
	kept := s.enemies[:0]
	killed := false
	for _, e := range s.enemies {
		if e.Pos == c {
			s.score += s.settings.EnemyPoints
			killed = true
			continue
		}
		kept = append(kept, e)
	}
	s.enemies = kept

	if killed {
		s.tryOpenDoor()
	}
}

// tryOpenDoor activates the door once it is revealed and the level is clear.
// Activation is permanent for the level.
func (s *Session) tryOpenDoor() {
	if s.door.Active || s.door.Hidden || len(s.enemies) > 0 || !s.player.Alive {
		return
	}
	s.door.Active = true
	s.emit(Event{Kind: EventDoorOpened, Pos: s.door.Pos})
}

// collectPowerUp applies and removes any pickup at c.
func (s *Session) collectPowerUp(c Coord) {
	kept := s.powerUps[:0]
	for _, p := range s.powerUps {
		if p.Pos != c {
			kept = append(kept, p)
			continue
		}
		switch p.Kind {
		case PowerUpExtraBomb:
			s.player.MaxBombs++
		case PowerUpExtraBlast:
			s.player.BlastRadius++
		}
		s.emit(Event{Kind: EventPowerUpCollected, Pos: c, PowerUp: p.Kind})
	}
	s.powerUps = kept
}

// checkCollisions ends the game when an enemy shares the player's cell.
func (s *Session) checkCollisions() {
	for _, e := range s.enemies {
		if e.Pos == s.player.Pos {
			s.endGame()
			return
		}
	}
}

// endGame kills the player and freezes the session. Repeated calls are no-ops.
func (s *Session) endGame() {
	if s.phase == PhaseGameOver {
		return
	}
	s.player.Alive = false
	s.phase = PhaseGameOver
	s.emit(Event{Kind: EventPlayerDied, Pos: s.player.Pos})
}
