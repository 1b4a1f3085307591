package game

import "math"

// --- Firing ---

// spawnProjectile puts a new projectile into play from a shooter at (x,y),
// pushed out by the muzzle offset along angle.
func (s *Simulation) spawnProjectile(shooter EntityID, x, y, angle float64, rep *TickReport) *Projectile {
	off := s.tuning.MuzzleOffset
	pr := newProjectile(s.allocID(), shooter,
		x+math.Cos(angle)*off, y+math.Sin(angle)*off,
		angle, s.tuning.ProjectileSpeed)
	s.projectiles = append(s.projectiles, pr)
	rep.Spawned = append(rep.Spawned, ProjectileSpawn{
		ID: pr.ID, Shooter: shooter, X: pr.X, Y: pr.Y, VX: pr.VX, VY: pr.VY,
	})
	return pr
}

// playerFire handles the edge-triggered fire action. Unarmed fire is ignored.
func (s *Simulation) playerFire(in InputSnapshot, rep *TickReport) {
	if !in.Fire || !s.player.HasWeapon {
		return
	}
	s.spawnProjectile(PlayerID, s.player.X, s.player.Y, s.player.Facing, rep)
}

// opponentsFire rolls each armed opponent's chance to shoot straight at the
// player. No leading, no spread.
func (s *Simulation) opponentsFire(dt float64, rep *TickReport) {
	chance := s.tuning.OpponentFireChance * dt
	for _, o := range s.opponents {
		if !o.HasWeapon {
			continue
		}
		if s.rng.Float64() >= chance {
			continue
		}
		angle := math.Atan2(s.player.Y-o.Y, s.player.X-o.X)
		s.spawnProjectile(o.ID, o.X, o.Y, angle, rep)
	}
}

// --- Resolution ---

// resolveProjectiles advances every projectile and applies at most one hit
// each, until the player dies. The player is tested before any opponent. Consumed projectiles and
// dead opponents are marked during the pass and compacted afterwards.
func (s *Simulation) resolveProjectiles(dt float64, rep *TickReport) {
	t := &s.tuning
	for _, pr := range s.projectiles {
		pr.X += pr.VX * dt
		pr.Y += pr.VY * dt

		if pr.X < 0 || pr.X > t.Width || pr.Y < 0 || pr.Y > t.Height {
			pr.spent = true
			rep.Removed = append(rep.Removed, ProjectileRemoval{ID: pr.ID, Reason: RemovedOutOfBounds})
			continue
		}

		// Once the player is dead the match is over: remaining projectiles
		// still move but hit nothing.
		if s.state == MatchLost {
			continue
		}

		if s.player.Alive() && circlesOverlap(pr.X, pr.Y, t.ProjectileRadius, s.player.X, s.player.Y, t.EntityRadius) {
			pr.spent = true
			rep.Removed = append(rep.Removed, ProjectileRemoval{ID: pr.ID, Reason: RemovedOnHit, Target: PlayerID})
			s.damagePlayer(t.ProjectileDamage, SourceProjectile, rep)
			continue
		}

		for _, o := range s.opponents {
			if !o.Alive() {
				continue
			}
			if !circlesOverlap(pr.X, pr.Y, t.ProjectileRadius, o.X, o.Y, t.EntityRadius) {
				continue
			}
			pr.spent = true
			rep.Removed = append(rep.Removed, ProjectileRemoval{ID: pr.ID, Reason: RemovedOnHit, Target: o.ID})
			s.damageOpponent(o, t.ProjectileDamage, SourceProjectile, rep)
			break
		}
	}
	s.compactProjectiles()
	s.compactOpponents()
}

// --- Damage ---

// damagePlayer applies damage and flips the match to Lost on death.
func (s *Simulation) damagePlayer(amount int, src DamageSource, rep *TickReport) {
	p := &s.player
	p.Health -= amount
	rep.Damage = append(rep.Damage, DamageEvent{
		Target: PlayerID, Kind: KindPlayer, Source: src,
		Amount: amount, Remaining: clampHealth(p.Health),
	})
	if !p.Alive() {
		rep.Deaths = append(rep.Deaths, DeathEvent{ID: PlayerID, Kind: KindPlayer})
		s.state = MatchLost
	}
}

// damageOpponent applies damage; a dead opponent stays in the slice until the
// next compaction but is skipped by every check.
func (s *Simulation) damageOpponent(o *Opponent, amount int, src DamageSource, rep *TickReport) {
	o.Health -= amount
	rep.Damage = append(rep.Damage, DamageEvent{
		Target: o.ID, Kind: KindOpponent, Source: src,
		Amount: amount, Remaining: clampHealth(o.Health),
	})
	if !o.Alive() {
		rep.Deaths = append(rep.Deaths, DeathEvent{ID: o.ID, Kind: KindOpponent})
	}
}

// --- Compaction ---

func (s *Simulation) compactProjectiles() {
	kept := s.projectiles[:0]
	for _, pr := range s.projectiles {
		if !pr.spent {
			kept = append(kept, pr)
		}
	}
	for i := len(kept); i < len(s.projectiles); i++ {
		s.projectiles[i] = nil
	}
	s.projectiles = kept
}

func (s *Simulation) compactOpponents() {
	kept := s.opponents[:0]
	for _, o := range s.opponents {
		if o.Alive() {
			kept = append(kept, o)
		}
	}
	for i := len(kept); i < len(s.opponents); i++ {
		s.opponents[i] = nil
	}
	s.opponents = kept
}
