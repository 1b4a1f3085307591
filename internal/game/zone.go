package game

// zoneDamage turns this tick's exposure into whole damage points. Fractional
// exposure from a short dt carries over in debt.
func zoneDamage(debt *float64, perTick int, dt float64) int {
	*debt += float64(perTick) * dt
	whole := int(*debt)
	*debt -= float64(whole)
	return whole
}

// resolveZone shrinks the zone, then damages the player and every active
// opponent standing outside it.
func (s *Simulation) resolveZone(dt float64, rep *TickReport) {
	t := &s.tuning
	s.zone.Shrink(t.ZoneShrinkRate*dt, t.ZoneMinRadius)

	p := &s.player
	if !s.zone.Contains(p.X, p.Y) {
		if dmg := zoneDamage(&p.zoneDebt, t.ZoneDamage, dt); dmg > 0 {
			s.damagePlayer(dmg, SourceZone, rep)
			if s.state == MatchLost {
				return
			}
		}
	}

	for _, o := range s.opponents {
		if s.zone.Contains(o.X, o.Y) {
			continue
		}
		if dmg := zoneDamage(&o.zoneDebt, t.ZoneDamage, dt); dmg > 0 {
			s.damageOpponent(o, dmg, SourceZone, rep)
		}
	}
	s.compactOpponents()
}
