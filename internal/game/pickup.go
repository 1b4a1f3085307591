package game

// resolvePickups consumes every pickup touching the player. Opponents never
// collect pickups.
func (s *Simulation) resolvePickups(rep *TickReport) {
	t := &s.tuning
	p := &s.player
	for _, it := range s.pickups {
		if !circlesOverlap(p.X, p.Y, t.EntityRadius, it.X, it.Y, t.PickupRadius) {
			continue
		}
		switch it.Kind {
		case PickupWeapon:
			p.HasWeapon = true
		case PickupHealth:
			p.Health += t.HealthPickupAmount
			if p.Health > t.MaxHealth {
				p.Health = t.MaxHealth
			}
		}
		it.taken = true
		rep.Pickups = append(rep.Pickups, PickupEvent{ID: it.ID, Kind: it.Kind})
	}

	kept := s.pickups[:0]
	for _, it := range s.pickups {
		if !it.taken {
			kept = append(kept, it)
		}
	}
	for i := len(kept); i < len(s.pickups); i++ {
		s.pickups[i] = nil
	}
	s.pickups = kept
}
