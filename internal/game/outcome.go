package game

// MatchState is the match lifecycle: Running until the player dies (Lost)
// or the opponent roster empties with the player alive (Won).
type MatchState int

const (
	MatchRunning MatchState = iota
	MatchWon
	MatchLost
)

func (s MatchState) String() string {
	switch s {
	case MatchRunning:
		return "running"
	case MatchWon:
		return "won"
	case MatchLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further ticks will be simulated.
func (s MatchState) Terminal() bool {
	return s == MatchWon || s == MatchLost
}

// determineOutcome applies the end-of-match rules. Loss is checked first so
// a tick that kills the player and empties the roster resolves to Lost.
func determineOutcome(player *Player, roster int) MatchState {
	if !player.Alive() {
		return MatchLost
	}
	if roster == 0 {
		return MatchWon
	}
	return MatchRunning
}
