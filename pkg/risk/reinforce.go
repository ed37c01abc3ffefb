package risk

// ReinforcementAllowance computes the troops a player receives at the start
// of their turn: max(3, territories/3) plus the bonus of every continent they
// fully control. Computed once at reinforce-phase entry, never mid-phase.
func (gs *GameState) ReinforcementAllowance(playerID string) int {
	owned := 0
	for _, t := range gs.Territories {
		if t.Owner == playerID {
			owned++
		}
	}

	troops := owned / 3
	if troops < 3 {
		troops = 3
	}

	for _, c := range Continents() {
		if gs.ownsContinent(playerID, c) {
			troops += c.Bonus
		}
	}
	return troops
}

func (gs *GameState) ownsContinent(playerID string, c Continent) bool {
	for _, tid := range c.Members {
		if gs.Territories[tid].Owner != playerID {
			return false
		}
	}
	return true
}
