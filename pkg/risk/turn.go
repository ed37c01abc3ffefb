package risk

// TurnResult reports what happened when a turn ended.
type TurnResult struct {
	Finished       bool
	WinnerID       string // empty if Finished is false, or if nobody remained
	NextPlayer     string
	Reinforcements int
}

// Reinforce places count troops on an owned territory and debits the
// reinforcement balance. Spending the balance to exactly zero advances the
// phase to attack; the returned flag reports that transition.
func (gs *GameState) Reinforce(playerID, territory string, count int) (phaseAdvanced bool, err error) {
	if gs.Phase != PhaseReinforce {
		return false, wrongPhase("Not in reinforce phase")
	}
	spot, ok := gs.Territories[territory]
	if !ok {
		return false, badArgument("Unknown territory")
	}
	if count < 1 {
		return false, badArgument("Invalid troop count")
	}
	if count > gs.ReinforcementsLeft {
		return false, badArgument("Not enough reinforcements")
	}
	if spot.Owner != playerID {
		return false, badArgument("You must own that territory")
	}

	spot.Troops += count
	gs.ReinforcementsLeft -= count
	if gs.ReinforcementsLeft == 0 {
		gs.Phase = PhaseAttack
		return true, nil
	}
	return false, nil
}

// EndAttack leaves the attack phase for fortify. No validation beyond phase.
func (gs *GameState) EndAttack(playerID string) error {
	if gs.Phase != PhaseAttack {
		return wrongPhase("Not in attack phase")
	}
	gs.Phase = PhaseFortify
	return nil
}

// Fortify moves count troops between two owned adjacent territories. Allowed
// at most once per turn and must leave a garrison behind.
func (gs *GameState) Fortify(playerID, from, to string, count int) error {
	if gs.Phase != PhaseFortify {
		return wrongPhase("Not in fortify phase")
	}
	if gs.FortifiedThisTurn {
		return wrongPhase("Fortify already used this turn")
	}
	src, ok := gs.Territories[from]
	if !ok {
		return badArgument("Unknown territory")
	}
	dst, ok := gs.Territories[to]
	if !ok {
		return badArgument("Unknown territory")
	}
	if !AreAdjacent(from, to) {
		return badArgument("Fortify requires adjacent territories")
	}
	if src.Owner != playerID || dst.Owner != playerID {
		return badArgument("You must own both territories")
	}
	if count < 1 || src.Troops-count < 1 {
		return badArgument("Must leave at least 1 troop behind")
	}

	src.Troops -= count
	dst.Troops += count
	gs.FortifiedThisTurn = true
	return nil
}

// EndTurn finishes the current turn. Valid from the attack phase (skipping
// fortify) or the fortify phase.
func (gs *GameState) EndTurn(playerID string) (*TurnResult, error) {
	if gs.Phase != PhaseAttack && gs.Phase != PhaseFortify {
		return nil, wrongPhase("You can end turn after reinforcements")
	}
	return gs.AdvanceTurn(), nil
}

// AdvanceTurn rebuilds the turn order from players still holding territory
// and hands the turn to the next of them. With one or zero contenders left
// the game is over and the state freezes.
func (gs *GameState) AdvanceTurn() *TurnResult {
	if gs.Finished() {
		return &TurnResult{Finished: true, WinnerID: gs.WinnerID}
	}

	previous := ""
	if len(gs.TurnOrder) > 0 {
		previous = gs.TurnOrder[gs.TurnIndex%len(gs.TurnOrder)]
	}

	alive := gs.AlivePlayers()
	gs.TurnOrder = alive
	if len(alive) <= 1 {
		winner := ""
		if len(alive) == 1 {
			winner = alive[0]
		}
		gs.WinnerID = winner
		return &TurnResult{Finished: true, WinnerID: winner}
	}

	current := 0
	for i, pid := range alive {
		if pid == previous {
			current = i
			break
		}
	}
	gs.TurnIndex = (current + 1) % len(alive)
	next := alive[gs.TurnIndex]

	gs.Phase = PhaseReinforce
	gs.ReinforcementsLeft = gs.ReinforcementAllowance(next)
	gs.FortifiedThisTurn = false

	return &TurnResult{NextPlayer: next, Reinforcements: gs.ReinforcementsLeft}
}
