package risk

// CombatResult describes one resolved attack, including everything the caller
// needs to narrate it.
type CombatResult struct {
	AttackRolls    []int
	DefendRolls    []int
	AttackerLosses int
	DefenderLosses int
	Captured       bool
	PreviousOwner  string // defender before a capture, "" otherwise
	TroopsMoved    int    // troops moved into a captured territory
}

// Attack resolves one round of combat from an owned territory against an
// adjacent enemy territory. The attacker chooses dice in [1, min(3, troops-1)];
// the defender always rolls min(2, troops). Rolls are compared pairwise from
// the highest down, ties favoring the defender. If the defense is wiped out
// the attacker captures the territory, moving in at least one troop and at
// most dice troops while keeping a garrison at the origin.
func (gs *GameState) Attack(playerID, from, to string, dice int, d Dice) (*CombatResult, error) {
	if gs.Phase != PhaseAttack {
		return nil, wrongPhase("Not in attack phase")
	}
	src, ok := gs.Territories[from]
	if !ok {
		return nil, badArgument("Unknown territory")
	}
	dst, ok := gs.Territories[to]
	if !ok {
		return nil, badArgument("Unknown territory")
	}
	if !AreAdjacent(from, to) {
		return nil, badArgument("Territories are not adjacent")
	}
	if src.Owner != playerID {
		return nil, badArgument("You must own attack origin")
	}
	if dst.Owner == playerID {
		return nil, badArgument("Target must be enemy territory")
	}
	if src.Troops < 2 {
		return nil, badArgument("Need at least 2 troops to attack")
	}
	maxDice := src.Troops - 1
	if maxDice > 3 {
		maxDice = 3
	}
	if dice < 1 || dice > maxDice {
		return nil, badArgument("Attacker dice must be 1..%d", maxDice)
	}

	defenderDice := dst.Troops
	if defenderDice > 2 {
		defenderDice = 2
	}

	result := &CombatResult{
		AttackRolls: d.Roll(dice),
		DefendRolls: d.Roll(defenderDice),
	}

	pairs := len(result.AttackRolls)
	if len(result.DefendRolls) < pairs {
		pairs = len(result.DefendRolls)
	}
	for i := 0; i < pairs; i++ {
		if result.AttackRolls[i] > result.DefendRolls[i] {
			result.DefenderLosses++
		} else {
			result.AttackerLosses++
		}
	}

	src.Troops -= result.AttackerLosses
	dst.Troops -= result.DefenderLosses

	if dst.Troops <= 0 {
		result.Captured = true
		result.PreviousOwner = dst.Owner

		move := src.Troops - 1
		if move > dice {
			move = dice
		}
		if move < 1 {
			move = 1
		}
		dst.Owner = playerID
		dst.Troops = move
		src.Troops -= move
		result.TroopsMoved = move
	}

	return result, nil
}
