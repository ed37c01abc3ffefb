package risk

import "math/rand"

// Phase is the stage of the current player's turn.
type Phase string

const (
	PhaseReinforce Phase = "reinforce"
	PhaseAttack    Phase = "attack"
	PhaseFortify   Phase = "fortify"
)

// TerritoryState is the mutable half of a territory: who holds it and with
// how many troops. Once a game has started every territory is owned and holds
// at least one troop.
type TerritoryState struct {
	Owner  string
	Troops int
}

// GameState is one running game. It references players only by ID; rosters,
// names, and lifecycle live with the caller.
type GameState struct {
	Territories        map[string]*TerritoryState
	TurnOrder          []string // alive players, rebuilt at every turn advance
	TurnIndex          int
	Phase              Phase
	ReinforcementsLeft int
	FortifiedThisTurn  bool
	WinnerID           string
}

// NewGameState partitions the world among the given players and opens the
// first reinforce phase. Territories are dealt round-robin over a shuffled
// player order with one troop each, then each player's remaining share of the
// starting-army total lands on random territories they already hold.
func NewGameState(playerIDs []string, rng *rand.Rand) *GameState {
	order := make([]string, len(playerIDs))
	copy(order, playerIDs)
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	ids := TerritoryIDs()
	rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	gs := &GameState{
		Territories: make(map[string]*TerritoryState, len(ids)),
		TurnOrder:   order,
		Phase:       PhaseReinforce,
	}
	for i, tid := range ids {
		gs.Territories[tid] = &TerritoryState{Owner: order[i%len(order)], Troops: 1}
	}

	total := startingArmies[len(order)]
	for _, pid := range order {
		owned := gs.TerritoriesOf(pid)
		for remaining := total - len(owned); remaining > 0; remaining-- {
			gs.Territories[owned[rng.Intn(len(owned))]].Troops++
		}
	}

	gs.ReinforcementsLeft = gs.ReinforcementAllowance(order[0])
	return gs
}

// CurrentPlayer returns the ID of the player whose turn it is.
func (gs *GameState) CurrentPlayer() string {
	return gs.TurnOrder[gs.TurnIndex]
}

// TerritoriesOf returns the IDs of all territories held by the player, in
// world table order.
func (gs *GameState) TerritoriesOf(playerID string) []string {
	var owned []string
	for _, tid := range territoryOrder {
		if gs.Territories[tid].Owner == playerID {
			owned = append(owned, tid)
		}
	}
	return owned
}

// IsAlive reports whether the player still holds at least one territory.
func (gs *GameState) IsAlive(playerID string) bool {
	for _, t := range gs.Territories {
		if t.Owner == playerID {
			return true
		}
	}
	return false
}

// AlivePlayers filters the turn order down to players who still hold
// territory, preserving order.
func (gs *GameState) AlivePlayers() []string {
	var alive []string
	for _, pid := range gs.TurnOrder {
		if gs.IsAlive(pid) {
			alive = append(alive, pid)
		}
	}
	return alive
}

// Finished reports whether a winner has been decided.
func (gs *GameState) Finished() bool {
	return gs.WinnerID != ""
}
