package risk

import (
	"math/rand"
	"testing"
)

// testState builds a game where p1 owns the listed territories (one troop
// each unless overridden) and fallback owns the rest. The turn order is
// whatever the caller says; phase defaults to reinforce.
func testState(owned []string, p1, fallback string, order []string) *GameState {
	gs := &GameState{
		Territories: make(map[string]*TerritoryState, len(World)),
		TurnOrder:   order,
		Phase:       PhaseReinforce,
	}
	for _, tid := range TerritoryIDs() {
		gs.Territories[tid] = &TerritoryState{Owner: fallback, Troops: 1}
	}
	for _, tid := range owned {
		gs.Territories[tid].Owner = p1
	}
	return gs
}

func players(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = string(rune('a' + i))
	}
	return ids
}

func TestNewGameStateInvariants(t *testing.T) {
	for count := 2; count <= 6; count++ {
		rng := rand.New(rand.NewSource(int64(count)))
		gs := NewGameState(players(count), rng)

		if gs.Phase != PhaseReinforce {
			t.Errorf("%d players: phase %s, want reinforce", count, gs.Phase)
		}
		if len(gs.TurnOrder) != count {
			t.Errorf("%d players: turn order has %d entries", count, len(gs.TurnOrder))
		}

		troops := make(map[string]int)
		for tid, ts := range gs.Territories {
			if ts.Owner == "" {
				t.Errorf("%d players: territory %s unowned", count, tid)
			}
			if ts.Troops < 1 {
				t.Errorf("%d players: territory %s holds %d troops", count, tid, ts.Troops)
			}
			troops[ts.Owner] += ts.Troops
		}

		want := startingArmies[count]
		for _, pid := range gs.TurnOrder {
			if troops[pid] != want {
				t.Errorf("%d players: player %s starts with %d troops, want %d", count, pid, troops[pid], want)
			}
		}

		first := gs.TurnOrder[0]
		if gs.ReinforcementsLeft != gs.ReinforcementAllowance(first) {
			t.Errorf("%d players: opening balance %d, allowance says %d",
				count, gs.ReinforcementsLeft, gs.ReinforcementAllowance(first))
		}
	}
}

func TestNewGameStateShufflesDeterministically(t *testing.T) {
	a := NewGameState(players(4), rand.New(rand.NewSource(7)))
	b := NewGameState(players(4), rand.New(rand.NewSource(7)))

	for tid := range a.Territories {
		if a.Territories[tid].Owner != b.Territories[tid].Owner ||
			a.Territories[tid].Troops != b.Territories[tid].Troops {
			t.Fatalf("same seed produced different partitions at %s", tid)
		}
	}
	for i := range a.TurnOrder {
		if a.TurnOrder[i] != b.TurnOrder[i] {
			t.Fatalf("same seed produced different turn orders")
		}
	}
}

func TestTerritoriesOfAndAlive(t *testing.T) {
	gs := testState([]string{"na1", "na2", "sa3"}, "p1", "p2", []string{"p1", "p2"})

	owned := gs.TerritoriesOf("p1")
	if len(owned) != 3 {
		t.Fatalf("expected 3 territories, got %v", owned)
	}
	// World table order.
	if owned[0] != "na1" || owned[1] != "na2" || owned[2] != "sa3" {
		t.Errorf("unexpected order: %v", owned)
	}

	if !gs.IsAlive("p1") || !gs.IsAlive("p2") {
		t.Error("both players hold territory and should be alive")
	}
	if gs.IsAlive("p3") {
		t.Error("p3 holds nothing and should not be alive")
	}

	alive := gs.AlivePlayers()
	if len(alive) != 2 || alive[0] != "p1" || alive[1] != "p2" {
		t.Errorf("alive = %v, want [p1 p2]", alive)
	}
}
