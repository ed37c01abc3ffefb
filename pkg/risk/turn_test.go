package risk

import (
	"errors"
	"math/rand"
	"testing"
)

func TestReinforceSpendsBalanceAndAdvances(t *testing.T) {
	gs := testState([]string{"na1", "na2"}, "p1", "p2", []string{"p1", "p2"})
	gs.ReinforcementsLeft = 3

	advanced, err := gs.Reinforce("p1", "na1", 2)
	if err != nil {
		t.Fatalf("Reinforce: %v", err)
	}
	if advanced {
		t.Error("balance not yet spent; phase should not advance")
	}
	if gs.Territories["na1"].Troops != 3 {
		t.Errorf("troops = %d, want 3", gs.Territories["na1"].Troops)
	}
	if gs.ReinforcementsLeft != 1 {
		t.Errorf("balance = %d, want 1", gs.ReinforcementsLeft)
	}

	advanced, err = gs.Reinforce("p1", "na2", 1)
	if err != nil {
		t.Fatalf("Reinforce: %v", err)
	}
	if !advanced || gs.Phase != PhaseAttack {
		t.Errorf("spending the last troop should enter attack phase, got phase %s", gs.Phase)
	}
}

func TestReinforceValidation(t *testing.T) {
	tests := []struct {
		name      string
		phase     Phase
		territory string
		count     int
		kind      RuleErrorKind
	}{
		{"wrong phase", PhaseAttack, "na1", 1, KindWrongPhase},
		{"unknown territory", PhaseReinforce, "xx9", 1, KindBadArgument},
		{"zero count", PhaseReinforce, "na1", 0, KindBadArgument},
		{"over balance", PhaseReinforce, "na1", 4, KindBadArgument},
		{"enemy territory", PhaseReinforce, "na3", 1, KindBadArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := testState([]string{"na1", "na2"}, "p1", "p2", []string{"p1", "p2"})
			gs.Phase = tt.phase
			gs.ReinforcementsLeft = 3

			_, err := gs.Reinforce("p1", tt.territory, tt.count)
			var rule *RuleError
			if !errors.As(err, &rule) {
				t.Fatalf("expected RuleError, got %v", err)
			}
			if rule.Kind != tt.kind {
				t.Errorf("kind = %d, want %d (%s)", rule.Kind, tt.kind, rule.Message)
			}
		})
	}
}

func TestFortifyOncePerTurn(t *testing.T) {
	gs := testState([]string{"na1", "na2"}, "p1", "p2", []string{"p1", "p2"})
	gs.Phase = PhaseFortify
	gs.Territories["na1"].Troops = 4

	if err := gs.Fortify("p1", "na1", "na2", 3); err != nil {
		t.Fatalf("Fortify: %v", err)
	}
	if gs.Territories["na1"].Troops != 1 || gs.Territories["na2"].Troops != 4 {
		t.Errorf("troops = %d/%d, want 1/4", gs.Territories["na1"].Troops, gs.Territories["na2"].Troops)
	}

	err := gs.Fortify("p1", "na2", "na1", 1)
	var rule *RuleError
	if !errors.As(err, &rule) || rule.Kind != KindWrongPhase {
		t.Fatalf("second fortify should be rejected as spent, got %v", err)
	}
}

func TestFortifyValidation(t *testing.T) {
	tests := []struct {
		name  string
		from  string
		to    string
		count int
	}{
		{"not adjacent", "na1", "sa3", 1},
		{"enemy origin", "na4", "na2", 1},
		{"enemy target", "na2", "na4", 1},
		{"empties origin", "na1", "na2", 4},
		{"zero count", "na1", "na2", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := testState([]string{"na1", "na2", "sa3"}, "p1", "p2", []string{"p1", "p2"})
			gs.Phase = PhaseFortify
			gs.Territories["na1"].Troops = 4

			err := gs.Fortify("p1", tt.from, tt.to, tt.count)
			var rule *RuleError
			if !errors.As(err, &rule) || rule.Kind != KindBadArgument {
				t.Errorf("expected bad-argument RuleError, got %v", err)
			}
		})
	}
}

func TestEndAttackEntersFortify(t *testing.T) {
	gs := testState([]string{"na1"}, "p1", "p2", []string{"p1", "p2"})
	gs.Phase = PhaseAttack

	if err := gs.EndAttack("p1"); err != nil {
		t.Fatalf("EndAttack: %v", err)
	}
	if gs.Phase != PhaseFortify {
		t.Errorf("phase = %s, want fortify", gs.Phase)
	}

	if err := gs.EndAttack("p1"); err == nil {
		t.Error("EndAttack outside attack phase should fail")
	}
}

func TestEndTurnFromAttackSkipsFortify(t *testing.T) {
	gs := testState([]string{"na1"}, "p1", "p2", []string{"p1", "p2"})
	gs.Phase = PhaseAttack
	gs.FortifiedThisTurn = true

	result, err := gs.EndTurn("p1")
	if err != nil {
		t.Fatalf("EndTurn: %v", err)
	}
	if result.Finished {
		t.Fatal("both players hold territory; game should continue")
	}
	if result.NextPlayer != "p2" || gs.CurrentPlayer() != "p2" {
		t.Errorf("next player = %s, want p2", result.NextPlayer)
	}
	if gs.Phase != PhaseReinforce {
		t.Errorf("phase = %s, want reinforce", gs.Phase)
	}
	if gs.FortifiedThisTurn {
		t.Error("fortify flag should reset on turn advance")
	}
	if result.Reinforcements != gs.ReinforcementAllowance("p2") || gs.ReinforcementsLeft != result.Reinforcements {
		t.Errorf("reinforcements = %d, allowance %d", result.Reinforcements, gs.ReinforcementAllowance("p2"))
	}
}

func TestEndTurnRejectedDuringReinforce(t *testing.T) {
	gs := testState([]string{"na1"}, "p1", "p2", []string{"p1", "p2"})

	_, err := gs.EndTurn("p1")
	var rule *RuleError
	if !errors.As(err, &rule) || rule.Kind != KindWrongPhase {
		t.Fatalf("expected wrong-phase RuleError, got %v", err)
	}
}

func TestFourPlayerRotation(t *testing.T) {
	gs := NewGameState(players(4), rand.New(rand.NewSource(42)))
	first := gs.CurrentPlayer()

	for turn := 0; turn < 4; turn++ {
		// Spend the whole reinforcement balance on one owned territory.
		current := gs.CurrentPlayer()
		owned := gs.TerritoriesOf(current)
		if _, err := gs.Reinforce(current, owned[0], gs.ReinforcementsLeft); err != nil {
			t.Fatalf("turn %d reinforce: %v", turn, err)
		}
		if gs.Phase != PhaseAttack {
			t.Fatalf("turn %d: expected attack phase after spending balance", turn)
		}
		if _, err := gs.EndTurn(current); err != nil {
			t.Fatalf("turn %d end: %v", turn, err)
		}
	}

	if gs.CurrentPlayer() != first {
		t.Errorf("after 4 turns the first player should act again, got %s (first %s)", gs.CurrentPlayer(), first)
	}
}

func TestAdvanceTurnDetectsWinner(t *testing.T) {
	// p1 owns the entire world.
	gs := testState(TerritoryIDs(), "p1", "p1", []string{"p1", "p2"})
	gs.Phase = PhaseAttack

	result, err := gs.EndTurn("p1")
	if err != nil {
		t.Fatalf("EndTurn: %v", err)
	}
	if !result.Finished || result.WinnerID != "p1" {
		t.Fatalf("result = %+v, want finished with winner p1", result)
	}
	if gs.WinnerID != "p1" || !gs.Finished() {
		t.Error("state should record the winner")
	}

	// Advancing again is a no-op on a decided game.
	again := gs.AdvanceTurn()
	if !again.Finished || again.WinnerID != "p1" {
		t.Errorf("repeat advance = %+v, want same terminal result", again)
	}
}

func TestAdvanceTurnSkipsEliminatedPlayers(t *testing.T) {
	// p2 holds nothing; rotation must go p1 -> p3 -> p1.
	gs := testState(TerritoryIDs()[:12], "p1", "p3", []string{"p1", "p2", "p3"})
	gs.Phase = PhaseAttack

	result, err := gs.EndTurn("p1")
	if err != nil {
		t.Fatalf("EndTurn: %v", err)
	}
	if result.NextPlayer != "p3" {
		t.Errorf("next player = %s, want p3", result.NextPlayer)
	}
	if len(gs.TurnOrder) != 2 {
		t.Errorf("turn order = %v, want the two alive players", gs.TurnOrder)
	}
}
