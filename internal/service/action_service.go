package service

import (
	"errors"
	"fmt"

	"github.com/wgale/warfront/api/internal/apperr"
	"github.com/wgale/warfront/api/internal/model"
	"github.com/wgale/warfront/api/pkg/risk"
)

// ApplyAction validates and commits one game action for the acting player.
// The turn gate is identical for every action kind: the room must be in
// progress, the game still undecided, and the caller the current player.
// Rejections leave the room untouched.
func (s *Store) ApplyAction(code, playerID string, action risk.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.roomLocked(code)
	if err != nil {
		return err
	}
	game := room.Game
	if game == nil || room.Status == model.StatusLobby {
		return apperr.New(apperr.InvalidState, "Game not in progress")
	}
	if room.Player(playerID) == nil {
		return apperr.New(apperr.Forbidden, "Invalid player")
	}
	if game.Finished() || room.Status == model.StatusFinished {
		return apperr.New(apperr.InvalidState, "Game is over")
	}
	if game.CurrentPlayer() != playerID {
		return apperr.New(apperr.InvalidState, "Not your turn")
	}

	switch a := action.(type) {
	case risk.Reinforce:
		err = s.reinforceLocked(room, playerID, a)
	case risk.Attack:
		err = s.attackLocked(room, playerID, a)
	case risk.EndAttack:
		err = s.endAttackLocked(room, playerID)
	case risk.Fortify:
		err = s.fortifyLocked(room, playerID, a)
	case risk.EndTurn:
		err = s.endTurnLocked(room, playerID)
	default:
		err = apperr.New(apperr.InvalidArgument, "Unsupported action")
	}
	if err != nil {
		return translateRuleError(err)
	}

	room.UpdatedAt = s.now()
	return nil
}

func (s *Store) reinforceLocked(room *model.Room, playerID string, a risk.Reinforce) error {
	advanced, err := room.Game.Reinforce(playerID, a.Territory, a.Count)
	if err != nil {
		return err
	}
	name := room.NameOf(playerID)
	room.Log = append(room.Log, fmt.Sprintf("%s reinforced %s (+%d).", name, territoryName(a.Territory), a.Count))
	if advanced {
		room.Log = append(room.Log, fmt.Sprintf("%s is now attacking.", name))
	}
	return nil
}

func (s *Store) attackLocked(room *model.Room, playerID string, a risk.Attack) error {
	result, err := room.Game.Attack(playerID, a.From, a.To, a.Dice, s.dice)
	if err != nil {
		return err
	}

	name := room.NameOf(playerID)
	room.Log = append(room.Log, fmt.Sprintf(
		"%s attacked %s from %s | A:%v D:%v -> losses A-%d D-%d.",
		name, territoryName(a.To), territoryName(a.From),
		result.AttackRolls, result.DefendRolls,
		result.AttackerLosses, result.DefenderLosses,
	))

	if result.Captured {
		room.Log = append(room.Log, fmt.Sprintf(
			"%s captured %s moving %d troops in.", name, territoryName(a.To), result.TroopsMoved))
		s.syncEliminationsLocked(room)
		s.checkWinnerLocked(room)
	}
	return nil
}

func (s *Store) endAttackLocked(room *model.Room, playerID string) error {
	if err := room.Game.EndAttack(playerID); err != nil {
		return err
	}
	room.Log = append(room.Log, fmt.Sprintf("%s entered fortify phase.", room.NameOf(playerID)))
	return nil
}

func (s *Store) fortifyLocked(room *model.Room, playerID string, a risk.Fortify) error {
	if err := room.Game.Fortify(playerID, a.From, a.To, a.Count); err != nil {
		return err
	}
	room.Log = append(room.Log, fmt.Sprintf(
		"%s fortified %s from %s (+%d).",
		room.NameOf(playerID), territoryName(a.To), territoryName(a.From), a.Count))
	return nil
}

func (s *Store) endTurnLocked(room *model.Room, playerID string) error {
	result, err := room.Game.EndTurn(playerID)
	if err != nil {
		return err
	}
	s.syncEliminationsLocked(room)
	if result.Finished {
		s.finishLocked(room, result.WinnerID)
		return nil
	}
	room.Log = append(room.Log, fmt.Sprintf(
		"Turn: %s gets %d reinforcements.", room.NameOf(result.NextPlayer), result.Reinforcements))
	return nil
}

// syncEliminationsLocked marks players who hold no territory as dead. Safe to
// call repeatedly; each player is marked and logged exactly once.
func (s *Store) syncEliminationsLocked(room *model.Room) {
	for _, p := range room.Players {
		if p.Alive && !room.Game.IsAlive(p.ID) {
			p.Alive = false
			room.Log = append(room.Log, fmt.Sprintf("%s was eliminated.", p.Name))
		}
	}
}

// checkWinnerLocked finishes the game the moment one contender remains, even
// mid attack phase.
func (s *Store) checkWinnerLocked(room *model.Room) {
	alive := room.Game.AlivePlayers()
	if len(alive) == 1 {
		s.finishLocked(room, alive[0])
	}
}

func (s *Store) finishLocked(room *model.Room, winnerID string) {
	if room.Status == model.StatusFinished {
		return
	}
	room.Game.WinnerID = winnerID
	room.Status = model.StatusFinished
	if winnerID != "" {
		room.Log = append(room.Log, fmt.Sprintf("Winner: %s.", room.NameOf(winnerID)))
	}
}

// translateRuleError lifts engine rule violations into the transport
// taxonomy; anything else passes through untouched.
func translateRuleError(err error) error {
	var rule *risk.RuleError
	if !errors.As(err, &rule) {
		return err
	}
	switch rule.Kind {
	case risk.KindWrongPhase:
		return apperr.New(apperr.InvalidState, rule.Message)
	default:
		return apperr.New(apperr.InvalidArgument, rule.Message)
	}
}

func territoryName(id string) string {
	if t, ok := risk.World[id]; ok {
		return t.Name
	}
	return id
}
