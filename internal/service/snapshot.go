package service

import (
	"github.com/wgale/warfront/api/internal/model"
	"github.com/wgale/warfront/api/pkg/risk"
)

// projectRoom builds the player-visible snapshot. Everything is copied by
// value so the caller can serialize it after the store lock is released
// without aliasing live game state.
func projectRoom(room *model.Room, playerID string) *model.Snapshot {
	snap := &model.Snapshot{
		Code:    room.Code,
		Status:  room.Status,
		HostID:  room.HostID,
		You:     playerID,
		Players: make([]model.PlayerView, 0, len(room.Players)),
		Log:     trailingLog(room.Log, model.LogWindow),
		Config: model.RoomConfig{
			MaxPlayers: model.MaxPlayers,
			MinPlayers: model.MinPlayers,
		},
	}

	for _, p := range room.Players {
		snap.Players = append(snap.Players, model.PlayerView{
			ID:      p.ID,
			Name:    p.Name,
			Color:   p.Color,
			IsHuman: p.IsHuman,
			Alive:   p.Alive,
		})
	}

	if room.Game != nil {
		snap.Game = projectGame(room.Game)
	}
	return snap
}

func projectGame(gs *risk.GameState) *model.GameView {
	view := &model.GameView{
		TurnOrder:          append([]string(nil), gs.TurnOrder...),
		TurnIndex:          gs.TurnIndex,
		Phase:              gs.Phase,
		ReinforcementsLeft: gs.ReinforcementsLeft,
		WinnerID:           gs.WinnerID,
		FortifiedThisTurn:  gs.FortifiedThisTurn,
		Territories:        make(map[string]model.TerritoryView, len(gs.Territories)),
		TerritoryDefs:      risk.World,
		ContinentBonus:     risk.ContinentBonus,
	}
	for id, t := range gs.Territories {
		view.Territories[id] = model.TerritoryView{Owner: t.Owner, Troops: t.Troops}
	}
	return view
}

// trailingLog returns the last n entries without retaining the backing array
// of the room's unbounded log.
func trailingLog(log []string, n int) []string {
	if len(log) > n {
		log = log[len(log)-n:]
	}
	return append([]string(nil), log...)
}
