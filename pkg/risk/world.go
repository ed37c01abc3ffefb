// Package risk implements the Warfront game engine: a fixed world map of
// adjacent territories, turn-phased army placement, dice combat, and win
// detection. The package is transport-free and owns no locking; callers
// serialize access and supply randomness explicitly.
package risk

import "sync"

// Territory is a node in the static world map. Territories are keyed by ID in
// the world table; the struct carries only the presentation fields so the
// table can be embedded directly in snapshots.
type Territory struct {
	Name      string   `json:"name"`
	Continent string   `json:"continent"`
	Adjacent  []string `json:"adj"`
}

// Continent groups territories that grant a reinforcement bonus when one
// player owns every member.
type Continent struct {
	ID      string
	Bonus   int
	Members []string
}

var (
	continentsOnce sync.Once
	continentsInst []Continent
)

// Continents returns the continent list with member territory IDs in world
// table order. Built once and cached; callers must not mutate the result.
func Continents() []Continent {
	continentsOnce.Do(func() {
		for _, id := range territoryOrder {
			c := World[id].Continent
			found := false
			for i := range continentsInst {
				if continentsInst[i].ID == c {
					continentsInst[i].Members = append(continentsInst[i].Members, id)
					found = true
				}
			}
			if !found {
				continentsInst = append(continentsInst, Continent{
					ID:      c,
					Bonus:   ContinentBonus[c],
					Members: []string{id},
				})
			}
		}
	})
	return continentsInst
}

// AreAdjacent reports whether to is directly reachable from the given
// territory. Unknown IDs are simply not adjacent to anything.
func AreAdjacent(from, to string) bool {
	t, ok := World[from]
	if !ok {
		return false
	}
	for _, adj := range t.Adjacent {
		if adj == to {
			return true
		}
	}
	return false
}

// TerritoryIDs returns all territory IDs in stable world table order.
func TerritoryIDs() []string {
	ids := make([]string, len(territoryOrder))
	copy(ids, territoryOrder)
	return ids
}
