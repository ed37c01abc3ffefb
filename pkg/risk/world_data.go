package risk

// World is the fixed 24-territory map, keyed by territory ID. Five continents,
// every territory with three or four neighbors. Adjacency is symmetric; the
// world tests enforce that so a typo here cannot ship.
var World = map[string]Territory{
	"na1": {Name: "Arctic Gate", Continent: "north", Adjacent: []string{"na2", "na3", "eu1"}},
	"na2": {Name: "Pine Ridge", Continent: "north", Adjacent: []string{"na1", "na3", "na4"}},
	"na3": {Name: "Iron Bay", Continent: "north", Adjacent: []string{"na1", "na2", "na5"}},
	"na4": {Name: "Dust Plains", Continent: "north", Adjacent: []string{"na2", "na6", "sa1"}},
	"na5": {Name: "Cold Fjord", Continent: "north", Adjacent: []string{"na3", "na6", "eu2"}},
	"na6": {Name: "Frontier", Continent: "north", Adjacent: []string{"na4", "na5", "sa2"}},
	"eu1": {Name: "West Crown", Continent: "europe", Adjacent: []string{"na1", "eu2", "eu3", "af1"}},
	"eu2": {Name: "Central Hold", Continent: "europe", Adjacent: []string{"na5", "eu1", "eu4", "eu5"}},
	"eu3": {Name: "Frost March", Continent: "europe", Adjacent: []string{"eu1", "eu4", "as1"}},
	"eu4": {Name: "Amber Fields", Continent: "europe", Adjacent: []string{"eu2", "eu3", "eu6", "af2"}},
	"eu5": {Name: "East Bastion", Continent: "europe", Adjacent: []string{"eu2", "eu6", "as2"}},
	"eu6": {Name: "River Delta", Continent: "europe", Adjacent: []string{"eu4", "eu5", "af3"}},
	"af1": {Name: "Sun Coast", Continent: "africa", Adjacent: []string{"eu1", "af2", "af4", "sa1"}},
	"af2": {Name: "Lion Steppe", Continent: "africa", Adjacent: []string{"eu4", "af1", "af3", "af5"}},
	"af3": {Name: "Ivory Basin", Continent: "africa", Adjacent: []string{"eu6", "af2", "af6", "as3"}},
	"af4": {Name: "Cocoa Reach", Continent: "africa", Adjacent: []string{"af1", "af5", "sa2"}},
	"af5": {Name: "Nile Bridge", Continent: "africa", Adjacent: []string{"af2", "af4", "af6"}},
	"af6": {Name: "Cape Watch", Continent: "africa", Adjacent: []string{"af3", "af5", "as4"}},
	"sa1": {Name: "Amazonia", Continent: "south", Adjacent: []string{"na4", "af1", "sa2", "sa3"}},
	"sa2": {Name: "Andes", Continent: "south", Adjacent: []string{"na6", "af4", "sa1", "sa4"}},
	"sa3": {Name: "Gran Chaco", Continent: "south", Adjacent: []string{"sa1", "sa4", "as1"}},
	"sa4": {Name: "Patagonia", Continent: "south", Adjacent: []string{"sa2", "sa3", "as2"}},
	"as1": {Name: "Silk North", Continent: "asia", Adjacent: []string{"eu3", "sa3", "as2", "as3"}},
	"as2": {Name: "Steppe East", Continent: "asia", Adjacent: []string{"eu5", "sa4", "as1", "as4"}},
	"as3": {Name: "Spice Sea", Continent: "asia", Adjacent: []string{"af3", "as1", "as4"}},
	"as4": {Name: "Jade Coast", Continent: "asia", Adjacent: []string{"af6", "as2", "as3"}},
}

// ContinentBonus is the reinforcement bonus for holding an entire continent.
var ContinentBonus = map[string]int{
	"north":  3,
	"europe": 3,
	"africa": 3,
	"south":  2,
	"asia":   2,
}

// territoryOrder fixes iteration order for deterministic setup and snapshots.
var territoryOrder = []string{
	"na1", "na2", "na3", "na4", "na5", "na6",
	"eu1", "eu2", "eu3", "eu4", "eu5", "eu6",
	"af1", "af2", "af3", "af4", "af5", "af6",
	"sa1", "sa2", "sa3", "sa4",
	"as1", "as2", "as3", "as4",
}

// startingArmies is the per-player army total by player count (2-6 players).
var startingArmies = map[int]int{
	2: 40,
	3: 35,
	4: 30,
	5: 25,
	6: 20,
}
