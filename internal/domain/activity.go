package domain

// Activity caps. These mirror plausible in-game volumes, not overflow limits.
const (
	MaxCatches    int64 = 10_000_000
	MaxEvolutions int64 = 1_000_000
	MaxHatches    int64 = 100_000
	MaxRaids      int64 = 100_000
	MaxMaxBattles int64 = 10_000
	MaxMaxMoves   int64 = 10_000
	MaxFriendship int64 = 450
)

// ActivityDef describes one countable activity.
type ActivityDef struct {
	Key      Activity
	Category Category
	Label    string
	Cap      int64
	// Parent is the activity this one is a subset of (empty for none).
	Parent Activity
}

// Catalog lists every activity in display order, grouped by category.
var Catalog = []ActivityDef{
	{NormalCatches, CategoryCatching, "Normal Catches", MaxCatches, ""},
	{NewPokemonCatches, CategoryCatching, "New Pokémon", MaxCatches, NormalCatches},
	{ExcellentThrows, CategoryCatching, "Excellent Throws", MaxCatches, NormalCatches},
	{CurveBalls, CategoryCatching, "Curve Balls", MaxCatches, NormalCatches},
	{FirstThrows, CategoryCatching, "First Throws", MaxCatches, NormalCatches},
	{GreatThrows, CategoryCatching, "Great Throws", MaxCatches, NormalCatches},
	{NiceThrows, CategoryCatching, "Nice Throws", MaxCatches, NormalCatches},

	{NormalEvolutions, CategoryEvolution, "Normal Evolutions", MaxEvolutions, ""},
	{NewPokemonEvolutions, CategoryEvolution, "New Evolutions", MaxEvolutions, NormalEvolutions},

	{Km2Eggs, CategoryHatching, "2km Eggs", MaxHatches, ""},
	{Km5Eggs, CategoryHatching, "5km Eggs", MaxHatches, ""},
	{Km7Eggs, CategoryHatching, "7km Eggs", MaxHatches, ""},
	{Km10Eggs, CategoryHatching, "10km Eggs", MaxHatches, ""},
	{Km12Eggs, CategoryHatching, "12km Eggs", MaxHatches, ""},

	{Star1Raids, CategoryRaids, "1-Star Raids", MaxRaids, ""},
	{Star3Raids, CategoryRaids, "3-Star Raids", MaxRaids, ""},
	{Star5Raids, CategoryRaids, "5-Star Raids", MaxRaids, ""},
	{MegaRaids, CategoryRaids, "Mega Raids", MaxRaids, ""},
	{ShadowRaids, CategoryRaids, "Shadow Raids", MaxRaids, ""},

	{Star1Battles, CategoryMaxBattle, "1-Star Battles", MaxMaxBattles, ""},
	{Star2Battles, CategoryMaxBattle, "2-Star Battles", MaxMaxBattles, ""},
	{Star3Battles, CategoryMaxBattle, "3-Star Battles", MaxMaxBattles, ""},
	{Star4Battles, CategoryMaxBattle, "4-Star Battles", MaxMaxBattles, ""},
	{Star5Battles, CategoryMaxBattle, "5-Star Battles", MaxMaxBattles, ""},
	{Star6Battles, CategoryMaxBattle, "6-Star Battles", MaxMaxBattles, ""},
	{InPersonBonus, CategoryMaxBattle, "In-Person Bonus", MaxMaxBattles, ""},

	{Level1Moves, CategoryMaxMoves, "Level 1 Moves", MaxMaxMoves, ""},
	{Level2Moves, CategoryMaxMoves, "Level 2 Moves", MaxMaxMoves, ""},
	{LevelMaxMoves, CategoryMaxMoves, "Max Level Moves", MaxMaxMoves, ""},

	{GoodFriends, CategoryFriendship, "Good Friends", MaxFriendship, ""},
	{GreatFriends, CategoryFriendship, "Great Friends", MaxFriendship, ""},
	{UltraFriends, CategoryFriendship, "Ultra Friends", MaxFriendship, ""},
	{BestFriends, CategoryFriendship, "Best Friends", MaxFriendship, ""},
}

var catalogIndex = func() map[Activity]ActivityDef {
	idx := make(map[Activity]ActivityDef, len(Catalog))
	for _, def := range Catalog {
		idx[def.Key] = def
	}
	return idx
}()

// Lookup returns the definition for a, if a is a known activity.
func Lookup(a Activity) (ActivityDef, bool) {
	def, ok := catalogIndex[a]
	return def, ok
}

// Valid reports whether a is a known activity key.
func (a Activity) Valid() bool {
	_, ok := catalogIndex[a]
	return ok
}

// Category returns the owning category, or "" for unknown activities.
func (a Activity) Category() Category {
	return catalogIndex[a].Category
}

// ActivitiesIn returns the activity definitions of c in display order.
func ActivitiesIn(c Category) []ActivityDef {
	var defs []ActivityDef
	for _, def := range Catalog {
		if def.Category == c {
			defs = append(defs, def)
		}
	}
	return defs
}

// Dependents returns the activities whose Parent is a.
func Dependents(a Activity) []Activity {
	var deps []Activity
	for _, def := range Catalog {
		if def.Parent == a {
			deps = append(deps, def.Key)
		}
	}
	return deps
}
