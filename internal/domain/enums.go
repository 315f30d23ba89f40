package domain

type Category string

const (
	CategoryCatching   Category = "catching"
	CategoryEvolution  Category = "evolution"
	CategoryHatching   Category = "hatching"
	CategoryRaids      Category = "raids"
	CategoryMaxBattle  Category = "max_battle"
	CategoryMaxMoves   Category = "max_moves"
	CategoryFriendship Category = "friendship"
)

// Categories is the canonical display and aggregation order.
var Categories = []Category{
	CategoryCatching,
	CategoryEvolution,
	CategoryHatching,
	CategoryRaids,
	CategoryMaxBattle,
	CategoryMaxMoves,
	CategoryFriendship,
}

// IsDaily reports whether the category counts toward daily XP.
// Friendship is a one-time bonus and never does.
func (c Category) IsDaily() bool {
	return c != CategoryFriendship && c.Valid()
}

func (c Category) Valid() bool {
	switch c {
	case CategoryCatching, CategoryEvolution, CategoryHatching, CategoryRaids,
		CategoryMaxBattle, CategoryMaxMoves, CategoryFriendship:
		return true
	}
	return false
}

// Label returns the human-facing category name.
func (c Category) Label() string {
	switch c {
	case CategoryCatching:
		return "Catching"
	case CategoryEvolution:
		return "Evolution"
	case CategoryHatching:
		return "Hatching"
	case CategoryRaids:
		return "Raids"
	case CategoryMaxBattle:
		return "Max Battles"
	case CategoryMaxMoves:
		return "Max Moves"
	case CategoryFriendship:
		return "Friendship"
	default:
		return string(c)
	}
}

type Activity string

const (
	NormalCatches     Activity = "normal_catches"
	NewPokemonCatches Activity = "new_pokemon_catches"
	ExcellentThrows   Activity = "excellent_throws"
	CurveBalls        Activity = "curve_balls"
	FirstThrows       Activity = "first_throws"
	GreatThrows       Activity = "great_throws"
	NiceThrows        Activity = "nice_throws"

	NormalEvolutions     Activity = "normal_evolutions"
	NewPokemonEvolutions Activity = "new_pokemon_evolutions"

	Km2Eggs  Activity = "km_2_eggs"
	Km5Eggs  Activity = "km_5_eggs"
	Km7Eggs  Activity = "km_7_eggs"
	Km10Eggs Activity = "km_10_eggs"
	Km12Eggs Activity = "km_12_eggs"

	Star1Raids  Activity = "star_1_raids"
	Star3Raids  Activity = "star_3_raids"
	Star5Raids  Activity = "star_5_raids"
	MegaRaids   Activity = "mega_raids"
	ShadowRaids Activity = "shadow_raids"

	Star1Battles  Activity = "star_1_battles"
	Star2Battles  Activity = "star_2_battles"
	Star3Battles  Activity = "star_3_battles"
	Star4Battles  Activity = "star_4_battles"
	Star5Battles  Activity = "star_5_battles"
	Star6Battles  Activity = "star_6_battles"
	InPersonBonus Activity = "in_person_bonus"

	Level1Moves   Activity = "level_1_moves"
	Level2Moves   Activity = "level_2_moves"
	LevelMaxMoves Activity = "level_max_moves"

	GoodFriends  Activity = "good_friends"
	GreatFriends Activity = "great_friends"
	UltraFriends Activity = "ultra_friends"
	BestFriends  Activity = "best_friends"
)

type TargetMode string

const (
	TargetByDate TargetMode = "date"
	TargetByDays TargetMode = "days"
)

// ValidTargetModes is the set of accepted target modes.
var ValidTargetModes = map[TargetMode]bool{
	TargetByDate: true, TargetByDays: true,
}
