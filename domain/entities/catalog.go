package entities

import "sort"

// LevelRank is one entry of the fixed level-rank table.
type LevelRank struct {
	Threshold int
	Name      string
}

// ShopRank is one purchasable rank from the fixed shop catalog.
type ShopRank struct {
	Name  string
	Price int64
}

// levelRanks maps level thresholds to rank titles, one every 5 levels.
var levelRanks = []LevelRank{
	{0, "Nova Seed"},
	{5, "Blossoming Nova"},
	{10, "Starlight Sprite"},
	{15, "Celestial Bloom"},
	{20, "Luminous Petal"},
	{25, "Galactic Lily"},
	{30, "Cosmic Rose"},
	{35, "Nebula Orchid"},
	{40, "Supernova Dahlia"},
	{45, "Quasar Peony"},
	{50, "Pulsar Primrose"},
	{55, "Andromeda Azalea"},
	{60, "Infinity Iris"},
	{65, "Eternal Violet"},
	{70, "Paradise Magnolia"},
	{75, "Dreamweaver Lotus"},
	{80, "Mystic Marigold"},
	{85, "Enchanted Tulip"},
	{90, "Divine Daffodil"},
	{95, "Transcendent Camellia"},
	{100, "Ultimate Nova"},
}

// shopCatalog lists every purchasable rank and its coin price.
var shopCatalog = []ShopRank{
	{"angel", 5000},
	{"bean", 4000},
	{"bunny", 3500},
	{"cutie", 1000},
	{"divine", 15000},
	{"goddess", 10000},
	{"legendary", 20000},
	{"potato", 1000},
	{"princess", 8000},
	{"smol", 2000},
	{"uwu", 3000},
}

// LevelRanksUpTo returns every level rank with a threshold at or below the
// given level, in ascending threshold order.
func LevelRanksUpTo(level int) []LevelRank {
	var earned []LevelRank
	for _, r := range levelRanks {
		if r.Threshold <= level {
			earned = append(earned, r)
		}
	}
	return earned
}

// CurrentLevelRank returns the highest-threshold level rank at or below the
// given level.
func CurrentLevelRank(level int) LevelRank {
	current := levelRanks[0]
	for _, r := range levelRanks {
		if r.Threshold > level {
			break
		}
		current = r
	}
	return current
}

// ShopCatalog returns the purchasable ranks sorted by price then name.
func ShopCatalog() []ShopRank {
	catalog := make([]ShopRank, len(shopCatalog))
	copy(catalog, shopCatalog)
	sort.Slice(catalog, func(i, j int) bool {
		if catalog[i].Price != catalog[j].Price {
			return catalog[i].Price < catalog[j].Price
		}
		return catalog[i].Name < catalog[j].Name
	})
	return catalog
}

// ShopPrice looks up the price of a purchasable rank. The second return is
// false when the rank is not in the catalog.
func ShopPrice(rankName string) (int64, bool) {
	for _, r := range shopCatalog {
		if r.Name == rankName {
			return r.Price, true
		}
	}
	return 0, false
}
