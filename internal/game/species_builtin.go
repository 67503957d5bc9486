package game

const (
	SpeciesBeanID SpeciesID = "bean"
	SpeciesRoseID SpeciesID = "rose"
	SpeciesMintID SpeciesID = "mint"
)

var defaultStages = []string{"seed", "sprout", "plant", "flower", "fruit"}

func BuiltInSpecies() []Species {
	build := func(id SpeciesID, name string, water, light, temp, n, p, k Range, preferred ...NutrientKind) Species {
		return Species{
			ID:     id,
			Name:   name,
			Stages: append([]string(nil), defaultStages...),
			Optimal: OptimalRanges{
				Water:       water,
				Light:       light,
				Temperature: temp,
				Nutrients:   NutrientRanges{N: n, P: p, K: k},
			},
			Preferred: preferred,
		}
	}

	return []Species{
		build(SpeciesBeanID, "Bean",
			Range{40, 70}, Range{60, 90}, Range{18, 26},
			Range{20, 45}, Range{30, 60}, Range{30, 60},
			NutrientP, NutrientK),
		build(SpeciesRoseID, "Rose",
			Range{50, 70}, Range{70, 90}, Range{18, 25},
			Range{30, 60}, Range{30, 60}, Range{30, 60},
			NutrientN, NutrientP, NutrientK),
		build(SpeciesMintID, "Mint",
			Range{60, 85}, Range{40, 60}, Range{16, 24},
			Range{30, 60}, Range{15, 40}, Range{30, 60},
			NutrientN, NutrientK),
	}
}

func BuiltInCatalog() *Catalog {
	c, err := NewCatalog(BuiltInSpecies()...)
	if err != nil {
		panic("game: built-in species catalog is invalid: " + err.Error())
	}
	return c
}
