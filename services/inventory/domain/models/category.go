package models

// Category classifies an item listing. The enumeration is fixed; anything
// outside it folds into CategoryOther.
type Category string

const (
	CategoryMaison    Category = "maison"
	CategoryBricolage Category = "bricolage"
	CategoryJardin    Category = "jardin"
	CategorySport     Category = "sport"
	CategoryCuisine   Category = "cuisine"
	CategoryVehicule  Category = "vehicule"
	CategoryOther     Category = "other"
)

var allCategories = map[Category]struct{}{
	CategoryMaison:    {},
	CategoryBricolage: {},
	CategoryJardin:    {},
	CategorySport:     {},
	CategoryCuisine:   {},
	CategoryVehicule:  {},
	CategoryOther:     {},
}

// ParseCategory maps s to a known Category, defaulting to CategoryOther for
// absent or unknown values. It never fails.
func ParseCategory(s string) Category {
	c := Category(s)
	if _, ok := allCategories[c]; ok {
		return c
	}
	return CategoryOther
}

// String returns the wire form of the category.
func (c Category) String() string {
	return string(c)
}
