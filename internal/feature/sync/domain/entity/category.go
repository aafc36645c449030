// Package entity defines the domain entities for the sync feature.
package entity

import "fmt"

// Category identifies one synchronizable slice of a user's private data.
// Every category carries its own last-update clock; the owned categories
// additionally carry a collection of resource references.
type Category string

const (
	CategoryPreferences Category = "preferences"
	CategoryDiets       Category = "diets"
	CategoryMeals       Category = "meals"
	CategoryRecipes     Category = "recipes"
	CategoryPrograms    Category = "programs"
	CategoryTrainings   Category = "trainings"
)

// OwnedCategories returns the categories that hold owned-resource reference
// collections, in their canonical order. Preferences is excluded: it has a
// clock but no collection.
func OwnedCategories() []Category {
	return []Category{
		CategoryDiets,
		CategoryMeals,
		CategoryRecipes,
		CategoryPrograms,
		CategoryTrainings,
	}
}

// Categories returns every synchronizable category, preferences included.
func Categories() []Category {
	return append([]Category{CategoryPreferences}, OwnedCategories()...)
}

// ParseOwnedCategory converts a wire-level category name into a Category.
// Only the five owned categories are accepted.
func ParseOwnedCategory(s string) (Category, error) {
	for _, c := range OwnedCategories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown owned category %q", s)
}

// Catalog identifies one of the shared reference-data catalogs. Catalogs are
// readable by every authenticated user and mutated only by administrators;
// their last-update clocks are process-wide, not per-user.
type Catalog string

const (
	CatalogFoods        Catalog = "foods"
	CatalogExercises    Catalog = "exercises"
	CatalogMuscleGroups Catalog = "muscleGroups"
	CatalogMuscles      Catalog = "muscles"
)

// Catalogs returns every shared catalog in canonical order.
func Catalogs() []Catalog {
	return []Catalog{CatalogFoods, CatalogExercises, CatalogMuscleGroups, CatalogMuscles}
}

// ParseCatalog converts a wire-level catalog name into a Catalog.
func ParseCatalog(s string) (Catalog, error) {
	for _, c := range Catalogs() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown catalog %q", s)
}
