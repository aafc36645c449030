package entity

// EpochSentinel is the clock value of a category that has never been
// mutated. It is less than any real timestamp, so clients always consider
// a freshly created account out of date.
const EpochSentinel int64 = 0

// PrivateLastUpdates holds one Unix-millisecond timestamp per private
// category for a single user.
type PrivateLastUpdates struct {
	Preferences int64
	Diets       int64
	Meals       int64
	Recipes     int64
	Programs    int64
	Trainings   int64
}

// Get returns the timestamp recorded for the given category.
func (p PrivateLastUpdates) Get(c Category) int64 {
	switch c {
	case CategoryPreferences:
		return p.Preferences
	case CategoryDiets:
		return p.Diets
	case CategoryMeals:
		return p.Meals
	case CategoryRecipes:
		return p.Recipes
	case CategoryPrograms:
		return p.Programs
	case CategoryTrainings:
		return p.Trainings
	}
	return EpochSentinel
}

// Set records the timestamp for the given category.
func (p *PrivateLastUpdates) Set(c Category, ts int64) {
	switch c {
	case CategoryPreferences:
		p.Preferences = ts
	case CategoryDiets:
		p.Diets = ts
	case CategoryMeals:
		p.Meals = ts
	case CategoryRecipes:
		p.Recipes = ts
	case CategoryPrograms:
		p.Programs = ts
	case CategoryTrainings:
		p.Trainings = ts
	}
}

// PublicLastUpdates holds one Unix-millisecond timestamp per shared catalog.
// There is a single process-wide instance of this record.
type PublicLastUpdates struct {
	Foods        int64
	Exercises    int64
	MuscleGroups int64
	Muscles      int64
}

// Get returns the timestamp recorded for the given catalog.
func (p PublicLastUpdates) Get(c Catalog) int64 {
	switch c {
	case CatalogFoods:
		return p.Foods
	case CatalogExercises:
		return p.Exercises
	case CatalogMuscleGroups:
		return p.MuscleGroups
	case CatalogMuscles:
		return p.Muscles
	}
	return EpochSentinel
}

// Set records the timestamp for the given catalog.
func (p *PublicLastUpdates) Set(c Catalog, ts int64) {
	switch c {
	case CatalogFoods:
		p.Foods = ts
	case CatalogExercises:
		p.Exercises = ts
	case CatalogMuscleGroups:
		p.MuscleGroups = ts
	case CatalogMuscles:
		p.Muscles = ts
	}
}

// LastUpdates merges a user's private clocks with the shared catalog clocks.
// It is the payload of the /lastupdates sync read path.
type LastUpdates struct {
	Private PrivateLastUpdates
	Public  PublicLastUpdates
}
