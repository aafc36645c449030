// Package entity defines the shared catalog entities. Catalog rows are
// reference data: readable by every authenticated user, written only by
// administrators.
package entity

import "time"

// Nutriments holds the per-100g nutritional values of a food. All fields are
// optional; absent values stay at zero.
type Nutriments struct {
	Energy        float64 `json:"energy,omitempty"`
	Carbohydrates float64 `json:"carbohydrates,omitempty"`
	Sugars        float64 `json:"sugars,omitempty"`
	Proteins      float64 `json:"proteins,omitempty"`
	Fats          float64 `json:"fats,omitempty"`
	SaturatedFats float64 `json:"saturatedFats,omitempty"`
	Salt          float64 `json:"salt,omitempty"`
}

// Food is one entry of the shared food catalog, keyed by its barcode.
// Score grades and nutriments follow the Open Food Facts vocabulary.
type Food struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Barcode         string     `gorm:"uniqueIndex;size:64;not null" json:"barCode"`
	Name            string     `gorm:"size:255;not null" json:"name"`
	CiqualCode      int        `json:"ciqualCode,omitempty"`
	Allergens       []string   `gorm:"serializer:json" json:"allergens,omitempty"`
	Brands          string     `gorm:"size:255" json:"brands,omitempty"`
	CountryLc       string     `gorm:"size:8" json:"countryLc,omitempty"`
	EcoscoreGrade   string     `gorm:"size:8" json:"ecoscoreGrade,omitempty"`
	EcoscoreScore   int        `json:"ecoscoreScore,omitempty"`
	ImageURL        string     `gorm:"size:512" json:"imageUrl,omitempty"`
	Nutriments      Nutriments `gorm:"serializer:json" json:"nutriments"`
	NutriscoreGrade string     `gorm:"size:8" json:"nutriscoreGrade,omitempty"`
	NutriscoreScore int        `json:"nutriscoreScore,omitempty"`
	CreatedAt       time.Time  `json:"-"`
	UpdatedAt       time.Time  `json:"-"`
}
