package entity

import "time"

// LocalizedText maps a language code ("en", "fr", ...) to a translation.
type LocalizedText map[string]string

// Exercise is one entry of the shared exercise catalog. Names are localized;
// muscles and the muscle group are linked by catalog id.
type Exercise struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	Names         LocalizedText `gorm:"serializer:json;not null" json:"names"`
	Descriptions  LocalizedText `gorm:"serializer:json" json:"descriptions,omitempty"`
	MuscleIDs     []uint        `gorm:"serializer:json" json:"muscleIds,omitempty"`
	MuscleGroupID uint          `json:"muscleGroupId,omitempty"`
	Image         string        `gorm:"size:512" json:"image,omitempty"`
	CreatedAt     time.Time     `json:"-"`
	UpdatedAt     time.Time     `json:"-"`
}

// Muscle is one entry of the shared muscle catalog.
type Muscle struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	Names         LocalizedText `gorm:"serializer:json;not null" json:"names"`
	Descriptions  LocalizedText `gorm:"serializer:json" json:"descriptions,omitempty"`
	ExerciseIDs   []uint        `gorm:"serializer:json" json:"exerciseIds,omitempty"`
	MuscleGroupID uint          `json:"muscleGroupId,omitempty"`
	Image         string        `gorm:"size:512" json:"image,omitempty"`
	CreatedAt     time.Time     `json:"-"`
	UpdatedAt     time.Time     `json:"-"`
}

// MuscleGroup is one entry of the shared muscle group catalog.
type MuscleGroup struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Names        LocalizedText `gorm:"serializer:json" json:"names,omitempty"`
	Descriptions LocalizedText `gorm:"serializer:json" json:"descriptions,omitempty"`
	MuscleIDs    []uint        `gorm:"serializer:json" json:"muscleIds,omitempty"`
	Image        string        `gorm:"size:512" json:"image,omitempty"`
	CreatedAt    time.Time     `json:"-"`
	UpdatedAt    time.Time     `json:"-"`
}
