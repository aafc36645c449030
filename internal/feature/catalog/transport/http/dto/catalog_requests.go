// Package dto はcatalog HTTP APIのデータ転送オブジェクトを定義します。
package dto

import (
	"fitness_backend/internal/feature/catalog/domain/entity"
)

// FoodRequest は食品の作成・更新リクエストDTOです。
type FoodRequest struct {
	Barcode         string            `json:"barCode" binding:"required"`
	Name            string            `json:"name" binding:"required"`
	CiqualCode      int               `json:"ciqualCode"`
	Allergens       []string          `json:"allergens"`
	Brands          string            `json:"brands"`
	CountryLc       string            `json:"countryLc"`
	EcoscoreGrade   string            `json:"ecoscoreGrade"`
	EcoscoreScore   int               `json:"ecoscoreScore"`
	ImageURL        string            `json:"imageUrl"`
	Nutriments      entity.Nutriments `json:"nutriments"`
	NutriscoreGrade string            `json:"nutriscoreGrade"`
	NutriscoreScore int               `json:"nutriscoreScore"`
}

// ToEntity はリクエストをFoodエンティティへ変換します。
func (r *FoodRequest) ToEntity(id uint) *entity.Food {
	return &entity.Food{
		ID:              id,
		Barcode:         r.Barcode,
		Name:            r.Name,
		CiqualCode:      r.CiqualCode,
		Allergens:       r.Allergens,
		Brands:          r.Brands,
		CountryLc:       r.CountryLc,
		EcoscoreGrade:   r.EcoscoreGrade,
		EcoscoreScore:   r.EcoscoreScore,
		ImageURL:        r.ImageURL,
		Nutriments:      r.Nutriments,
		NutriscoreGrade: r.NutriscoreGrade,
		NutriscoreScore: r.NutriscoreScore,
	}
}

// ExerciseRequest は運動の作成・更新リクエストDTOです。
type ExerciseRequest struct {
	Names         map[string]string `json:"names" binding:"required"`
	Descriptions  map[string]string `json:"descriptions"`
	MuscleIDs     []uint            `json:"muscleIds"`
	MuscleGroupID uint              `json:"muscleGroupId"`
	Image         string            `json:"image"`
}

// ToEntity はリクエストをExerciseエンティティへ変換します。
func (r *ExerciseRequest) ToEntity(id uint) *entity.Exercise {
	return &entity.Exercise{
		ID:            id,
		Names:         r.Names,
		Descriptions:  r.Descriptions,
		MuscleIDs:     r.MuscleIDs,
		MuscleGroupID: r.MuscleGroupID,
		Image:         r.Image,
	}
}

// MuscleRequest は筋肉の作成・更新リクエストDTOです。
type MuscleRequest struct {
	Names         map[string]string `json:"names" binding:"required"`
	Descriptions  map[string]string `json:"descriptions"`
	ExerciseIDs   []uint            `json:"exerciseIds"`
	MuscleGroupID uint              `json:"muscleGroupId"`
	Image         string            `json:"image"`
}

// ToEntity はリクエストをMuscleエンティティへ変換します。
func (r *MuscleRequest) ToEntity(id uint) *entity.Muscle {
	return &entity.Muscle{
		ID:            id,
		Names:         r.Names,
		Descriptions:  r.Descriptions,
		ExerciseIDs:   r.ExerciseIDs,
		MuscleGroupID: r.MuscleGroupID,
		Image:         r.Image,
	}
}

// MuscleGroupRequest は筋肉グループの作成・更新リクエストDTOです。
type MuscleGroupRequest struct {
	Names        map[string]string `json:"names"`
	Descriptions map[string]string `json:"descriptions"`
	MuscleIDs    []uint            `json:"muscleIds"`
	Image        string            `json:"image"`
}

// ToEntity はリクエストをMuscleGroupエンティティへ変換します。
func (r *MuscleGroupRequest) ToEntity(id uint) *entity.MuscleGroup {
	return &entity.MuscleGroup{
		ID:           id,
		Names:        r.Names,
		Descriptions: r.Descriptions,
		MuscleIDs:    r.MuscleIDs,
		Image:        r.Image,
	}
}

// MutatedResponse はカタログ書き込みのレスポンスDTOです。
// クライアントは返されたタイムスタンプで共有同期カーソルを進めます。
type MutatedResponse struct {
	ID         uint  `json:"id,omitempty"`
	LastUpdate int64 `json:"lastUpdate"`
}
