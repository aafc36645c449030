// Package dto はdata HTTP APIのデータ転送オブジェクトを定義します。
package dto

import (
	catentity "fitness_backend/internal/feature/catalog/domain/entity"
	resdto "fitness_backend/internal/feature/resources/transport/http/dto"
	resusecase "fitness_backend/internal/feature/resources/usecase"
	syncentity "fitness_backend/internal/feature/sync/domain/entity"
	syncdto "fitness_backend/internal/feature/sync/transport/http/dto"
)

// PreferencesPayload は合成レスポンス内の設定断面です。
type PreferencesPayload struct {
	Theme string `json:"theme"`
}

// MyDataResponse は /data/mine のレスポンスDTOです。
type MyDataResponse struct {
	LastUpdates syncdto.LastUpdatesResponse `json:"lastUpdates"`
	Preferences PreferencesPayload          `json:"preferences"`
	Diets       resdto.CollectionResponse   `json:"diets"`
	Meals       resdto.CollectionResponse   `json:"meals"`
	Recipes     resdto.CollectionResponse   `json:"recipes"`
	Programs    resdto.CollectionResponse   `json:"programs"`
	Trainings   resdto.CollectionResponse   `json:"trainings"`
}

// PublicDataResponse は /data/public のレスポンスDTOです。
type PublicDataResponse struct {
	PublicLastUpdates syncdto.PublicLastUpdatesResponse `json:"publicLastUpdates"`
	Foods             []catentity.Food                  `json:"foods"`
	Exercises         []catentity.Exercise              `json:"exercises"`
	Muscles           []catentity.Muscle                `json:"muscles"`
	MuscleGroups      []catentity.MuscleGroup           `json:"muscleGroups"`
}

// SelectionResponse は選択取得のレスポンスDTOです。
// 要求されなかった断面はJSONから省かれます。
type SelectionResponse struct {
	Preferences  *PreferencesPayload        `json:"preferences,omitempty"`
	Diets        *resdto.CollectionResponse `json:"diets,omitempty"`
	Meals        *resdto.CollectionResponse `json:"meals,omitempty"`
	Recipes      *resdto.CollectionResponse `json:"recipes,omitempty"`
	Programs     *resdto.CollectionResponse `json:"programs,omitempty"`
	Trainings    *resdto.CollectionResponse `json:"trainings,omitempty"`
	Foods        []catentity.Food           `json:"foods,omitempty"`
	Exercises    []catentity.Exercise       `json:"exercises,omitempty"`
	Muscles      []catentity.Muscle         `json:"muscles,omitempty"`
	MuscleGroups []catentity.MuscleGroup    `json:"muscleGroups,omitempty"`
}

// ToCollection は所有コレクションをレスポンスDTOへ変換します。
func ToCollection(collection *resusecase.OwnedCollection) resdto.CollectionResponse {
	resources := make([]resdto.ResourceResponse, 0, len(collection.Documents))
	for _, doc := range collection.Documents {
		resources = append(resources, resdto.ResourceResponse{ID: doc.ID, Body: doc.Body})
	}
	return resdto.CollectionResponse{
		Resources:  resources,
		LastUpdate: collection.LastUpdate,
		Dropped:    collection.Dropped,
	}
}

// AssignCollection はカテゴリ別コレクションをSelectionResponseの対応フィールドへ割り当てます。
func (r *SelectionResponse) AssignCollection(category syncentity.Category, collection resdto.CollectionResponse) {
	switch category {
	case syncentity.CategoryDiets:
		r.Diets = &collection
	case syncentity.CategoryMeals:
		r.Meals = &collection
	case syncentity.CategoryRecipes:
		r.Recipes = &collection
	case syncentity.CategoryPrograms:
		r.Programs = &collection
	case syncentity.CategoryTrainings:
		r.Trainings = &collection
	}
}
