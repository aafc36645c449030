// Package dto はsync HTTP APIのデータ転送オブジェクトを定義します。
package dto

import "fitness_backend/internal/feature/sync/domain/entity"

// PrivateLastUpdatesResponse はユーザー別クロックのレスポンスDTOです。
// タイムスタンプはUNIXエポックからのミリ秒で、未更新カテゴリは0です。
type PrivateLastUpdatesResponse struct {
	PreferencesLastUpdate int64 `json:"preferencesLastUpdate"`
	DietsLastUpdate       int64 `json:"dietsLastUpdate"`
	MealsLastUpdate       int64 `json:"mealsLastUpdate"`
	RecipesLastUpdate     int64 `json:"recipesLastUpdate"`
	ProgramsLastUpdate    int64 `json:"programsLastUpdate"`
	TrainingsLastUpdate   int64 `json:"trainingsLastUpdate"`
}

// PublicLastUpdatesResponse は共有カタログクロックのレスポンスDTOです。
type PublicLastUpdatesResponse struct {
	FoodsLastUpdate        int64 `json:"foodsLastUpdate"`
	ExercisesLastUpdate    int64 `json:"exercisesLastUpdate"`
	MuscleGroupsLastUpdate int64 `json:"muscleGroupsLastUpdate"`
	MusclesLastUpdate      int64 `json:"musclesLastUpdate"`
}

// LastUpdatesResponse はユーザー別と共有の全クロックをまとめたレスポンスDTOです。
type LastUpdatesResponse struct {
	PrivateLastUpdatesResponse
	PublicLastUpdatesResponse
}

// FromPrivate はエンティティをレスポンスDTOへ変換します。
func FromPrivate(p entity.PrivateLastUpdates) PrivateLastUpdatesResponse {
	return PrivateLastUpdatesResponse{
		PreferencesLastUpdate: p.Preferences,
		DietsLastUpdate:       p.Diets,
		MealsLastUpdate:       p.Meals,
		RecipesLastUpdate:     p.Recipes,
		ProgramsLastUpdate:    p.Programs,
		TrainingsLastUpdate:   p.Trainings,
	}
}

// FromPublic はエンティティをレスポンスDTOへ変換します。
func FromPublic(p entity.PublicLastUpdates) PublicLastUpdatesResponse {
	return PublicLastUpdatesResponse{
		FoodsLastUpdate:        p.Foods,
		ExercisesLastUpdate:    p.Exercises,
		MuscleGroupsLastUpdate: p.MuscleGroups,
		MusclesLastUpdate:      p.Muscles,
	}
}

// FromLastUpdates はエンティティをレスポンスDTOへ変換します。
func FromLastUpdates(l entity.LastUpdates) LastUpdatesResponse {
	return LastUpdatesResponse{
		PrivateLastUpdatesResponse: FromPrivate(l.Private),
		PublicLastUpdatesResponse:  FromPublic(l.Public),
	}
}
