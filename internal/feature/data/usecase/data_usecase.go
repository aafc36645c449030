// Package usecase はdataフィーチャーのビジネスロジックを実装します。
// dataは単独の保存層を持たず、resources・preferences・catalog・syncの
// 読み取りを1レスポンスに合成する集約フィーチャーです。クライアントは
// 初回同期やキャッシュ破棄後の全量取得にこれを使います。
package usecase

import (
	"context"
	"errors"
	"fmt"

	catentity "fitness_backend/internal/feature/catalog/domain/entity"
	prefentity "fitness_backend/internal/feature/preferences/domain/entity"
	resusecase "fitness_backend/internal/feature/resources/usecase"
	syncentity "fitness_backend/internal/feature/sync/domain/entity"
)

// ErrUnknownSelection は選択クエリに未知のデータ名が含まれることを表します。
var ErrUnknownSelection = errors.New("unknown data selection")

// ResourcesService は所有ドキュメントの解決への窓口を抽象化します。
type ResourcesService interface {
	Mine(ctx context.Context, userID uint, category syncentity.Category) (*resusecase.OwnedCollection, error)
	Snapshot(ctx context.Context, userID uint, categories []syncentity.Category) (map[syncentity.Category]*resusecase.OwnedCollection, error)
}

// PreferencesService はユーザー設定の読み取りへの窓口を抽象化します。
type PreferencesService interface {
	Get(ctx context.Context, userID uint) (*prefentity.Preferences, error)
}

// CatalogService は共有カタログの読み取りへの窓口を抽象化します。
type CatalogService interface {
	ListFoods(ctx context.Context) ([]catentity.Food, error)
	ListExercises(ctx context.Context) ([]catentity.Exercise, error)
	ListMuscles(ctx context.Context) ([]catentity.Muscle, error)
	ListMuscleGroups(ctx context.Context) ([]catentity.MuscleGroup, error)
}

// SyncService はクロック読み取りへの窓口を抽象化します。
type SyncService interface {
	LastUpdates(ctx context.Context, userID uint) (syncentity.LastUpdates, error)
	PublicLastUpdates(ctx context.Context) (syncentity.PublicLastUpdates, error)
}

// MyData は /data/mine 1回分の全量スナップショットです。
type MyData struct {
	LastUpdates syncentity.LastUpdates
	Preferences *prefentity.Preferences
	Collections map[syncentity.Category]*resusecase.OwnedCollection
}

// PublicData は共有カタログの全量スナップショットです。
type PublicData struct {
	LastUpdates  syncentity.PublicLastUpdates
	Foods        []catentity.Food
	Exercises    []catentity.Exercise
	Muscles      []catentity.Muscle
	MuscleGroups []catentity.MuscleGroup
}

// Selection は選択取得の結果です。要求されなかったスライスはnilのままです。
type Selection struct {
	Preferences  *prefentity.Preferences
	Collections  map[syncentity.Category]*resusecase.OwnedCollection
	Foods        []catentity.Food
	Exercises    []catentity.Exercise
	Muscles      []catentity.Muscle
	MuscleGroups []catentity.MuscleGroup
}

// dataUsecase は各フィーチャーの読み取りを合成します。
type dataUsecase struct {
	resources   ResourcesService
	preferences PreferencesService
	catalog     CatalogService
	sync        SyncService
}

// NewDataUsecase はdataUsecaseの新しいインスタンスを生成します。
func NewDataUsecase(
	resources ResourcesService,
	preferences PreferencesService,
	catalog CatalogService,
	sync SyncService,
) *dataUsecase {
	return &dataUsecase{
		resources:   resources,
		preferences: preferences,
		catalog:     catalog,
		sync:        sync,
	}
}

// MyData はクロック・設定・所有5カテゴリをまとめて返します。
func (u *dataUsecase) MyData(ctx context.Context, userID uint) (*MyData, error) {
	updates, err := u.sync.LastUpdates(ctx, userID)
	if err != nil {
		return nil, err
	}
	prefs, err := u.preferences.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	collections, err := u.resources.Snapshot(ctx, userID, nil)
	if err != nil {
		return nil, err
	}
	return &MyData{
		LastUpdates: updates,
		Preferences: prefs,
		Collections: collections,
	}, nil
}

// PublicData は共有カタログ4種とそのクロックをまとめて返します。
func (u *dataUsecase) PublicData(ctx context.Context) (*PublicData, error) {
	updates, err := u.sync.PublicLastUpdates(ctx)
	if err != nil {
		return nil, err
	}
	foods, err := u.catalog.ListFoods(ctx)
	if err != nil {
		return nil, err
	}
	exercises, err := u.catalog.ListExercises(ctx)
	if err != nil {
		return nil, err
	}
	muscles, err := u.catalog.ListMuscles(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := u.catalog.ListMuscleGroups(ctx)
	if err != nil {
		return nil, err
	}
	return &PublicData{
		LastUpdates:  updates,
		Foods:        foods,
		Exercises:    exercises,
		Muscles:      muscles,
		MuscleGroups: groups,
	}, nil
}

// SomeData は要求された断面だけを取得して返します。
// namesには所有カテゴリ名・"preferences"・カタログ名が混在できます。
func (u *dataUsecase) SomeData(ctx context.Context, userID uint, names []string) (*Selection, error) {
	selection := &Selection{}
	for _, name := range names {
		if err := u.resolve(ctx, userID, name, selection); err != nil {
			return nil, err
		}
	}
	return selection, nil
}

func (u *dataUsecase) resolve(ctx context.Context, userID uint, name string, selection *Selection) error {
	if name == "preferences" {
		prefs, err := u.preferences.Get(ctx, userID)
		if err != nil {
			return err
		}
		selection.Preferences = prefs
		return nil
	}

	if category, err := syncentity.ParseOwnedCategory(name); err == nil {
		collection, err := u.resources.Mine(ctx, userID, category)
		if err != nil {
			return err
		}
		if selection.Collections == nil {
			selection.Collections = make(map[syncentity.Category]*resusecase.OwnedCollection)
		}
		selection.Collections[category] = collection
		return nil
	}

	if catalog, err := syncentity.ParseCatalog(name); err == nil {
		var err error
		switch catalog {
		case syncentity.CatalogFoods:
			selection.Foods, err = u.catalog.ListFoods(ctx)
		case syncentity.CatalogExercises:
			selection.Exercises, err = u.catalog.ListExercises(ctx)
		case syncentity.CatalogMuscleGroups:
			selection.MuscleGroups, err = u.catalog.ListMuscleGroups(ctx)
		case syncentity.CatalogMuscles:
			selection.Muscles, err = u.catalog.ListMuscles(ctx)
		}
		return err
	}

	return fmt.Errorf("%w: %q", ErrUnknownSelection, name)
}
