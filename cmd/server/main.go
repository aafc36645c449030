package main

import (
	"context"
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"fitness_backend/internal/app/di"
	"fitness_backend/internal/app/router"
	authadapters "fitness_backend/internal/feature/auth/adapters"
	authhandler "fitness_backend/internal/feature/auth/transport/handler"
	authusecase "fitness_backend/internal/feature/auth/usecase"
	catalogadapters "fitness_backend/internal/feature/catalog/adapters"
	cataloghandler "fitness_backend/internal/feature/catalog/transport/handler"
	catalogusecase "fitness_backend/internal/feature/catalog/usecase"
	datahandler "fitness_backend/internal/feature/data/transport/handler"
	datausecase "fitness_backend/internal/feature/data/usecase"
	foodvisionhandler "fitness_backend/internal/feature/foodvision/transport/handler"
	prefsadapters "fitness_backend/internal/feature/preferences/adapters"
	prefshandler "fitness_backend/internal/feature/preferences/transport/handler"
	prefsusecase "fitness_backend/internal/feature/preferences/usecase"
	resadapters "fitness_backend/internal/feature/resources/adapters"
	reshandler "fitness_backend/internal/feature/resources/transport/handler"
	resusecase "fitness_backend/internal/feature/resources/usecase"
	syncadapters "fitness_backend/internal/feature/sync/adapters"
	synchandler "fitness_backend/internal/feature/sync/transport/handler"
	syncusecase "fitness_backend/internal/feature/sync/usecase"
	infradb "fitness_backend/internal/platform/db"
	jwtmw "fitness_backend/internal/platform/jwt"
	infraredis "fitness_backend/internal/platform/redis"
)

// accessTokenTTL はアクセストークン（JWT）の有効期間です。
const accessTokenTTL = 15 * time.Minute

func main() {
	ctx := context.Background()

	// db
	db := infradb.OpenDB()

	// Redis（セッションストア。利用できない場合はDBにフォールバック）
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Falling back to DB sessions.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	ownershipRepo := syncadapters.NewOwnershipMySQL(db)
	catalogClockRepo := syncadapters.NewCatalogClockMySQL(db)
	docRepo := resadapters.NewDocumentMySQL(db)
	prefsRepo := prefsadapters.NewPreferencesMySQL(db)
	foodRepo := catalogadapters.NewFoodMySQL(db)
	exerciseRepo := catalogadapters.NewExerciseMySQL(db)
	muscleRepo := catalogadapters.NewMuscleMySQL(db)
	muscleGroupRepo := catalogadapters.NewMuscleGroupMySQL(db)

	// Usecase
	jwtGen := jwtmw.NewGenerator(secret, accessTokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, jwtGen)
	syncUC := syncusecase.NewSyncUsecase(ownershipRepo, catalogClockRepo)
	resourcesUC := resusecase.NewResourcesUsecase(docRepo, syncUC)
	prefsUC := prefsusecase.NewPreferencesUsecase(prefsRepo, syncUC)
	catalogUC := catalogusecase.NewCatalogUsecase(foodRepo, exerciseRepo, muscleRepo, muscleGroupRepo, syncUC)
	dataUC := datausecase.NewDataUsecase(resourcesUC, prefsUC, catalogUC, syncUC)

	// 外部API（Vision / Gemini）
	foodVision, err := di.NewFoodVision(ctx)
	if err != nil {
		log.Fatal("failed to initialize food vision clients: ", err)
	}
	defer func() {
		if err := foodVision.Close(); err != nil {
			log.Println("[ERROR] Failed to close food vision clients:", err)
		}
	}()

	// Handler
	handlers := router.Handlers{
		Auth:        authhandler.NewAuthHandler(authUC),
		Resources:   reshandler.NewResourcesHandler(resourcesUC),
		Catalog:     cataloghandler.NewCatalogHandler(catalogUC),
		Preferences: prefshandler.NewPreferencesHandler(prefsUC),
		LastUpdates: synchandler.NewLastUpdatesHandler(syncUC),
		Data:        datahandler.NewDataHandler(dataUC),
		FoodVision:  foodvisionhandler.NewFoodVisionHandler(foodVision.Usecase),
	}

	// ルータ生成
	r := router.NewRouter(handlers, userRepo)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
