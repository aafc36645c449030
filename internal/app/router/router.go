// Package router はアプリケーションのHTTPルーティングを定義します。
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authhandler "fitness_backend/internal/feature/auth/transport/handler"
	authmw "fitness_backend/internal/feature/auth/transport/middleware"
	cataloghandler "fitness_backend/internal/feature/catalog/transport/handler"
	datahandler "fitness_backend/internal/feature/data/transport/handler"
	foodvisionhandler "fitness_backend/internal/feature/foodvision/transport/handler"
	prefshandler "fitness_backend/internal/feature/preferences/transport/handler"
	reshandler "fitness_backend/internal/feature/resources/transport/handler"
	syncentity "fitness_backend/internal/feature/sync/domain/entity"
	synchandler "fitness_backend/internal/feature/sync/transport/handler"
	jwtmw "fitness_backend/internal/platform/jwt"
)

// Handlers はルータが配線するすべてのHTTPハンドラーをまとめます。
type Handlers struct {
	Auth        *authhandler.AuthHandler
	Resources   *reshandler.ResourcesHandler
	Catalog     *cataloghandler.CatalogHandler
	Preferences *prefshandler.PreferencesHandler
	LastUpdates *synchandler.LastUpdatesHandler
	Data        *datahandler.DataHandler
	FoodVision  *foodvisionhandler.FoodVisionHandler
}

// NewRouter はすべてのエンドポイントを登録したgin.Engineを生成します。
// usersは管理者チェックのためのユーザーローダーです。
func NewRouter(h Handlers, users authmw.UserLoader) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 認証不要のルート
	r.POST("/signup", h.Auth.Signup)
	r.POST("/login", h.Auth.Login)
	r.POST("/refresh", h.Auth.Refresh)
	r.POST("/logout", h.Auth.Logout)

	// メール確認フロー（リンクはメール経由で届くため認証不要）
	r.GET("/validate/:secret", h.Auth.Validate)
	r.PUT("/validate", h.Auth.RequestValidation)

	// 共有カタログの読み取りと公開クロックは認証不要
	r.GET("/lastupdates/public", h.LastUpdates.Public)
	r.GET("/data/public", h.Data.Public)

	r.GET("/foods", h.Catalog.ListFoods)
	r.GET("/foods/:id", h.Catalog.GetFood)
	r.GET("/exercises", h.Catalog.ListExercises)
	r.GET("/exercises/:id", h.Catalog.GetExercise)
	r.GET("/muscles", h.Catalog.ListMuscles)
	r.GET("/muscles/:id", h.Catalog.GetMuscle)
	r.GET("/muscleGroups", h.Catalog.ListMuscleGroups)
	r.GET("/muscleGroups/:id", h.Catalog.GetMuscleGroup)

	// 認証必須のルート
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired())
	{
		auth.GET("/me", h.Auth.Me)

		// 所有リソース（diets / meals / recipes / programs / trainings）
		for _, category := range syncentity.OwnedCategories() {
			base := "/" + string(category)
			auth.POST(base, h.Resources.Create(category))
			auth.GET(base, h.Resources.Mine(category))
			auth.GET(base+"/:id", h.Resources.Get(category))
			auth.PUT(base+"/:id", h.Resources.Update(category))
			auth.DELETE(base+"/:id", h.Resources.Delete(category))
		}

		auth.GET("/preferences", h.Preferences.Get)
		auth.PUT("/preferences", h.Preferences.Update)

		auth.GET("/lastupdates", h.LastUpdates.All)
		auth.GET("/lastupdates/private", h.LastUpdates.Private)

		auth.GET("/data", h.Data.Some)
		auth.GET("/data/mine", h.Data.Mine)

		auth.POST("/foods/scan", h.FoodVision.ScanImage)
		auth.POST("/foods/analyze", h.FoodVision.AnalyzeFood)
	}

	// 管理者専用のルート（カタログの変更・全ユーザーリソースの一覧）
	admin := r.Group("/")
	admin.Use(jwtmw.AuthRequired(), authmw.AdminRequired(users))
	{
		admin.GET("/users", h.Auth.ListUsers)

		admin.POST("/foods", h.Catalog.CreateFood)
		admin.PUT("/foods/:id", h.Catalog.UpdateFood)
		admin.DELETE("/foods/:id", h.Catalog.DeleteFood)

		admin.POST("/exercises", h.Catalog.CreateExercise)
		admin.PUT("/exercises/:id", h.Catalog.UpdateExercise)
		admin.DELETE("/exercises/:id", h.Catalog.DeleteExercise)

		admin.POST("/muscles", h.Catalog.CreateMuscle)
		admin.PUT("/muscles/:id", h.Catalog.UpdateMuscle)
		admin.DELETE("/muscles/:id", h.Catalog.DeleteMuscle)

		admin.POST("/muscleGroups", h.Catalog.CreateMuscleGroup)
		admin.PUT("/muscleGroups/:id", h.Catalog.UpdateMuscleGroup)
		admin.DELETE("/muscleGroups/:id", h.Catalog.DeleteMuscleGroup)

		for _, category := range syncentity.OwnedCategories() {
			admin.GET("/admin/"+string(category), h.Resources.All(category))
		}
	}

	return r
}
