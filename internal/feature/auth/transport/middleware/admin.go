// Package middleware はauthフィーチャーのGinミドルウェアを提供します。
package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitness_backend/internal/feature/auth/domain/entity"
	jwtmw "fitness_backend/internal/platform/jwt"
	"fitness_backend/internal/shared/httpapi"
)

// UserLoader は管理者判定に必要なユーザー読み取りを抽象化します。
type UserLoader interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// AdminRequired は管理者権限を持つユーザーだけを通すGinミドルウェアを返します。
// JWT検証ミドルウェアの後段に置く前提です。
func AdminRequired(users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get(jwtmw.ContextUserID)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpapi.ErrorResponse{Error: "unauthorized"})
			return
		}
		userID, ok := v.(uint)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpapi.ErrorResponse{Error: "unauthorized"})
			return
		}
		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpapi.ErrorResponse{Error: "unauthorized"})
			return
		}
		if !user.Admin {
			c.AbortWithStatusJSON(http.StatusForbidden, httpapi.ErrorResponse{Error: "admin access required"})
			return
		}
		c.Next()
	}
}
