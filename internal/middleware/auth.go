package middleware

import (
	"net/http"
	"strings"
	"time"

	"lounge_backend/internal/auth"
	"lounge_backend/internal/logger"
	"lounge_backend/internal/repositories"
	"lounge_backend/pkg/apperrors"
	"lounge_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - middleware проверки JWT
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// Сохраняем claims в контекст запроса
		c.Set(string(contextkeys.UserIDContextKey), claims.UserID)
		c.Set(string(contextkeys.ClaimsContextKey), claims)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

// AdminMiddleware пропускает только пользователей с правами админа.
// Права берутся из подписанного токена, заголовки клиента не учитываются.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil || !claims.IsAdmin {
			apperrors.HandleError(c, apperrors.ErrAdminRequired)
			c.Abort()
			return
		}
		c.Next()
	}
}

// SubscriptionMiddleware требует действующую подписку. Админы проходят
// без подписки. Ошибка чтения из БД закрывает доступ, а не открывает.
func SubscriptionMiddleware(subscriptionRepo repositories.SubscriptionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
			return
		}

		if claims.IsAdmin {
			c.Next()
			return
		}

		sub, err := subscriptionRepo.FindActiveByUser(claims.UserID, time.Now())
		if err != nil || sub == nil {
			apperrors.HandleError(c, apperrors.ErrSubscriptionRequired)
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(string(contextkeys.UserIDContextKey))
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}

// GetClaims извлекает JWT claims из контекста
func GetClaims(c *gin.Context) *auth.Claims {
	val, exists := c.Get(string(contextkeys.ClaimsContextKey))
	if !exists {
		return nil
	}

	claims, ok := val.(*auth.Claims)
	if !ok {
		return nil
	}

	return claims
}
