package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	userRepo "weddify/database/repository/user"
	vendorRepo "weddify/database/repository/vendor"
	"weddify/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// JWTAuthMiddleware authenticates a Bearer token for both users and
// vendors. The token's role claim selects the lookup path. The token
// hash is checked against the Redis auth cache first, falling back to
// the stored hash on the account record.
func JWTAuthMiddleware(users userRepo.UserRepository, vendors vendorRepo.VendorRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subjectID, role, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || subjectID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		computedHash := utils.HashToken(tokenString)

		ctx := context.Background()
		cacheKey := utils.AuthCachePrefix + subjectID

		authCache := utils.GetAuthCacheClient()
		cacheEnabled := authCache != nil
		if cacheEnabled {
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedHash != computedHash {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
					return
				}
				_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
				c.Set("userID", subjectID)
				c.Set("role", role)
				c.Next()
				return
			} else if err != redis.Nil {
				utils.GetLogger().Warn("auth cache lookup failed, falling back to DB", zap.Error(err))
			}
		}

		storedHash, err := lookupTokenHash(users, vendors, role, subjectID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}
		if storedHash == "" || storedHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
			return
		}

		if cacheEnabled {
			_ = authCache.Set(ctx, cacheKey, computedHash, time.Hour).Err()
		}

		c.Set("userID", subjectID)
		c.Set("role", role)
		c.Next()
	}
}

func lookupTokenHash(users userRepo.UserRepository, vendors vendorRepo.VendorRepository, role, id string) (string, error) {
	if role == "vendor" {
		v, err := vendors.GetByID(id)
		if err != nil || v == nil {
			return "", err
		}
		return v.Security.TokenHash, nil
	}
	usr, err := users.GetByIDWithProjection(id, bson.M{"id": 1, "security": 1})
	if err != nil || usr == nil {
		return "", err
	}
	return usr.Security.TokenHash, nil
}
