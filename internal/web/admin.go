package web

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	adminCookie    = "admin_token"
	refreshTimeout = 2 * time.Minute
)

// Initialize admin access; without a configured token a random one is generated per process.
func (s *Server) initAdmin() error {
	salt, err := generateToken()
	if err != nil {
		return fmt.Errorf("generating hashing salt: %w", err)
	}
	s.hashingSalt = salt

	s.adminToken = s.opts.AdminToken
	if s.adminToken == "" {
		if s.adminToken, err = generateToken(); err != nil {
			return fmt.Errorf("generating admin token: %w", err)
		}
		if gin.Mode() == gin.DebugMode {
			s.logger.Info(context.Background(), "admin token (dev only)", "token", s.adminToken)
		}
	}
	return nil
}

func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// Hash IP address so admin access can be logged without storing addresses
func (s *Server) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + s.hashingSalt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// Middleware to check admin authentication (bearer token or cookie)
func (s *Server) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			token, _ = c.Cookie(adminCookie)
		}
		if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			s.logger.Info(c.Request.Context(), "rejected admin request", "client", s.hashIP(c.ClientIP()), "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// Setup all admin routes
func (s *Server) setupAdminRoutes(r *gin.Engine) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(s.adminAuthMiddleware())

	adminGroup.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"catalog":     s.catalog.Status(),
			"image_cache": s.images.Len(),
		})
	})

	// Manual refresh, e.g. from a CMS publish webhook
	adminGroup.POST("/refresh", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), refreshTimeout)
		defer cancel()

		s.logger.Info(ctx, "admin refresh requested", "client", s.hashIP(c.ClientIP()))
		if err := s.catalog.Refresh(ctx); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "catalog": s.catalog.Status()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"catalog": s.catalog.Status()})
	})
}
