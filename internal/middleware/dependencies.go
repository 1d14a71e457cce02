package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/farellandr/eventportal/internal/browse"
	"github.com/farellandr/eventportal/internal/helpers"
)

// Settings are the runtime values handlers need besides their services.
type Settings struct {
	JWTSecret string
	JWTTTL    time.Duration
	UploadDir string
}

func DatabaseMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("db", db)
		c.Next()
	}
}

func GetDB(c *gin.Context) *gorm.DB {
	db, exists := c.Get("db")
	if !exists {
		return nil
	}
	return db.(*gorm.DB)
}

func BrowseMiddleware(svc *browse.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("browse_service", svc)
		c.Next()
	}
}

func GetBrowseService(c *gin.Context) *browse.Service {
	svc, exists := c.Get("browse_service")
	if !exists {
		return nil
	}
	return svc.(*browse.Service)
}

func PassSignerMiddleware(signer *helpers.PassSigner) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("pass_signer", signer)
		c.Next()
	}
}

func GetPassSigner(c *gin.Context) *helpers.PassSigner {
	signer, exists := c.Get("pass_signer")
	if !exists {
		return nil
	}
	return signer.(*helpers.PassSigner)
}

func SettingsMiddleware(settings Settings) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("settings", settings)
		c.Next()
	}
}

func GetSettings(c *gin.Context) Settings {
	settings, exists := c.Get("settings")
	if !exists {
		return Settings{}
	}
	return settings.(Settings)
}

// GetLogger returns the request-scoped logger set by RequestLogger, or a no-op
// logger.
func GetLogger(c *gin.Context) *zap.Logger {
	log, exists := c.Get("logger")
	if !exists {
		return zap.NewNop()
	}
	return log.(*zap.Logger)
}
