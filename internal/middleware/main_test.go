package middleware

import (
	"os"
	"testing"

	"autoviz-server/internal/config"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.Set(config.Config{Redis: config.RedisConfig{Enabled: false, Prefix: "autoviz"}})
	os.Exit(m.Run())
}
