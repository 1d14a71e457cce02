package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farellandr/eventportal/internal/models"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("GATEWAY_URL", "http://localhost:8090")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 6, cfg.BrowsePageSize)
	assert.Equal(t, 8, cfg.ManagePageSize)
	assert.Equal(t, 30*24*time.Hour, cfg.FilterTTL)
	assert.Equal(t, 10*time.Second, cfg.GatewayTimeout)
	assert.Equal(t, "secret", cfg.PassSecret)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("GATEWAY_URL", "http://gateway")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("BROWSE_PAGE_SIZE", "12")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("PASS_SECRET", "pass")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 12, cfg.BrowsePageSize)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "pass", cfg.PassSecret)
}

func TestLoadConfig_Validation(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("GATEWAY_URL", "http://gateway")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_DRIVER", "mysql")
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "DB_DRIVER")
}

func TestInitDatabase_SQLiteSeedsRoles(t *testing.T) {
	cfg := &Config{DBDriver: "sqlite", DBPath: ":memory:"}

	db, err := InitDatabase(cfg)
	require.NoError(t, err)

	// seeding twice keeps one row per role
	require.NoError(t, seedRoles(db))

	var roles []models.Role
	require.NoError(t, db.Order("id").Find(&roles).Error)
	require.Len(t, roles, 3)
	assert.Equal(t, models.RoleParticipant, roles[0].Name)
}

func TestInitRedis_Disabled(t *testing.T) {
	client, err := InitRedis(&Config{})
	assert.NoError(t, err)
	assert.Nil(t, client)
}
