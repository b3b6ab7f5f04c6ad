package localstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Backend)
	assert.Equal(t, DefaultName, cfg.Name)
	assert.False(t, cfg.UseCache)
	assert.Equal(t, "localstore.db", cfg.SQLitePath)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 0, cfg.Redis.DB)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("LOCALSTORE_BACKEND", "redis")
	t.Setenv("LOCALSTORE_NAME", "storageOne")
	t.Setenv("LOCALSTORE_CACHE", "true")
	t.Setenv("LOCALSTORE_REDIS_ADDR", "redis.internal:6380")
	t.Setenv("LOCALSTORE_REDIS_DB", "3")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Backend)
	assert.Equal(t, "storageOne", cfg.Name)
	assert.True(t, cfg.UseCache)
	assert.Equal(t, "redis.internal:6380", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)

	setup := cfg.Setup()
	assert.Equal(t, "storageOne", setup.Name)
	assert.True(t, setup.UseCache)
}

func TestLoadConfig_IgnoresBadValues(t *testing.T) {
	t.Setenv("LOCALSTORE_CACHE", "definitely")
	t.Setenv("LOCALSTORE_REDIS_DB", "three")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.False(t, cfg.UseCache)
	assert.Equal(t, 0, cfg.Redis.DB)
}

func TestOpenMedium_Memory(t *testing.T) {
	m, err := OpenMedium(&Config{Backend: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, m)

	// Empty backend falls back to memory as well.
	m, err = OpenMedium(&Config{})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, m)
}

func TestOpenMedium_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store", "test.db")
	m, err := OpenMedium(&Config{Backend: "sqlite", SQLitePath: path})
	require.NoError(t, err)

	s, ok := m.(*SQLite)
	require.True(t, ok)
	require.NoError(t, s.Close())
}

func TestOpenMedium_Unknown(t *testing.T) {
	_, err := OpenMedium(&Config{Backend: "cassandra"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cassandra")
}
