package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dewatanation/admin-panel/internal/pkg/config"
)

func TestSetupCache_WithoutHost(t *testing.T) {
	t.Cleanup(func() { client = nil })

	assert.Nil(t, SetupCache(config.CacheConfig{}, zerolog.Nop()))
	assert.Nil(t, client)
	assert.NoError(t, Ping(context.Background()))
}

func TestSetupCache_Miniredis(t *testing.T) {
	mini := miniredis.RunT(t)
	t.Cleanup(func() {
		if client != nil {
			_ = client.Close()
		}
		client = nil
	})

	c := SetupCache(config.CacheConfig{Host: mini.Host(), Port: mini.Port()}, zerolog.Nop())
	require.NotNil(t, c)
	assert.Same(t, c, client)
	assert.NoError(t, Ping(context.Background()))

	mini.Close()
	assert.Error(t, Ping(context.Background()))
}
