package filter_cache

import (
	"testing"

	"github.com/firhaanali/dashboard-dbusana-sub007/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterCacheRoundTrip(t *testing.T) {
	Invalidate()

	_, ok := Get()
	assert.False(t, ok)

	Set(models.SalesFilterMetadata{Marketplaces: []string{"shopee", "tiktok_shop"}})

	got, ok := Get()
	require.True(t, ok)
	assert.Equal(t, []string{"shopee", "tiktok_shop"}, got.Marketplaces)

	Invalidate()
	_, ok = Get()
	assert.False(t, ok)
}
