package cache

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/courtbooking/config"
	"github.com/Domenick1991/courtbooking/internal/domain"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := NewRedisCache(config.RedisConfig{Addr: mr.Addr()}, time.Minute)
	return c, mr
}

func TestRedisCache_SetGetAvailability(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	slots := []domain.Slot{
		{ID: "2025-06-10_CourtA_0900", Court: "Court A", Date: "2025-06-10", Time: "09:00", DurationMinutes: 60, Available: true},
	}

	require.NoError(t, c.SetAvailability(ctx, "2025-06-10", slots))

	got, err := c.GetAvailability(ctx, "2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, slots, got)
}

func TestRedisCache_MissReturnsNil(t *testing.T) {
	c, _ := newTestCache(t)

	got, err := c.GetAvailability(context.Background(), "2025-06-10")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCache_InvalidateDate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetAvailability(ctx, "2025-06-10", []domain.Slot{{ID: "x"}}))
	require.NoError(t, c.InvalidateDate(ctx, "2025-06-10"))

	got, err := c.GetAvailability(ctx, "2025-06-10")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCache_TTLExpires(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetAvailability(ctx, "2025-06-10", []domain.Slot{{ID: "x"}}))
	mr.FastForward(2 * time.Minute)

	got, err := c.GetAvailability(ctx, "2025-06-10")
	require.NoError(t, err)
	assert.Nil(t, got)
}
