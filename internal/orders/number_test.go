package orders

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/giftworks/holiday-shop-backend/pkg/db/models"
	"github.com/giftworks/holiday-shop-backend/pkg/enums"
)

func latestReturning(orderNumber string) latestOrderFn {
	return func(ctx context.Context) (*models.Order, error) {
		return &models.Order{OrderNumber: orderNumber}, nil
	}
}

func TestSequentialIncrementsLatest(t *testing.T) {
	alloc := NewNumberAllocator(enums.NumberPolicySequential, "STRYKER", "syk")

	assert.Equal(t, "syk-008", alloc.Next(context.Background(), latestReturning("syk-007")))
	assert.Equal(t, "syk-100", alloc.Next(context.Background(), latestReturning("syk-099")))
}

func TestSequentialGrowsPastWidth(t *testing.T) {
	alloc := NewNumberAllocator(enums.NumberPolicySequential, "STRYKER", "syk")

	assert.Equal(t, "syk-1000", alloc.Next(context.Background(), latestReturning("syk-999")))
}

func TestSequentialRestartsOnEmptyStore(t *testing.T) {
	alloc := NewNumberAllocator(enums.NumberPolicySequential, "STRYKER", "syk")

	latest := func(ctx context.Context) (*models.Order, error) {
		return nil, gorm.ErrRecordNotFound
	}
	assert.Equal(t, "syk-001", alloc.Next(context.Background(), latest))
}

func TestSequentialRestartsOnUnparseableLatest(t *testing.T) {
	alloc := NewNumberAllocator(enums.NumberPolicySequential, "STRYKER", "syk")

	for _, latest := range []string{"", "garbage", "STRYKER-MABC123-Z9Q1", "syk-"} {
		assert.Equal(t, "syk-001", alloc.Next(context.Background(), latestReturning(latest)), "latest=%q", latest)
	}
}

func TestSequentialRestartsOnLookupError(t *testing.T) {
	alloc := NewNumberAllocator(enums.NumberPolicySequential, "STRYKER", "syk")

	latest := func(ctx context.Context) (*models.Order, error) {
		return nil, errors.New("connection reset")
	}
	assert.Equal(t, "syk-001", alloc.Next(context.Background(), latest))
}

func TestRandomFormat(t *testing.T) {
	alloc := NewNumberAllocator(enums.NumberPolicyRandom, "STRYKER", "syk")
	alloc.now = func() time.Time { return time.UnixMilli(1735689600000) }
	alloc.intn = func(n int) int { return 0 }

	got := alloc.Next(context.Background(), latestReturning("ignored"))

	re := regexp.MustCompile(`^STRYKER-[0-9A-Z]+-[0-9A-Z]{4}$`)
	require.Regexp(t, re, got)
	assert.Equal(t, "STRYKER-M5D4RUO0-0000", got)
}

func TestRandomIgnoresLatestLookup(t *testing.T) {
	alloc := NewNumberAllocator(enums.NumberPolicyRandom, "STRYKER", "syk")

	called := false
	latest := func(ctx context.Context) (*models.Order, error) {
		called = true
		return nil, nil
	}
	alloc.Next(context.Background(), latest)
	assert.False(t, called)
}
