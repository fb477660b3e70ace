package orders

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/giftworks/holiday-shop-backend/pkg/db/models"
	"github.com/giftworks/holiday-shop-backend/pkg/enums"
)

const (
	base36Alphabet  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	randomSuffixLen = 4
	sequenceWidth   = 3
)

// latestOrderFn looks up the most recently created order; gorm.ErrRecordNotFound
// signals an empty store.
type latestOrderFn func(ctx context.Context) (*models.Order, error)

// NumberAllocator produces unique human-readable order numbers under one of
// two policies. The sequential policy reads the latest order and increments
// its trailing decimal run; two concurrent submissions can read the same
// latest number and collide. That race is a documented limitation of the
// read-then-insert design; the service narrows it by allocating inside the
// submission transaction, and a real fix would be a uniqueness constraint
// with retry-on-conflict.
type NumberAllocator struct {
	policy           enums.NumberPolicy
	randomPrefix     string
	sequentialPrefix string
	now              func() time.Time
	intn             func(n int) int
}

// NewNumberAllocator builds an allocator for the configured policy.
func NewNumberAllocator(policy enums.NumberPolicy, randomPrefix, sequentialPrefix string) *NumberAllocator {
	return &NumberAllocator{
		policy:           policy,
		randomPrefix:     randomPrefix,
		sequentialPrefix: sequentialPrefix,
		now:              time.Now,
		intn:             rand.Intn,
	}
}

// Next allocates the next order number. It never returns an error: the
// sequential policy degrades to the first-in-sequence number when the latest
// lookup fails, rather than failing the whole submission.
func (a *NumberAllocator) Next(ctx context.Context, latest latestOrderFn) string {
	if a.policy == enums.NumberPolicyRandom {
		return a.random()
	}
	return a.sequential(ctx, latest)
}

func (a *NumberAllocator) random() string {
	timestamp := strings.ToUpper(strconv.FormatInt(a.now().UnixMilli(), 36))
	suffix := make([]byte, randomSuffixLen)
	for i := range suffix {
		suffix[i] = base36Alphabet[a.intn(len(base36Alphabet))]
	}
	return fmt.Sprintf("%s-%s-%s", a.randomPrefix, timestamp, suffix)
}

func (a *NumberAllocator) sequential(ctx context.Context, latest latestOrderFn) string {
	first := fmt.Sprintf("%s-%0*d", a.sequentialPrefix, sequenceWidth, 1)

	order, err := latest(ctx)
	if err != nil || order == nil {
		return first
	}

	pattern := regexp.MustCompile("^" + regexp.QuoteMeta(a.sequentialPrefix) + `-(\d+)$`)
	match := pattern.FindStringSubmatch(order.OrderNumber)
	if match == nil {
		return first
	}

	n, err := strconv.Atoi(match[1])
	if err != nil {
		return first
	}
	return fmt.Sprintf("%s-%0*d", a.sequentialPrefix, sequenceWidth, n+1)
}
