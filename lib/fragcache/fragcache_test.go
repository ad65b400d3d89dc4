package fragcache

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clock is an adjustable time source for staleness tests.
type clock struct {
	mu sync.Mutex
	t  time.Time
}

func newClock(start time.Time) *clock {
	return &clock{t: start}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func TestCacheRoundTrip(t *testing.T) {
	c := New()

	exp := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, c.Set("k", &Entry{
		Fragment: "<p>hi</p>",
		Tags:     []string{"cat.root", "cat.sale"},
		Expire:   exp,
	}))

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "<p>hi</p>", got.Fragment)
	assert.Equal(t, []string{"cat.root", "cat.sale"}, got.Tags)
	assert.True(t, got.Expire.Equal(exp))
	assert.False(t, got.StoredAt.IsZero())

	_, ok = c.Get("absent")
	assert.False(t, ok)
}

func TestCacheTTL(t *testing.T) {
	clk := newClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	c := New(WithTTL(time.Minute), WithClock(clk.Now))

	require.NoError(t, c.Set("k", &Entry{Fragment: "x"}))

	_, ok := c.Get("k")
	assert.True(t, ok)

	clk.Advance(2 * time.Minute)
	_, ok = c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCacheHonorsEntryExpiry(t *testing.T) {
	clk := newClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	c := New(WithClock(clk.Now))

	require.NoError(t, c.Set("k", &Entry{
		Fragment: "x",
		Expire:   clk.Now().Add(30 * time.Second),
	}))

	_, ok := c.Get("k")
	assert.True(t, ok)

	clk.Advance(time.Minute)
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestInvalidateTags(t *testing.T) {
	c := New()
	require.NoError(t, c.Set("a", &Entry{Fragment: "a", Tags: []string{"cat.shoes", "cat.root"}}))
	require.NoError(t, c.Set("b", &Entry{Fragment: "b", Tags: []string{"cat.shoes"}}))
	require.NoError(t, c.Set("c", &Entry{Fragment: "c", Tags: []string{"cat.sale"}}))

	removed := c.InvalidateTags("cat.shoes")
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, c.Len())

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)

	assert.Equal(t, 0, c.InvalidateTags("cat.shoes", "unknown"))
}

func TestMaxEntriesEvictsOldest(t *testing.T) {
	clk := newClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	c := New(WithMaxEntries(2), WithClock(clk.Now))

	require.NoError(t, c.Set("first", &Entry{Fragment: "1"}))
	clk.Advance(time.Second)
	require.NoError(t, c.Set("second", &Entry{Fragment: "2"}))
	clk.Advance(time.Second)
	require.NoError(t, c.Set("third", &Entry{Fragment: "3"}))

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("first")
	assert.False(t, ok)
	_, ok = c.Get("second")
	assert.True(t, ok)
	_, ok = c.Get("third")
	assert.True(t, ok)
}

func TestSetReplacesAndReindexes(t *testing.T) {
	c := New()
	require.NoError(t, c.Set("k", &Entry{Fragment: "old", Tags: []string{"cat.old"}}))
	require.NoError(t, c.Set("k", &Entry{Fragment: "new", Tags: []string{"cat.new"}}))

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 0, c.InvalidateTags("cat.old"))
	assert.Equal(t, 1, c.InvalidateTags("cat.new"))
}

func TestPurge(t *testing.T) {
	c := New()
	require.NoError(t, c.Set("a", &Entry{Fragment: "a", Tags: []string{"t"}}))
	require.NoError(t, c.Set("b", &Entry{Fragment: "b"}))

	c.Purge()
	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(WithMetrics(reg))

	c.Get("missing")
	require.NoError(t, c.Set("k", &Entry{Fragment: "x"}))
	c.Get("k")

	assert.Equal(t, float64(1), testutil.ToFloat64(c.metrics.hits))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.metrics.misses))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.metrics.sets))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.metrics.size))
}
