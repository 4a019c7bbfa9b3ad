package steadylog

import "time"

// DefaultWallLayout is the layout WallClock uses when none is given.
var DefaultWallLayout = time.TimeOnly

// WallClock stamps records with formatted wall-clock time. Layouts with
// second resolution are formatted once per second by a background cache, so
// Now only loads a string.
type WallClock struct {
	layout    string
	utc       bool
	cache     *timeCache
	formatter func(time.Time) string
	now       func() time.Time
}

// NewWallClock returns a wall clock rendering with layout (DefaultWallLayout
// when empty), in UTC when utc is set. Call Close to stop the background
// cache once the clock and all its duplicates are no longer used.
func NewWallClock(layout string, utc bool) *WallClock {
	if layout == "" {
		layout = DefaultWallLayout
	}
	c := &WallClock{
		layout:    layout,
		utc:       utc,
		formatter: formatterForLayout(layout),
		now:       time.Now,
	}
	if isCacheableLayout(layout) {
		c.cache = newTimeCache(layout, utc, c.formatter)
	}
	return c
}

func (c *WallClock) Now() Timestamp {
	if c == nil {
		return Timestamp{}
	}
	if c.cache != nil {
		return Text(c.cache.Current())
	}
	now := c.now()
	if c.utc {
		now = now.UTC()
	}
	if c.formatter != nil {
		return Text(c.formatter(now))
	}
	return Text(now.Format(c.layout))
}

// Duplicate returns a clock sharing the read-only cache of c.
func (c *WallClock) Duplicate() *WallClock {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

// Layout returns the time layout in use.
func (c *WallClock) Layout() string {
	if c == nil {
		return ""
	}
	return c.layout
}

// Close stops the background cache. Duplicates share the cache and stop
// with it; their Now keeps returning the last cached value.
func (c *WallClock) Close() {
	if c == nil {
		return
	}
	c.cache.Close()
}
