package client

import (
	"context"
	"errors"
	"sync"

	"github.com/samber/lo"

	"color-chooser/internal/colors"
)

// ErrSuperseded is returned by Select when a later selection started
// before this one's response arrived; the response was discarded.
var ErrSuperseded = errors.New("selection superseded")

// ErrNoHex is returned when a lookup answered without a usable hex code.
var ErrNoHex = errors.New("response carried no valid hex")

// Fetcher is the part of the lookup service the Chooser needs.
type Fetcher interface {
	List(ctx context.Context) ([]colors.Record, error)
	Get(ctx context.Context, name string) (colors.Record, error)
}

var _ Fetcher = (*Client)(nil)

// Chooser is the display model of the color page. It holds one state
// variable, the display color, which starts at colors.DefaultHex and
// changes only after a successful initial list or a successful lookup for
// the most recent selection. Every failure leaves it untouched.
type Chooser struct {
	api Fetcher

	mu       sync.Mutex
	current  string
	records  []colors.Record
	ready    bool
	gen      uint64
	cancel   context.CancelFunc
	cache    map[string]colors.Record
	onChange func(hex string)
}

// ChooserOption configures a Chooser.
type ChooserOption func(*Chooser)

// WithCache remembers successful lookups so repeated selections of the
// same name skip the network.
func WithCache() ChooserOption {
	return func(c *Chooser) { c.cache = make(map[string]colors.Record) }
}

// OnChange registers a callback fired, outside the lock, after each
// display color transition.
func OnChange(fn func(hex string)) ChooserOption {
	return func(c *Chooser) { c.onChange = fn }
}

// NewChooser returns a Chooser in its initial state.
func NewChooser(api Fetcher, opts ...ChooserOption) *Chooser {
	c := &Chooser{
		api:     api,
		current: colors.DefaultHex,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Current returns the display color.
func (c *Chooser) Current() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Ready reports whether a non-empty color list has been loaded. Until then
// a page shows its loading placeholder.
func (c *Chooser) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

// Colors returns the loaded records, one per control.
func (c *Chooser) Colors() []colors.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]colors.Record(nil), c.records...)
}

// Names returns the control names in list order.
func (c *Chooser) Names() []string {
	return lo.Map(c.Colors(), func(r colors.Record, _ int) string { return r.Name })
}

// Load issues the single list request. An error or an empty list leaves
// the Chooser not ready and the display color unchanged; there is no retry
// here beyond what the Fetcher itself does. The first record's color is
// applied only if no Select started since Load was called.
func (c *Chooser) Load(ctx context.Context) error {
	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()

	records, err := c.api.List(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	c.mu.Lock()
	c.records = append([]colors.Record(nil), records...)
	c.ready = true
	changed := false
	// a selection made while the list was in flight keeps its color
	if hex, err := colors.NormalizeHex(records[0].Hex); err == nil && gen == c.gen {
		changed = c.apply(hex)
	}
	hex := c.current
	c.mu.Unlock()

	if changed {
		c.notify(hex)
	}
	return nil
}

// Select looks up name and, if this is still the latest selection when the
// answer arrives, applies its hex. Starting a new selection cancels the
// request of the previous one.
func (c *Chooser) Select(ctx context.Context, name string) (colors.Record, error) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	if c.cancel != nil {
		c.cancel()
	}
	if rec, ok := c.cache[name]; ok {
		c.cancel = nil
		changed := c.apply(rec.Hex)
		c.mu.Unlock()
		if changed {
			c.notify(rec.Hex)
		}
		return rec, nil
	}
	reqCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.mu.Unlock()

	rec, err := c.api.Get(reqCtx, name)

	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return colors.Record{}, ErrSuperseded
	}
	c.cancel = nil
	cancel()

	if err != nil {
		c.mu.Unlock()
		return colors.Record{}, err
	}
	hex, herr := colors.NormalizeHex(rec.Hex)
	if herr != nil {
		c.mu.Unlock()
		return colors.Record{}, ErrNoHex
	}
	rec.Hex = hex
	if c.cache != nil {
		c.cache[name] = rec
	}
	changed := c.apply(hex)
	c.mu.Unlock()

	if changed {
		c.notify(hex)
	}
	return rec, nil
}

// apply sets the display color; caller holds mu.
func (c *Chooser) apply(hex string) bool {
	if hex == c.current {
		return false
	}
	c.current = hex
	return true
}

func (c *Chooser) notify(hex string) {
	if c.onChange != nil {
		c.onChange(hex)
	}
}
