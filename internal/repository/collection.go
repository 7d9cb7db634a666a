package repository

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/pkg/i18n"
)

// MinQueryLen is the shortest trimmed query Search answers; shorter queries match nothing.
const MinQueryLen = 2

type Record[T any] interface {
	RecordID() int
	RecordSlug() string
	SearchFields() []i18n.Text
	WithID(id int) T
}

// Collection is an in-memory list of records behind a simulated network.
// Every method pays one round trip before touching the data.
type Collection[T Record[T]] struct {
	name   string
	net    *Network
	mu     sync.RWMutex
	items  []T
	nextID int
}

func NewCollection[T Record[T]](name string, net *Network, items []T) *Collection[T] {
	c := &Collection[T]{
		name:  name,
		net:   net,
		items: slices.Clone(items),
	}

	for _, item := range items {
		c.nextID = max(c.nextID, item.RecordID())
	}

	return c
}

func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	if err := c.roundTrip(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.items), nil
}

func (c *Collection[T]) ByID(ctx context.Context, id int) (T, error) {
	return c.find(ctx, func(item T) bool { return item.RecordID() == id })
}

func (c *Collection[T]) BySlug(ctx context.Context, slug string) (T, error) {
	if slug == "" {
		var zero T

		if err := c.roundTrip(ctx); err != nil {
			return zero, err
		}

		return zero, fmt.Errorf("%s with empty slug: %w", c.name, entity.ErrNotFound)
	}

	return c.find(ctx, func(item T) bool { return item.RecordSlug() == slug })
}

// Search returns, in stored order, the records whose search fields contain query in either
// language, ignoring case.
func (c *Collection[T]) Search(ctx context.Context, query string) ([]T, error) {
	if err := c.roundTrip(ctx); err != nil {
		return nil, err
	}

	q, ok := NormalizeQuery(query)
	if !ok {
		return []T{}, nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	found := make([]T, 0)

	for _, item := range c.items {
		if Matches(item.SearchFields(), q) {
			found = append(found, item)
		}
	}

	return found, nil
}

func (c *Collection[T]) Filter(ctx context.Context, keep func(T) bool) ([]T, error) {
	if err := c.roundTrip(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	found := make([]T, 0)

	for _, item := range c.items {
		if keep(item) {
			found = append(found, item)
		}
	}

	return found, nil
}

// Add appends item under the next free id and returns the stored value.
func (c *Collection[T]) Add(ctx context.Context, item T) (T, error) {
	if err := c.roundTrip(ctx); err != nil {
		var zero T
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	item = item.WithID(c.nextID)
	c.items = append(c.items, item)

	return item, nil
}

// Update applies mutate to the record with id and returns the new value. The id itself cannot change.
func (c *Collection[T]) Update(ctx context.Context, id int, mutate func(*T)) (T, error) {
	var zero T

	if err := c.roundTrip(ctx); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return zero, fmt.Errorf("%s %d: %w", c.name, id, entity.ErrNotFound)
	}

	item := c.items[i]
	mutate(&item)
	c.items[i] = item.WithID(id)

	return c.items[i], nil
}

// AddUniqueSlug is Add that fails with entity.ErrAlreadyExists when another record uses the slug.
// The check and the append happen under one lock.
func (c *Collection[T]) AddUniqueSlug(ctx context.Context, item T) (T, error) {
	var zero T

	if err := c.roundTrip(ctx); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.slugTaken(item.RecordSlug(), 0); err != nil {
		return zero, err
	}

	c.nextID++
	item = item.WithID(c.nextID)
	c.items = append(c.items, item)

	return item, nil
}

// UpdateUniqueSlug is Update that rejects a result whose slug belongs to another record.
// The record is left untouched on conflict.
func (c *Collection[T]) UpdateUniqueSlug(ctx context.Context, id int, mutate func(*T)) (T, error) {
	var zero T

	if err := c.roundTrip(ctx); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return zero, fmt.Errorf("%s %d: %w", c.name, id, entity.ErrNotFound)
	}

	item := c.items[i]
	mutate(&item)

	if err := c.slugTaken(item.RecordSlug(), id); err != nil {
		return zero, err
	}

	c.items[i] = item.WithID(id)

	return c.items[i], nil
}

func (c *Collection[T]) Delete(ctx context.Context, id int) error {
	if err := c.roundTrip(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%s %d: %w", c.name, id, entity.ErrNotFound)
	}

	c.items = slices.Delete(c.items, i, i+1)

	return nil
}

func (c *Collection[T]) Count(ctx context.Context) (int, error) {
	if err := c.roundTrip(ctx); err != nil {
		return 0, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items), nil
}

func (c *Collection[T]) find(ctx context.Context, match func(T) bool) (T, error) {
	var zero T

	if err := c.roundTrip(ctx); err != nil {
		return zero, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if match(item) {
			return item, nil
		}
	}

	return zero, fmt.Errorf("%s: %w", c.name, entity.ErrNotFound)
}

// slugTaken must be called with c.mu held.
func (c *Collection[T]) slugTaken(slug string, selfID int) error {
	if slug == "" {
		return nil
	}

	for _, item := range c.items {
		if item.RecordSlug() == slug && item.RecordID() != selfID {
			return fmt.Errorf("%s slug %q: %w", c.name, slug, entity.ErrAlreadyExists)
		}
	}

	return nil
}

func (c *Collection[T]) indexOf(id int) int {
	return slices.IndexFunc(c.items, func(item T) bool { return item.RecordID() == id })
}

func (c *Collection[T]) roundTrip(ctx context.Context) error {
	if err := c.net.RoundTrip(ctx); err != nil {
		return fmt.Errorf("%s: %w", c.name, err)
	}

	return nil
}

// NormalizeQuery trims and lower-cases a search query. It reports false when the
// query is too short to search for.
func NormalizeQuery(query string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(q) < MinQueryLen {
		return "", false
	}

	return q, true
}

// Matches reports whether any field contains the normalized query.
func Matches(fields []i18n.Text, normalized string) bool {
	for _, f := range fields {
		if f.ContainsFold(normalized) {
			return true
		}
	}

	return false
}
