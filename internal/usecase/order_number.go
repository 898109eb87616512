package usecase

import (
	"fmt"
	"sync"
	"time"
)

// OrderNumberGenerator issues AZ-prefixed, millisecond-derived order
// numbers. Two checkouts in the same millisecond get consecutive values
// instead of colliding. Uniqueness is best-effort within one process,
// which is all the interactive flow needs.
type OrderNumberGenerator struct {
	mu   sync.Mutex
	last int64
}

func NewOrderNumberGenerator() *OrderNumberGenerator {
	return &OrderNumberGenerator{}
}

func (g *OrderNumberGenerator) Next(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := now.UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms

	return fmt.Sprintf("AZ%d", ms)
}
