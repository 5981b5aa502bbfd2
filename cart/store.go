// Package cart owns the session cart: an ordered set of lines keyed by
// (product id, variant key), persisted per user so it survives reloads.
package cart

import (
	"log"
	"sync"
	"time"

	"github.com/sonmartinn/125SaleIphone-FE/models"
	"github.com/sonmartinn/125SaleIphone-FE/pricing"
)

// Line is one cart entry. Product is the normalized catalog snapshot taken
// when the line was added; the variant key records the user's selection but
// does not own the variant.
type Line struct {
	Product    models.Product `json:"product"`
	VariantKey string         `json:"variant_key,omitempty"`
	Quantity   int            `json:"quantity"`
	AddedAt    time.Time      `json:"added_at"`
}

// Totals is derived on every read, never stored, so price changes in the
// underlying product data show up immediately.
type Totals struct {
	TotalItems int     `json:"total_items"`
	TotalPrice float64 `json:"total_price"`
}

// Persister saves and loads a user's lines. Implementations must tolerate a
// user with no saved cart by returning an empty slice.
type Persister interface {
	Load(userID string) ([]Line, error)
	Save(userID string, lines []Line) error
}

// Store is the single source of truth for one user's cart. All mutations go
// through it; rendering surfaces only read. A nil persister keeps the cart
// memory-only.
type Store struct {
	mu        sync.Mutex
	userID    string
	lines     []Line
	persister Persister
	subs      map[int]func([]Line)
	nextSub   int
}

func NewStore(userID string, p Persister) *Store {
	s := &Store{userID: userID, persister: p, subs: make(map[int]func([]Line))}
	if p != nil {
		lines, err := p.Load(userID)
		if err != nil {
			log.Printf("cart: load for user %s failed: %v", userID, err)
		} else {
			s.lines = lines
		}
	}
	return s
}

// AddItem inserts or merges a line for (product.ID, variantKey) and returns
// the resulting line. Quantities below 1 count as 1. The merged quantity is
// capped at the resolved stock when stock imposes a bound.
func (s *Store) AddItem(product models.Product, variantKey string, quantity int) Line {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == product.ID && s.lines[i].VariantKey == variantKey {
			s.lines[i].Product = product // refresh snapshot
			s.lines[i].Quantity = capQuantity(product, variantKey, s.lines[i].Quantity+quantity)
			line := s.lines[i]
			s.flushLocked()
			return line
		}
	}

	line := Line{
		Product:    product,
		VariantKey: variantKey,
		Quantity:   capQuantity(product, variantKey, quantity),
		AddedAt:    time.Now(),
	}
	s.lines = append(s.lines, line)
	s.flushLocked()
	return line
}

// UpdateQuantity sets the quantity of an existing line; a quantity below 1
// removes the line. Unknown lines are a no-op.
func (s *Store) UpdateQuantity(productID, variantKey string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID != productID || s.lines[i].VariantKey != variantKey {
			continue
		}
		if quantity < 1 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		} else {
			s.lines[i].Quantity = capQuantity(s.lines[i].Product, variantKey, quantity)
		}
		s.flushLocked()
		return
	}
}

// RemoveItem drops the matching line if present.
func (s *Store) RemoveItem(productID, variantKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == productID && s.lines[i].VariantKey == variantKey {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.flushLocked()
			return
		}
	}
}

// Clear empties the cart. Checkout calls this exactly once, after the order
// is confirmed.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.lines) == 0 {
		return
	}
	s.lines = nil
	s.flushLocked()
}

// Items returns a copy of the current lines in insertion order.
func (s *Store) Items() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Line(nil), s.lines...)
}

// ComputeTotals sums quantity and resolved price over all lines. Prices are
// resolved through pricing on every call.
func (s *Store) ComputeTotals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TotalsOf(s.lines)
}

// TotalsOf derives totals for a line snapshot. Subscribers use this instead
// of calling back into the store: the notification runs under the store's
// lock.
func TotalsOf(lines []Line) Totals {
	var t Totals
	for _, line := range lines {
		r := pricing.Resolve(line.Product, line.VariantKey)
		t.TotalItems += line.Quantity
		t.TotalPrice += r.UnitPrice * float64(line.Quantity)
	}
	return t
}

// Subscribe registers fn to run after every mutation with a snapshot of the
// lines. The returned function cancels the subscription.
func (s *Store) Subscribe(fn func([]Line)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// flushLocked persists and notifies. Persistence failure is logged, not
// surfaced: the in-memory cart stays authoritative for the session.
func (s *Store) flushLocked() {
	snapshot := append([]Line(nil), s.lines...)
	if s.persister != nil {
		if err := s.persister.Save(s.userID, snapshot); err != nil {
			log.Printf("cart: save for user %s failed: %v", s.userID, err)
		}
	}
	for _, fn := range s.subs {
		fn(snapshot)
	}
}

func capQuantity(product models.Product, variantKey string, quantity int) int {
	if max, capped := pricing.Resolve(product, variantKey).MaxQuantity(); capped && quantity > max {
		return max
	}
	return quantity
}

// Manager hands out one Store per user, loading from the persister on first
// use and caching for the rest of the process lifetime.
type Manager struct {
	mu        sync.Mutex
	stores    map[string]*Store
	persister Persister
}

func NewManager(p Persister) *Manager {
	return &Manager{stores: make(map[string]*Store), persister: p}
}

func (m *Manager) ForUser(userID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.stores[userID]; ok {
		return s
	}
	s := NewStore(userID, m.persister)
	m.stores[userID] = s
	return s
}
