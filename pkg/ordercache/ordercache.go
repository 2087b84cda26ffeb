package ordercache

import (
	"sync"

	"github.com/gammazero/deque"
)

// OrderCacher is the cache surface consumers depend on.
type OrderCacher interface {
	AddOrder(order *Order) error
	CancelOrder(orderID string)
	CancelOrdersForUser(user string)
	CancelOrdersForSecIDWithMinimumQty(securityID string, minQty uint64)
	MatchingSizeForSecurity(securityID string) uint64
	AllOrders() []*Order
}

// Cache holds every order ever added, in insertion order. Cancellation is a
// soft delete: records stay in the collection and keep occupying their id.
// One mutex guards the whole collection, so the operations below are
// mutually exclusive with each other.
type Cache struct {
	mu     sync.Mutex
	orders []*Order
	byID   map[string]*Order
}

func NewCache() *Cache {
	return &Cache{
		byID: make(map[string]*Order),
	}
}

// AddOrder appends the order to the cache. The cache stores its own copy,
// so the caller's value cannot alias a cached record. Validation happens
// before any mutation.
func (c *Cache) AddOrder(order *Order) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byID[order.orderID]; ok {
		return ErrDuplicateOrderID
	}
	if order.side != SideBuy && order.side != SideSell {
		return ErrInvalidSide
	}

	o := order.clone()
	c.orders = append(c.orders, o)
	c.byID[o.orderID] = o
	return nil
}

// CancelOrder cancels the order with this id. No-op if the id is unknown.
func (c *Cache) CancelOrder(orderID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if o, ok := c.byID[orderID]; ok {
		o.Cancel()
	}
}

// CancelOrdersForUser cancels every order owned by this user, regardless of
// current status.
func (c *Cache) CancelOrdersForUser(user string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, o := range c.orders {
		if o.user == user {
			o.Cancel()
		}
	}
}

// CancelOrdersForSecIDWithMinimumQty cancels every order for this security
// whose original qty is at least minQty. Remaining qty does not matter here.
func (c *Cache) CancelOrdersForSecIDWithMinimumQty(securityID string, minQty uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, o := range c.orders {
		if o.securityID == securityID && o.qty >= minQty {
			o.Cancel()
		}
	}
}

// MatchingSizeForSecurity returns the total qty that can match for the
// security id.
//
// The scan is a single greedy pass in insertion order. Each active candidate
// is matched against the waiting set, oldest first; a waiting order matches
// when it is still active, on the opposite side and from a different
// company. Matched qty is min of the two remainders, and a candidate with
// qty left over joins the waiting set itself. The pass works on private
// copies throughout, so stored records never change and repeated calls
// return the same value.
func (c *Cache) MatchingSizeForSecurity(securityID string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var waiting deque.Deque[*Order]
	var total uint64

	for _, o := range c.orders {
		if o.securityID != securityID || o.Status() != StatusActive {
			continue
		}

		current := o.clone()

		for i := 0; i < waiting.Len(); i++ {
			w := waiting.At(i)
			if w.Status() != StatusActive || w.side == current.side || w.company == current.company {
				continue
			}

			matchQty := min(w.QtyLeft(), current.QtyLeft())
			// both sides are active with enough remainder, the increases
			// cannot fail
			_ = w.IncreaseQtyMatched(matchQty)
			_ = current.IncreaseQtyMatched(matchQty)
			total += matchQty

			if current.QtyLeft() == 0 {
				break
			}
		}

		if current.QtyLeft() > 0 {
			waiting.PushBack(current)
		}
	}

	return total
}

// AllOrders returns a snapshot of every order in insertion order, including
// cancelled and fulfilled ones.
func (c *Cache) AllOrders() []*Order {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := make([]*Order, len(c.orders))
	for i, o := range c.orders {
		snapshot[i] = o.clone()
	}
	return snapshot
}
