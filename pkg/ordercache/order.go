package ordercache

type Side string

const (
	SideBuy  Side = "Buy"
	SideSell Side = "Sell"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusFulfilled Status = "fulfilled"
)

// Order is a single resting order. Identity fields are fixed at
// construction; only the cancelled flag and the matched quantity change
// afterwards, and the matched quantity only through IncreaseQtyMatched.
type Order struct {
	orderID    string // unique order id
	securityID string // security identifier
	side       Side
	qty        uint64 // original requested qty
	user       string // user who owns this order
	company    string // company for user

	cancelled  bool
	qtyMatched uint64 // qty already matched, never exceeds qty
}

func NewOrder(orderID, securityID string, side Side, qty uint64, user, company string) *Order {
	return &Order{
		orderID:    orderID,
		securityID: securityID,
		side:       side,
		qty:        qty,
		user:       user,
		company:    company,
	}
}

func (o *Order) OrderID() string    { return o.orderID }
func (o *Order) SecurityID() string { return o.securityID }
func (o *Order) Side() Side         { return o.side }
func (o *Order) Qty() uint64        { return o.qty }
func (o *Order) User() string       { return o.user }
func (o *Order) Company() string    { return o.company }

func (o *Order) QtyLeft() uint64 {
	return o.qty - o.qtyMatched
}

// Status derives the lifecycle state; fulfilled takes precedence over
// cancelled.
func (o *Order) Status() Status {
	if o.qtyMatched == o.qty {
		return StatusFulfilled
	}
	if o.cancelled {
		return StatusCancelled
	}
	return StatusActive
}

// Cancel marks the order cancelled. Idempotent; the flag is never cleared.
func (o *Order) Cancel() {
	o.cancelled = true
}

// IncreaseQtyMatched adds delta to the matched quantity. Only active orders
// accept increases, and an increase can never push qtyMatched past qty.
func (o *Order) IncreaseQtyMatched(delta uint64) error {
	if o.Status() != StatusActive {
		return ErrOrderNotActive
	}
	if o.qtyMatched+delta > o.qty {
		return ErrQtyOverflow
	}

	o.qtyMatched += delta
	return nil
}

func (o *Order) clone() *Order {
	c := *o
	return &c
}
