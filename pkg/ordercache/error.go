package ordercache

import "errors"

var (
	ErrDuplicateOrderID = errors.New("order id already exists")
	ErrInvalidSide      = errors.New("order side must be Buy or Sell")
	ErrOrderNotActive   = errors.New("qty increase can only be made on an active order")
	ErrQtyOverflow      = errors.New("cannot match order qty beyond its starting qty")
)
