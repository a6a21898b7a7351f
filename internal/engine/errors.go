package engine

import "errors"

var (
	ErrInvalidProductID  = errors.New("invalid product id")
	ErrOutOfStock        = errors.New("product is out of stock")
	ErrStockExceeded     = errors.New("entire available stock already selected")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrNonPositiveAmount = errors.New("amount must be positive")
)
