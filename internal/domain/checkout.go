package domain

// CheckoutResult reports the outcome of a single checkout call.
// Change is 0.00 whenever the checkout did not go through. ReceiptID
// is set only on success.
type CheckoutResult struct {
	Success   bool
	Message   string
	Change    Money
	ReceiptID string
}

// CartLine is one grouped row of a cart summary: a product name, how
// many units of it the cart holds, and the extended cost.
type CartLine struct {
	Name     string
	Quantity int
	Cost     Money
}
