package domain

// CartItem is a product line in the cart. Quantity is always >= 1 for an
// item present in the cart; Selected controls inclusion in the checkout
// total. The product id doubles as the line's identity: the cart holds at
// most one CartItem per product.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Selected bool    `json:"selected"`
}
