package domain

// Product is a catalog item as returned by the remote product API.
// Products are immutable snapshots; nothing in this codebase mutates a
// Product's own fields after it has been decoded.
type Product struct {
	ID                   int        `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description,omitempty"`
	Category             string     `json:"category,omitempty"`
	Price                float64    `json:"price"`
	DiscountPercentage   float64    `json:"discountPercentage,omitempty"`
	Rating               float64    `json:"rating,omitempty"`
	Stock                int        `json:"stock,omitempty"`
	Tags                 []string   `json:"tags,omitempty"`
	Brand                string     `json:"brand,omitempty"`
	SKU                  string     `json:"sku,omitempty"`
	Weight               float64    `json:"weight,omitempty"`
	Dimensions           Dimensions `json:"dimensions,omitzero"`
	WarrantyInformation  string     `json:"warrantyInformation,omitempty"`
	ShippingInformation  string     `json:"shippingInformation,omitempty"`
	AvailabilityStatus   string     `json:"availabilityStatus,omitempty"`
	Reviews              []Review   `json:"reviews,omitempty"`
	ReturnPolicy         string     `json:"returnPolicy,omitempty"`
	MinimumOrderQuantity int        `json:"minimumOrderQuantity,omitempty"`
	Meta                 Meta       `json:"meta,omitzero"`
	Thumbnail            string     `json:"thumbnail,omitempty"`
	Images               []string   `json:"images,omitempty"`
}

type Review struct {
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	Date          string `json:"date"`
	ReviewerName  string `json:"reviewerName"`
	ReviewerEmail string `json:"reviewerEmail"`
}

type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

type Meta struct {
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	Barcode   string `json:"barcode"`
	QRCode    string `json:"qrCode"`
}

// ProductPage is the paginated envelope the remote API wraps product
// listings in.
type ProductPage struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}
