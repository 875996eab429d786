package catalog

import "time"

// Painting is a sellable catalog record.
type Painting struct {
	ID             string    `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Image          string    `json:"image" db:"image"`
	Price          float64   `json:"price" db:"price"`
	OriginalPrice  *float64  `json:"original_price,omitempty" db:"original_price"`
	Category       string    `json:"category" db:"category"`
	Rating         float64   `json:"rating" db:"rating"`
	Reviews        int       `json:"reviews" db:"reviews"`
	Badge          *string   `json:"badge,omitempty" db:"badge"`
	CouponCode     *string   `json:"coupon_code,omitempty" db:"coupon_code"`
	CouponDiscount *float64  `json:"coupon_discount,omitempty" db:"coupon_discount"`
	CreatedAt      time.Time `json:"created_at,omitempty" db:"created_at"`
}

// Filter narrows a catalog listing. Zero value lists everything.
type Filter struct {
	// Category must match exactly; "" and "All" match every category.
	Category string
	// Query is a case-insensitive substring of the name or category.
	Query string
	// Trending keeps paintings that carry a badge.
	Trending bool
	// Deals keeps paintings that have an original price.
	Deals bool
}
