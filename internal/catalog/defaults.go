package catalog

func ptr[T any](v T) *T { return &v }

// DefaultPaintings is the built-in sample catalog served when the database is
// unreachable, unconfigured or empty. Each call returns a fresh copy.
func DefaultPaintings() []Painting {
	return []Painting{
		{
			ID:             "1",
			Name:           "Abstract Horizon",
			Image:          "https://images.unsplash.com/photo-1541961017774-22349e4a1262?w=400&h=400&fit=crop",
			Price:          2499,
			OriginalPrice:  ptr(3499.0),
			Category:       "Abstract",
			Rating:         4.8,
			Reviews:        124,
			Badge:          ptr("Bestseller"),
			CouponCode:     ptr("SAVE10"),
			CouponDiscount: ptr(10.0),
		},
		{
			ID:             "2",
			Name:           "Ocean Serenity",
			Image:          "https://images.unsplash.com/photo-1579783902614-a3fb3927b6a5?w=400&h=400&fit=crop",
			Price:          3299,
			OriginalPrice:  ptr(4299.0),
			Category:       "Nature",
			Rating:         4.9,
			Reviews:        89,
			Badge:          ptr("Top Rated"),
			CouponCode:     ptr("OCEAN15"),
			CouponDiscount: ptr(15.0),
		},
		{
			ID:       "3",
			Name:     "Golden Sunset",
			Image:    "https://images.unsplash.com/photo-1578301978693-85fa9c0320b9?w=400&h=400&fit=crop",
			Price:    2899,
			Category: "Landscape",
			Rating:   4.7,
			Reviews:  156,
		},
		{
			ID:            "4",
			Name:          "Urban Dreams",
			Image:         "https://images.unsplash.com/photo-1549887534-1541e9326642?w=400&h=400&fit=crop",
			Price:         3499,
			OriginalPrice: ptr(4999.0),
			Category:      "Modern",
			Rating:        4.6,
			Reviews:       78,
			Badge:         ptr("30% OFF"),
		},
		{
			ID:       "5",
			Name:     "Floral Symphony",
			Image:    "https://images.unsplash.com/photo-1579783928621-7a13d66a62d1?w=400&h=400&fit=crop",
			Price:    2199,
			Category: "Floral",
			Rating:   4.5,
			Reviews:  203,
		},
		{
			ID:            "6",
			Name:          "Mountain Glory",
			Image:         "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=400&fit=crop",
			Price:         3999,
			OriginalPrice: ptr(5499.0),
			Category:      "Landscape",
			Rating:        4.9,
			Reviews:       167,
			Badge:         ptr("Premium"),
		},
		{
			ID:       "7",
			Name:     "Mystic Forest",
			Image:    "https://images.unsplash.com/photo-1502082553048-f009c37129b9?w=400&h=400&fit=crop",
			Price:    2799,
			Category: "Nature",
			Rating:   4.4,
			Reviews:  92,
		},
		{
			ID:            "8",
			Name:          "Color Burst",
			Image:         "https://images.unsplash.com/photo-1547826039-bfc35e0f1ea8?w=400&h=400&fit=crop",
			Price:         1999,
			OriginalPrice: ptr(2999.0),
			Category:      "Abstract",
			Rating:        4.3,
			Reviews:       145,
			Badge:         ptr("Sale"),
		},
	}
}
