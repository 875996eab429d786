package catalog

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrUnknownSize  = errors.New("unknown size option")
	ErrUnknownFrame = errors.New("unknown frame option")
)

type SizeOption struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Dimensions      string  `json:"dimensions"`
	PriceMultiplier float64 `json:"price_multiplier"`
}

type FrameOption struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}

var sizeOptions = []SizeOption{
	{ID: "small", Name: "Small", Dimensions: `12" x 16"`, PriceMultiplier: 1},
	{ID: "medium", Name: "Medium", Dimensions: `18" x 24"`, PriceMultiplier: 1.5},
	{ID: "large", Name: "Large", Dimensions: `24" x 36"`, PriceMultiplier: 2},
}

var frameOptions = []FrameOption{
	{ID: "royal-gold", Name: "Royal Gold", Color: "#D4AF37"},
	{ID: "matte-black", Name: "Matte Black", Color: "#1a1a1a"},
	{ID: "premium-wood", Name: "Premium Wood", Color: "#8B4513"},
	{ID: "minimal-white", Name: "Minimal White", Color: "#f5f5f5"},
}

var categories = []Category{
	{ID: "abstract", Name: "Abstract", Icon: "🎨", Count: 24},
	{ID: "nature", Name: "Nature", Icon: "🌿", Count: 32},
	{ID: "landscape", Name: "Landscape", Icon: "🏔️", Count: 28},
	{ID: "modern", Name: "Modern", Icon: "🖼️", Count: 19},
	{ID: "floral", Name: "Floral", Icon: "🌸", Count: 22},
	{ID: "portrait", Name: "Portrait", Icon: "👤", Count: 15},
}

func SizeOptions() []SizeOption {
	return append([]SizeOption(nil), sizeOptions...)
}

func FrameOptions() []FrameOption {
	return append([]FrameOption(nil), frameOptions...)
}

func Categories() []Category {
	return append([]Category(nil), categories...)
}

func LookupSize(id string) (SizeOption, bool) {
	for _, s := range sizeOptions {
		if s.ID == id {
			return s, true
		}
	}
	return SizeOption{}, false
}

func LookupFrame(id string) (FrameOption, bool) {
	for _, f := range frameOptions {
		if f.ID == id {
			return f, true
		}
	}
	return FrameOption{}, false
}

// SizeLabel returns the display name of a size key, or the key itself when it
// is not a known option.
func SizeLabel(id string) string {
	if s, ok := LookupSize(id); ok {
		return s.Name
	}
	return id
}

// FrameLabel returns the display name of a frame key, or the key itself when
// it is not a known option.
func FrameLabel(id string) string {
	if f, ok := LookupFrame(id); ok {
		return f.Name
	}
	return id
}

// ComputePrice is round(base × size multiplier). The frame never changes the
// price, it is only checked for existence.
func ComputePrice(base float64, sizeID, frameID string) (int64, error) {
	size, ok := LookupSize(sizeID)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSize, sizeID)
	}
	if _, ok := LookupFrame(frameID); !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFrame, frameID)
	}
	return int64(math.Round(base * size.PriceMultiplier)), nil
}
