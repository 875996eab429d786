package storefront

import (
	"strings"

	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/catalog"
)

// OrderLine is one orderable unit: either a catalog painting or a custom
// uploaded image, configured with a size and a frame.
type OrderLine struct {
	ID          string            `json:"id,omitempty"`
	Painting    *catalog.Painting `json:"painting,omitempty"`
	CustomImage string            `json:"custom_image,omitempty"`
	Size        string            `json:"size"`
	Frame       string            `json:"frame"`
	Price       int64             `json:"price"`
	Quantity    int               `json:"quantity,omitempty"`
}

// Name is the painting name, or "Custom Painting" for uploads.
func (l OrderLine) Name() string {
	if l.Painting != nil && l.Painting.Name != "" {
		return l.Painting.Name
	}
	return "Custom Painting"
}

type CustomerDetails struct {
	FullName  string   `json:"full_name" validate:"required"`
	Phone     string   `json:"phone" validate:"required,min=10"`
	WhatsApp  string   `json:"whatsapp"`
	Address   string   `json:"address" validate:"required"`
	ZipCode   string   `json:"zip_code" validate:"required"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	City      string   `json:"city,omitempty"`
	State     string   `json:"state,omitempty"`
}

// Normalize trims surrounding whitespace from the text fields.
func (d *CustomerDetails) Normalize() {
	d.FullName = strings.TrimSpace(d.FullName)
	d.Phone = strings.TrimSpace(d.Phone)
	d.WhatsApp = strings.TrimSpace(d.WhatsApp)
	d.Address = strings.TrimSpace(d.Address)
	d.ZipCode = strings.TrimSpace(d.ZipCode)
	d.City = strings.TrimSpace(d.City)
	d.State = strings.TrimSpace(d.State)
}

// State is the whole storefront flow of one shopper.
type State struct {
	Screen      Screen            `json:"screen"`
	Cart        []OrderLine       `json:"cart"`
	Selected    *catalog.Painting `json:"selected,omitempty"`
	CustomImage string            `json:"custom_image,omitempty"`
	Pending     *OrderLine        `json:"pending_order,omitempty"`
}

func NewState() State {
	return State{Screen: ScreenSplash, Cart: []OrderLine{}}
}

// OrderItems is what a submission sends: the pending order alone when there
// is one, the whole cart otherwise. Never both.
func (s State) OrderItems() []OrderLine {
	if s.Pending != nil {
		return []OrderLine{*s.Pending}
	}
	return append([]OrderLine(nil), s.Cart...)
}

// clone copies s so that a transition never writes through to the caller's
// cart or pointers.
func (s State) clone() State {
	c := s
	c.Cart = append(make([]OrderLine, 0, len(s.Cart)), s.Cart...)
	if s.Selected != nil {
		p := *s.Selected
		c.Selected = &p
	}
	if s.Pending != nil {
		l := *s.Pending
		c.Pending = &l
	}
	return c
}
