package storefront

import "github.com/slmdecorcoin-design/slm-paintings-backend/internal/catalog"

// Action is a shopper input fed to Machine.Reduce.
type Action interface {
	Name() string
}

type CompleteSplash struct{}

type Navigate struct {
	To Screen
}

type Back struct{}

type ReturnHome struct{}

type SelectCatalogItem struct {
	Painting catalog.Painting
}

type ProceedFromDetails struct {
	Size  string
	Frame string
	Price int64
}

type AddToCart struct {
	Size  string
	Frame string
	Price int64
}

type ProceedFromCustom struct {
	Image string
	Size  string
	Frame string
	Price int64
}

type RemoveFromCart struct {
	Position int
}

type ProceedFromCart struct{}

type SubmitCustomerDetails struct {
	Details CustomerDetails
}

func (CompleteSplash) Name() string        { return "complete_splash" }
func (Navigate) Name() string              { return "navigate" }
func (Back) Name() string                  { return "back" }
func (ReturnHome) Name() string            { return "return_home" }
func (SelectCatalogItem) Name() string     { return "select_catalog_item" }
func (ProceedFromDetails) Name() string    { return "proceed_from_details" }
func (AddToCart) Name() string             { return "add_to_cart" }
func (ProceedFromCustom) Name() string     { return "proceed_from_custom" }
func (RemoveFromCart) Name() string        { return "remove_from_cart" }
func (ProceedFromCart) Name() string       { return "proceed_from_cart" }
func (SubmitCustomerDetails) Name() string { return "submit_customer_details" }

var everyScreenButSplash = map[Screen]bool{
	ScreenHome:     true,
	ScreenGallery:  true,
	ScreenDetails:  true,
	ScreenCustom:   true,
	ScreenCart:     true,
	ScreenCustomer: true,
	ScreenSuccess:  true,
}

// allowedActions maps an action name to the screens it may be taken on.
var allowedActions = map[string]map[Screen]bool{
	"complete_splash":         {ScreenSplash: true},
	"navigate":                {ScreenHome: true, ScreenGallery: true, ScreenDetails: true},
	"back":                    {ScreenGallery: true, ScreenDetails: true, ScreenCustom: true, ScreenCart: true, ScreenCustomer: true},
	"return_home":             everyScreenButSplash,
	"select_catalog_item":     {ScreenHome: true, ScreenGallery: true},
	"proceed_from_details":    {ScreenDetails: true},
	"add_to_cart":             {ScreenDetails: true},
	"proceed_from_custom":     {ScreenCustom: true},
	"remove_from_cart":        {ScreenCart: true},
	"proceed_from_cart":       {ScreenCart: true},
	"submit_customer_details": {ScreenCustomer: true},
}
