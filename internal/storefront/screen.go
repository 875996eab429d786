package storefront

import "fmt"

type Screen string

const (
	ScreenSplash   Screen = "splash"
	ScreenHome     Screen = "home"
	ScreenGallery  Screen = "gallery"
	ScreenDetails  Screen = "details"
	ScreenCustom   Screen = "custom"
	ScreenCart     Screen = "cart"
	ScreenCustomer Screen = "customer"
	ScreenSuccess  Screen = "success"
)

func (s Screen) String() string {
	return string(s)
}

var screens = map[Screen]bool{
	ScreenSplash:   true,
	ScreenHome:     true,
	ScreenGallery:  true,
	ScreenDetails:  true,
	ScreenCustom:   true,
	ScreenCart:     true,
	ScreenCustomer: true,
	ScreenSuccess:  true,
}

func ParseScreen(s string) (Screen, error) {
	if !screens[Screen(s)] {
		return "", fmt.Errorf("storefront: unknown screen %q", s)
	}
	return Screen(s), nil
}

// navigateTargets lists the screens reachable by plain navigation.
var navigateTargets = map[Screen]map[Screen]bool{
	ScreenHome: {
		ScreenGallery: true,
		ScreenCustom:  true,
		ScreenCart:    true,
	},
	ScreenGallery: {
		ScreenCart: true,
	},
	ScreenDetails: {
		ScreenCart: true,
	},
}

// backTargets is fixed per screen. The customer screen is resolved from the
// state, see backTarget.
var backTargets = map[Screen]Screen{
	ScreenGallery: ScreenHome,
	ScreenDetails: ScreenGallery,
	ScreenCustom:  ScreenHome,
	ScreenCart:    ScreenHome,
}

// backTarget returns where Back leads from s. From the customer screen a
// pending order means the direct-buy flow, so back goes to details; otherwise
// the user came from the cart.
func backTarget(s State) (Screen, bool) {
	if s.Screen == ScreenCustomer {
		if s.Pending != nil {
			return ScreenDetails, true
		}
		return ScreenCart, true
	}
	target, ok := backTargets[s.Screen]
	return target, ok
}
