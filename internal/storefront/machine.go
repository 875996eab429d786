package storefront

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"

	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/messaging"
)

var (
	ErrInvalidTransition = errors.New("action not allowed on current screen")
	ErrNoSelection       = errors.New("no painting selected")
	ErrEmptyCart         = errors.New("cart is empty")
)

type MachineConfig struct {
	// OrderNumber receives the order message.
	OrderNumber string
	// OperatorNumber receives the custom image notice.
	OperatorNumber string
	// NotifyDelay separates the operator notice from the order link.
	NotifyDelay time.Duration
	Linker      messaging.Linker
}

// Machine holds the transition rules. It keeps no state of its own.
type Machine struct {
	cfg   MachineConfig
	newID func() string
	now   func() time.Time
}

type MachineOption func(*Machine)

func WithIDGenerator(fn func() string) MachineOption {
	return func(m *Machine) { m.newID = fn }
}

func WithClock(fn func() time.Time) MachineOption {
	return func(m *Machine) { m.now = fn }
}

func NewMachine(cfg MachineConfig, opts ...MachineOption) *Machine {
	m := &Machine{
		cfg:   cfg,
		newID: func() string { return uuid.Must(uuid.NewV4()).String() },
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func invalidTransition(a Action, s Screen) error {
	return fmt.Errorf("%w: %s on %s", ErrInvalidTransition, a.Name(), s)
}

// Reduce applies a to s. On error s is returned as is. The links are the
// deep links the caller has to open, in order.
func (m *Machine) Reduce(s State, a Action) (State, []messaging.Link, error) {
	if !allowedActions[a.Name()][s.Screen] {
		return s, nil, invalidTransition(a, s.Screen)
	}

	next := s.clone()

	switch a := a.(type) {
	case CompleteSplash:
		next.Screen = ScreenHome

	case Navigate:
		if !navigateTargets[s.Screen][a.To] {
			return s, nil, fmt.Errorf("%w: navigate from %s to %s", ErrInvalidTransition, s.Screen, a.To)
		}
		next.Screen = a.To

	case Back:
		target, ok := backTarget(s)
		if !ok {
			return s, nil, invalidTransition(a, s.Screen)
		}
		next.Screen = target

	case ReturnHome:
		next.Screen = ScreenHome

	case SelectCatalogItem:
		p := a.Painting
		next.Selected = &p
		next.Screen = ScreenDetails

	case ProceedFromDetails:
		if s.Selected == nil {
			return s, nil, ErrNoSelection
		}
		next.Pending = &OrderLine{
			Painting: next.Selected,
			Size:     a.Size,
			Frame:    a.Frame,
			Price:    a.Price,
		}
		next.Screen = ScreenCustomer

	case AddToCart:
		if s.Selected == nil {
			return s, nil, ErrNoSelection
		}
		p := *s.Selected
		next.Cart = append(next.Cart, OrderLine{
			ID:       m.newID(),
			Painting: &p,
			Size:     a.Size,
			Frame:    a.Frame,
			Price:    a.Price,
			Quantity: 1,
		})
		next.Screen = ScreenCart

	case ProceedFromCustom:
		next.CustomImage = a.Image
		next.Pending = &OrderLine{
			CustomImage: a.Image,
			Size:        a.Size,
			Frame:       a.Frame,
			Price:       a.Price,
		}
		next.Screen = ScreenCustomer

	case RemoveFromCart:
		if a.Position >= 0 && a.Position < len(next.Cart) {
			next.Cart = append(next.Cart[:a.Position], next.Cart[a.Position+1:]...)
		}

	case ProceedFromCart:
		if len(s.Cart) == 0 {
			return s, nil, ErrEmptyCart
		}
		next.Screen = ScreenCustomer

	case SubmitCustomerDetails:
		items := s.OrderItems()
		if len(items) == 0 {
			return s, nil, ErrEmptyCart
		}
		links := m.submissionLinks(a.Details, items)
		next = State{Screen: ScreenSuccess, Cart: []OrderLine{}}
		return next, links, nil

	default:
		return s, nil, fmt.Errorf("storefront: unsupported action %T", a)
	}

	return next, nil, nil
}

func (m *Machine) submissionLinks(d CustomerDetails, items []OrderLine) []messaging.Link {
	order := ComposeOrderMessage(d, items)
	links := []messaging.Link{
		{URL: m.cfg.Linker.To(m.cfg.OrderNumber, order.Text)},
	}

	if order.HasCustomImage {
		notice := ComposeImageNotice(d, m.now().UnixMilli())
		links = append(links, messaging.Link{
			URL:   m.cfg.Linker.To(m.cfg.OperatorNumber, notice),
			Delay: m.cfg.NotifyDelay,
		})
	}

	return links
}
