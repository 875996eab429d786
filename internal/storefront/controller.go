package storefront

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/catalog"
	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/messaging"
)

// Controller owns one shopper's State and serialises every transition on it.
type Controller struct {
	mu      sync.Mutex
	machine *Machine
	state   State
}

func NewController(m *Machine) *Controller {
	return &Controller{machine: m, state: NewState()}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Dispatch reduces a against the current state and stores the result.
func (c *Controller) Dispatch(a Action) (State, []messaging.Link, error) {
	return c.Apply(func(State) (Action, error) { return a, nil })
}

// Apply builds the action from the current state and reduces it without
// releasing the lock in between.
func (c *Controller) Apply(build func(State) (Action, error)) (State, []messaging.Link, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	a, err := build(c.state.clone())
	if err != nil {
		return c.state.clone(), nil, err
	}

	next, links, err := c.machine.Reduce(c.state, a)
	if err != nil {
		log.Debug().Err(err).Str("action", a.Name()).Stringer("screen", c.state.Screen).Msg("storefront: action rejected")
		return c.state.clone(), nil, err
	}

	log.Debug().Str("action", a.Name()).Stringer("from", c.state.Screen).Stringer("to", next.Screen).Msg("storefront: transition")
	c.state = next
	return next.clone(), links, nil
}

func (c *Controller) CompleteSplash() (State, error) {
	s, _, err := c.Dispatch(CompleteSplash{})
	return s, err
}

func (c *Controller) Navigate(to Screen) (State, error) {
	s, _, err := c.Dispatch(Navigate{To: to})
	return s, err
}

func (c *Controller) Back() (State, error) {
	s, _, err := c.Dispatch(Back{})
	return s, err
}

func (c *Controller) ReturnHome() (State, error) {
	s, _, err := c.Dispatch(ReturnHome{})
	return s, err
}

func (c *Controller) SelectCatalogItem(p catalog.Painting) (State, error) {
	s, _, err := c.Dispatch(SelectCatalogItem{Painting: p})
	return s, err
}

func (c *Controller) ProceedFromDetails(size, frame string, price int64) (State, error) {
	s, _, err := c.Dispatch(ProceedFromDetails{Size: size, Frame: frame, Price: price})
	return s, err
}

func (c *Controller) AddToCart(size, frame string, price int64) (State, error) {
	s, _, err := c.Dispatch(AddToCart{Size: size, Frame: frame, Price: price})
	return s, err
}

func (c *Controller) ProceedFromCustom(image, size, frame string, price int64) (State, error) {
	s, _, err := c.Dispatch(ProceedFromCustom{Image: image, Size: size, Frame: frame, Price: price})
	return s, err
}

func (c *Controller) RemoveFromCart(position int) (State, error) {
	s, _, err := c.Dispatch(RemoveFromCart{Position: position})
	return s, err
}

func (c *Controller) ProceedFromCart() (State, error) {
	s, _, err := c.Dispatch(ProceedFromCart{})
	return s, err
}

func (c *Controller) SubmitCustomerDetails(d CustomerDetails) (State, []messaging.Link, error) {
	return c.Dispatch(SubmitCustomerDetails{Details: d})
}
