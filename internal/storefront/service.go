package storefront

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/catalog"
	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/messaging"
)

var ErrMissingImage = errors.New("custom image is required")

// Submission is the outcome of a submitted order.
type Submission struct {
	State State
	Links []messaging.Link
}

// Service drives shopper sessions. Prices are always derived here from the
// catalog and the size multiplier, never taken from the client.
type Service interface {
	CreateSession(ctx context.Context) (string, State, error)
	GetSession(ctx context.Context, id string) (State, error)
	CompleteSplash(ctx context.Context, id string) (State, error)
	Navigate(ctx context.Context, id string, to Screen) (State, error)
	Back(ctx context.Context, id string) (State, error)
	ReturnHome(ctx context.Context, id string) (State, error)
	SelectPainting(ctx context.Context, id, paintingID string) (State, error)
	ProceedFromDetails(ctx context.Context, id, size, frame string) (State, error)
	AddToCart(ctx context.Context, id, size, frame string) (State, error)
	RemoveFromCart(ctx context.Context, id string, position int) (State, error)
	ProceedFromCart(ctx context.Context, id string) (State, error)
	ProceedFromCustom(ctx context.Context, id, image, size, frame string) (State, error)
	SubmitCustomerDetails(ctx context.Context, id string, d CustomerDetails) (*Submission, error)
}

type service struct {
	sessions        *SessionStore
	catalog         catalog.Service
	validate        *validator.Validate
	customBasePrice float64
}

func NewService(sessions *SessionStore, catalogSvc catalog.Service, customBasePrice float64) Service {
	return &service{
		sessions:        sessions,
		catalog:         catalogSvc,
		validate:        validator.New(),
		customBasePrice: customBasePrice,
	}
}

func (s *service) CreateSession(ctx context.Context) (string, State, error) {
	id, c, err := s.sessions.Create()
	if err != nil {
		log.Error().Err(err).Msg("service: failed to create session")
		return "", State{}, err
	}
	log.Info().Str("session_id", id).Msg("service: session created")
	return id, c.State(), nil
}

func (s *service) GetSession(ctx context.Context, id string) (State, error) {
	c, err := s.sessions.Get(id)
	if err != nil {
		return State{}, err
	}
	return c.State(), nil
}

func (s *service) CompleteSplash(ctx context.Context, id string) (State, error) {
	return s.dispatch(id, CompleteSplash{})
}

func (s *service) Navigate(ctx context.Context, id string, to Screen) (State, error) {
	return s.dispatch(id, Navigate{To: to})
}

func (s *service) Back(ctx context.Context, id string) (State, error) {
	return s.dispatch(id, Back{})
}

func (s *service) ReturnHome(ctx context.Context, id string) (State, error) {
	return s.dispatch(id, ReturnHome{})
}

func (s *service) SelectPainting(ctx context.Context, id, paintingID string) (State, error) {
	c, err := s.sessions.Get(id)
	if err != nil {
		return State{}, err
	}

	p, err := s.catalog.GetPainting(ctx, paintingID)
	if err != nil {
		log.Warn().Err(err).Str("painting_id", paintingID).Msg("service: painting lookup failed")
		return c.State(), err
	}

	state, _, err := c.Dispatch(SelectCatalogItem{Painting: *p})
	return state, err
}

// selectedLinePrice prices the selected painting in the given size. It fails
// with ErrNoSelection when nothing is selected.
func selectedLinePrice(st State, size, frame string) (int64, error) {
	if st.Selected == nil {
		return 0, ErrNoSelection
	}
	return catalog.ComputePrice(st.Selected.Price, size, frame)
}

func (s *service) ProceedFromDetails(ctx context.Context, id, size, frame string) (State, error) {
	return s.apply(id, func(st State) (Action, error) {
		if st.Screen != ScreenDetails {
			return nil, invalidTransition(ProceedFromDetails{}, st.Screen)
		}
		price, err := selectedLinePrice(st, size, frame)
		if err != nil {
			return nil, err
		}
		return ProceedFromDetails{Size: size, Frame: frame, Price: price}, nil
	})
}

func (s *service) AddToCart(ctx context.Context, id, size, frame string) (State, error) {
	return s.apply(id, func(st State) (Action, error) {
		if st.Screen != ScreenDetails {
			return nil, invalidTransition(AddToCart{}, st.Screen)
		}
		price, err := selectedLinePrice(st, size, frame)
		if err != nil {
			return nil, err
		}
		return AddToCart{Size: size, Frame: frame, Price: price}, nil
	})
}

func (s *service) RemoveFromCart(ctx context.Context, id string, position int) (State, error) {
	return s.dispatch(id, RemoveFromCart{Position: position})
}

func (s *service) ProceedFromCart(ctx context.Context, id string) (State, error) {
	return s.dispatch(id, ProceedFromCart{})
}

func (s *service) ProceedFromCustom(ctx context.Context, id, image, size, frame string) (State, error) {
	if image == "" {
		return State{}, ErrMissingImage
	}
	price, err := catalog.ComputePrice(s.customBasePrice, size, frame)
	if err != nil {
		return State{}, err
	}
	return s.dispatch(id, ProceedFromCustom{Image: image, Size: size, Frame: frame, Price: price})
}

// SubmitCustomerDetails validates d before it reaches the controller. A
// rejected submission leaves the session untouched.
func (s *service) SubmitCustomerDetails(ctx context.Context, id string, d CustomerDetails) (*Submission, error) {
	c, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}

	d.Normalize()
	if err := s.validate.Struct(d); err != nil {
		return nil, fmt.Errorf("service: invalid customer details: %w", err)
	}

	state, links, err := c.SubmitCustomerDetails(d)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("session_id", id).
		Int("links", len(links)).
		Msg("service: order submitted")

	return &Submission{State: state, Links: links}, nil
}

func (s *service) dispatch(id string, a Action) (State, error) {
	c, err := s.sessions.Get(id)
	if err != nil {
		return State{}, err
	}
	state, _, err := c.Dispatch(a)
	return state, err
}

func (s *service) apply(id string, build func(State) (Action, error)) (State, error) {
	c, err := s.sessions.Get(id)
	if err != nil {
		return State{}, err
	}
	state, _, err := c.Apply(build)
	return state, err
}
