package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
)

var (
	// ErrNotConfigured is returned by write operations when no catalog store
	// is configured.
	ErrNotConfigured   = errors.New("catalog store is not configured")
	ErrInvalidPainting = errors.New("invalid painting")
)

// invalidPaintingError keeps its own message and matches ErrInvalidPainting.
type invalidPaintingError struct {
	msg string
}

func (e invalidPaintingError) Error() string { return e.msg }
func (e invalidPaintingError) Unwrap() error { return ErrInvalidPainting }

func invalidPainting(format string, args ...any) error {
	return invalidPaintingError{msg: "service: " + fmt.Sprintf(format, args...)}
}

const defaultRating = 4.5

type Service interface {
	// ListPaintings never fails: store errors collapse to the fallback list.
	ListPaintings(ctx context.Context, f Filter) []Painting
	// GetPainting looks the id up in the same list ListPaintings serves.
	GetPainting(ctx context.Context, id string) (*Painting, error)
	// ListStored returns the store contents without any fallback.
	ListStored(ctx context.Context) ([]Painting, error)
	CreatePainting(ctx context.Context, p *Painting) (*Painting, error)
	UpdatePainting(ctx context.Context, p *Painting) (*Painting, error)
	DeletePainting(ctx context.Context, id string) error
}

type service struct {
	repo  Repository
	cache *FileCache
	newID func() (string, error)
}

// NewService builds the catalog service. repo may be nil when no database is
// configured; cache may be nil to always fall back to the built-in list.
func NewService(repo Repository, cache *FileCache) Service {
	return &service{
		repo:  repo,
		cache: cache,
		newID: func() (string, error) {
			id, err := uuid.NewV4()
			if err != nil {
				return "", err
			}
			return id.String(), nil
		},
	}
}

func (s *service) fetch(ctx context.Context) FetchResult {
	if s.repo == nil {
		return FetchResult{Err: ErrNotConfigured}
	}
	items, err := s.repo.List(ctx)
	return FetchResult{Items: items, Err: err}
}

func (s *service) load(ctx context.Context) []Painting {
	res := s.fetch(ctx)
	items, usedFallback := res.OrDefault(fallbackItems(s.cache))

	switch {
	case res.Err != nil && !errors.Is(res.Err, ErrNotConfigured):
		log.Warn().Err(res.Err).Msg("service: catalog fetch failed, using fallback paintings")
	case usedFallback:
		log.Debug().Msg("service: catalog empty or not configured, using fallback paintings")
	case s.cache != nil:
		if err := s.cache.Save(items); err != nil {
			log.Warn().Err(err).Str("path", s.cache.Path).Msg("service: failed to refresh catalog cache")
		}
	}

	return items
}

func (s *service) ListPaintings(ctx context.Context, f Filter) []Painting {
	return applyFilter(s.load(ctx), f)
}

func (s *service) GetPainting(ctx context.Context, id string) (*Painting, error) {
	for _, p := range s.load(ctx) {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *service) ListStored(ctx context.Context) ([]Painting, error) {
	if s.repo == nil {
		return nil, ErrNotConfigured
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to list stored paintings")
		return nil, fmt.Errorf("service: failed to list paintings: %w", err)
	}
	return items, nil
}

func validatePainting(p *Painting) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(p.Category)

	if p.Name == "" {
		return invalidPainting("name is required")
	}
	if p.Image == "" {
		return invalidPainting("image is required")
	}
	if p.Category == "" {
		return invalidPainting("category is required")
	}
	if p.Price <= 0 {
		return invalidPainting("price must be positive, got %v", p.Price)
	}
	if p.Reviews < 0 {
		return invalidPainting("reviews cannot be negative, got %d", p.Reviews)
	}
	if p.Rating == 0 {
		p.Rating = defaultRating
	}
	return nil
}

func (s *service) CreatePainting(ctx context.Context, p *Painting) (*Painting, error) {
	if s.repo == nil {
		return nil, ErrNotConfigured
	}
	if err := validatePainting(p); err != nil {
		return nil, err
	}

	if p.ID == "" {
		id, err := s.newID()
		if err != nil {
			log.Error().Err(err).Msg("service: failed to generate painting id")
			return nil, fmt.Errorf("service: failed to generate painting id: %w", err)
		}
		p.ID = id
	}

	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, ErrDuplicateID) {
			return nil, ErrDuplicateID
		}
		log.Error().Err(err).Str("painting_id", p.ID).Msg("service: failed to create painting in repository")
		return nil, fmt.Errorf("service: failed to create painting: %w", err)
	}

	log.Info().Str("painting_id", p.ID).Str("name", p.Name).Msg("service: painting created")
	return p, nil
}

func (s *service) UpdatePainting(ctx context.Context, p *Painting) (*Painting, error) {
	if s.repo == nil {
		return nil, ErrNotConfigured
	}
	if p.ID == "" {
		return nil, invalidPainting("id is required")
	}
	if err := validatePainting(p); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, p); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn().Str("painting_id", p.ID).Msg("service: painting not found for update")
			return nil, ErrNotFound
		}
		log.Error().Err(err).Str("painting_id", p.ID).Msg("service: failed to update painting in repository")
		return nil, fmt.Errorf("service: failed to update painting: %w", err)
	}

	log.Info().Str("painting_id", p.ID).Msg("service: painting updated")
	return p, nil
}

func (s *service) DeletePainting(ctx context.Context, id string) error {
	if s.repo == nil {
		return ErrNotConfigured
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		log.Error().Err(err).Str("painting_id", id).Msg("service: failed to delete painting in repository")
		return fmt.Errorf("service: failed to delete painting %s: %w", id, err)
	}

	log.Info().Str("painting_id", id).Msg("service: painting deleted")
	return nil
}
