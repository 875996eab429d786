package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// FetchResult is the outcome of reading the catalog store before any
// fallback is applied.
type FetchResult struct {
	Items []Painting
	Err   error
}

// OrDefault collapses the result: an error or an empty list yields the
// fallback. The boolean reports whether the fallback was used.
func (r FetchResult) OrDefault(fallback []Painting) ([]Painting, bool) {
	if r.Err != nil || len(r.Items) == 0 {
		return fallback, true
	}
	return r.Items, false
}

// FileCache keeps the last successful catalog listing on disk so the
// fallback reflects the real catalog rather than the samples.
type FileCache struct {
	Path string
}

func NewFileCache(path string) *FileCache {
	if path == "" {
		return nil
	}
	return &FileCache{Path: path}
}

func (c *FileCache) Load() ([]Painting, error) {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog cache: %w", err)
	}

	var items []Painting
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode catalog cache %s: %w", c.Path, err)
	}
	return items, nil
}

func (c *FileCache) Save(items []Painting) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode catalog cache: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.Path), ".catalog-*")
	if err != nil {
		return fmt.Errorf("create catalog cache temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write catalog cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close catalog cache: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.Path); err != nil {
		return fmt.Errorf("replace catalog cache: %w", err)
	}
	return nil
}

// fallbackItems prefers a readable, non-empty cache over the built-in list.
func fallbackItems(cache *FileCache) []Painting {
	if cache == nil {
		return DefaultPaintings()
	}

	items, err := cache.Load()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", cache.Path).Msg("Ignoring unreadable catalog cache")
		}
		return DefaultPaintings()
	}
	if len(items) == 0 {
		return DefaultPaintings()
	}
	return items
}

func applyFilter(items []Painting, f Filter) []Painting {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]Painting, 0, len(items))
	for _, p := range items {
		if f.Category != "" && f.Category != "All" && p.Category != f.Category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Category), query) {
			continue
		}
		if f.Trending && (p.Badge == nil || *p.Badge == "") {
			continue
		}
		if f.Deals && p.OriginalPrice == nil {
			continue
		}
		out = append(out, p)
	}
	return out
}
