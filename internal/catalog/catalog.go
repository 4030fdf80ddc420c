// Package catalog provides the read-only exercise catalogue.
package catalog

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// DefaultPageSize размер страницы поиска, если limit не задан
const DefaultPageSize = 20

//go:embed exercises.yaml
var defaultSource []byte

// ErrExerciseNotFound is returned by Get for an unknown id.
var ErrExerciseNotFound = errors.New("exercise not found")

// Exercise is a catalogue entry.
type Exercise struct {
	ID        string   `yaml:"id" json:"id"`
	Name      string   `yaml:"name" json:"name"`
	Muscle    string   `yaml:"muscle" json:"muscle"`
	Equipment string   `yaml:"equipment" json:"equipment"`
	Aliases   []string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
}

type document struct {
	Exercises []Exercise `yaml:"exercises"`
}

// Repository loads the catalogue once per instance.
type Repository struct {
	logger  *slog.Logger
	catalog *Catalog
	path    string
	mu      sync.Mutex
}

// NewRepository creates a repository reading path. An empty path selects
// the embedded default catalogue.
func NewRepository(path string, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Repository{path: path, logger: logger}
}

// Initialize loads and parses the catalogue and returns a ready handle.
// Later calls return the same handle; a failed load is retried.
func (r *Repository) Initialize(ctx context.Context) (*Catalog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.catalog != nil {
		return r.catalog, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := defaultSource
	if r.path != "" {
		var err error
		data, err = os.ReadFile(r.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalogue: %w", err)
		}
	}

	c, err := Parse(data)
	if err != nil {
		return nil, err
	}

	r.logger.DebugContext(ctx, "exercise catalogue loaded", "exercises", c.Len(), "path", r.path)
	r.catalog = c
	return c, nil
}

// Catalog is an immutable, name-ordered set of exercises.
type Catalog struct {
	byID      map[string]int
	exercises []Exercise
	keys      [][]string // нормализованные ключи поиска по индексу упражнения
}

// Parse builds a catalogue from YAML.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalogue: %w", err)
	}

	exercises := doc.Exercises
	slices.SortStableFunc(exercises, func(a, b Exercise) int {
		return strings.Compare(fold(a.Name), fold(b.Name))
	})

	c := &Catalog{
		byID:      make(map[string]int, len(exercises)),
		exercises: exercises,
		keys:      make([][]string, len(exercises)),
	}
	for i, ex := range exercises {
		if ex.ID == "" || ex.Name == "" {
			return nil, fmt.Errorf("catalogue entry %d: id and name are required", i)
		}
		if _, dup := c.byID[ex.ID]; dup {
			return nil, fmt.Errorf("catalogue entry %d: duplicate id %q", i, ex.ID)
		}
		c.byID[ex.ID] = i

		keys := []string{fold(ex.ID), fold(ex.Name)}
		for _, alias := range ex.Aliases {
			keys = append(keys, fold(alias))
		}
		c.keys[i] = keys
	}

	return c, nil
}

// Len returns the number of exercises.
func (c *Catalog) Len() int {
	return len(c.exercises)
}

// Get returns the exercise with id.
func (c *Catalog) Get(id string) (Exercise, error) {
	i, ok := c.byID[id]
	if !ok {
		return Exercise{}, fmt.Errorf("%w: %q", ErrExerciseNotFound, id)
	}
	return clone(c.exercises[i]), nil
}

// Page is one page of search results.
type Page struct {
	Items  []Exercise
	Total  int // количество совпадений без учета пагинации
	Offset int
	Limit  int
}

// Search returns exercises whose id, name or alias contains query,
// ignoring case and diacritics. An empty query matches everything.
func (c *Catalog) Search(query string, offset, limit int) Page {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}

	q := fold(query)
	var matched []int
	for i, keys := range c.keys {
		if q == "" || slices.ContainsFunc(keys, func(k string) bool { return strings.Contains(k, q) }) {
			matched = append(matched, i)
		}
	}

	page := Page{Total: len(matched), Offset: offset, Limit: limit, Items: []Exercise{}}
	if offset >= len(matched) {
		return page
	}
	end := min(offset+limit, len(matched))
	for _, i := range matched[offset:end] {
		page.Items = append(page.Items, clone(c.exercises[i]))
	}
	return page
}

func clone(ex Exercise) Exercise {
	ex.Aliases = slices.Clone(ex.Aliases)
	return ex
}

// fold normalizes s for matching: diacritics are dropped and case is folded.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), cases.Fold(), norm.NFC)
	out, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return out
}
