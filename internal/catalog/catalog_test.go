package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_InitializeDefault(t *testing.T) {
	repo := NewRepository("", nil)

	c, err := repo.Initialize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 20, c.Len())

	again, err := repo.Initialize(context.Background())
	require.NoError(t, err)
	assert.Same(t, c, again)
}

func TestRepository_InitializeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exercises.yaml")
	repo := NewRepository(path, nil)

	_, err := repo.Initialize(context.Background())
	require.Error(t, err)

	// Неудачная загрузка не запоминается
	data := []byte("exercises:\n  - id: burpee\n    name: Burpee\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	c, err := repo.Initialize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestRepository_InitializeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRepository("", nil).Initialize(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "bad yaml", data: "exercises: [\n"},
		{name: "missing name", data: "exercises:\n  - id: x\n"},
		{name: "duplicate id", data: "exercises:\n  - id: x\n    name: A\n  - id: x\n    name: B\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestCatalog_Get(t *testing.T) {
	c, err := NewRepository("", nil).Initialize(context.Background())
	require.NoError(t, err)

	squat, err := c.Get("squat")
	require.NoError(t, err)
	assert.Equal(t, "Back Squat", squat.Name)

	// Возвращается копия
	squat.Aliases[0] = "changed"
	again, err := c.Get("squat")
	require.NoError(t, err)
	assert.Equal(t, "squat", again.Aliases[0])

	_, err = c.Get("missing")
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}

func TestCatalog_Search(t *testing.T) {
	c, err := NewRepository("", nil).Initialize(context.Background())
	require.NoError(t, err)

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "case insensitive", query: "BENCH", wantIDs: []string{"bench-press", "incline-bench-press"}},
		{name: "diacritics ignored", query: "Squât", wantIDs: []string{"squat", "front-squat"}},
		{name: "cyrillic alias", query: "ЖИМ", wantIDs: []string{"bench-press"}},
		{name: "by id", query: "rdl", wantIDs: []string{"romanian-deadlift"}},
		{name: "no match", query: "yoga", wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := c.Search(tt.query, 0, 0)
			ids := make([]string, 0, len(page.Items))
			for _, ex := range page.Items {
				ids = append(ids, ex.ID)
			}
			assert.ElementsMatch(t, tt.wantIDs, ids)
			assert.Equal(t, len(tt.wantIDs), page.Total)
			assert.Equal(t, DefaultPageSize, page.Limit)
		})
	}
}

func TestCatalog_SearchPaging(t *testing.T) {
	c, err := NewRepository("", nil).Initialize(context.Background())
	require.NoError(t, err)

	first := c.Search("", 0, 5)
	assert.Equal(t, 20, first.Total)
	require.Len(t, first.Items, 5)

	// Упражнения упорядочены по имени
	assert.Equal(t, "Back Squat", first.Items[0].Name)

	last := c.Search("", 18, 5)
	assert.Len(t, last.Items, 2)

	beyond := c.Search("", 40, 5)
	assert.Empty(t, beyond.Items)
	assert.Equal(t, 20, beyond.Total)

	negative := c.Search("", -3, 5)
	assert.Equal(t, 0, negative.Offset)
	assert.Equal(t, first.Items, negative.Items)
}
