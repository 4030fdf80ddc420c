package cli

import (
	"context"
	"strings"
)

func (c *Cli) runExercises(ctx context.Context, query string, offset, limit int) error {
	cat, err := c.catalog.Initialize(ctx)
	if err != nil {
		return err
	}

	page := cat.Search(query, offset, limit)
	if page.Total == 0 {
		c.io.Println("No exercises found.")
		return nil
	}

	if len(page.Items) == 0 {
		c.io.Printf("No exercises past offset %d (%d total).\n", page.Offset, page.Total)
		return nil
	}

	for _, ex := range page.Items {
		c.io.Printf("%-24s %s", ex.ID, ex.Name)
		if ex.Muscle != "" {
			c.io.Printf(" [%s]", ex.Muscle)
		}
		if len(ex.Aliases) > 0 {
			c.io.Printf(" (%s)", strings.Join(ex.Aliases, ", "))
		}
		c.io.Println()
	}

	shown := page.Offset + len(page.Items)
	c.io.Println()
	c.io.Printf("Showing %d-%d of %d\n", page.Offset+1, shown, page.Total)
	if shown < page.Total {
		c.io.Printf("Use --offset %d for the next page.\n", shown)
	}
	return nil
}
