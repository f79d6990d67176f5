package cli

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/orwel/orwel-cli/internal/client/models"
	"github.com/orwel/orwel-cli/internal/shared"
)

// Feed renders the tag-filtered update feed. Each content kind resolves
// independently on its own goroutine, so one slow source never blocks the
// whole feed.
func (a *App) Feed(ctx context.Context) error {
	tags, err := a.content.UserTags(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotLoggedIn) {
			printlnFn("Log in first to see your feed")
		} else {
			printlnFn("error:", err.Error())
		}
		return err
	}
	if len(tags) == 0 {
		printlnFn("No interest tags set; use 'settags' first")
		return nil
	}

	kinds := models.ContentKinds()
	results := make([][]models.ContentItem, len(kinds))

	var wg sync.WaitGroup
	for i, kind := range kinds {
		wg.Add(1)
		go func(i int, kind models.ContentKind) {
			defer wg.Done()
			results[i] = a.content.ByTags(ctx, kind, tags)
		}(i, kind)
	}
	wg.Wait()

	for i, kind := range kinds {
		printlnFn(fmt.Sprintf("== %s (%d) ==", kind, len(results[i])))
		for _, item := range results[i] {
			line := " - " + item.Title()
			if d := item.Date(); !d.IsZero() {
				line += " (" + d.Format("2006-01-02") + ")"
			}
			printlnFn(line)
		}
	}
	return nil
}
