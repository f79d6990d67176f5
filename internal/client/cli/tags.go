package cli

import (
	"context"
	"os"
	"strings"
)

// Tags shows the current interest tags.
func (a *App) Tags(ctx context.Context) error {
	tags, err := a.content.UserTags(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	if len(tags) == 0 {
		printlnFn("No interest tags set")
		return nil
	}
	printlnFn("Tags:", strings.Join(tags, ", "))
	return nil
}

// SetTags replaces the interest tag set.
func (a *App) SetTags(ctx context.Context) error {
	tags, err := GetCommaSeparated(a.reader, "Enter interest tags (comma-separated)", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.content.SaveUserTags(ctx, tags); err != nil {
		printlnFn("Saving tags unsuccessful:", err.Error())
		return err
	}
	printlnFn("Tags saved:", strings.Join(tags, ", "))
	return nil
}
