package cli

import (
	"context"
	"strconv"
)

// Bill shows a single piece of legislation by its identifier.
func (a *App) Bill(ctx context.Context, id string) error {
	legID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		printlnFn("Usage: bill <numeric id>")
		return err
	}

	leg, err := a.content.LegislationByID(ctx, legID)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	printlnFn(leg.Title)
	if leg.RefCode != "" {
		printlnFn("Reference:", leg.RefCode)
	}
	if leg.CurrentStatus != "" {
		printlnFn("Status:   ", leg.CurrentStatus)
	}
	if !leg.DateIntroduced.IsZero() {
		printlnFn("Introduced:", leg.DateIntroduced.Format("2006-01-02"))
	}
	if leg.Summary != "" {
		printlnFn(leg.Summary)
	}
	return nil
}
