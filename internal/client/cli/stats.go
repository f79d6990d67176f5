package cli

import (
	"context"
	"fmt"
)

// Stats shows the aggregate dashboard counters.
func (a *App) Stats(ctx context.Context) error {
	stats := a.content.DashboardStats(ctx)
	if stats == nil {
		printlnFn("Dashboard stats unavailable")
		return nil
	}

	printlnFn(fmt.Sprintf("Legislation: %d (%d recent)", stats.TotalLegislation, stats.RecentLegislationCount))
	printlnFn(fmt.Sprintf("Hearings:    %d (%d recent)", stats.TotalHearings, stats.RecentHearingsCount))
	printlnFn(fmt.Sprintf("Nominations: %d", stats.TotalNominations))
	printlnFn(fmt.Sprintf("Treaties:    %d", stats.TotalTreaties))
	printlnFn(fmt.Sprintf("Committees:  %d", stats.TotalCommittees))
	return nil
}
