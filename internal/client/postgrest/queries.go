package postgrest

import (
	"context"
	"net/url"

	"github.com/orwel/orwel-cli/internal/client/models"
)

// LegislationByTags returns the newest bills carrying any of the given tags.
func (c *Client) LegislationByTags(ctx context.Context, tags []string) ([]models.Legislation, error) {
	rows, err := byTagIDs[legislationRow](ctx, c, "legislation", "date_introduced.desc", tags)
	if err != nil {
		return nil, err
	}
	out := make([]models.Legislation, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out, nil
}

// CommitteesByTags returns committees carrying any of the given tags.
func (c *Client) CommitteesByTags(ctx context.Context, tags []string) ([]models.Committee, error) {
	rows, err := byTagIDs[committeeRow](ctx, c, "committees", "", tags)
	if err != nil {
		return nil, err
	}
	out := make([]models.Committee, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out, nil
}

// NominationsByTags returns the newest nominations carrying any of the given
// tags.
func (c *Client) NominationsByTags(ctx context.Context, tags []string) ([]models.Nomination, error) {
	rows, err := byTagIDs[nominationRow](ctx, c, "nominations", "date_received.desc", tags)
	if err != nil {
		return nil, err
	}
	out := make([]models.Nomination, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out, nil
}

// TreatiesByTags returns the newest treaties carrying any of the given tags.
func (c *Client) TreatiesByTags(ctx context.Context, tags []string) ([]models.Treaty, error) {
	rows, err := byTagIDs[treatyRow](ctx, c, "treaties", "transmission_date.desc", tags)
	if err != nil {
		return nil, err
	}
	out := make([]models.Treaty, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out, nil
}

// ResearchReportsByTags returns the newest research reports carrying any of
// the given tags.
func (c *Client) ResearchReportsByTags(ctx context.Context, tags []string) ([]models.ResearchReport, error) {
	rows, err := byTagIDs[reportRow](ctx, c, "research_reports", "date_published.desc", tags)
	if err != nil {
		return nil, err
	}
	out := make([]models.ResearchReport, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out, nil
}

// HearingsByTags returns committee materials for the given tags. Materials
// are not tagged directly, so the query pivots through the entities that are:
// committees first, and only when no committee matches, legislation. A
// committee match always wins, even if it yields zero materials.
func (c *Client) HearingsByTags(ctx context.Context, tags []string) ([]models.CommitteeMaterial, error) {
	committees, err := c.CommitteesByTags(ctx, tags)
	if err != nil {
		return nil, err
	}
	if len(committees) > 0 {
		ids := make([]int64, 0, len(committees))
		for _, com := range committees {
			ids = append(ids, com.ComID)
		}
		return c.materialsBy(ctx, "com_id", ids)
	}
	return c.hearingsViaLegislation(ctx, tags)
}

// hearingsViaLegislation pivots through tagged bills when no tagged committee
// exists.
func (c *Client) hearingsViaLegislation(ctx context.Context, tags []string) ([]models.CommitteeMaterial, error) {
	legs, err := c.LegislationByTags(ctx, tags)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(legs))
	for _, leg := range legs {
		ids = append(ids, leg.LegID)
	}
	if len(ids) == 0 {
		return []models.CommitteeMaterial{}, nil
	}
	return c.materialsBy(ctx, "leg_id", ids)
}

func (c *Client) materialsBy(ctx context.Context, column string, ids []int64) ([]models.CommitteeMaterial, error) {
	params := url.Values{}
	params.Set(column, inInts(ids))
	params.Set("order", "event_date.desc")
	params.Set("limit", queryLimit)
	params.Set("select", "*")

	var rows []materialRow
	if err := c.get(ctx, "committee_materials", params, &rows); err != nil {
		return nil, err
	}
	out := make([]models.CommitteeMaterial, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out, nil
}
