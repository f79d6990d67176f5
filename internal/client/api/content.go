package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/orwel/orwel-cli/internal/client/models"
)

// byTags posts the tag list to /{kind}/by-tags and decodes the typed reply.
func byTags[T any](ctx context.Context, c *Client, kind models.ContentKind, tags []string) ([]T, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/"+string(kind)+"/by-tags", tags)
	if err != nil {
		return nil, err
	}

	var out []T
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LegislationByTags returns legislation matching any of the given tags.
func (c *Client) LegislationByTags(ctx context.Context, tags []string) ([]models.Legislation, error) {
	return byTags[models.Legislation](ctx, c, models.KindLegislation, tags)
}

// HearingsByTags returns committee materials matching any of the given tags.
func (c *Client) HearingsByTags(ctx context.Context, tags []string) ([]models.CommitteeMaterial, error) {
	return byTags[models.CommitteeMaterial](ctx, c, models.KindHearings, tags)
}

// NominationsByTags returns nominations matching any of the given tags.
func (c *Client) NominationsByTags(ctx context.Context, tags []string) ([]models.Nomination, error) {
	return byTags[models.Nomination](ctx, c, models.KindNominations, tags)
}

// CommitteesByTags returns committees matching any of the given tags.
func (c *Client) CommitteesByTags(ctx context.Context, tags []string) ([]models.Committee, error) {
	return byTags[models.Committee](ctx, c, models.KindCommittees, tags)
}

// TreatiesByTags returns treaties matching any of the given tags.
func (c *Client) TreatiesByTags(ctx context.Context, tags []string) ([]models.Treaty, error) {
	return byTags[models.Treaty](ctx, c, models.KindTreaties, tags)
}

// ResearchReportsByTags returns research reports matching any of the given tags.
func (c *Client) ResearchReportsByTags(ctx context.Context, tags []string) ([]models.ResearchReport, error) {
	return byTags[models.ResearchReport](ctx, c, models.KindResearchReports, tags)
}

// LegislationByID returns a single bill by its identifier.
func (c *Client) LegislationByID(ctx context.Context, id int64) (*models.Legislation, error) {
	var leg models.Legislation
	if err := c.getJSON(ctx, fmt.Sprintf("/legislation/%d", id), &leg); err != nil {
		return nil, err
	}
	return &leg, nil
}

// DashboardStats returns the aggregate counters for the dashboard view.
func (c *Client) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.getJSON(ctx, "/dashboard/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
