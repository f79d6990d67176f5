package services

import (
	"context"

	"github.com/orwel/orwel-cli/internal/client/api"
	"github.com/orwel/orwel-cli/internal/client/models"
	"github.com/orwel/orwel-cli/internal/client/postgrest"
	"github.com/orwel/orwel-cli/internal/client/repositories/users"
	"github.com/orwel/orwel-cli/internal/logging"
	"github.com/orwel/orwel-cli/internal/shared"
)

// ContentService resolves content reads over the tiered sources: the direct
// PostgREST source first, then the primary backend. Failures degrade
// silently; the feed renders whatever the best reachable tier returned, and
// an empty slice when nothing is reachable. Errors never reach presentation.
type ContentService struct {
	direct  *postgrest.Client
	backend *api.Client
	session *Session
	users   users.Repository
	log     logging.Logger
}

func NewContentService(direct *postgrest.Client, backend *api.Client, session *Session, repo users.Repository, log logging.Logger) *ContentService {
	return &ContentService{
		direct:  direct,
		backend: backend,
		session: session,
		users:   repo,
		log:     log.With("component", "content"),
	}
}

// contentByTags resolves one kind's typed query over direct then backend.
func contentByTags[T any](
	ctx context.Context,
	s *ContentService,
	what string,
	tags []string,
	direct, backend func(ctx context.Context, tags []string) ([]T, error),
) []T {
	out, ok := resolve(ctx, s.log, what,
		source[[]T]{name: "direct", fn: func(ctx context.Context) ([]T, error) { return direct(ctx, tags) }},
		source[[]T]{name: "backend", fn: func(ctx context.Context) ([]T, error) { return backend(ctx, tags) }},
	)
	if !ok || out == nil {
		return []T{}
	}
	return out
}

func (s *ContentService) LegislationByTags(ctx context.Context, tags []string) []models.Legislation {
	return contentByTags(ctx, s, "legislation", tags, s.direct.LegislationByTags, s.backend.LegislationByTags)
}

func (s *ContentService) HearingsByTags(ctx context.Context, tags []string) []models.CommitteeMaterial {
	return contentByTags(ctx, s, "hearings", tags, s.direct.HearingsByTags, s.backend.HearingsByTags)
}

func (s *ContentService) NominationsByTags(ctx context.Context, tags []string) []models.Nomination {
	return contentByTags(ctx, s, "nominations", tags, s.direct.NominationsByTags, s.backend.NominationsByTags)
}

func (s *ContentService) CommitteesByTags(ctx context.Context, tags []string) []models.Committee {
	return contentByTags(ctx, s, "committees", tags, s.direct.CommitteesByTags, s.backend.CommitteesByTags)
}

func (s *ContentService) TreatiesByTags(ctx context.Context, tags []string) []models.Treaty {
	return contentByTags(ctx, s, "treaties", tags, s.direct.TreatiesByTags, s.backend.TreatiesByTags)
}

func (s *ContentService) ResearchReportsByTags(ctx context.Context, tags []string) []models.ResearchReport {
	return contentByTags(ctx, s, "research-reports", tags, s.direct.ResearchReportsByTags, s.backend.ResearchReportsByTags)
}

// ByTags resolves any content kind into the uniform feed representation.
func (s *ContentService) ByTags(ctx context.Context, kind models.ContentKind, tags []string) []models.ContentItem {
	switch kind {
	case models.KindLegislation:
		rows := s.LegislationByTags(ctx, tags)
		items := make([]models.ContentItem, 0, len(rows))
		for i := range rows {
			items = append(items, models.ContentItem{Kind: kind, Legislation: &rows[i]})
		}
		return items
	case models.KindHearings:
		rows := s.HearingsByTags(ctx, tags)
		items := make([]models.ContentItem, 0, len(rows))
		for i := range rows {
			items = append(items, models.ContentItem{Kind: kind, Hearing: &rows[i]})
		}
		return items
	case models.KindNominations:
		rows := s.NominationsByTags(ctx, tags)
		items := make([]models.ContentItem, 0, len(rows))
		for i := range rows {
			items = append(items, models.ContentItem{Kind: kind, Nomination: &rows[i]})
		}
		return items
	case models.KindCommittees:
		rows := s.CommitteesByTags(ctx, tags)
		items := make([]models.ContentItem, 0, len(rows))
		for i := range rows {
			items = append(items, models.ContentItem{Kind: kind, Committee: &rows[i]})
		}
		return items
	case models.KindTreaties:
		rows := s.TreatiesByTags(ctx, tags)
		items := make([]models.ContentItem, 0, len(rows))
		for i := range rows {
			items = append(items, models.ContentItem{Kind: kind, Treaty: &rows[i]})
		}
		return items
	case models.KindResearchReports:
		rows := s.ResearchReportsByTags(ctx, tags)
		items := make([]models.ContentItem, 0, len(rows))
		for i := range rows {
			items = append(items, models.ContentItem{Kind: kind, ResearchReport: &rows[i]})
		}
		return items
	}
	return []models.ContentItem{}
}

// UserTags resolves the logged-in user's interest tags: backend first, then
// the cached account. Successful backend reads are written through to the
// cache.
func (s *ContentService) UserTags(ctx context.Context) ([]string, error) {
	user := s.session.User()
	if user == nil {
		return nil, shared.ErrNotLoggedIn
	}

	if !s.session.Offline() {
		tags, err := s.backend.UserTags(ctx)
		if err == nil {
			if serr := s.users.SaveTags(ctx, user.Email, tags); serr != nil {
				s.log.Warn(ctx, "caching tags failed", "error", serr)
			}
			return tags, nil
		}
		s.log.Warn(ctx, "backend tags unavailable, using cache", "error", err)
	}

	cached, err := s.users.UserByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if cached.CommodityTags == nil {
		return []string{}, nil
	}
	return cached.CommodityTags, nil
}

// SaveUserTags replaces the tag set, writing through to the backend when
// online and always to the cache.
func (s *ContentService) SaveUserTags(ctx context.Context, tags []string) error {
	user := s.session.User()
	if user == nil {
		return shared.ErrNotLoggedIn
	}

	if !s.session.Offline() {
		if err := s.backend.SaveUserTags(ctx, tags); err != nil {
			return err
		}
	}
	if err := s.users.SaveTags(ctx, user.Email, tags); err != nil {
		s.log.Warn(ctx, "caching tags failed", "error", err)
	}

	user.CommodityTags = tags
	return nil
}

// DashboardStats returns the aggregate counters, nil when unreachable.
func (s *ContentService) DashboardStats(ctx context.Context) *models.DashboardStats {
	stats, err := s.backend.DashboardStats(ctx)
	if err != nil {
		s.log.Warn(ctx, "dashboard stats unavailable", "error", err)
		return nil
	}
	return stats
}

// LegislationByID returns a single bill from the primary backend.
func (s *ContentService) LegislationByID(ctx context.Context, id int64) (*models.Legislation, error) {
	return s.backend.LegislationByID(ctx, id)
}
