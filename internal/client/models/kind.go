package models

// ContentKind identifies one of the taggable content resources. The values
// double as the path segment of the backend's /{kind}/by-tags endpoints.
type ContentKind string

const (
	KindLegislation     ContentKind = "legislation"
	KindHearings        ContentKind = "hearings"
	KindNominations     ContentKind = "nominations"
	KindCommittees      ContentKind = "committees"
	KindTreaties        ContentKind = "treaties"
	KindResearchReports ContentKind = "research-reports"
)

// ContentKinds lists every kind in the order the update feed renders them.
func ContentKinds() []ContentKind {
	return []ContentKind{
		KindLegislation,
		KindHearings,
		KindNominations,
		KindCommittees,
		KindTreaties,
		KindResearchReports,
	}
}

// ContentItem is a tagged union over the content kinds: exactly one of the
// pointer fields matching Kind is set. It replaces runtime type inspection
// in feed rendering.
type ContentItem struct {
	Kind ContentKind

	Legislation    *Legislation
	Hearing        *CommitteeMaterial
	Nomination     *Nomination
	Committee      *Committee
	Treaty         *Treaty
	ResearchReport *ResearchReport
}

// Title returns the display title of whichever variant is set.
func (i ContentItem) Title() string {
	switch i.Kind {
	case KindLegislation:
		if i.Legislation != nil {
			return i.Legislation.Title
		}
	case KindHearings:
		if i.Hearing != nil {
			return i.Hearing.Title
		}
	case KindNominations:
		if i.Nomination != nil {
			return i.Nomination.PositionTitle
		}
	case KindCommittees:
		if i.Committee != nil {
			return i.Committee.Name
		}
	case KindTreaties:
		if i.Treaty != nil {
			return i.Treaty.Title
		}
	case KindResearchReports:
		if i.ResearchReport != nil {
			return i.ResearchReport.Title
		}
	}
	return ""
}

// Date returns the recency date of whichever variant is set. Committees have
// no recency column and report the zero Date.
func (i ContentItem) Date() Date {
	switch i.Kind {
	case KindLegislation:
		if i.Legislation != nil {
			return i.Legislation.DateIntroduced
		}
	case KindHearings:
		if i.Hearing != nil {
			return i.Hearing.EventDate
		}
	case KindNominations:
		if i.Nomination != nil {
			return i.Nomination.DateReceived
		}
	case KindTreaties:
		if i.Treaty != nil {
			return i.Treaty.TransmissionDate
		}
	case KindResearchReports:
		if i.ResearchReport != nil {
			return i.ResearchReport.DatePublished
		}
	}
	return Date{}
}
