package models

// Tag is a named topical category with an external numeric identifier.
// Tag names are matched case-sensitively against the remote store.
type Tag struct {
	TagID        int64   `json:"tagId"`
	TagName      string  `json:"tagName"`
	NaicsCode    string  `json:"naicsCode,omitempty"`
	NaceCode     string  `json:"naceCode,omitempty"`
	SectorGDPUSD float64 `json:"sectorGdpUsd,omitempty"`
	SectorGDPEUR float64 `json:"sectorGdpEur,omitempty"`
}

// Legislation is a bill or legislative procedure.
type Legislation struct {
	LegID          int64  `json:"legId"`
	BillType       string `json:"billType,omitempty"` // US: 's', 'hr' | EU: 'COD', 'APP', 'NLE'
	BillNumber     string `json:"billNumber,omitempty"`
	RefCode        string `json:"refCode,omitempty"` // 'H.R. 101' or '2024/0123(COD)'
	TagID          int64  `json:"tagId,omitempty"`
	Title          string `json:"title"`
	Summary        string `json:"summary,omitempty"`
	PolicyArea     string `json:"policyArea,omitempty"`
	DateIntroduced Date   `json:"dateIntroduced,omitempty"`
	CurrentStatus  string `json:"currentStatus,omitempty"`
	Tag            *Tag   `json:"tag,omitempty"`
}

// Committee is a legislative committee.
type Committee struct {
	ComID        int64  `json:"comId"`
	GovID        int64  `json:"govId,omitempty"`
	Name         string `json:"name"`
	OfficialCode string `json:"officialCode,omitempty"` // US: 'SSBK' | EU: 'ECON'
	APIURL       string `json:"apiUrl,omitempty"`
	TagID        int64  `json:"tagId,omitempty"`
	Tag          *Tag   `json:"tag,omitempty"`
}

// CommitteeMaterial is a hearing, report, markup or similar committee output.
type CommitteeMaterial struct {
	MatID             int64   `json:"matId"`
	ComID             int64   `json:"comId,omitempty"`
	LegID             int64   `json:"legId,omitempty"`
	MaterialType      string  `json:"materialType,omitempty"` // 'Report', 'Hearing', 'Markup', ...
	Title             string  `json:"title"`
	OfficialRefNumber string  `json:"officialRefNumber,omitempty"`
	OfficialSummary   string  `json:"officialSummary,omitempty"`
	SectionAnalysis   string  `json:"sectionAnalysis,omitempty"`
	FiscalImpactValue float64 `json:"fiscalImpactValue,omitempty"`
	EventDate         Date    `json:"eventDate,omitempty"`
	DocumentURL       string  `json:"documentUrl,omitempty"`
}

// Nomination is an executive or judicial nomination.
type Nomination struct {
	NomID              int64  `json:"nomId"`
	MemID              int64  `json:"memId,omitempty"`
	ConfirmingGovID    int64  `json:"confirmingGovId,omitempty"`
	PositionTitle      string `json:"positionTitle,omitempty"`
	TargetOrganization string `json:"targetOrganization,omitempty"`
	TagID              int64  `json:"tagId,omitempty"`
	DateReceived       Date   `json:"dateReceived,omitempty"`
	CurrentStatus      string `json:"currentStatus,omitempty"`
	OfficialSummary    string `json:"officialSummary,omitempty"`
	DocumentURL        string `json:"documentUrl,omitempty"`
	Tag                *Tag   `json:"tag,omitempty"`
}

// Treaty is an international treaty under consideration.
type Treaty struct {
	TreatyID         int64  `json:"treatyId"`
	GovID            int64  `json:"govId,omitempty"`
	OfficialNumber   string `json:"officialNumber,omitempty"`
	Title            string `json:"title"`
	ForeignPartner   string `json:"foreignPartner,omitempty"`
	TagID            int64  `json:"tagId,omitempty"`
	TransmissionDate Date   `json:"transmissionDate,omitempty"`
	CurrentStatus    string `json:"currentStatus,omitempty"`
	OfficialSummary  string `json:"officialSummary,omitempty"`
	DocumentURL      string `json:"documentUrl,omitempty"`
	Tag              *Tag   `json:"tag,omitempty"`
}

// ResearchReport is a parliamentary research service publication.
type ResearchReport struct {
	ReportID      int64  `json:"reportId"`
	GovID         int64  `json:"govId,omitempty"`
	ReportNumber  string `json:"reportNumber,omitempty"` // US: 'R47123' | EU: 'PE 756.123'
	Title         string `json:"title"`
	TagID         int64  `json:"tagId,omitempty"`
	LegID         int64  `json:"legId,omitempty"`
	SummaryText   string `json:"summaryText,omitempty"`
	DatePublished Date   `json:"datePublished,omitempty"`
	DocumentURL   string `json:"documentUrl,omitempty"`
	Tag           *Tag   `json:"tag,omitempty"`
}

// DashboardStats is the aggregate view rendered on the dashboard.
type DashboardStats struct {
	TotalLegislation int64 `json:"totalLegislation"`
	TotalHearings    int64 `json:"totalHearings"`
	TotalNominations int64 `json:"totalNominations"`
	TotalTreaties    int64 `json:"totalTreaties"`
	TotalCommittees  int64 `json:"totalCommittees"`

	// Counts over the trailing 30 days.
	RecentLegislationCount int64 `json:"recentLegislationCount"`
	RecentHearingsCount    int64 `json:"recentHearingsCount"`
}
