package postgrest

import "github.com/orwel/orwel-cli/internal/client/models"

// The direct source speaks snake_case while the domain models carry the
// primary backend's camelCase contract, so every table gets an explicit row
// type and mapper. Null numeric columns decode as zero values.

type tagIDRow struct {
	TagID int64 `json:"tag_id"`
}

type legislationRow struct {
	LegID          int64       `json:"leg_id"`
	BillType       string      `json:"bill_type"`
	BillNumber     string      `json:"bill_number"`
	RefCode        string      `json:"ref_code"`
	TagID          int64       `json:"tag_id"`
	Title          string      `json:"title"`
	Summary        string      `json:"summary"`
	PolicyArea     string      `json:"policy_area"`
	DateIntroduced models.Date `json:"date_introduced"`
	CurrentStatus  string      `json:"current_status"`
}

func (r legislationRow) toModel() models.Legislation {
	return models.Legislation{
		LegID:          r.LegID,
		BillType:       r.BillType,
		BillNumber:     r.BillNumber,
		RefCode:        r.RefCode,
		TagID:          r.TagID,
		Title:          r.Title,
		Summary:        r.Summary,
		PolicyArea:     r.PolicyArea,
		DateIntroduced: r.DateIntroduced,
		CurrentStatus:  r.CurrentStatus,
	}
}

type committeeRow struct {
	ComID        int64  `json:"com_id"`
	GovID        int64  `json:"gov_id"`
	Name         string `json:"name"`
	OfficialCode string `json:"official_code"`
	APIURL       string `json:"api_url"`
	TagID        int64  `json:"tag_id"`
}

func (r committeeRow) toModel() models.Committee {
	return models.Committee{
		ComID:        r.ComID,
		GovID:        r.GovID,
		Name:         r.Name,
		OfficialCode: r.OfficialCode,
		APIURL:       r.APIURL,
		TagID:        r.TagID,
	}
}

type materialRow struct {
	MatID             int64       `json:"mat_id"`
	ComID             int64       `json:"com_id"`
	LegID             int64       `json:"leg_id"`
	MaterialType      string      `json:"material_type"`
	Title             string      `json:"title"`
	OfficialRefNumber string      `json:"official_ref_number"`
	OfficialSummary   string      `json:"official_summary"`
	SectionAnalysis   string      `json:"section_analysis"`
	FiscalImpactValue float64     `json:"fiscal_impact_value"`
	EventDate         models.Date `json:"event_date"`
	DocumentURL       string      `json:"document_url"`
}

func (r materialRow) toModel() models.CommitteeMaterial {
	return models.CommitteeMaterial{
		MatID:             r.MatID,
		ComID:             r.ComID,
		LegID:             r.LegID,
		MaterialType:      r.MaterialType,
		Title:             r.Title,
		OfficialRefNumber: r.OfficialRefNumber,
		OfficialSummary:   r.OfficialSummary,
		SectionAnalysis:   r.SectionAnalysis,
		FiscalImpactValue: r.FiscalImpactValue,
		EventDate:         r.EventDate,
		DocumentURL:       r.DocumentURL,
	}
}

type nominationRow struct {
	NomID              int64       `json:"nom_id"`
	MemID              int64       `json:"mem_id"`
	ConfirmingGovID    int64       `json:"confirming_gov_id"`
	PositionTitle      string      `json:"position_title"`
	TargetOrganization string      `json:"target_organization"`
	TagID              int64       `json:"tag_id"`
	DateReceived       models.Date `json:"date_received"`
	CurrentStatus      string      `json:"current_status"`
	OfficialSummary    string      `json:"official_summary"`
	DocumentURL        string      `json:"document_url"`
}

func (r nominationRow) toModel() models.Nomination {
	return models.Nomination{
		NomID:              r.NomID,
		MemID:              r.MemID,
		ConfirmingGovID:    r.ConfirmingGovID,
		PositionTitle:      r.PositionTitle,
		TargetOrganization: r.TargetOrganization,
		TagID:              r.TagID,
		DateReceived:       r.DateReceived,
		CurrentStatus:      r.CurrentStatus,
		OfficialSummary:    r.OfficialSummary,
		DocumentURL:        r.DocumentURL,
	}
}

type treatyRow struct {
	TreatyID         int64       `json:"treaty_id"`
	GovID            int64       `json:"gov_id"`
	OfficialNumber   string      `json:"official_number"`
	Title            string      `json:"title"`
	ForeignPartner   string      `json:"foreign_partner"`
	TagID            int64       `json:"tag_id"`
	TransmissionDate models.Date `json:"transmission_date"`
	CurrentStatus    string      `json:"current_status"`
	OfficialSummary  string      `json:"official_summary"`
	DocumentURL      string      `json:"document_url"`
}

func (r treatyRow) toModel() models.Treaty {
	return models.Treaty{
		TreatyID:         r.TreatyID,
		GovID:            r.GovID,
		OfficialNumber:   r.OfficialNumber,
		Title:            r.Title,
		ForeignPartner:   r.ForeignPartner,
		TagID:            r.TagID,
		TransmissionDate: r.TransmissionDate,
		CurrentStatus:    r.CurrentStatus,
		OfficialSummary:  r.OfficialSummary,
		DocumentURL:      r.DocumentURL,
	}
}

type reportRow struct {
	ReportID      int64       `json:"report_id"`
	GovID         int64       `json:"gov_id"`
	ReportNumber  string      `json:"report_number"`
	Title         string      `json:"title"`
	TagID         int64       `json:"tag_id"`
	LegID         int64       `json:"leg_id"`
	SummaryText   string      `json:"summary_text"`
	DatePublished models.Date `json:"date_published"`
	DocumentURL   string      `json:"document_url"`
}

func (r reportRow) toModel() models.ResearchReport {
	return models.ResearchReport{
		ReportID:      r.ReportID,
		GovID:         r.GovID,
		ReportNumber:  r.ReportNumber,
		Title:         r.Title,
		TagID:         r.TagID,
		LegID:         r.LegID,
		SummaryText:   r.SummaryText,
		DatePublished: r.DatePublished,
		DocumentURL:   r.DocumentURL,
	}
}
