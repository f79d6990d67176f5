package models

// Country is a tracked jurisdiction with its policies and stances.
type Country struct {
	Code          string    `json:"code"` // ISO country code
	Name          string    `json:"name"`
	Flag          string    `json:"flag,omitempty"` // URL or emoji
	Policies      []Policy  `json:"policies,omitempty"`
	Stances       []Stance  `json:"stances,omitempty"`
	AbidesBy      []string  `json:"abidesBy,omitempty"`
	DoesNotFollow []string  `json:"doesNotFollow,omitempty"`
	Summary       string    `json:"summary,omitempty"`
	Warnings      []Warning `json:"warnings,omitempty"`
}

// Policy is a single government policy.
type Policy struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	Category       string `json:"category,omitempty"` // "tax", "immigration", "trade", ...
	CountryCode    string `json:"countryCode,omitempty"`
	EffectiveDate  Date   `json:"effectiveDate,omitempty"`
	ExpirationDate Date   `json:"expirationDate,omitempty"`
	Status         string `json:"status,omitempty"` // active, proposed, expired
	Source         string `json:"source,omitempty"`
}

// Stance is a country's declared position on a topic.
type Stance struct {
	ID          int64  `json:"id"`
	Topic       string `json:"topic"`
	Position    string `json:"position"` // supports, opposes, neutral
	Description string `json:"description,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
	Source      string `json:"source,omitempty"`
}

// Warning is an advisory relevant to some class of users.
type Warning struct {
	ID                int64    `json:"id"`
	Title             string   `json:"title"`
	Message           string   `json:"message,omitempty"`
	Severity          string   `json:"severity,omitempty"` // low, medium, high, critical
	Category          string   `json:"category,omitempty"` // stocks, travel, tax, ...
	CountryCode       string   `json:"countryCode,omitempty"`
	AffectedUserTypes []string `json:"affectedUserTypes,omitempty"`
}
