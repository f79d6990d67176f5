package models

// User is the account profile. It is created at registration, updated on
// profile save, and cached locally on every successful remote fetch.
type User struct {
	ID          int64  `json:"id,omitempty"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password,omitempty"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Address     string `json:"address,omitempty"`
	Country     string `json:"country,omitempty"`
	City        string `json:"city,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	DateOfBirth Date   `json:"dateOfBirth,omitempty"`
	Occupation  string `json:"occupation,omitempty"`
	HasStocks   bool   `json:"hasStocks"`

	// CommodityTags are the free-text interest tags (e.g. "oil", "gold")
	// used to filter content queries.
	CommodityTags []string `json:"commodityTags,omitempty"`

	LocationInfo *LocationInfo `json:"locationInfo,omitempty"`
}

// LocationInfo is an optional geocoding result attached to a profile.
type LocationInfo struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	FormattedAddress string  `json:"formattedAddress,omitempty"`
	CountryCode      string  `json:"countryCode,omitempty"`
	Region           string  `json:"region,omitempty"`
	City             string  `json:"city,omitempty"`
	Timezone         string  `json:"timezone,omitempty"`
}
