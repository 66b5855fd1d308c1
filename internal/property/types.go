package property

// Record represents one parcel as stored in the appraisal database.
// Columns that can be NULL are pointers so an absent value stays
// distinct from a legitimate zero.
type Record struct {
	ID              string   `json:"id"`
	SitusAddress    *string  `json:"situsAddress,omitempty"`
	SubdivisionCode *string  `json:"subdivisionCode,omitempty"`
	Area            *float64 `json:"area,omitempty"`
	MarketValue     *float64 `json:"marketValue,omitempty"`
	LandValue       *float64 `json:"landValue,omitempty"`
	YearBuilt       *int     `json:"yearBuilt,omitempty"`
}

// Comparable reports whether the record carries all four scoring
// attributes. A zero value counts as missing, matching the appraisal
// feed where zero means "not assessed".
func (r *Record) Comparable() bool {
	if r.Area == nil || *r.Area == 0 {
		return false
	}
	if r.MarketValue == nil || *r.MarketValue == 0 {
		return false
	}
	if r.LandValue == nil || *r.LandValue == 0 {
		return false
	}
	if r.YearBuilt == nil || *r.YearBuilt == 0 {
		return false
	}
	return true
}

// Subdivision returns the subdivision code or "" when the record has none.
func (r *Record) Subdivision() string {
	if r.SubdivisionCode == nil {
		return ""
	}
	return *r.SubdivisionCode
}
