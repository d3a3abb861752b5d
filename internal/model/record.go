// Package model defines the record types flowing through the discovery pipeline.
package model

import "time"

// Confidence tags assigned by the parsing path that produced a candidate.
const (
	ConfidenceHigh   = "High"   // structured numbered-list parse
	ConfidenceMedium = "Medium" // freeform text parse
)

// Sentinel value for extractor fields that could not be derived.
const Unknown = "Unknown"

// Candidate is an unreconciled, per-source extraction of a restaurant listing.
// It is created once per extraction event and never mutated; enrichment data
// lives on the Reconciled record that supersedes it.
type Candidate struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	CuisineType  string `json:"cuisine_type"`
	Neighborhood string `json:"neighborhood"`
	PriceTier    string `json:"price_tier"`
	Confidence   string `json:"confidence,omitempty"`
	Source       string `json:"source"`
	SourceURL    string `json:"source_url,omitempty"`
	// Rating is set only on candidates that originate from the directory
	// API, where the search result already carries one.
	Rating      float64 `json:"rating,omitempty"`
	RatingCount int     `json:"rating_count,omitempty"`
	PlaceID     string  `json:"place_id,omitempty"`
}

// Reconciled is the canonical, deduplicated restaurant identity produced by
// cross-source reconciliation. Within one run no two Reconciled records share
// the same normalized name.
type Reconciled struct {
	Candidate

	// Validated is true iff the normalized name appeared in >=2 sources.
	Validated   bool `json:"validated"`
	SourceCount int  `json:"source_count"`

	Enrichment *Enrichment `json:"enrichment,omitempty"`
}

// VerificationStatus describes the outcome of a directory lookup.
type VerificationStatus string

const (
	VerificationVerified VerificationStatus = "VERIFIED"
	VerificationNotFound VerificationStatus = "NOT_FOUND"
	VerificationError    VerificationStatus = "ERROR"
)

// Business status values returned by the directory provider. The provider may
// return other strings; they are passed through untouched.
const (
	StatusOperational       = "OPERATIONAL"
	StatusClosedTemporarily = "CLOSED_TEMPORARILY"
	StatusClosedPermanently = "CLOSED_PERMANENTLY"
	StatusNotFound          = "NOT_FOUND"
	StatusUnknown           = "UNKNOWN"
)

// Enrichment holds live business-status data merged from the directory API.
type Enrichment struct {
	VerificationStatus VerificationStatus `json:"verification_status"`
	BusinessStatus     string             `json:"business_status,omitempty"`
	PermanentlyClosed  bool               `json:"permanently_closed"`

	DirectoryName string   `json:"directory_name,omitempty"`
	Address       string   `json:"address,omitempty"`
	Website       string   `json:"website,omitempty"`
	Rating        float64  `json:"rating,omitempty"`
	RatingCount   int      `json:"rating_count,omitempty"`
	PriceLevel    int      `json:"price_level,omitempty"`
	OpeningHours  []string `json:"opening_hours,omitempty"`
	OpenNow       *bool    `json:"open_now,omitempty"`
	PlaceID       string   `json:"place_id,omitempty"`
	MapsURL       string   `json:"maps_url,omitempty"`

	// Error preserves the failure message when VerificationStatus is ERROR.
	Error string `json:"error,omitempty"`

	LastVerifiedAt time.Time `json:"last_verified_at"`
}

// DirectoryRating returns the enrichment rating when present, else the
// rating carried by the candidate itself (directory-sourced candidates).
func (r *Reconciled) DirectoryRating() float64 {
	if r.Enrichment != nil && r.Enrichment.Rating > 0 {
		return r.Enrichment.Rating
	}
	return r.Rating
}
