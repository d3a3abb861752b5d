// Package output writes reconciled restaurant records to CSV, XLSX, or
// JSON files.
package output

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/cardinal-labs/dinescout/internal/model"
)

// Format identifies an output file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
)

// ParseFormat validates a format string from the CLI.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", eris.Errorf("output: unknown format %q (want csv, xlsx, or json)", s)
}

// Write saves records to path in the given format.
func Write(path string, format Format, records []model.Reconciled) error {
	switch format {
	case FormatCSV:
		return WriteCSV(path, records)
	case FormatXLSX:
		return WriteXLSX(path, records)
	case FormatJSON:
		return WriteJSON(path, records)
	}
	return eris.Errorf("output: unknown format %q", format)
}

// DefaultFilename builds the conventional output name for a city, e.g.
// "pittsburgh_restaurants_validated.csv".
func DefaultFilename(city string, format Format) string {
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(city), " ", "_"))
	return slug + "_restaurants_validated." + string(format)
}

// row is the flat record shape written to tabular outputs.
type row struct {
	Name               string  `csv:"name"`
	Description        string  `csv:"description"`
	CuisineType        string  `csv:"cuisine_type"`
	Neighborhood       string  `csv:"neighborhood"`
	PriceRange         string  `csv:"price_range"`
	Confidence         string  `csv:"confidence"`
	Source             string  `csv:"source"`
	SourceCount        int     `csv:"source_count"`
	Validated          bool    `csv:"validated"`
	VerificationStatus string  `csv:"verification_status"`
	BusinessStatus     string  `csv:"business_status"`
	PermanentlyClosed  bool    `csv:"permanently_closed"`
	DirectoryName      string  `csv:"directory_name"`
	DirectoryAddress   string  `csv:"directory_address"`
	DirectoryRating    float64 `csv:"directory_rating"`
	DirectoryRatings   int     `csv:"directory_rating_count"`
	PriceLevel         int     `csv:"price_level"`
	OpenNow            string  `csv:"open_now"`
	CurrentHours       string  `csv:"current_hours"`
	Website            string  `csv:"website"`
	MapsURL            string  `csv:"maps_url"`
	LastVerified       string  `csv:"last_verified"`
	PlaceID            string  `csv:"place_id"`
	VerificationError  string  `csv:"verification_error"`
}

func toRow(r model.Reconciled) row {
	out := row{
		Name:         r.Name,
		Description:  r.Description,
		CuisineType:  r.CuisineType,
		Neighborhood: r.Neighborhood,
		PriceRange:   r.PriceTier,
		Confidence:   r.Confidence,
		Source:       r.Source,
		SourceCount:  r.SourceCount,
		Validated:    r.Validated,
		PlaceID:      r.PlaceID,
	}

	e := r.Enrichment
	if e == nil {
		return out
	}

	out.VerificationStatus = string(e.VerificationStatus)
	out.BusinessStatus = e.BusinessStatus
	out.PermanentlyClosed = e.PermanentlyClosed
	out.DirectoryName = e.DirectoryName
	out.DirectoryAddress = e.Address
	out.DirectoryRating = e.Rating
	out.DirectoryRatings = e.RatingCount
	out.PriceLevel = e.PriceLevel
	out.CurrentHours = strings.Join(e.OpeningHours, "; ")
	out.Website = e.Website
	out.MapsURL = e.MapsURL
	out.VerificationError = e.Error
	if e.PlaceID != "" {
		out.PlaceID = e.PlaceID
	}
	if e.OpenNow != nil {
		if *e.OpenNow {
			out.OpenNow = "yes"
		} else {
			out.OpenNow = "no"
		}
	}
	if !e.LastVerifiedAt.IsZero() {
		out.LastVerified = e.LastVerifiedAt.Format(time.RFC3339)
	}
	return out
}
