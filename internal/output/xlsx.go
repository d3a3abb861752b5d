package output

import (
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/cardinal-labs/dinescout/internal/model"
)

var xlsxHeader = []string{
	"name", "description", "cuisine_type", "neighborhood", "price_range",
	"confidence", "source", "source_count", "validated",
	"verification_status", "business_status", "permanently_closed",
	"directory_name", "directory_address", "directory_rating",
	"directory_rating_count", "price_level", "open_now", "current_hours",
	"website", "maps_url", "last_verified", "place_id", "verification_error",
}

// WriteXLSX saves records as a single-sheet workbook.
func WriteXLSX(path string, records []model.Reconciled) error {
	wb := xlsx.NewFile()
	sheet, err := wb.AddSheet("Restaurants")
	if err != nil {
		return eris.Wrap(err, "output: add sheet")
	}

	hdr := sheet.AddRow()
	for _, h := range xlsxHeader {
		hdr.AddCell().SetString(h)
	}

	for _, rec := range records {
		r := toRow(rec)
		xr := sheet.AddRow()
		xr.AddCell().SetString(r.Name)
		xr.AddCell().SetString(r.Description)
		xr.AddCell().SetString(r.CuisineType)
		xr.AddCell().SetString(r.Neighborhood)
		xr.AddCell().SetString(r.PriceRange)
		xr.AddCell().SetString(r.Confidence)
		xr.AddCell().SetString(r.Source)
		xr.AddCell().SetInt(r.SourceCount)
		xr.AddCell().SetString(strconv.FormatBool(r.Validated))
		xr.AddCell().SetString(r.VerificationStatus)
		xr.AddCell().SetString(r.BusinessStatus)
		xr.AddCell().SetString(strconv.FormatBool(r.PermanentlyClosed))
		xr.AddCell().SetString(r.DirectoryName)
		xr.AddCell().SetString(r.DirectoryAddress)
		xr.AddCell().SetFloat(r.DirectoryRating)
		xr.AddCell().SetInt(r.DirectoryRatings)
		xr.AddCell().SetInt(r.PriceLevel)
		xr.AddCell().SetString(r.OpenNow)
		xr.AddCell().SetString(r.CurrentHours)
		xr.AddCell().SetString(r.Website)
		xr.AddCell().SetString(r.MapsURL)
		xr.AddCell().SetString(r.LastVerified)
		xr.AddCell().SetString(r.PlaceID)
		xr.AddCell().SetString(r.VerificationError)
	}

	return eris.Wrapf(wb.Save(path), "output: save %s", path)
}
