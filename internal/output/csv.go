package output

import (
	"encoding/csv"
	"os"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"

	"github.com/cardinal-labs/dinescout/internal/model"
)

// WriteCSV saves records as a CSV file with a header row.
func WriteCSV(path string, records []model.Reconciled) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "output: create %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	enc := csvutil.NewEncoder(w)
	// The header goes out even when the run found nothing.
	if err := enc.EncodeHeader(row{}); err != nil {
		return eris.Wrap(err, "output: encode header")
	}
	for _, rec := range records {
		if err := enc.Encode(toRow(rec)); err != nil {
			return eris.Wrapf(err, "output: encode %s", rec.Name)
		}
	}
	w.Flush()
	return eris.Wrap(w.Error(), "output: flush csv")
}
