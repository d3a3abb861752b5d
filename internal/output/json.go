package output

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"

	"github.com/cardinal-labs/dinescout/internal/model"
)

// WriteJSON saves the full record structures, enrichment included, as
// indented JSON.
func WriteJSON(path string, records []model.Reconciled) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "output: create %s", path)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return eris.Wrapf(err, "output: encode %s", path)
	}
	return nil
}
