// Package seed holds the catalog dataset bundled with the binaries and the
// operator tooling around it: importing a dataset into an empty record store
// and printing a summary of the store's contents.
package seed

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/smoke-stack/models"
)

//go:embed strains.json
var bundledStrains []byte

// Parse decodes a JSON array of strains. Entry ids may be strings or numbers.
func Parse(r io.Reader) ([]models.StrainInput, error) {
	var inputs []models.StrainInput
	if err := json.NewDecoder(r).Decode(&inputs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
	}
	return inputs, nil
}

// LoadFile parses the dataset at path.
func LoadFile(path string) ([]models.StrainInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening dataset: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// BundledInputs returns the embedded dataset.
func BundledInputs() ([]models.StrainInput, error) {
	return Parse(bytes.NewReader(bundledStrains))
}

// Bundled returns the embedded dataset as client records. Entries keep their
// dataset id as alias and have no internal id.
func Bundled() ([]models.Strain, error) {
	inputs, err := BundledInputs()
	if err != nil {
		return nil, err
	}

	strains := make([]models.Strain, 0, len(inputs))
	for _, in := range inputs {
		strains = append(strains, in.ToStrain())
	}
	return strains, nil
}
