package seed

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/smoke-stack/models"
)

// WriteReport prints the row count and, per record, its name, type, source,
// internal id and creation time.
func WriteReport(w io.Writer, strains []models.Strain, location string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Total strains in database: %d\n", len(strains))
	if len(strains) == 0 {
		b.WriteString("Database is empty. Run the seed tool first.\n")
	}

	for i, s := range strains {
		source := s.Source
		if source == "" {
			source = "N/A"
		}
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, s.Name)
		fmt.Fprintf(&b, "   Type: %s\n", s.Type)
		fmt.Fprintf(&b, "   Source: %s\n", source)
		fmt.Fprintf(&b, "   ID: %s\n", s.InternalID)
		fmt.Fprintf(&b, "   Created: %s\n", s.CreatedAt.Format(time.RFC3339))
	}

	fmt.Fprintf(&b, "\nDatabase location: %s\n", location)

	_, err := io.WriteString(w, b.String())
	return err
}
