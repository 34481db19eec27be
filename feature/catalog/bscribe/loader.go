package bscribe

import (
	"encoding/xml"
	"fmt"
)

// Parse reads one catalogue document into its attributed tree form.
// A document that is not a well-formed catalogue is an error; that error is
// fatal for the document (and its faction's contribution) only, never for
// the batch.
func Parse(data []byte) (*Catalogue, error) {
	var cat Catalogue
	if err := xml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalogue: %w", err)
	}
	if cat.Name == "" {
		return nil, fmt.Errorf("catalogue has no name attribute")
	}
	return &cat, nil
}
