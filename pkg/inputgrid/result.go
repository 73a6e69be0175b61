package inputgrid

import (
	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/models"
	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/parser"
)

// Result holds the records decoded from a grid.
type Result struct {
	// Records maps each section key to its rows in sheet order.
	Records models.RecordSet `json:"records"`
	// Sections lists the section keys in layout order.
	Sections []string `json:"sections"`
	// Diagnostics lists rows skipped in lenient mode.
	Diagnostics []parser.Diagnostic `json:"diagnostics,omitempty"`
}

// Input rebuilds typed collections from the decoded records. The grid holds
// only the first and last node of each member and a summary of the first
// stress point of each profile, so those come back partial.
func (r *Result) Input() *models.Input {
	return models.InputFromRecords(r.Records)
}
