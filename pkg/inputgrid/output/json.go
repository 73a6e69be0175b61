// Package output serializes decode results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/inputgrid-go/pkg/inputgrid"
	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/models"
)

// Document is the JSON shape of a decoded grid: the raw records per section
// and the typed input rebuilt from them.
type Document struct {
	*inputgrid.Result
	Input *models.Input `json:"input,omitempty"`
}

// ToJSON serializes a decode result. When typed is true the rebuilt typed
// input is included.
func ToJSON(res *inputgrid.Result, typed, pretty bool) ([]byte, error) {
	doc := Document{Result: res}
	if typed {
		doc.Input = res.Input()
	}
	return marshal(doc, pretty)
}

// InputFromJSON parses typed input as produced by ToJSON or written by hand.
func InputFromJSON(data []byte) (*models.Input, error) {
	var in models.Input
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
