package models

// PrintArea is the print area of the grid sheet as 1-based, inclusive
// row/column bounds.
type PrintArea struct {
	R1 int `json:"r1"`
	C1 int `json:"c1"`
	R2 int `json:"r2"`
	C2 int `json:"c2"`
}
