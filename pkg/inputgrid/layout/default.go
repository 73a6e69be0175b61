package layout

import "github.com/ukaji3/inputgrid-go/pkg/inputgrid/models"

// Titles of the default layout.
const (
	TitleMaterials    = "Matériaux"
	TitleMembers      = "Membres"
	TitleCombinations = "Combinaisons analysées"
	TitleSections     = "Section"
)

// DefaultNote is the instruction text written in B2.
const DefaultNote = "Les données ci-dessous ont été extraites de la mise en donnée logiciel. \n" +
	"Vérifiez que les données extraites correspondent bien à ce qui est attendu.\n" +
	"Nota : les valeurs de \"k\" et de \"Cm\" peuvent  être modifiées pour optimiser le calcul."

// Default returns a fresh copy of the version 1 layout:
// Matériaux, Membres, Combinaisons analysées, Section on sheet INPUT,
// marker column B, first title on row 9.
func Default() *Layout {
	return &Layout{
		Version:      CurrentVersion,
		Sheet:        "INPUT",
		MarkerColumn: 2,
		StartRow:     9,
		Note:         &Note{Row: 2, Text: DefaultNote, Height: 45},
		ColumnWidth:  15,
		WidthSpan:    15,
		Sections: []Section{
			{
				Key:          models.SectionMaterials,
				Title:        TitleMaterials,
				HeaderOffset: 2,
				DataOffset:   3,
				Stop:         StopBlankOrTitle,
				Columns: []Column{
					num(models.FieldID, "ID"),
					text(models.FieldName, "Nom"),
					num(models.FieldTemperature, "Température [°C]"),
					num(models.FieldE, "E [MPa]"),
					num(models.FieldSy, "Sy [MPa]"),
					num(models.FieldSu, "Su [MPa]"),
					num(models.FieldPoisson, "Coef de Poisson"),
				},
			},
			{
				Key:           models.SectionMembers,
				Title:         TitleMembers,
				SpacingBefore: 3,
				HeaderOffset:  2,
				DataOffset:    3,
				Stop:          StopBlankOrTitle,
				Columns: []Column{
					num(models.FieldID, "ID"),
					num(models.FieldStartNode, "Nœud début"),
					num(models.FieldEndNode, "Nœud fin"),
					text(models.FieldSection, "Section"),
					text(models.FieldMaterial, "Matériau"),
					num(models.FieldLambda, "Longueur λ [mm]"),
					num(models.FieldLb, "Longueur Lc [mm]"),
					withDefault(num(models.FieldKy, "ky"), 2),
					withDefault(num(models.FieldKz, "kz"), 2),
					withDefault(num(models.FieldCmy, "Cmy"), 0.85),
					withDefault(num(models.FieldCmz, "Cmz"), 0.85),
				},
			},
			{
				Key:           models.SectionCombinations,
				Title:         TitleCombinations,
				SpacingBefore: 4,
				DataOffset:    2,
				Stop:          StopBlankOrTitle,
				Variable:      true,
				LeadLabel:     "Situation",
				LeadField:     models.FieldSituation,
				TrailPrefix:   "CO",
				TrailField:    "co",
			},
			{
				Key:           models.SectionProfiles,
				Title:         TitleSections,
				SpacingBefore: 3,
				HeaderOffset:  2,
				DataOffset:    3,
				Stop:          StopBlankOrTitle,
				Columns: []Column{
					num(models.FieldID, "ID"),
					text(models.FieldName, "Nom"),
					num(models.FieldH, "h [mm]"),
					num(models.FieldL, "l [mm]"),
					tolerant(num(models.FieldTw, "tw [mm]")),
					tolerant(num(models.FieldTf, "tf [mm]")),
					tolerant(num(models.FieldA, "A [mm²]")),
					num(models.FieldIy, "Iy [mm4]"),
					num(models.FieldIz, "Iz [mm4]"),
					num(models.FieldRy, "ry [mm]"),
					num(models.FieldRz, "rz [mm]"),
					tolerant(num(models.FieldJ, "J [mm]")),
					sentinel(tolerant(num(models.FieldAm, "Ac [mm²]"))),
					num(models.FieldQy, "Qy [mm3]"),
					num(models.FieldQz, "Qz [mm3]"),
				},
			},
		},
	}
}

func num(field, label string) Column {
	return Column{Field: field, Label: label, Kind: KindNumber}
}

func text(field, label string) Column {
	return Column{Field: field, Label: label, Kind: KindText}
}

func withDefault(c Column, v float64) Column {
	c.Default = &v
	return c
}

func tolerant(c Column) Column {
	c.Tolerant = true
	return c
}

func sentinel(c Column) Column {
	c.Sentinel = true
	return c
}
