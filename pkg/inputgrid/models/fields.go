package models

// Field identifiers shared by several sections.
const (
	FieldID   = "id"
	FieldName = "name"
)

// Material fields.
const (
	FieldTemperature = "temperature"
	FieldE           = "E"
	FieldSy          = "Sy"
	FieldSu          = "Su"
	FieldPoisson     = "poisson"
)

// Member fields. ky, kz, Cmy and Cmz are derived columns: the encoder fills
// them with constant defaults when the record does not carry them.
const (
	FieldStartNode = "start_node"
	FieldEndNode   = "end_node"
	FieldSection   = "section"
	FieldMaterial  = "material"
	FieldLambda    = "lambda_rccm"
	FieldLb        = "Lb"
	FieldKy        = "ky"
	FieldKz        = "kz"
	FieldCmy       = "Cmy"
	FieldCmz       = "Cmz"
)

// Section profile fields.
const (
	FieldH  = "h"
	FieldL  = "l"
	FieldTw = "tw"
	FieldTf = "tf"
	FieldA  = "A"
	FieldIy = "Iy"
	FieldIz = "Iz"
	FieldRy = "ry"
	FieldRz = "rz"
	FieldJ  = "J"
	FieldAm = "Am"
	FieldQy = "Qy"
	FieldQz = "Qz"
)

// Combination fields. Trailing combination labels use CombinationField(i).
const (
	FieldSituation = "situation"
)
