package model

import internalmodel "github.com/goliatone/go-formfield/internal/model"

// FieldType re-exports the internal FieldType enumeration.
type FieldType = internalmodel.FieldType

const (
	FieldTypeFloat    = internalmodel.FieldTypeFloat
	FieldTypePercent  = internalmodel.FieldTypePercent
	FieldTypeInt      = internalmodel.FieldTypeInt
	FieldTypeCurrency = internalmodel.FieldTypeCurrency
	FieldTypeData     = internalmodel.FieldTypeData
)

type FieldDefinition = internalmodel.FieldDefinition
type Document = internalmodel.Document

// NewDocument re-exports the internal document constructor.
func NewDocument(values map[string]any) *Document {
	return internalmodel.NewDocument(values)
}

// LabelFor re-exports the internal label helper.
func LabelFor(field FieldDefinition) string {
	return internalmodel.LabelFor(field)
}
