package model

// FieldFilter constrains a named field to equal Value.
// Value is a bool, an int64 or a string.
type FieldFilter struct {
	Field string
	Value any
}
