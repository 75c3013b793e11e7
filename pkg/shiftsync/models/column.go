package models

// ColumnType is a Grist column storage type.
type ColumnType string

const (
	// TypeText stores free text. It is the default for unknown values.
	TypeText ColumnType = "Text"
	// TypeInt stores integers.
	TypeInt ColumnType = "Int"
	// TypeNumeric stores floating point numbers.
	TypeNumeric ColumnType = "Numeric"
	// TypeBool stores booleans.
	TypeBool ColumnType = "Bool"
	// TypeDateTime stores timestamps.
	TypeDateTime ColumnType = "DateTime"
)

// Column represents a column definition.
type Column struct {
	// ID is the Grist column identifier.
	ID string `json:"id"`
	// Type is the storage type. Empty means Text.
	Type ColumnType `json:"type,omitempty"`
}

// TypeOrDefault returns the column type, falling back to Text.
func (c Column) TypeOrDefault() ColumnType {
	if c.Type == "" {
		return TypeText
	}
	return c.Type
}
