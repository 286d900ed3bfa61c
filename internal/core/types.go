package core

// ColumnType is the coarse bucket assigned to a schema column. It drives
// SQL literal formatting only and is deliberately not a full SQL type:
// everything that is not a number, boolean or timestamp is a string.
type ColumnType int

const (
	TypeString ColumnType = iota
	TypeNumber
	TypeBoolean
	TypeTimestamp
)

// String returns the lowercase name of the type bucket.
func (t ColumnType) String() string {
	switch t {
	case TypeNumber:
		return "number"
	case TypeBoolean:
		return "boolean"
	case TypeTimestamp:
		return "timestamp"
	default:
		return "string"
	}
}

// ColumnInfo is one parsed schema column. Immutable once produced.
type ColumnInfo struct {
	Name string
	Type ColumnType
}

// SchemaInfo is the result of parsing free-form schema text.
// TableName is empty when no CREATE TABLE block was found.
type SchemaInfo struct {
	TableName string
	Columns   []ColumnInfo
}

// Result is the outcome of one conversion run.
type Result struct {
	SQL       string   `json:"sql"`
	TableName string   `json:"table"`
	Columns   []string `json:"columns"`
	RowCount  int      `json:"rows"`
}
