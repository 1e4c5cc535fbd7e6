package schema

import "fmt"

// SchemaError reports a structurally invalid tool record: a record that
// cannot be turned into a ToolSchema, most commonly because the name is
// missing or empty.
type SchemaError struct {
	Detail string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid tool schema: %s: %v", e.Detail, e.Err)
	}
	return fmt.Sprintf("invalid tool schema: %s", e.Detail)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}
