package docstore

import "fmt"

// Op is a comparison operator of a filter condition.
type Op int

const (
	// OpEq matches a scalar field equal to Value, or an array field
	// containing Value.
	OpEq Op = iota
	// OpIn matches a scalar field equal to any element of Values.
	OpIn
	// OpContainsFold matches a string field, or any element of a string
	// array field, containing Value case-insensitively.
	OpContainsFold
)

func (o Op) String() string {
	switch o {
	case OpEq:
		return "eq"
	case OpIn:
		return "in"
	case OpContainsFold:
		return "containsFold"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Cond is a single condition on a document field.
type Cond struct {
	Field  string
	Op     Op
	Value  any
	Values []any
}

// Filter selects documents. Every condition in All must hold, and when Any
// is non-empty at least one of its conditions must hold too. The zero
// Filter matches every document.
type Filter struct {
	All []Cond
	Any []Cond
}

// Eq builds an OpEq condition.
func Eq(field string, value any) Cond {
	return Cond{Field: field, Op: OpEq, Value: value}
}

// In builds an OpIn condition over string values.
func In(field string, values ...string) Cond {
	vs := make([]any, len(values))
	for i, v := range values {
		vs[i] = v
	}
	return Cond{Field: field, Op: OpIn, Values: vs}
}

// ContainsFold builds an OpContainsFold condition.
func ContainsFold(field, substr string) Cond {
	return Cond{Field: field, Op: OpContainsFold, Value: substr}
}

// Where returns a filter requiring all conds.
func Where(conds ...Cond) Filter {
	return Filter{All: conds}
}

// ByID returns a filter matching the document with the given id.
func ByID(id string) Filter {
	return Where(Eq(FieldID, id))
}

// Update describes modifications applied to a single document.
//
// Set replaces field values. Push appends one value to an array field.
// Pull removes every occurrence of one value from an array field.
type Update struct {
	Set  map[string]any
	Push map[string]string
	Pull map[string]string
}

// IsEmpty reports whether u changes nothing.
func (u Update) IsEmpty() bool {
	return len(u.Set) == 0 && len(u.Push) == 0 && len(u.Pull) == 0
}
