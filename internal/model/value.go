package model

// Value is a section option value: either a single scalar or an ordered list
// of scalars. All scalars are carried as strings; loaders stringify numeric
// and boolean values on the way in.
type Value struct {
	items []string
	list  bool
}

// ScalarValue wraps a single scalar.
func ScalarValue(s string) Value {
	return Value{items: []string{s}}
}

// ListValue wraps an ordered list of scalars. An empty list is legal and
// means the variable bound to it contributes zero runs.
func ListValue(items ...string) Value {
	copied := make([]string, len(items))
	copy(copied, items)
	return Value{items: copied, list: true}
}

// IsList reports whether the value was declared as a list.
func (v Value) IsList() bool { return v.list }

// Len returns the number of scalars the value holds. A scalar value has
// length 1.
func (v Value) Len() int { return len(v.items) }

// Scalar returns the single scalar of a non-list value. For a list value it
// returns the first element, or "" when the list is empty.
func (v Value) Scalar() string {
	if len(v.items) == 0 {
		return ""
	}
	return v.items[0]
}

// List returns the scalars in declaration order.
func (v Value) List() []string {
	copied := make([]string, len(v.items))
	copy(copied, v.items)
	return copied
}

// Equal reports whether two values hold the same shape and scalars. It makes
// Value comparable with go-cmp in tests.
func (v Value) Equal(o Value) bool {
	if v.list != o.list || len(v.items) != len(o.items) {
		return false
	}
	for i := range v.items {
		if v.items[i] != o.items[i] {
			return false
		}
	}
	return true
}
