package rsv

import "strconv"

// Value is a single RSV value: either null or a text string. The zero Value is null.
// Values are comparable with ==, and Text("") is never equal to Null().
type Value struct {
	text  string
	valid bool
}

// Row is an ordered list of values. An empty Row is a row with no values, which is
// distinct from a row holding one empty string.
type Row []Value

// Document is an ordered list of rows.
type Document []Row

// Null returns the null value.
func Null() Value {
	return Value{}
}

// Text returns a text value holding s.
func Text(s string) Value {
	return Value{text: s, valid: true}
}

// FromPtr maps nil to Null and any other pointer to a text value holding *p.
func FromPtr(p *string) Value {
	if p == nil {
		return Null()
	}
	return Text(*p)
}

// RowOf builds a row of text values.
func RowOf(texts ...string) Row {
	row := make(Row, len(texts))
	for i, s := range texts {
		row[i] = Text(s)
	}
	return row
}

// IsNull reports whether v is null.
func (v Value) IsNull() bool {
	return !v.valid
}

// Text returns the text of v and true, or "" and false when v is null.
func (v Value) Text() (string, bool) {
	return v.text, v.valid
}

// Ptr returns a pointer to a copy of the text, or nil when v is null.
func (v Value) Ptr() *string {
	if !v.valid {
		return nil
	}
	s := v.text
	return &s
}

// String returns the text of v; null renders as "<null>".
func (v Value) String() string {
	if !v.valid {
		return "<null>"
	}
	return v.text
}

// GoString renders v as the constructor call that produces it.
func (v Value) GoString() string {
	if !v.valid {
		return "rsv.Null()"
	}
	return "rsv.Text(" + strconv.Quote(v.text) + ")"
}

// Equal reports whether r and other hold the same values in the same order.
// A nil Row equals an empty one.
func (r Row) Equal(other Row) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		if r[i] != other[i] {
			return false
		}
	}
	return true
}

// Equal reports whether d and other hold equal rows in the same order.
// A nil Document equals an empty one.
func (d Document) Equal(other Document) bool {
	if len(d) != len(other) {
		return false
	}
	for i := range d {
		if !d[i].Equal(other[i]) {
			return false
		}
	}
	return true
}
