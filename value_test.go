package rsv

import (
	"fmt"
	"testing"
)

func TestValueAccessors(t *testing.T) {
	t.Parallel()

	if !Null().IsNull() || !(Value{}).IsNull() {
		t.Fatalf("Null() and the zero Value should be null")
	}
	if Text("").IsNull() {
		t.Fatalf("Text(\"\") should not be null")
	}
	if Null() == Text("") {
		t.Fatalf("Null() must differ from Text(\"\")")
	}

	if s, ok := Text("abc").Text(); !ok || s != "abc" {
		t.Fatalf("Text().Text() = %q, %v", s, ok)
	}
	if s, ok := Null().Text(); ok || s != "" {
		t.Fatalf("Null().Text() = %q, %v", s, ok)
	}
}

func TestValuePointers(t *testing.T) {
	t.Parallel()

	if Null().Ptr() != nil {
		t.Fatalf("Null().Ptr() should be nil")
	}
	p := Text("x").Ptr()
	if p == nil || *p != "x" {
		t.Fatalf("Text(\"x\").Ptr() = %v", p)
	}

	if !FromPtr(nil).IsNull() {
		t.Fatalf("FromPtr(nil) should be null")
	}
	s := ""
	if FromPtr(&s) != Text("") {
		t.Fatalf("FromPtr(&\"\") should be Text(\"\")")
	}
}

func TestValueFormatting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value Value
		str   string
		goStr string
	}{
		{value: Null(), str: "<null>", goStr: "rsv.Null()"},
		{value: Text(""), str: "", goStr: `rsv.Text("")`},
		{value: Text("a\"b"), str: "a\"b", goStr: `rsv.Text("a\"b")`},
	}

	for _, tc := range tests {
		if got := tc.value.String(); got != tc.str {
			t.Fatalf("String() = %q, want %q", got, tc.str)
		}
		if got := fmt.Sprintf("%#v", tc.value); got != tc.goStr {
			t.Fatalf("%%#v = %q, want %q", got, tc.goStr)
		}
	}
}

func TestDocumentEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Document
		want bool
	}{
		{name: "nilAndEmpty", a: nil, b: Document{}, want: true},
		{name: "emptyRows", a: Document{nil}, b: Document{{}}, want: true},
		{name: "nullVersusEmpty", a: Document{{Null()}}, b: Document{{Text("")}}, want: false},
		{name: "emptyRowVersusEmptyString", a: Document{{}}, b: Document{{Text("")}}, want: false},
		{name: "rowCount", a: Document{{}}, b: Document{{}, {}}, want: false},
		{name: "same", a: Document{RowOf("a"), {Null()}}, b: Document{RowOf("a"), {Null()}}, want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Fatalf("Equal() = %v, want %v", got, tc.want)
			}
		})
	}
}
