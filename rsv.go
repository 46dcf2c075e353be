// # RSV: Rows of String Values for Go
//
// RSV is a binary format for tabular data in the spirit of CSV, without any escaping. Values are
// UTF-8 text, and the delimiters are bytes that can never appear in valid UTF-8, so a value's bytes
// are written exactly as they are. See https://github.com/Stenway/RSV-Specification.
//
// # Format
//
// Every value ends with ValueTerminator (0xFF) and every row ends with RowTerminator (0xFD). A value
// whose only content is NullMarker (0xFE) is null; a value with no content is the empty string. A
// document is zero or more complete rows and nothing else.
//
//	"Hello" "world"          -> Hello FF world FF FD
//	"asdf"  null     ""      -> asdf FF FE FF FF FD
//
// # Features
//
// - One-shot helpers: `Encode`, `Decode`, and the zero-copy `DecodeBorrowed`.
// - Row-at-a-time `Reader` over an in-memory document with optional borrowing, record reuse, and width enforcement.
// - Buffered `Writer` for streaming rows to any `io.Writer`.
// - `Value` models null explicitly, so null and "" never collapse into each other.
// - Structured error reporting via `ParseError`, `EncodeError`, and the `Err*` sentinels.
//
// # Borrowed decoding
//
// DecodeBorrowed and Reader.Borrow return strings that share memory with the input slice. The input
// must not be modified while any of those strings are in use.
package rsv

// Reserved bytes. None of them can occur anywhere in well-formed UTF-8.
const (
	// RowTerminator ends a row.
	RowTerminator byte = 0xFD
	// NullMarker is the sole content of a null value.
	NullMarker byte = 0xFE
	// ValueTerminator ends a value.
	ValueTerminator byte = 0xFF
)
