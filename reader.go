package rsv

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"unicode/utf8"
	"unsafe"
)

var (
	// ErrMalformedUTF8 is returned when a value's bytes are not valid UTF-8.
	ErrMalformedUTF8 = errors.New("rsv: value contains invalid UTF-8")
	// ErrTruncatedDocument is returned when the input ends without a final row terminator.
	ErrTruncatedDocument = errors.New("rsv: unexpected end of input, expected a row terminator")
	// ErrUnterminatedValue is returned when a row terminator follows value bytes that were never terminated.
	ErrUnterminatedValue = errors.New("rsv: unexpected end of row, expected a value terminator")
	// ErrFieldCount is returned when a row contains an unexpected number of values.
	ErrFieldCount = errors.New("rsv: wrong number of fields")
)

// ParseError contains location information for RSV decoding errors.
// Row and Field are 1-based; Field is zero when the error concerns the row as a whole.
// Offset is the byte offset in the input where the offending value (or row) starts.
type ParseError struct {
	Row    int
	Field  int
	Offset int64
	Err    error
}

// Error formats the parse error message with the stored location and Err values.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field == 0 {
		return fmt.Sprintf("rsv: parse error on row %d, offset %d: %v", e.Row, e.Offset, e.Err)
	}
	return fmt.Sprintf("rsv: parse error on row %d, field %d, offset %d: %v", e.Row, e.Field, e.Offset, e.Err)
}

// Unwrap returns the underlying Err so ParseError participates in errors.Unwrap.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Decode parses a complete RSV document. Every text value is copied out of data,
// so the result stays valid if data is modified afterwards.
//
// Decode never returns a partial document: on error the Document is nil.
func Decode(data []byte) (Document, error) {
	return NewReader(data).ReadAll()
}

// DecodeBorrowed parses a complete RSV document like Decode, but text values share
// memory with data instead of being copied. data must not be modified for as long
// as the returned Document, or any string taken from it, is in use.
func DecodeBorrowed(data []byte) (Document, error) {
	r := NewReader(data)
	r.Borrow = true
	return r.ReadAll()
}

// Reader decodes rows from an in-memory RSV document one at a time.
type Reader struct {
	data []byte

	// Borrow makes text values share memory with the input instead of copying each row.
	// The input must stay unmodified while borrowed values are in use.
	Borrow bool
	// ReuseRecord indicates whether Read should reuse the backing array of the returned Row.
	ReuseRecord bool
	// FieldsPerRecord, when positive, requires every row to contain exactly this many values.
	// Zero or negative disables the check.
	FieldsPerRecord int

	pos      int
	row      int
	finished bool
	record   Row
}

// NewReader creates a Reader over data. The slice is read in place and is never modified.
func NewReader(data []byte) *Reader {
	return &Reader{
		data:   data,
		record: make(Row, 0, 16),
	}
}

// Reset points the reader at a new document, keeping the configuration fields.
func (r *Reader) Reset(data []byte) {
	r.data = data
	r.pos = 0
	r.row = 0
	r.finished = false
}

// InputOffset returns the byte offset of the next unread row.
func (r *Reader) InputOffset() int64 {
	if r == nil {
		return 0
	}
	return int64(r.pos)
}

// Read decodes the next row. It returns io.EOF once the document is exhausted.
// Any error other than ErrFieldCount finishes the reader; later calls return io.EOF.
// With ErrFieldCount the row is returned alongside the error and reading may continue.
func (r *Reader) Read() (Row, error) {
	if r == nil || r.finished || r.pos >= len(r.data) {
		return nil, io.EOF
	}

	start := r.pos
	rest := r.data[start:]
	end := bytes.IndexByte(rest, RowTerminator)
	truncated := end < 0
	if truncated {
		end = len(rest)
	}
	span := rest[:end]
	r.row++

	if r.ReuseRecord {
		r.record = r.record[:0]
	} else {
		r.record = make(Row, 0, bytes.Count(span, []byte{ValueTerminator}))
	}

	// Values are substrings of a single string covering the whole row.
	text := r.rowString(span)
	valueStart := 0
	for valueStart < len(span) {
		n := bytes.IndexByte(span[valueStart:], ValueTerminator)
		if n < 0 {
			if truncated {
				return nil, r.fail(start+valueStart, len(r.record)+1, ErrTruncatedDocument)
			}
			return nil, r.fail(start+valueStart, len(r.record)+1, ErrUnterminatedValue)
		}
		value := span[valueStart : valueStart+n]
		switch {
		case n == 1 && value[0] == NullMarker:
			r.record = append(r.record, Null())
		case !utf8.Valid(value):
			return nil, r.fail(start+valueStart, len(r.record)+1, ErrMalformedUTF8)
		default:
			r.record = append(r.record, Text(text[valueStart:valueStart+n]))
		}
		valueStart += n + 1
	}
	if truncated {
		return nil, r.fail(len(r.data), 0, ErrTruncatedDocument)
	}

	r.pos = start + end + 1
	if r.FieldsPerRecord > 0 && len(r.record) != r.FieldsPerRecord {
		return r.record, &ParseError{Row: r.row, Offset: int64(start), Err: ErrFieldCount}
	}
	return r.record, nil
}

// ReadAll decodes every remaining row. It returns nil records on error.
// ReuseRecord is ignored so that every returned row has its own backing array.
func (r *Reader) ReadAll() (records Document, err error) {
	if r == nil || r.finished {
		return nil, nil
	}
	defer func(reuse bool) { r.ReuseRecord = reuse }(r.ReuseRecord)
	r.ReuseRecord = false

	records = make(Document, 0, bytes.Count(r.data[r.pos:], []byte{RowTerminator}))
	for {
		record, err := r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}

// All returns an iterator over the remaining rows. Iteration stops after the first error is yielded.
func (r *Reader) All() iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		for {
			row, err := r.Read()
			if err == io.EOF {
				return
			}
			if !yield(row, err) || err != nil {
				return
			}
		}
	}
}

// rowString returns span as a string, aliasing the input when Borrow is set.
func (r *Reader) rowString(span []byte) string {
	if len(span) == 0 {
		return ""
	}
	if r.Borrow {
		return unsafe.String(unsafe.SliceData(span), len(span))
	}
	return string(span)
}

// fail finishes the reader and wraps err with the current row and the given field and offset.
func (r *Reader) fail(offset, field int, err error) error {
	r.finished = true
	return &ParseError{Row: r.row, Field: field, Offset: int64(offset), Err: err}
}
