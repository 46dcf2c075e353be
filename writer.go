package rsv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

const defaultBufferSize = 1 << 10 // 1024 bytes

var (
	// ErrInvalidInput is returned when a text value is not valid UTF-8 and so cannot be encoded.
	// Reserved bytes are never valid UTF-8, so this also covers values containing them.
	ErrInvalidInput = errors.New("rsv: text value is not valid UTF-8")

	errNilWriter      = errors.New("rsv: writer is nil")
	errWriterNoTarget = errors.New("rsv: writer destination cannot be nil")
)

// EncodeError reports the location of a value that could not be encoded.
// Row and Field are 1-based.
type EncodeError struct {
	Row   int
	Field int
	Err   error
}

// Error formats the encode error message with the stored location and Err values.
func (e *EncodeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("rsv: encode error on row %d, field %d: %v", e.Row, e.Field, e.Err)
}

// Unwrap returns the underlying Err so EncodeError participates in errors.Unwrap.
func (e *EncodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Encode serialises doc into a new buffer. An empty document encodes to an empty buffer.
// The only failure is ErrInvalidInput, wrapped in an *EncodeError.
func Encode(doc Document) ([]byte, error) {
	size := encodedSize(doc)
	if size == 0 {
		return nil, nil
	}
	buf := make([]byte, 0, size)
	for i, row := range doc {
		if field := invalidField(row); field != 0 {
			return nil, &EncodeError{Row: i + 1, Field: field, Err: ErrInvalidInput}
		}
		buf = appendRow(buf, row)
	}
	return buf, nil
}

// AppendRow appends the encoding of row to dst and returns the extended buffer.
// The row is validated before anything is appended, so on error dst is returned unchanged
// and the EncodeError's Row is zero.
func AppendRow(dst []byte, row Row) ([]byte, error) {
	if field := invalidField(row); field != 0 {
		return dst, &EncodeError{Field: field, Err: ErrInvalidInput}
	}
	return appendRow(dst, row), nil
}

// Writer streams RSV rows to an io.Writer through an internal buffer.
type Writer struct {
	dst  *bufio.Writer
	rows int
	err  error
}

// NewWriter creates a new Writer with internal buffering tuned for bulk writes.
func NewWriter(w io.Writer) *Writer {
	if w == nil {
		panic(errWriterNoTarget.Error())
	}
	return &Writer{
		dst: bufio.NewWriterSize(w, defaultBufferSize),
	}
}

// Reset updates the underlying writer and clears any stored error.
func (w *Writer) Reset(dst io.Writer) {
	if w == nil {
		panic(errNilWriter.Error())
	}
	if dst == nil {
		panic(errWriterNoTarget.Error())
	}
	if w.dst == nil {
		w.dst = bufio.NewWriterSize(dst, defaultBufferSize)
	} else {
		w.dst.Reset(dst)
	}
	w.rows = 0
	w.err = nil
}

// Write emits a single row followed by the row terminator.
//
// A row holding invalid UTF-8 is rejected with an *EncodeError before any of it is written;
// the Writer stays usable afterwards. Errors from the destination are stored and returned
// by every later call.
func (w *Writer) Write(row Row) error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}

	if field := invalidField(row); field != 0 {
		return &EncodeError{Row: w.rows + 1, Field: field, Err: ErrInvalidInput}
	}

	for i := range row {
		if err := w.writeValue(row[i]); err != nil {
			w.err = err
			return err
		}
	}
	if err := w.dst.WriteByte(RowTerminator); err != nil {
		w.err = err
		return err
	}
	w.rows++
	return nil
}

// WriteAll writes every row of doc, stopping at the first error, and flushes the buffer.
func (w *Writer) WriteAll(doc Document) error {
	if w == nil {
		return errNilWriter
	}
	for _, row := range doc {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush flushes pending buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}
	if err := w.dst.Flush(); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Error reports the first error encountered by the writer.
func (w *Writer) Error() error {
	if w == nil {
		return errNilWriter
	}
	return w.err
}

func (w *Writer) writeValue(v Value) error {
	if text, ok := v.Text(); ok {
		if _, err := w.dst.WriteString(text); err != nil {
			return err
		}
	} else if err := w.dst.WriteByte(NullMarker); err != nil {
		return err
	}
	return w.dst.WriteByte(ValueTerminator)
}

func appendRow(dst []byte, row Row) []byte {
	for _, v := range row {
		if text, ok := v.Text(); ok {
			dst = append(dst, text...)
		} else {
			dst = append(dst, NullMarker)
		}
		dst = append(dst, ValueTerminator)
	}
	return append(dst, RowTerminator)
}

// invalidField returns the 1-based index of the first text value in row that is not
// valid UTF-8, or zero when every value can be encoded.
func invalidField(row Row) int {
	for i, v := range row {
		if text, ok := v.Text(); ok && !utf8.ValidString(text) {
			return i + 1
		}
	}
	return 0
}

// encodedSize returns the exact number of bytes Encode produces for doc.
func encodedSize(doc Document) int {
	size := len(doc)
	for _, row := range doc {
		for _, v := range row {
			if text, ok := v.Text(); ok {
				size += len(text) + 1
			} else {
				size += 2
			}
		}
	}
	return size
}
