package formatter

// Writer is a bounded write cursor over a caller-owned buffer. It never
// writes past the buffer: one byte is always reserved for the 0 sentinel
// placed by Finish, and appends beyond that point are silently dropped.
//
// Writer deliberately does not implement io.Writer, whose contract does
// not allow short writes without an error.
type Writer struct {
	buf []byte
	n   int
}

// NewWriter returns a Writer over dst. The capacity is len(dst).
func NewWriter(dst []byte) *Writer {
	return &Writer{buf: dst}
}

// limit is the number of characters the buffer can hold before the sentinel
func (w *Writer) limit() int {
	if len(w.buf) == 0 {
		return 0
	}
	return len(w.buf) - 1
}

// AppendByte appends c if there is room
func (w *Writer) AppendByte(c byte) {
	if w.n < w.limit() {
		w.buf[w.n] = c
		w.n++
	}
}

// AppendString appends as much of s as fits and returns the count placed
func (w *Writer) AppendString(s string) int {
	if w.n >= w.limit() {
		return 0
	}
	n := copy(w.buf[w.n:w.limit()], s)
	w.n += n
	return n
}

// Append appends as much of p as fits and returns the count placed
func (w *Writer) Append(p []byte) int {
	if w.n >= w.limit() {
		return 0
	}
	n := copy(w.buf[w.n:w.limit()], p)
	w.n += n
	return n
}

// Len returns the number of characters placed so far
func (w *Writer) Len() int { return w.n }

// Cap returns the destination capacity, sentinel included
func (w *Writer) Cap() int { return len(w.buf) }

// Full reports whether further appends will be dropped
func (w *Writer) Full() bool { return w.n >= w.limit() }

// Finish writes the 0 sentinel right after the content and returns the
// number of characters placed, sentinel excluded. A zero-capacity buffer
// gets no sentinel.
func (w *Writer) Finish() int {
	if len(w.buf) > 0 {
		w.buf[w.n] = 0
	}
	return w.n
}

// Bytes returns the content placed so far, without the sentinel
func (w *Writer) Bytes() []byte { return w.buf[:w.n] }

// String returns a copy of the content placed so far
func (w *Writer) String() string { return string(w.buf[:w.n]) }

// Reset rewinds the cursor to the start of the buffer
func (w *Writer) Reset() { w.n = 0 }
