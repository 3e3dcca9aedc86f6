package iometa

import (
	"fmt"
	"io"
)

// CountingWriter counts the bytes written to Writer and keeps the first error,
// after which further writes are dropped. A run of writes can then be checked
// once with Result.
type CountingWriter struct {
	Writer       io.Writer
	bytesWritten int64
	err          error
}

func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{Writer: w}
}

func (c *CountingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}

	written, err := c.Writer.Write(p)
	c.bytesWritten += int64(written)
	c.err = err

	return written, err
}

func (c *CountingWriter) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c, format, args...)
}

func (c *CountingWriter) Println(s string) {
	_, _ = io.WriteString(c, s+"\n")
}

// Result returns the byte count and the first write error, if any.
func (c *CountingWriter) Result() (int64, error) {
	return c.bytesWritten, c.err
}
