package ipp

import (
	"encoding/binary"
	"fmt"
)

// cursor is a bounds-checked sequential reader over a raw message.
// All multi-byte reads are big-endian. The offset only ever advances,
// and every shortfall is reported as ErrOutOfBounds with the offset at
// which the read was attempted.
type cursor struct {
	data []byte
	off  int
}

func (c *cursor) remaining() int {
	return len(c.data) - c.off
}

func (c *cursor) done() bool {
	return c.off >= len(c.data)
}

func (c *cursor) readByte() (byte, error) {
	if c.remaining() < 1 {
		return 0, c.outOfBounds(1)
	}
	b := c.data[c.off]
	c.off++
	return b, nil
}

// readLength reads a 2-byte big-endian length field.
func (c *cursor) readLength() (int, error) {
	if c.remaining() < 2 {
		return 0, c.outOfBounds(2)
	}
	n := binary.BigEndian.Uint16(c.data[c.off:])
	c.off += 2
	return int(n), nil
}

// readFixed returns the next n bytes. The returned slice aliases the
// message; callers that retain it must copy.
func (c *cursor) readFixed(n int) ([]byte, error) {
	if c.remaining() < n {
		return nil, c.outOfBounds(n)
	}
	b := c.data[c.off : c.off+n]
	c.off += n
	return b, nil
}

func (c *cursor) outOfBounds(n int) error {
	return &DecodeError{
		Offset: c.off,
		Kind:   ErrOutOfBounds,
		Reason: fmt.Sprintf("need %d bytes, only %d remain", n, c.remaining()),
	}
}
