package ipp

import (
	"encoding/json"
	"fmt"
)

// Value is one decoded attribute value.
//
// The concrete types form a closed set: String, Integer, Boolean, Bytes,
// Resolution, Range, and List (the result of folding a multi-valued
// attribute). Each renders to the JSON form the capture tooling emits.
type Value interface {
	isValue()
}

// String is a text-like value. Each byte of the wire form maps to one
// character code; there is no multi-byte text decoding.
type String string

// Integer is an integer or enum value. It is deliberately unsigned: the
// wire bytes are accumulated big-endian without sign extension, even though
// IPP defines these values as signed.
type Integer uint32

// Boolean is a boolean value, true for any nonzero wire byte.
type Boolean bool

// Bytes is a raw byte-array value (octetString, dateTime). It renders in
// JSON as an array of numbers, not a base64 string.
type Bytes []byte

// Resolution is a resolution value: two 32-bit resolutions and a units
// byte. It renders in JSON as [x, y, units].
type Resolution struct {
	X     uint32
	Y     uint32
	Units uint8
}

// Range is a rangeOfInteger value. It renders in JSON as [lower, upper].
type Range struct {
	Lower uint32
	Upper uint32
}

// List is the ordered values of a folded multi-valued attribute.
type List []Value

func (String) isValue()     {}
func (Integer) isValue()    {}
func (Boolean) isValue()    {}
func (Bytes) isValue()      {}
func (Resolution) isValue() {}
func (Range) isValue()      {}
func (List) isValue()       {}

func (b Bytes) MarshalJSON() ([]byte, error) {
	out := make([]uint16, len(b))
	for i, v := range b {
		out[i] = uint16(v)
	}
	return json.Marshal(out)
}

func (r Resolution) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]uint32{r.X, r.Y, uint32(r.Units)})
}

func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]uint32{r.Lower, r.Upper})
}

// Fixed wire sizes for the fixed-size value types.
const (
	booleanSize    = 1
	integerSize    = 4
	rangeSize      = 8
	resolutionSize = 9
)

// decodeValue reads one value of the given type and declared length.
// Fixed-size types reject a mismatched length before any bytes are read.
func decodeValue(c *cursor, vt ValueType, length int) (Value, error) {
	switch vt {
	case TypeInteger, TypeEnum:
		if err := requireLength(c, vt, length, integerSize); err != nil {
			return nil, err
		}
		return decodeInteger(c)

	case TypeBoolean:
		if err := requireLength(c, vt, length, booleanSize); err != nil {
			return nil, err
		}
		b, err := c.readByte()
		if err != nil {
			return nil, err
		}
		return Boolean(b != 0), nil

	case TypeOctetString, TypeDateTime:
		b, err := c.readFixed(length)
		if err != nil {
			return nil, err
		}
		return Bytes(append([]byte(nil), b...)), nil

	case TypeResolution:
		if err := requireLength(c, vt, length, resolutionSize); err != nil {
			return nil, err
		}
		x, err := decodeInteger(c)
		if err != nil {
			return nil, err
		}
		y, err := decodeInteger(c)
		if err != nil {
			return nil, err
		}
		units, err := c.readByte()
		if err != nil {
			return nil, err
		}
		return Resolution{X: uint32(x), Y: uint32(y), Units: units}, nil

	case TypeRange:
		if err := requireLength(c, vt, length, rangeSize); err != nil {
			return nil, err
		}
		lower, err := decodeInteger(c)
		if err != nil {
			return nil, err
		}
		upper, err := decodeInteger(c)
		if err != nil {
			return nil, err
		}
		return Range{Lower: uint32(lower), Upper: uint32(upper)}, nil

	case TypeNoValue, TypeBegCollection, TypeEndCollection, TypeText,
		TypeName, TypeKeyword, TypeURI, TypeURIScheme, TypeCharset,
		TypeLanguage, TypeMimeType, TypeMemberName:
		b, err := c.readFixed(length)
		if err != nil {
			return nil, err
		}
		return byteString(b), nil
	}

	return nil, &DecodeError{
		Offset: c.off,
		Kind:   ErrUnsupportedValueTag,
		Reason: fmt.Sprintf("no decoder for value type %s", vt),
	}
}

// decodeInteger reads a 4-byte big-endian value without sign extension.
func decodeInteger(c *cursor) (Integer, error) {
	b, err := c.readFixed(integerSize)
	if err != nil {
		return 0, err
	}
	var v uint32
	for _, x := range b {
		v = v<<8 | uint32(x)
	}
	return Integer(v), nil
}

func requireLength(c *cursor, vt ValueType, declared, want int) error {
	if declared == want {
		return nil
	}
	return &DecodeError{
		Offset: c.off,
		Kind:   ErrInvalidFixedLength,
		Reason: fmt.Sprintf("%s value must be %d bytes, declared length is %d", vt, want, declared),
	}
}

// byteString maps each byte to one character code, the way the capture
// tooling renders wire text. Bytes above 0x7f become the code points
// U+0080..U+00FF rather than being interpreted as UTF-8.
func byteString(b []byte) String {
	rs := make([]rune, len(b))
	for i, c := range b {
		rs[i] = rune(c)
	}
	return String(rs)
}
