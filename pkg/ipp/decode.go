package ipp

import "fmt"

// Decode parses the attribute section of an IPP message.
//
// Decoding stops at the first end-of-attributes tag; any trailing bytes are
// ignored. The decode is all-or-nothing: on any malformed input the
// returned Document is nil and the error is a *DecodeError wrapping one of
// the package sentinels.
func Decode(data []byte) (*Document, error) {
	w := walker{cur: cursor{data: data}, doc: &Document{}}
	return w.run()
}

// walker drives the decode: it classifies each tag, hands value decoding to
// the per-type decoders, and applies the multi-value fold rule.
type walker struct {
	cur cursor
	doc *Document

	group   GroupName // active group, valid when inGroup
	inGroup bool

	// prevType is the value type of the preceding attribute entry in the
	// active group. It is the left side of the fold comparison and is
	// cleared whenever a delimiter opens a group.
	prevType ValueType
	hasPrev  bool
}

func (w *walker) run() (*Document, error) {
	for !w.cur.done() {
		b, err := w.cur.readByte()
		if err != nil {
			return nil, err
		}

		t := Tag(b)
		if t.IsDelimiter() {
			name, end, err := ClassifyDelimiter(t)
			if err != nil {
				return nil, err
			}
			if end {
				return w.doc, nil
			}
			w.doc.startGroup(name)
			w.group = name
			w.inGroup = true
			w.hasPrev = false
			continue
		}

		if err := w.attribute(t); err != nil {
			return nil, err
		}
	}

	return nil, &DecodeError{
		Offset: w.cur.off,
		Kind:   ErrUnterminatedMessage,
		Reason: "message ends before the end-of-attributes tag",
	}
}

// attribute consumes one tag-name-value entry. t has already been read and
// is known not to be a delimiter.
func (w *walker) attribute(t Tag) error {
	tagOffset := w.cur.off - 1

	vt, err := ClassifyValueType(t)
	if err != nil {
		if de, ok := err.(*DecodeError); ok {
			de.Offset = tagOffset
		}
		return err
	}

	if !w.inGroup {
		return &DecodeError{
			Offset: tagOffset,
			Kind:   ErrValueBeforeGroup,
			Reason: fmt.Sprintf("%s value before any group delimiter", vt),
		}
	}

	nameLength, err := w.cur.readLength()
	if err != nil {
		return err
	}
	nameBytes, err := w.cur.readFixed(nameLength)
	if err != nil {
		return err
	}
	name := byteString(nameBytes)

	valueLength, err := w.cur.readLength()
	if err != nil {
		return err
	}
	value, err := decodeValue(&w.cur, vt, valueLength)
	if err != nil {
		return err
	}

	// An unnamed entry of the same type as its predecessor is another
	// value of that attribute, not a new one.
	if w.hasPrev && w.prevType == vt && nameLength == 0 {
		w.doc.foldIntoLast(w.group, value)
	} else {
		w.doc.appendAttribute(w.group, Attribute{Type: vt, Name: string(name), Value: value})
	}

	w.prevType = vt
	w.hasPrev = true
	return nil
}
