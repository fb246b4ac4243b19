package ipp

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

// Test message builders. The library has no encoder path, so tests
// assemble wire bytes by hand.

func be16(n int) []byte {
	return []byte{byte(n >> 8), byte(n)}
}

func be32(n uint32) []byte {
	return []byte{byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)}
}

// attr builds one tag / name-length / name / value-length / value entry.
func attr(tag Tag, name string, value []byte) []byte {
	b := []byte{byte(tag)}
	b = append(b, be16(len(name))...)
	b = append(b, name...)
	b = append(b, be16(len(value))...)
	b = append(b, value...)
	return b
}

func msg(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

func marshal(t *testing.T, doc *Document) string {
	t.Helper()
	out, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	return string(out)
}

func TestDecode_SingleInteger(t *testing.T) {
	// 01 21 00 00 00 04 00 00 00 2a 03
	data := []byte{0x01, 0x21, 0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x2a, 0x03}
	doc, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := marshal(t, doc)
	want := `{"operationAttributes":[{"type":"integer","name":"","value":42}]}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestDecode_EmptyGroup(t *testing.T) {
	doc, err := Decode([]byte{0x01, 0x03})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := marshal(t, doc)
	if got != `{"operationAttributes":[]}` {
		t.Errorf("got %s, want empty operationAttributes group", got)
	}
}

func TestDecode_EndOnly(t *testing.T) {
	doc, err := Decode([]byte{0x03})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := marshal(t, doc); got != `{}` {
		t.Errorf("got %s, want {}", got)
	}
}

func TestDecode_TrailingBytesIgnored(t *testing.T) {
	// Everything after the end-of-attributes tag is ignored, even bytes
	// that would be invalid tags.
	doc, err := Decode([]byte{0x01, 0x03, 0x99, 0xff})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := marshal(t, doc); got != `{"operationAttributes":[]}` {
		t.Errorf("got %s", got)
	}
}

func TestDecode_UnsupportedValueTag(t *testing.T) {
	doc, err := Decode([]byte{0x01, 0x99, 0x00, 0x00, 0x00, 0x00, 0x03})
	if doc != nil {
		t.Errorf("expected nil document, got %v", doc)
	}
	if !errors.Is(err, ErrUnsupportedValueTag) {
		t.Fatalf("expected ErrUnsupportedValueTag, got %v", err)
	}
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DecodeError, got %T", err)
	}
	if de.Offset != 1 {
		t.Errorf("got offset %d, want 1", de.Offset)
	}
}

func TestDecode_ValueBeforeGroup(t *testing.T) {
	data := attr(TagInteger, "copies", be32(1))
	_, err := Decode(data)
	if !errors.Is(err, ErrValueBeforeGroup) {
		t.Fatalf("expected ErrValueBeforeGroup, got %v", err)
	}
}

func TestDecode_Unterminated(t *testing.T) {
	cases := [][]byte{
		{0x01},
		msg([]byte{0x01}, attr(TagInteger, "copies", be32(1))),
		msg([]byte{0x01}, attr(TagKeyword, "sides", []byte("two-sided"))),
	}
	for _, data := range cases {
		_, err := Decode(data)
		if !errors.Is(err, ErrUnterminatedMessage) {
			t.Errorf("Decode(% x): expected ErrUnterminatedMessage, got %v", data, err)
		}
	}
}

func TestDecode_FoldTwoValues(t *testing.T) {
	data := msg(
		[]byte{0x01},
		attr(TagInteger, "numbers", be32(5)),
		attr(TagInteger, "", be32(7)),
		[]byte{0x03},
	)
	doc, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	attrs, ok := doc.Attributes(OperationAttributes)
	if !ok || len(attrs) != 1 {
		t.Fatalf("expected 1 attribute, got %d", len(attrs))
	}
	want := List{Integer(5), Integer(7)}
	got, ok := attrs[0].Value.(List)
	if !ok {
		t.Fatalf("expected List value, got %T", attrs[0].Value)
	}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDecode_FoldThirdValueExtends(t *testing.T) {
	data := msg(
		[]byte{0x01},
		attr(TagInteger, "numbers", be32(5)),
		attr(TagInteger, "", be32(7)),
		attr(TagInteger, "", be32(9)),
		[]byte{0x03},
	)
	doc, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := marshal(t, doc)
	want := `{"operationAttributes":[{"type":"integer","name":"numbers","value":[5,7,9]}]}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestDecode_NoFoldWhenNamed(t *testing.T) {
	data := msg(
		[]byte{0x01},
		attr(TagInteger, "copies", be32(5)),
		attr(TagInteger, "job-id", be32(7)),
		[]byte{0x03},
	)
	doc, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	attrs, _ := doc.Attributes(OperationAttributes)
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(attrs))
	}
}

func TestDecode_NoFoldWhenTypeChanges(t *testing.T) {
	// enum and integer share a wire shape but are distinct types, so an
	// unnamed enum after an integer starts a new attribute.
	data := msg(
		[]byte{0x01},
		attr(TagInteger, "copies", be32(5)),
		attr(TagEnum, "", be32(7)),
		[]byte{0x03},
	)
	doc, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	attrs, _ := doc.Attributes(OperationAttributes)
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(attrs))
	}
	if attrs[1].Type != TypeEnum || attrs[1].Name != "" {
		t.Errorf("unexpected second attribute: %+v", attrs[1])
	}
}

func TestDecode_NoFoldAcrossGroups(t *testing.T) {
	// The first entry of a new group never folds into the previous
	// group's tail, even when type and name length would match.
	data := msg(
		[]byte{0x01},
		attr(TagInteger, "copies", be32(5)),
		[]byte{0x04},
		attr(TagInteger, "", be32(7)),
		[]byte{0x03},
	)
	doc, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	op, _ := doc.Attributes(OperationAttributes)
	pr, _ := doc.Attributes(PrinterAttributes)
	if len(op) != 1 || len(pr) != 1 {
		t.Fatalf("expected 1 attribute per group, got %d and %d", len(op), len(pr))
	}
	if _, ok := op[0].Value.(List); ok {
		t.Errorf("operation attribute was folded: %v", op[0].Value)
	}
	if pr[0].Value != Integer(7) {
		t.Errorf("got %v, want Integer(7)", pr[0].Value)
	}
}

func TestDecode_ReopenedGroupResets(t *testing.T) {
	// Reopening a group discards what it held but keeps its position.
	data := msg(
		[]byte{0x01},
		attr(TagKeyword, "sides", []byte("one-sided")),
		[]byte{0x02},
		attr(TagInteger, "job-id", be32(9)),
		[]byte{0x01},
		attr(TagKeyword, "media", []byte("a4")),
		[]byte{0x03},
	)
	doc, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := marshal(t, doc)
	want := `{"operationAttributes":[{"type":"keyword","name":"media","value":"a4"}],` +
		`"jobAttributes":[{"type":"integer","name":"job-id","value":9}]}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestDecode_GroupOrderPreserved(t *testing.T) {
	data := msg(
		[]byte{0x04},
		attr(TagKeyword, "sides-supported", []byte("one-sided")),
		[]byte{0x01},
		attr(TagCharset, "attributes-charset", []byte("utf-8")),
		[]byte{0x03},
	)
	doc, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	groups := doc.Groups()
	if len(groups) != 2 || groups[0] != PrinterAttributes || groups[1] != OperationAttributes {
		t.Fatalf("got group order %v", groups)
	}
	got := marshal(t, doc)
	if !bytes.HasPrefix([]byte(got), []byte(`{"printerAttributes":`)) {
		t.Errorf("JSON does not preserve group order: %s", got)
	}
}

func TestDecode_Deterministic(t *testing.T) {
	data := msg(
		[]byte{0x01},
		attr(TagCharset, "attributes-charset", []byte("utf-8")),
		attr(TagInteger, "copies", be32(2)),
		attr(TagInteger, "", be32(3)),
		[]byte{0x04},
		attr(TagResolution, "printer-resolution-default", msg(be32(600), be32(600), []byte{0x03})),
		[]byte{0x03},
	)
	first, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if marshal(t, first) != marshal(t, second) {
		t.Errorf("decoding the same bytes twice produced different documents")
	}
}

func TestDecode_TruncationAlwaysFails(t *testing.T) {
	data := msg(
		[]byte{0x01},
		attr(TagCharset, "attributes-charset", []byte("utf-8")),
		attr(TagInteger, "copies", be32(2)),
		[]byte{0x03},
	)
	// The terminator is the last byte, so every proper prefix must fail.
	for cut := 0; cut < len(data); cut++ {
		if _, err := Decode(data[:cut]); err == nil {
			t.Errorf("Decode of %d-byte prefix succeeded", cut)
		}
	}
}

func TestDecode_TruncatedName(t *testing.T) {
	// Name length promises 6 bytes but only 3 follow.
	data := msg([]byte{0x01, 0x21}, be16(6), []byte("cop"))
	_, err := Decode(data)
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestDecode_TruncatedValue(t *testing.T) {
	// Value length promises 4 bytes but only 2 follow.
	data := msg([]byte{0x01, 0x21}, be16(0), be16(4), []byte{0x00, 0x01})
	_, err := Decode(data)
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DecodeError, got %T", err)
	}
	if de.Offset != 6 {
		t.Errorf("got offset %d, want 6", de.Offset)
	}
}

func TestDecode_TruncatedLengthField(t *testing.T) {
	// Only one byte of the 2-byte name length field is present.
	_, err := Decode([]byte{0x01, 0x21, 0x00})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}
