package ipp

import "fmt"

// Tag is a single byte from the attribute section of an IPP message.
//
// Tags come in two disjoint classes: delimiter tags, which open an
// attribute group or end the attribute section, and value tags, which name
// the type of the attribute that follows. Every other byte is invalid.
type Tag byte

// Delimiter tags
const (
	TagOperationGroup Tag = 0x01 // Operation attributes group
	TagJobGroup       Tag = 0x02 // Job attributes group
	TagEnd            Tag = 0x03 // End of attributes
	TagPrinterGroup   Tag = 0x04 // Printer attributes group
)

// Value tags
const (
	TagNoValue       Tag = 0x13
	TagInteger       Tag = 0x21
	TagBoolean       Tag = 0x22
	TagEnum          Tag = 0x23
	TagOctetString   Tag = 0x30
	TagDateTime      Tag = 0x31
	TagResolution    Tag = 0x32
	TagRange         Tag = 0x33
	TagBegCollection Tag = 0x34
	TagEndCollection Tag = 0x37
	TagText          Tag = 0x41
	TagName          Tag = 0x42
	TagKeyword       Tag = 0x44
	TagURI           Tag = 0x45
	TagURIScheme     Tag = 0x46
	TagCharset       Tag = 0x47
	TagLanguage      Tag = 0x48
	TagMimeType      Tag = 0x49
	TagMemberName    Tag = 0x4a
)

// GroupName identifies an attribute group within a Document.
type GroupName string

// The three attribute groups a delimiter tag can open.
const (
	OperationAttributes GroupName = "operationAttributes"
	JobAttributes       GroupName = "jobAttributes"
	PrinterAttributes   GroupName = "printerAttributes"
)

// IsDelimiter reports whether t is one of the four delimiter tags.
func (t Tag) IsDelimiter() bool {
	switch t {
	case TagOperationGroup, TagJobGroup, TagEnd, TagPrinterGroup:
		return true
	}
	return false
}

// ClassifyDelimiter maps a delimiter byte to the group it opens. end is
// true for the end-of-attributes tag, in which case name is empty.
func ClassifyDelimiter(t Tag) (name GroupName, end bool, err error) {
	switch t {
	case TagOperationGroup:
		return OperationAttributes, false, nil
	case TagJobGroup:
		return JobAttributes, false, nil
	case TagPrinterGroup:
		return PrinterAttributes, false, nil
	case TagEnd:
		return "", true, nil
	}
	return "", false, &DecodeError{
		Kind:   ErrUnsupportedDelimiter,
		Reason: fmt.Sprintf("0x%02x is not a supported delimiter tag", byte(t)),
	}
}

// ClassifyValueType maps a value tag byte to the type of the value it
// introduces.
func ClassifyValueType(t Tag) (ValueType, error) {
	switch t {
	case TagNoValue:
		return TypeNoValue, nil
	case TagInteger:
		return TypeInteger, nil
	case TagBoolean:
		return TypeBoolean, nil
	case TagEnum:
		return TypeEnum, nil
	case TagOctetString:
		return TypeOctetString, nil
	case TagDateTime:
		return TypeDateTime, nil
	case TagResolution:
		return TypeResolution, nil
	case TagRange:
		return TypeRange, nil
	case TagBegCollection:
		return TypeBegCollection, nil
	case TagEndCollection:
		return TypeEndCollection, nil
	case TagText:
		return TypeText, nil
	case TagName:
		return TypeName, nil
	case TagKeyword:
		return TypeKeyword, nil
	case TagURI:
		return TypeURI, nil
	case TagURIScheme:
		return TypeURIScheme, nil
	case TagCharset:
		return TypeCharset, nil
	case TagLanguage:
		return TypeLanguage, nil
	case TagMimeType:
		return TypeMimeType, nil
	case TagMemberName:
		return TypeMemberName, nil
	}
	return 0, &DecodeError{
		Kind:   ErrUnsupportedValueTag,
		Reason: fmt.Sprintf("0x%02x is not a supported value tag", byte(t)),
	}
}

// ValueType identifies the decoded form of an attribute value.
type ValueType int

// The recognized value types.
const (
	TypeNoValue ValueType = iota
	TypeInteger
	TypeBoolean
	TypeEnum
	TypeOctetString
	TypeDateTime
	TypeResolution
	TypeRange
	TypeBegCollection
	TypeEndCollection
	TypeText
	TypeName
	TypeKeyword
	TypeURI
	TypeURIScheme
	TypeCharset
	TypeLanguage
	TypeMimeType
	TypeMemberName
)

var typeNames = [...]string{
	TypeNoValue:       "no-value",
	TypeInteger:       "integer",
	TypeBoolean:       "boolean",
	TypeEnum:          "enum",
	TypeOctetString:   "octetString",
	TypeDateTime:      "dateTime",
	TypeResolution:    "resolution",
	TypeRange:         "rangeOfInteger",
	TypeBegCollection: "begCollection",
	TypeEndCollection: "endCollection",
	TypeText:          "textWithoutLanguage",
	TypeName:          "nameWithoutLanguage",
	TypeKeyword:       "keyword",
	TypeURI:           "uri",
	TypeURIScheme:     "uriScheme",
	TypeCharset:       "charset",
	TypeLanguage:      "naturalLanguage",
	TypeMimeType:      "mimeMediaType",
	TypeMemberName:    "memberAttrName",
}

// String returns the type name used in the JSON form of a Document.
func (vt ValueType) String() string {
	if 0 <= int(vt) && int(vt) < len(typeNames) {
		return typeNames[vt]
	}
	return fmt.Sprintf("valuetype(%d)", int(vt))
}

// MarshalText makes ValueType render as its name in JSON output.
func (vt ValueType) MarshalText() ([]byte, error) {
	return []byte(vt.String()), nil
}
