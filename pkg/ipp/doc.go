// Package ipp decodes the attribute section of a binary IPP message into
// an inspectable Document.
//
// The attribute section is a flat tag-length-value stream: delimiter tags
// open attribute groups (operation, job, printer) or terminate the section,
// and value tags introduce a single attribute encoded as
//
//	value-tag (1 byte)
//	name-length (2 bytes, big-endian) name
//	value-length (2 bytes, big-endian) value
//
// Consecutive entries of the same value type whose name length is zero are
// additional values of the preceding attribute, and are folded into it as an
// ordered list.
//
// # Basic Usage
//
//	doc, err := ipp.Decode(data)
//	if err != nil {
//		// data was rejected; no partial document is available
//	}
//	out, err := json.Marshal(doc)
//
// The decode is all-or-nothing: a caller receives either a complete
// Document, finalized by the end-of-attributes tag, or a *DecodeError that
// identifies the offending byte and offset and unwraps to one of the
// package's sentinel errors.
//
// # Scope
//
// This package covers only the attribute stream: there is no message
// framing (version, operation code, request id), no encoder path, and no
// semantic validation of values against the ranges IPP assigns them. Two
// quirks of the original capture tooling are kept on purpose: integer and
// enum values decode as unsigned 32-bit quantities, and reopening a group
// discards the attributes it already held.
package ipp
