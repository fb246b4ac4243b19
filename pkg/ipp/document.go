package ipp

import (
	"bytes"
	"encoding/json"
)

// Attribute is one entry in an attribute group. Name is empty when the
// entry was the continuation of a multi-valued attribute, or when the wire
// name length was zero.
type Attribute struct {
	Type  ValueType `json:"type"`
	Name  string    `json:"name"`
	Value Value     `json:"value"`
}

// Document is the decoded attribute section of an IPP message: an ordered
// mapping from group name to the attributes the group holds.
//
// Groups keep the position of their first delimiter occurrence. Reopening
// a group discards the attributes it already held (last occurrence wins) —
// this mirrors the behavior of the original capture tooling.
type Document struct {
	order  []GroupName
	groups map[GroupName][]Attribute
}

// Groups returns the group names in output order.
func (d *Document) Groups() []GroupName {
	out := make([]GroupName, len(d.order))
	copy(out, d.order)
	return out
}

// Attributes returns the attributes of a group, or ok=false if the group
// never appeared in the message.
func (d *Document) Attributes(name GroupName) (attrs []Attribute, ok bool) {
	attrs, ok = d.groups[name]
	return attrs, ok
}

// MarshalJSON renders the document as
//
//	{"groupName": [{"type": ..., "name": ..., "value": ...}, ...], ...}
//
// with groups in insertion order. encoding/json sorts map keys, so the
// object is assembled by hand.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range d.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(name))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		attrs, err := json.Marshal(d.groups[name])
		if err != nil {
			return nil, err
		}
		buf.Write(attrs)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// startGroup makes name the active group, emptying it if the message
// already opened it once.
func (d *Document) startGroup(name GroupName) {
	if d.groups == nil {
		d.groups = make(map[GroupName][]Attribute)
	}
	if _, ok := d.groups[name]; !ok {
		d.order = append(d.order, name)
	}
	d.groups[name] = []Attribute{}
}

// appendAttribute adds a new entry to a group.
func (d *Document) appendAttribute(name GroupName, a Attribute) {
	d.groups[name] = append(d.groups[name], a)
}

// foldIntoLast appends v to the values of the group's last attribute,
// wrapping a scalar value into a one-element List first. The group must be
// non-empty; the walker guarantees that by only folding after an append.
func (d *Document) foldIntoLast(name GroupName, v Value) {
	attrs := d.groups[name]
	last := &attrs[len(attrs)-1]
	if list, ok := last.Value.(List); ok {
		last.Value = append(list, v)
	} else {
		last.Value = List{last.Value, v}
	}
}
