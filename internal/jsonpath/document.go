// Package jsonpath edits JSON documents addressed by dot-separated key paths.
package jsonpath

import (
	"unicode/utf8"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Width 0 puts every array element on its own line.
var writeOptions = &pretty.Options{
	Width:    0,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// Document is a parsed JSON document. Edits keep the key order of
// everything they do not touch.
type Document struct {
	raw []byte
}

// Parse validates data as UTF-8 encoded JSON.
func Parse(data []byte) (*Document, error) {
	if !utf8.Valid(data) || !gjson.ValidBytes(data) {
		return nil, &SyntaxError{What: "document"}
	}
	raw := make([]byte, len(data))
	copy(raw, data)
	return &Document{raw: raw}, nil
}

// Raw returns the document bytes as currently held.
func (d *Document) Raw() []byte {
	return d.raw
}

// Bytes serializes the document with two-space indentation.
func (d *Document) Bytes() []byte {
	return pretty.PrettyOptions(d.raw, writeOptions)
}

// Location is the object holding the last segment of a path, plus that key.
type Location struct {
	Parent gjson.Result
	Key    string

	path string
}

// Value returns the value stored under the key, if any.
func (l Location) Value() gjson.Result {
	return l.Parent.Get(escape(l.Key))
}

// Exists reports whether the key is present in its parent.
func (l Location) Exists() bool {
	return l.Value().Exists()
}

// Get resolves path. The root and every intermediate segment must be objects.
func (d *Document) Get(path string) (Location, error) {
	segments, err := split(path)
	if err != nil {
		return Location{}, err
	}

	parent := gjson.ParseBytes(d.raw)
	if !parent.IsObject() {
		return Location{}, &PathError{Path: path, Reason: "document root is not an object"}
	}

	last := len(segments) - 1
	for _, seg := range segments[:last] {
		next := parent.Get(escape(seg))
		if !next.Exists() {
			return Location{}, &PathError{Path: path, Segment: seg, Reason: "no such key"}
		}
		if !next.IsObject() {
			return Location{}, &PathError{Path: path, Segment: seg, Reason: "not an object"}
		}
		parent = next
	}

	return Location{Parent: parent, Key: segments[last], path: join(segments)}, nil
}

// Set coerces raw and stores it under path, replacing any previous value.
func (d *Document) Set(path, raw string) error {
	loc, err := d.Get(path)
	if err != nil {
		return err
	}

	value, err := Coerce(raw)
	if err != nil {
		return err
	}

	var out []byte
	switch value.Kind {
	case KindComposite:
		out, err = sjson.SetRawBytes(d.raw, loc.path, value.Raw)
	case KindInteger:
		out, err = sjson.SetBytes(d.raw, loc.path, value.Int)
	default:
		out, err = sjson.SetBytes(d.raw, loc.path, value.Str)
	}
	if err != nil {
		return &PathError{Path: path, Reason: err.Error()}
	}

	d.raw = out
	return nil
}

// Remove deletes the key at path. A missing key is not an error.
func (d *Document) Remove(path string) error {
	loc, err := d.Get(path)
	if err != nil {
		return err
	}
	if !loc.Exists() {
		return nil
	}

	out, err := sjson.DeleteBytes(d.raw, loc.path)
	if err != nil {
		return &PathError{Path: path, Reason: err.Error()}
	}

	d.raw = out
	return nil
}
