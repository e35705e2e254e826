package ingest

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Shape identifies how an export file lays out its article records.
type Shape int

const (
	ShapeUnknown Shape = iota
	// ShapeFlatList is a top-level array of records.
	ShapeFlatList
	// ShapeWrapped is an object holding the array under one known key.
	ShapeWrapped
	// ShapeNested is an object holding the array under data.all.
	ShapeNested
)

func (s Shape) String() string {
	switch s {
	case ShapeFlatList:
		return "flat_list"
	case ShapeWrapped:
		return "wrapped"
	case ShapeNested:
		return "nested"
	default:
		return "unknown"
	}
}

// WrapperKeys are the object keys checked for ShapeWrapped, in order.
var WrapperKeys = []string{"data", "data-all", "items"}

// Envelope is the detected shape of one export file and the records it holds.
// Path is the gjson path of the record array; it is empty for ShapeFlatList
// and ShapeUnknown.
type Envelope struct {
	Shape   Shape
	Path    string
	Records []gjson.Result
}

// Detect inspects raw JSON and resolves its shape. Invalid JSON is an error;
// valid JSON of an unrecognized layout yields ShapeUnknown with no records.
func Detect(raw []byte) (Envelope, error) {
	if !gjson.ValidBytes(raw) {
		return Envelope{}, fmt.Errorf("invalid JSON document")
	}

	doc := gjson.ParseBytes(raw)
	switch {
	case doc.IsArray():
		return Envelope{Shape: ShapeFlatList, Records: doc.Array()}, nil

	case doc.IsObject():
		if nested := doc.Get("data.all"); doc.Get("data").IsObject() && nested.IsArray() {
			return Envelope{Shape: ShapeNested, Path: "data.all", Records: nested.Array()}, nil
		}
		for _, key := range WrapperKeys {
			if v := doc.Get(key); v.IsArray() {
				return Envelope{Shape: ShapeWrapped, Path: key, Records: v.Array()}, nil
			}
		}
	}

	return Envelope{Shape: ShapeUnknown}, nil
}
