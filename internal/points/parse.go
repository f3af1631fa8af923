package points

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// object is one JSON object level. Keys are matched exactly, so "SIZE" does not
// satisfy "size" the way encoding/json struct decoding would.
type object map[string]json.RawMessage

// Parse decodes a points document. All fields are required and unknown fields are
// ignored. Any malformed record fails the whole dataset with a *ParseError.
func Parse(data []byte) (*Dataset, error) {
	var doc object
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, wrapDecodeError("", err)
	}
	rawPoints, err := doc.field("", "points")
	if err != nil {
		return nil, err
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(rawPoints, &raws); err != nil {
		return nil, wrapDecodeError("points", err)
	}
	ds := &Dataset{Points: make([]Point, 0, len(raws))}
	for i, raw := range raws {
		prefix := fmt.Sprintf("points[%d]", i)
		p, err := parsePoint(prefix, raw)
		if err != nil {
			return nil, err
		}
		ds.Points = append(ds.Points, p)
	}
	return ds, nil
}

func parsePoint(prefix string, raw json.RawMessage) (Point, error) {
	if isNull(raw) {
		return Point{}, &ParseError{Field: prefix, Err: ErrMissingField}
	}
	rp, err := decodeObject(prefix, raw)
	if err != nil {
		return Point{}, err
	}
	color, err := rp.sub(prefix, "color")
	if err != nil {
		return Point{}, err
	}
	location, err := rp.sub(prefix, "location")
	if err != nil {
		return Point{}, err
	}
	var p Point
	if p.Highlight, err = rp.flag(prefix, "highlight"); err != nil {
		return Point{}, err
	}
	if p.Size, err = rp.number(prefix, "size"); err != nil {
		return Point{}, err
	}

	cp := join(prefix, "color")
	for _, f := range []struct {
		key string
		dst *float32
	}{{"r", &p.Color.R}, {"g", &p.Color.G}, {"b", &p.Color.B}, {"a", &p.Color.A}} {
		if *f.dst, err = color.number(cp, f.key); err != nil {
			return Point{}, err
		}
	}
	lp := join(prefix, "location")
	for _, f := range []struct {
		key string
		dst *float32
	}{{"x", &p.Location.X}, {"y", &p.Location.Y}, {"z", &p.Location.Z}} {
		if *f.dst, err = location.number(lp, f.key); err != nil {
			return Point{}, err
		}
	}
	return p, nil
}

func decodeObject(path string, raw json.RawMessage) (object, error) {
	var o object
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, wrapDecodeError(path, err)
	}
	return o, nil
}

// field returns the raw value under key. Absent keys and explicit nulls are missing.
func (o object) field(path, key string) (json.RawMessage, error) {
	raw, ok := o[key]
	if !ok || isNull(raw) {
		return nil, missing(path, key)
	}
	return raw, nil
}

func (o object) sub(path, key string) (object, error) {
	raw, err := o.field(path, key)
	if err != nil {
		return nil, err
	}
	return decodeObject(join(path, key), raw)
}

func (o object) number(path, key string) (float32, error) {
	raw, err := o.field(path, key)
	if err != nil {
		return 0, err
	}
	var v float32
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, wrapDecodeError(join(path, key), err)
	}
	return v, nil
}

func (o object) flag(path, key string) (bool, error) {
	raw, err := o.field(path, key)
	if err != nil {
		return false, err
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return false, wrapDecodeError(join(path, key), err)
	}
	return v, nil
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func missing(path, key string) error {
	return &ParseError{Field: join(path, key), Err: ErrMissingField}
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// wrapDecodeError maps encoding/json errors onto ParseError, joining the JSON
// path reported by the decoder onto prefix.
func wrapDecodeError(prefix string, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		switch {
		case prefix == "":
		case field == "":
			field = prefix
		default:
			field = prefix + "." + field
		}
		return &ParseError{Field: field, Err: fmt.Errorf("%w: got %s", ErrWrongType, typeErr.Value)}
	}
	return &ParseError{Field: prefix, Err: fmt.Errorf("%w: %v", ErrInvalidJSON, err)}
}
