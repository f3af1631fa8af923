package points

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SinglePoint(t *testing.T) {
	data := []byte(`{"points":[{"color":{"r":1,"g":0,"b":0,"a":1},"location":{"x":0,"y":0,"z":0},"highlight":false,"size":2.5}]}`)

	ds, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())

	p := ds.Points[0]
	assert.Equal(t, Color{R: 1, G: 0, B: 0, A: 1}, p.Color)
	assert.Equal(t, Location{}, p.Location)
	assert.Equal(t, float32(2.5), p.Size)
	assert.False(t, p.Highlight)
}

func TestParse_PreservesOrderAndValues(t *testing.T) {
	data := []byte(`{
		"points": [
			{"color":{"r":0.1,"g":0.2,"b":0.3,"a":0.4},"location":{"x":-1.25,"y":2,"z":3.5},"highlight":true,"size":0.75},
			{"color":{"r":0.5,"g":0.6,"b":0.7,"a":0.8},"location":{"x":10,"y":-20,"z":30},"highlight":false,"size":1}
		]
	}`)

	ds, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, ds.Points, 2)

	assert.Equal(t, Point{
		Color:     Color{R: 0.1, G: 0.2, B: 0.3, A: 0.4},
		Location:  Location{X: -1.25, Y: 2, Z: 3.5},
		Size:      0.75,
		Highlight: true,
	}, ds.Points[0])
	assert.Equal(t, Location{X: 10, Y: -20, Z: 30}, ds.Points[1].Location)
	assert.Equal(t, [4]float32{0.5, 0.6, 0.7, 0.8}, ds.Points[1].Color.RGBA())
}

func TestParse_EmptyPoints(t *testing.T) {
	ds, err := Parse([]byte(`{"points":[]}`))
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
}

func TestParse_IgnoresUnknownFields(t *testing.T) {
	data := []byte(`{"name":"tsne","points":[{"id":7,"color":{"r":1,"g":1,"b":1,"a":1,"hex":"#fff"},"location":{"x":1,"y":2,"z":3},"highlight":false,"size":1}]}`)

	ds, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Len())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		field string
		kind  error
	}{
		{
			name:  "size as string",
			data:  `{"points":[{"color":{"r":1,"g":0,"b":0,"a":1},"location":{"x":0,"y":0,"z":0},"highlight":false,"size":"2.5"}]}`,
			field: "points[0].size",
			kind:  ErrWrongType,
		},
		{
			name:  "highlight as number",
			data:  `{"points":[{"color":{"r":1,"g":0,"b":0,"a":1},"location":{"x":0,"y":0,"z":0},"highlight":1,"size":2.5}]}`,
			field: "points[0].highlight",
			kind:  ErrWrongType,
		},
		{
			name:  "missing size",
			data:  `{"points":[{"color":{"r":1,"g":0,"b":0,"a":1},"location":{"x":0,"y":0,"z":0},"highlight":false}]}`,
			field: "points[0].size",
			kind:  ErrMissingField,
		},
		{
			name:  "missing color channel in second point",
			data:  `{"points":[{"color":{"r":1,"g":0,"b":0,"a":1},"location":{"x":0,"y":0,"z":0},"highlight":false,"size":1},{"color":{"r":1,"g":0,"b":0},"location":{"x":0,"y":0,"z":0},"highlight":false,"size":1}]}`,
			field: "points[1].color.a",
			kind:  ErrMissingField,
		},
		{
			name:  "null location coordinate",
			data:  `{"points":[{"color":{"r":1,"g":0,"b":0,"a":1},"location":{"x":0,"y":null,"z":0},"highlight":false,"size":1}]}`,
			field: "points[0].location.y",
			kind:  ErrMissingField,
		},
		{
			name:  "null point",
			data:  `{"points":[null]}`,
			field: "points[0]",
			kind:  ErrMissingField,
		},
		{
			name:  "missing points",
			data:  `{}`,
			field: "points",
			kind:  ErrMissingField,
		},
		{
			name:  "points not an array",
			data:  `{"points":{}}`,
			field: "points",
			kind:  ErrWrongType,
		},
		{
			name:  "float32 overflow",
			data:  `{"points":[{"color":{"r":1,"g":0,"b":0,"a":1},"location":{"x":1e39,"y":0,"z":0},"highlight":false,"size":1}]}`,
			field: "points[0].location.x",
			kind:  ErrWrongType,
		},
		{
			name:  "upper-case size key",
			data:  `{"points":[{"color":{"r":1,"g":0,"b":0,"a":1},"location":{"x":0,"y":0,"z":0},"highlight":false,"SIZE":2.5}]}`,
			field: "points[0].size",
			kind:  ErrMissingField,
		},
		{
			name:  "capitalized color channel",
			data:  `{"points":[{"color":{"R":1,"g":0,"b":0,"a":1},"location":{"x":0,"y":0,"z":0},"highlight":false,"size":2.5}]}`,
			field: "points[0].color.r",
			kind:  ErrMissingField,
		},
		{
			name:  "every key capitalized",
			data:  `{"POINTS":[{"Color":{"R":1,"G":0,"B":0,"A":1},"LOCATION":{"X":0,"Y":0,"Z":0},"Highlight":false,"SIZE":2.5}]}`,
			field: "points",
			kind:  ErrMissingField,
		},
		{
			name:  "point not an object",
			data:  `{"points":[7]}`,
			field: "points[0]",
			kind:  ErrWrongType,
		},
		{
			name:  "color not an object",
			data:  `{"points":[{"color":[1,0,0,1],"location":{"x":0,"y":0,"z":0},"highlight":false,"size":1}]}`,
			field: "points[0].color",
			kind:  ErrWrongType,
		},
		{
			name: "truncated document",
			data: `{"points":[`,
			kind: ErrInvalidJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Nil(t, ds)

			var perr *ParseError
			require.True(t, errors.As(err, &perr), "want *ParseError, got %T", err)
			assert.Equal(t, tt.field, perr.Field)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}
