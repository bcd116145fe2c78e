package record

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barg-dev/barg/internal/errors"
)

func TestHasField(t *testing.T) {
	records := []Record{
		{"Name": "a"},
		{"Name": "b", "Len": 10},
	}

	assert.True(t, HasField(records, "Name"))
	assert.True(t, HasField(records, "Len"), "field present on a single record is enough")
	assert.False(t, HasField(records, "Size"))
	assert.False(t, HasField(nil, "Name"))
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		want    float64
		present bool
		wantErr bool
	}{
		{name: "nil is absent", value: nil, present: false},
		{name: "empty string is absent", value: "", present: false},
		{name: "float64", value: 9.8, want: 9.8, present: true},
		{name: "int", value: 100, want: 100, present: true},
		{name: "int64", value: int64(-3), want: -3, present: true},
		{name: "json number", value: json.Number("42"), want: 42, present: true},
		{name: "json fractional", value: json.Number("0.5"), want: 0.5, present: true},
		{name: "numeric string", value: "12.5", want: 12.5, present: true},
		{name: "zero", value: 0, want: 0, present: true},
		{name: "non-numeric string", value: "lots", present: true, wantErr: true},
		{name: "bool", value: true, present: true, wantErr: true},
		{name: "nested object", value: map[string]interface{}{}, present: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, present, err := Number(tt.value)

			assert.Equal(t, tt.present, present)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrInput), "non-numeric values should carry the INPUT code")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{name: "nil", value: nil, want: ""},
		{name: "string", value: "hello", want: "hello"},
		{name: "json number keeps input form", value: json.Number("10"), want: "10"},
		{name: "json fractional keeps input form", value: json.Number("9.80"), want: "9.80"},
		{name: "float drops trailing zeros", value: float64(10), want: "10"},
		{name: "fractional float", value: 2.5, want: "2.5"},
		{name: "bool", value: false, want: "false"},
		{name: "int", value: 7, want: "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Stringify(tt.value))
		})
	}
}
