package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bargerrors "github.com/barg-dev/barg/internal/errors"
)

func TestWriteJSONSuccess(t *testing.T) {
	var buf bytes.Buffer
	err := WriteJSONSuccess(&buf, map[string]string{"LenGraph": "███"})
	require.NoError(t, err)

	var env JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Nil(t, env.Error)
	assert.NotNil(t, env.Data)
}

func TestWriteJSONFromError(t *testing.T) {
	var buf bytes.Buffer
	err := WriteJSONFromError(&buf, bargerrors.NewPropertyNotFound("Len"))
	require.NoError(t, err)

	var env JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodePropertyNotFound, env.Error.Code)
	assert.Contains(t, env.Error.Message, "'Len'")
	assert.NotEmpty(t, env.Error.Suggestion)
}

func TestErrorToJSON_CodeMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "field error maps to PROPERTY_NOT_FOUND",
			err:  bargerrors.New(bargerrors.ErrField, "m", "s"),
			want: ErrCodePropertyNotFound,
		},
		{
			name: "input error maps to INVALID_VALUE",
			err:  bargerrors.New(bargerrors.ErrInput, "m", "s"),
			want: ErrCodeInvalidValue,
		},
		{
			name: "decode error maps to DECODE_FAILED",
			err:  bargerrors.New(bargerrors.ErrDecode, "m", "s"),
			want: ErrCodeDecodeFailed,
		},
		{
			name: "usage error maps to USAGE",
			err:  bargerrors.New(bargerrors.ErrUsage, "m", "s"),
			want: ErrCodeUsage,
		},
		{
			name: "term error maps to TERMINAL",
			err:  bargerrors.New(bargerrors.ErrTerm, "m", "s"),
			want: ErrCodeTerminal,
		},
		{
			name: "plain error maps to UNKNOWN",
			err:  errors.New("boom"),
			want: ErrCodeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ErrorToJSON(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Code)
		})
	}
}

func TestErrorToJSON_Nil(t *testing.T) {
	assert.Nil(t, ErrorToJSON(nil))
}
