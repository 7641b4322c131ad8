package structured

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripFences(`  {"a":1}  `))
}

func TestFirstObject(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{
			name: "bare object",
			in:   `{"emotion":"sad"}`,
			want: `{"emotion":"sad"}`,
		},
		{
			name: "surrounded by prose",
			in:   `Here is the analysis you asked for: {"emotion":"happy"} hope it helps!`,
			want: `{"emotion":"happy"}`,
		},
		{
			name: "nested objects",
			in:   `{"outer":{"inner":1},"b":2}`,
			want: `{"outer":{"inner":1},"b":2}`,
		},
		{
			name: "braces inside string values",
			in:   `{"summary":"set {x} and } done"}`,
			want: `{"summary":"set {x} and } done"}`,
		},
		{
			name: "escaped quote inside string",
			in:   `{"summary":"she said \"hi\" {"}`,
			want: `{"summary":"she said \"hi\" {"}`,
		},
		{
			name:    "no object at all",
			in:      "sorry, I cannot do that",
			wantErr: true,
		},
		{
			name:    "unbalanced",
			in:      `{"emotion":"sad"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FirstObject(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrNoObject)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRepairJSON(t *testing.T) {
	// Keys that lost their opening quote regain it.
	in := `{emotion": "sad", confidence": 0.9}`
	out := RepairJSON(in)
	assert.Equal(t, `{"emotion": "sad", "confidence": 0.9}`, out)

	// Well-formed input passes through unchanged.
	ok := `{"emotion": "sad"}`
	assert.Equal(t, ok, RepairJSON(ok))
}
