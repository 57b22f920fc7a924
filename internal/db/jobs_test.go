package db

import (
	"testing"

	"github.com/jonathan/resume-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeKeywords(t *testing.T) {
	data, err := encodeKeywords([]types.Keyword{{Skill: "js", Value: "JS"}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"skill":"js","value":"JS"}]`, string(data))

	empty, err := encodeKeywords(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty), "nil keywords are stored as an empty array")
}

func TestDecodeKeywords(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    []types.Keyword
		wantErr bool
	}{
		{name: "array", data: []byte(`[{"skill":"go","value":"Golang"}]`), want: []types.Keyword{{Skill: "go", Value: "Golang"}}},
		{name: "empty bytes", data: nil, want: []types.Keyword{}},
		{name: "empty array", data: []byte(`[]`), want: []types.Keyword{}},
		{name: "invalid", data: []byte(`{`), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeKeywords(tt.data)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSchemaStatements(t *testing.T) {
	require.NotEmpty(t, schemaStatements)
	joined := ""
	for _, stmt := range schemaStatements {
		joined += stmt
	}
	for _, column := range []string{"keywords", "resume_keywords", "resume_text", "original_resume_text", "score"} {
		assert.Contains(t, joined, column)
	}
}
