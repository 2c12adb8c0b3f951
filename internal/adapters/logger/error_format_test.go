package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lintcfg/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
	}{
		{name: "plain error", err: errors.New("simple"), wantMessages: []string{"simple"}},
		{name: "zerr single", err: zerr.New("no version given"), wantMessages: []string{"no version given"}},
		{
			name:         "zerr chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root"), "middle"), "outer"),
			wantMessages: []string{"outer", "middle", "root"},
		},
		{name: "nil", err: nil, wantMessages: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)

			got := make([]string, 0, len(entries))
			for _, e := range entries {
				got = append(got, e.Message)
			}
			if tt.wantMessages == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.wantMessages, got)
		})
	}
}

func TestCollectErrorEntries_Metadata(t *testing.T) {
	err := zerr.With(zerr.Wrap(errors.New("bad segment"), "error parsing version"), "version", "latest")

	entries := logger.CollectErrorEntries(err)

	require.Len(t, entries, 2)
	assert.Equal(t, "latest", entries[0].Metadata["version"])
	assert.Nil(t, entries[1].Metadata)
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{name: "empty", entries: nil, want: ""},
		{name: "single", entries: []logger.ErrorEntry{{Message: "single"}}, want: "Error: single"},
		{
			name:    "caused by",
			entries: []logger.ErrorEntry{{Message: "outer"}, {Message: "inner"}, {Message: "root"}},
			want:    "Error: outer\n\n  Caused by:\n    → inner\n    → root",
		},
		{
			name:    "metadata sorted",
			entries: []logger.ErrorEntry{{Message: "e", Metadata: map[string]any{"z": 1, "a": "x"}}},
			want:    "Error: e\n       a: x\n       z: 1",
		},
		{
			name: "cause metadata and multiline",
			entries: []logger.ErrorEntry{
				{Message: "main\nsecond line"},
				{Message: "cause", Metadata: map[string]any{"path": "package.json"}},
			},
			want: "Error: main\n       second line\n\n  Caused by:\n    → cause\n      path: package.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
