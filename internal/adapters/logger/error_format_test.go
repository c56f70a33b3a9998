package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
	}{
		{
			name:         "single standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
		},
		{
			name:         "zerr single error",
			err:          zerr.New("zerr error"),
			wantMessages: []string{"zerr error"},
		},
		{
			name: "zerr wrapped chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("root cause"), "middle layer"),
				"outer layer",
			),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
		},
		{
			name:         "nil error",
			err:          nil,
			wantMessages: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := collectErrorEntries(tt.err)

			assert.Len(t, entries, len(tt.wantMessages))
			for i, want := range tt.wantMessages {
				assert.Equal(t, want, entries[i].Message)
			}
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []errorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []errorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "two entries with caused by",
			entries: []errorEntry{{Message: "outer"}, {Message: "inner"}},
			want:    "Error: outer\n\n  Caused by:\n    → inner",
		},
		{
			name:    "multiline main error",
			entries: []errorEntry{{Message: "first line\nsecond line"}},
			want:    "Error: first line\n       second line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatErrorEntries(tt.entries))
		})
	}
}
