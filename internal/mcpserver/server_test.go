package mcpserver

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error returns empty string",
			err:  nil,
			want: "",
		},
		{
			name: "strips absolute path",
			err:  fmt.Errorf("reading file: open /home/user/secret/notes.md: no such file"),
			want: "reading file: open <path>: no such file",
		},
		{
			name: "preserves non-path content",
			err:  fmt.Errorf("file content is not valid UTF-8"),
			want: "file content is not valid UTF-8",
		},
		{
			name: "strips multiple paths",
			err:  fmt.Errorf("copy /tmp/a.md to /tmp/b.md failed"),
			want: "copy <path> to <path> failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeError(tt.err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestErrResult(t *testing.T) {
	result := errResult(fmt.Errorf("reading file: open /tmp/x.md: no such file"))
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	require.Len(t, result.Content, 1)
}

func TestMakeSlice(t *testing.T) {
	assert.Nil(t, makeSlice[int](0))

	s := makeSlice[string](3)
	assert.NotNil(t, s)
	assert.Empty(t, s)
	assert.Equal(t, 3, cap(s))
}
