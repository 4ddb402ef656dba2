package tree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harrison/tagsearch/internal/tags"
)

func TestRender(t *testing.T) {
	input := []tags.Tag{
		{"philosophy", "stoicism", "quote"},
		{"philosophy", "mindset"},
		{"completely", "unrelated", "heirarchy"},
	}

	want := `completely
    unrelated
        heirarchy
philosophy
    mindset
    stoicism
        quote
`
	assert.Equal(t, want, Render(input))
	assert.Equal(t, tags.Tag{"philosophy", "stoicism", "quote"}, input[0], "input must not be reordered")
}

func TestRenderSharedPrefixes(t *testing.T) {
	tests := []struct {
		name  string
		input []tags.Tag
		want  string
	}{
		{
			name:  "empty",
			input: nil,
			want:  "",
		},
		{
			name:  "flat tags",
			input: []tags.Tag{{"b"}, {"a"}},
			want:  "a\nb\n",
		},
		{
			name:  "parent tag and child tag",
			input: []tags.Tag{{"work", "projectA"}, {"work"}},
			want:  "work\n    projectA\n",
		},
		{
			name:  "duplicates printed once",
			input: []tags.Tag{{"a", "b"}, {"a", "b"}},
			want:  "a\n    b\n",
		},
		{
			name:  "same segment under different parents",
			input: []tags.Tag{{"a", "x", "leaf"}, {"b", "x", "leaf"}},
			want:  "a\n    x\n        leaf\nb\n    x\n        leaf\n",
		},
		{
			name:  "divergence in the middle reopens deeper levels",
			input: []tags.Tag{{"a", "b", "c"}, {"a", "d", "c"}},
			want:  "a\n    b\n        c\n    d\n        c\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.input))
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("closed")
}

func TestWritePropagatesErrors(t *testing.T) {
	err := Write(failingWriter{}, []tags.Tag{{"a"}})
	assert.EqualError(t, err, "closed")
}
