package tags

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractors() map[string]Extractor {
	return map[string]Extractor{
		StrategyPattern: NewPatternExtractor(),
		StrategyScanner: NewScanExtractor(),
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Tag
	}{
		{
			name:  "flat and hierarchical tags",
			input: "@a @b @c @d/e/f",
			want:  []Tag{{"a"}, {"b"}, {"c"}, {"d", "e", "f"}},
		},
		{
			name:  "no boundary before marker",
			input: "x@tag",
			want:  nil,
		},
		{
			name:  "email address is not a tag",
			input: "mail me at someone@example.com",
			want:  nil,
		},
		{
			name:  "trailing punctuation excluded",
			input: "@tag.",
			want:  []Tag{{"tag"}},
		},
		{
			name:  "consecutive markers",
			input: "@@tag",
			want:  []Tag{{"tag"}},
		},
		{
			name:  "bare marker",
			input: "@ alone",
			want:  nil,
		},
		{
			name:  "marker with only separators",
			input: "@/ and @//",
			want:  nil,
		},
		{
			name:  "empty segments dropped",
			input: "@a//b @c/",
			want:  []Tag{{"a", "b"}, {"c"}},
		},
		{
			name:  "tags on separate lines",
			input: "first line @one\n@two\r\n\t@three/four",
			want:  []Tag{{"one"}, {"two"}, {"three", "four"}},
		},
		{
			name:  "duplicates collapse",
			input: "@work @work @Work",
			want:  []Tag{{"Work"}, {"work"}},
		},
		{
			name:  "case preserved",
			input: "@Work/ProjectA",
			want:  []Tag{{"Work", "ProjectA"}},
		},
		{
			name:  "token ends at marker inside word",
			input: "@a@b",
			want:  []Tag{{"a"}},
		},
		{
			name:  "dash and underscore kept",
			input: "@to-do @in_progress",
			want:  []Tag{{"in_progress"}, {"to-do"}},
		},
		{
			name:  "non-ascii letter ends the token",
			input: "@café",
			want:  []Tag{{"caf"}},
		},
		{
			name:  "non-breaking space is not a boundary",
			input: "x\u00a0@tag",
			want:  nil,
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for name, ex := range extractors() {
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				got := ex.Extract(tt.input)
				want := NewTagset(tt.want...)
				assert.True(t, want.Equal(got), "got %v, want %v", got.Strings(), want.Strings())
				assert.Equal(t, len(tt.want), got.Len())
			})
		}
	}
}

func TestExtractorsAgree(t *testing.T) {
	pattern := NewPatternExtractor()
	scanner := NewScanExtractor()

	inputs := []string{
		"",
		"@",
		"@@",
		"@@@a",
		" @ @b",
		"@a @b\t@c\n@d\r@e\f@f",
		"x@a y @b",
		"@a-@b",
		"@a/@b",
		"@-/_",
		"(@paren) [@bracket] @end.",
		"line one\n  @indented/tag/deep\nline three @last",
		"@\n@x",
		"\v@vertical",
		"@ünïcode @ok",
		strings.Repeat("@t/", 50),
	}
	for _, in := range inputs {
		assert.True(t, pattern.Extract(in).Equal(scanner.Extract(in)),
			"extractors disagree on %q: pattern=%v scanner=%v", in, pattern.Extract(in).Strings(), scanner.Extract(in).Strings())
	}
}

func FuzzExtractorsAgree(f *testing.F) {
	for _, seed := range []string{"@a @b @c @d/e/f", "x@tag", "@tag.", "@@tag", "@/", "a\n@b/c d@e"} {
		f.Add(seed)
	}
	pattern := NewPatternExtractor()
	scanner := NewScanExtractor()

	f.Fuzz(func(t *testing.T, in string) {
		p := pattern.Extract(in)
		s := scanner.Extract(in)
		if !p.Equal(s) {
			t.Fatalf("extractors disagree on %q: pattern=%v scanner=%v", in, p.Strings(), s.Strings())
		}
	})
}

func TestExtractorByName(t *testing.T) {
	ex, err := ExtractorByName("")
	require.NoError(t, err)
	assert.IsType(t, &PatternExtractor{}, ex)

	ex, err = ExtractorByName(StrategyScanner)
	require.NoError(t, err)
	assert.IsType(t, &ScanExtractor{}, ex)

	_, err = ExtractorByName("telepathy")
	assert.Error(t, err)
}

func benchmarkText() string {
	var b strings.Builder
	for i := 0; i < 1000; i++ {
		b.WriteString("some prose about the day @journal/2024/june and @mood/good, ")
		b.WriteString("an email@example.com and a trailing @todo.\n")
	}
	return b.String()
}

func BenchmarkPatternExtractor(b *testing.B) {
	text := benchmarkText()
	ex := NewPatternExtractor()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ex.Extract(text)
	}
}

func BenchmarkScanExtractor(b *testing.B) {
	text := benchmarkText()
	ex := NewScanExtractor()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ex.Extract(text)
	}
}
