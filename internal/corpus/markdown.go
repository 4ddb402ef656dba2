package corpus

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// CodeStripper blanks code in Markdown sources so that tokens like
// "@Override" inside code blocks or `@decorator` spans are not read as tags.
type CodeStripper struct {
	markdown goldmark.Markdown
}

// NewCodeStripper returns a stripper using the default CommonMark parser.
func NewCodeStripper() *CodeStripper {
	return &CodeStripper{markdown: goldmark.New()}
}

// Strip returns a copy of src where the content of fenced code blocks,
// indented code blocks and inline code spans is replaced by spaces.
// Newlines are kept, so line numbers and the rest of the text are unchanged.
func (cs *CodeStripper) Strip(src []byte) []byte {
	out := make([]byte, len(src))
	copy(out, src)

	doc := cs.markdown.Parser().Parse(text.NewReader(src))
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				blank(out, lines.At(i))
			}
			return ast.WalkSkipChildren, nil
		case *ast.CodeSpan:
			for c := node.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					blank(out, t.Segment)
				}
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return out
}

func blank(buf []byte, seg text.Segment) {
	stop := min(seg.Stop, len(buf))
	for i := seg.Start; i < stop; i++ {
		if buf[i] != '\n' && buf[i] != '\r' {
			buf[i] = ' '
		}
	}
}
