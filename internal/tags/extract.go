package tags

import (
	"fmt"
	"regexp"
)

// Extractor turns text into the set of tags it contains.
type Extractor interface {
	Extract(text string) Tagset
}

// Strategy names accepted by ExtractorByName.
const (
	StrategyPattern = "pattern"
	StrategyScanner = "scanner"
)

// tagPattern matches a run of markers on a word boundary followed by the token.
// RE2's \s is [\t\n\f\r ], the same set isSpace accepts.
const tagPattern = `(?:^|\s)@+([A-Za-z0-9_\-/]+)`

// PatternExtractor finds tags with a compiled regular expression. It holds no
// mutable state and may be shared across goroutines.
type PatternExtractor struct {
	re *regexp.Regexp
}

// NewPatternExtractor compiles the tag pattern.
func NewPatternExtractor() *PatternExtractor {
	return &PatternExtractor{re: regexp.MustCompile(tagPattern)}
}

// Extract implements Extractor.
func (p *PatternExtractor) Extract(text string) Tagset {
	set := NewTagset()
	for _, m := range p.re.FindAllStringSubmatch(text, -1) {
		addToken(set, m[1])
	}
	return set
}

// ScanExtractor finds tags with a hand-written single pass over the bytes of
// the text. Every byte of the tag alphabet is ASCII, so multi-byte UTF-8
// sequences simply end a token.
type ScanExtractor struct{}

// NewScanExtractor returns a ScanExtractor.
func NewScanExtractor() *ScanExtractor {
	return &ScanExtractor{}
}

// Extract implements Extractor.
func (ScanExtractor) Extract(text string) Tagset {
	set := NewTagset()
	boundary := true // start of input counts as a boundary
	inToken := false
	start := 0

	for i := 0; i < len(text); i++ {
		c := text[i]
		if inToken {
			if isTagByte(c) {
				continue
			}
			if c == '@' && i == start {
				// still in the run of markers
				start = i + 1
				continue
			}
			addToken(set, text[start:i])
			inToken = false
			boundary = isSpace(c)
			continue
		}
		if c == '@' && boundary {
			inToken = true
			start = i + 1
			continue
		}
		boundary = isSpace(c)
	}
	if inToken {
		addToken(set, text[start:])
	}
	return set
}

// ExtractorByName returns the extractor for a strategy name. An empty name
// selects the pattern extractor.
func ExtractorByName(name string) (Extractor, error) {
	switch name {
	case "", StrategyPattern:
		return NewPatternExtractor(), nil
	case StrategyScanner:
		return NewScanExtractor(), nil
	default:
		return nil, fmt.Errorf("unknown extractor %q (want %s or %s)", name, StrategyPattern, StrategyScanner)
	}
}

func addToken(set Tagset, token string) {
	t, err := ParseTag(token)
	if err != nil {
		return
	}
	set.Add(t)
}

func isTagByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '-', c == '/':
		return true
	}
	return false
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
