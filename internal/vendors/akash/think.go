package akash

import "strings"

const (
	openTag  = "<think>"
	closeTag = "</think>"
)

// thinkParser accumulates streamed content and tracks the deliberation up to the
// closing think tag. Chunks may split tags anywhere.
type thinkParser struct {
	raw    strings.Builder
	echoed int
	done   bool
}

// feed adds chunk and returns the newly visible deliberation text, with tags
// stripped. A possibly incomplete tag at the end is held back until the next feed.
func (p *thinkParser) feed(chunk string) string {
	if p.done {
		return ""
	}
	p.raw.WriteString(chunk)
	clean := p.clean()
	hold := 0
	if !p.done {
		hold = partialTagSuffix(clean)
	}
	visible := clean[:len(clean)-hold]
	if len(visible) <= p.echoed {
		return ""
	}
	ret := visible[p.echoed:]
	p.echoed = len(visible)
	return ret
}

// clean returns everything before the closing tag, without think tags. Marks the
// parser as done once the closing tag has been seen.
func (p *thinkParser) clean() string {
	text := p.raw.String()
	if i := strings.Index(text, closeTag); i >= 0 {
		text = text[:i]
		p.done = true
	}
	return strings.ReplaceAll(text, openTag, "")
}

// text returns the full deliberation, including anything held back.
func (p *thinkParser) text() string {
	return strings.TrimSpace(p.clean())
}

// rest returns the part of clean not yet returned by feed.
func (p *thinkParser) rest() string {
	clean := p.clean()
	if len(clean) <= p.echoed {
		return ""
	}
	return clean[p.echoed:]
}

func partialTagSuffix(s string) int {
	for k := min(len(s), len(closeTag)-1); k > 0; k-- {
		suffix := s[len(s)-k:]
		if strings.HasPrefix(closeTag, suffix) || strings.HasPrefix(openTag, suffix) {
			return k
		}
	}
	return 0
}
