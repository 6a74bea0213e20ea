package parser

import (
	"io"
	"strings"

	"github.com/ritamzico/goobo/internal/ast"
	"github.com/ritamzico/goobo/internal/cache"
	"github.com/ritamzico/goobo/internal/lex"
)

// SequentialParser streams Frames one at a time out of an io.Reader:
// the HeaderFrame first, then one EntityFrame per [Term]/[Typedef]/
// [Instance] stanza, without reading the whole document into memory
// at once. It tracks how many lines and bytes it has already handed
// back so that a SyntaxError raised while parsing one frame's text
// carries document-absolute coordinates, not coordinates relative to
// that frame.
type SequentialParser struct {
	buf        *Buffer
	cache      *cache.Cache
	headerDone bool
	lineBase   int
	byteBase   int
}

// NewSequentialParser returns a parser reading from r. A nil cache is
// fine; passing one shared across multiple documents amortizes string
// interning across them.
func NewSequentialParser(r io.Reader, c *cache.Cache) *SequentialParser {
	return &SequentialParser{buf: NewBuffer(r), cache: c}
}

// Next returns the next Frame, or io.EOF once the document is
// exhausted. The very first call always returns the HeaderFrame, even
// for a document with no entity frames at all.
func (p *SequentialParser) Next() (ast.Frame, error) {
	if !p.headerDone {
		return p.nextHeader()
	}
	return p.nextEntity()
}

func (p *SequentialParser) rebase(err error) error {
	if se, ok := err.(*lex.SyntaxError); ok {
		return se.WithOffsets(p.lineBase, p.byteBase)
	}
	return err
}

func (p *SequentialParser) advance(consumedText string) {
	p.byteBase += len(consumedText)
	p.lineBase += strings.Count(consumedText, "\n")
}

func (p *SequentialParser) nextHeader() (ast.Frame, error) {
	for {
		if _, _, found := lex.FindFrameMarker(p.buf.Bytes(), 0); found || p.buf.EOF() {
			break
		}
		if err := p.buf.Grow(); err != nil {
			return ast.Frame{}, err
		}
	}
	data := p.buf.Bytes()
	var headerText string
	if offset, _, found := lex.FindFrameMarker(data, 0); found {
		headerText = string(data[:offset])
	} else {
		headerText = string(data)
	}
	frame, err := ParseHeaderText(headerText, p.cache)
	if err != nil {
		return ast.Frame{}, p.rebase(err)
	}
	p.buf.Discard(len(headerText))
	p.advance(headerText)
	p.headerDone = true
	return ast.NewHeaderFrame(frame), nil
}

func (p *SequentialParser) nextEntity() (ast.Frame, error) {
	for {
		data := p.buf.Bytes()
		if len(data) == 0 {
			if p.buf.EOF() {
				return ast.Frame{}, io.EOF
			}
			if err := p.buf.Grow(); err != nil {
				return ast.Frame{}, err
			}
			continue
		}
		if _, _, found := lex.FindFrameMarker(data, 1); found || p.buf.EOF() {
			break
		}
		if err := p.buf.Grow(); err != nil {
			return ast.Frame{}, err
		}
	}
	data := p.buf.Bytes()
	_, marker, ok := lex.FindFrameMarker(data, 0)
	if !ok {
		return ast.Frame{}, io.EOF
	}
	var frameText string
	if offset, _, found := lex.FindFrameMarker(data, 1); found {
		frameText = string(data[:offset])
	} else {
		frameText = string(data)
	}
	entity, err := ParseEntityText(marker, frameText, p.cache)
	if err != nil {
		return ast.Frame{}, p.rebase(err)
	}
	p.buf.Discard(len(frameText))
	p.advance(frameText)
	return ast.NewEntityFrame(entity), nil
}

// ParseDocument drains a SequentialParser fully into an *ast.OboDoc,
// matching TryFrom<SequentialParser<B>> for OboDoc in the reference
// parser.
func ParseDocument(r io.Reader, c *cache.Cache) (*ast.OboDoc, error) {
	p := NewSequentialParser(r, c)
	first, err := p.Next()
	if err != nil {
		return nil, err
	}
	doc := ast.NewOboDoc(first.Header)
	for {
		frame, err := p.Next()
		if err == io.EOF {
			return doc, nil
		}
		if err != nil {
			return nil, err
		}
		doc.Append(frame.Entity)
	}
}
