// Package yulparse implements a hand-written recursive-descent parser that
// turns Yul source text into a yulast.Object tree, the AST the translator
// consumes.
package yulparse

import (
	"fmt"

	"github.com/yulcrypt/yul2ec/internal/yulast"
	"github.com/yulcrypt/yul2ec/internal/yullex"
)

// ParseError is a parse-time failure anchored at a source position.
type ParseError struct {
	Line, Column int
	Message      string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// Parser consumes a token stream produced by yullex and builds a
// yulast.Object. One Parser parses exactly one source text.
type Parser struct {
	lexer   *yullex.Lexer
	current yullex.Token
	peeked  *yullex.Token
}

// Parse lexes and parses source into a single top-level Yul object.
func Parse(source string) (*yulast.Object, error) {
	p := &Parser{lexer: yullex.New(source)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	obj, err := p.parseObject()
	if err != nil {
		return nil, err
	}
	if p.current.Type != yullex.EOF {
		return nil, p.errorf("unexpected trailing input after top-level object %q", p.current.Text)
	}
	return obj, nil
}

func (p *Parser) advance() error {
	if p.peeked != nil {
		p.current = *p.peeked
		p.peeked = nil
		return nil
	}
	tok, err := p.lexer.NextToken()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

func (p *Parser) peek() (yullex.Token, error) {
	if p.peeked == nil {
		tok, err := p.lexer.NextToken()
		if err != nil {
			return yullex.Token{}, err
		}
		p.peeked = &tok
	}
	return *p.peeked, nil
}

func (p *Parser) errorf(format string, args ...any) error {
	return &ParseError{Line: p.current.Line, Column: p.current.Column, Message: fmt.Sprintf(format, args...)}
}

func (p *Parser) expect(tt yullex.TokenType) (yullex.Token, error) {
	if p.current.Type != tt {
		return yullex.Token{}, p.errorf("expected %s, found %s %q", tt, p.current.Type, p.current.Text)
	}
	tok := p.current
	if err := p.advance(); err != nil {
		return yullex.Token{}, err
	}
	return tok, nil
}

// parseObject parses `object "Name" { code { ... } ... }`. Yul permits
// multiple nested objects and data sections alongside the code block;
// yulast.Object models only a single InnerObject (the shape this compiler's
// translator actually walks), so the first nested object encountered is
// kept and every data section, plus any further nested object, is skipped
// over unparsed.
func (p *Parser) parseObject() (*yulast.Object, error) {
	if _, err := p.expect(yullex.OBJECT); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(yullex.STRING)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(yullex.LBRACE); err != nil {
		return nil, err
	}

	if _, err := p.expect(yullex.CODE); err != nil {
		return nil, err
	}
	codeBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	obj := &yulast.Object{Identifier: nameTok.Text, Code: &yulast.Code{Block: codeBlock}}

	for p.current.Type != yullex.RBRACE {
		switch p.current.Type {
		case yullex.OBJECT:
			inner, err := p.parseObject()
			if err != nil {
				return nil, err
			}
			if obj.InnerObject == nil {
				obj.InnerObject = inner
			}
		case yullex.DATA:
			if err := p.skipDataSection(); err != nil {
				return nil, err
			}
		case yullex.EOF:
			return nil, p.errorf("unexpected end of input inside object %q", obj.Identifier)
		default:
			return nil, p.errorf("unexpected %s %q inside object %q", p.current.Type, p.current.Text, obj.Identifier)
		}
	}
	if _, err := p.expect(yullex.RBRACE); err != nil {
		return nil, err
	}
	return obj, nil
}

// skipDataSection consumes `data "name" hex"..."` or `data "name" "..."`
// without recording anything: data sections carry no executable semantics
// the translator lowers.
func (p *Parser) skipDataSection() error {
	if _, err := p.expect(yullex.DATA); err != nil {
		return err
	}
	if _, err := p.expect(yullex.STRING); err != nil {
		return err
	}
	if p.current.Type == yullex.IDENTIFIER && p.current.Text == "hex" {
		if err := p.advance(); err != nil {
			return err
		}
		_, err := p.expect(yullex.STRING)
		return err
	}
	if p.current.Type == yullex.HEXNUMBER || p.current.Type == yullex.STRING {
		return p.advance()
	}
	return p.errorf("expected a data literal, found %s %q", p.current.Type, p.current.Text)
}

func (p *Parser) parseBlock() (*yulast.Block, error) {
	if _, err := p.expect(yullex.LBRACE); err != nil {
		return nil, err
	}
	var statements []yulast.Statement
	for p.current.Type != yullex.RBRACE {
		if p.current.Type == yullex.EOF {
			return nil, p.errorf("unexpected end of input inside block")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	if _, err := p.expect(yullex.RBRACE); err != nil {
		return nil, err
	}
	return &yulast.Block{Statements: statements}, nil
}
