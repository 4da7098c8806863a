package yulparse

import (
	"github.com/yulcrypt/yul2ec/internal/yulast"
	"github.com/yulcrypt/yul2ec/internal/yullex"
)

func (p *Parser) parseStatement() (yulast.Statement, error) {
	switch p.current.Type {
	case yullex.FUNCTION:
		return p.parseFunctionDefinition()
	case yullex.LET:
		return p.parseVariableDeclaration()
	case yullex.IF:
		return p.parseIf()
	case yullex.SWITCH:
		return p.parseSwitch()
	case yullex.FOR:
		return p.parseForLoop()
	case yullex.BREAK:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &yulast.Break{}, nil
	case yullex.CONTINUE:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &yulast.Continue{}, nil
	case yullex.LEAVE:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &yulast.Leave{}, nil
	case yullex.LBRACE:
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &yulast.NestedBlock{Block: block}, nil
	case yullex.IDENTIFIER:
		return p.parseIdentifierLedStatement()
	default:
		return nil, p.errorf("expected a statement, found %s %q", p.current.Type, p.current.Text)
	}
}

// parseIdentifierLedStatement disambiguates the two statement forms that
// start with a bare identifier: a call used as a statement (`f(x)`) and an
// assignment to one or more existing variables (`a := f(x)`, `a, b :=
// f(x)`), by peeking past the identifier for `(` versus `:=`/`,`.
func (p *Parser) parseIdentifierLedStatement() (yulast.Statement, error) {
	next, err := p.peek()
	if err != nil {
		return nil, err
	}
	if next.Type == yullex.LPAREN {
		call, err := p.parseFunctionCallExpr()
		if err != nil {
			return nil, err
		}
		return &yulast.ExpressionStatement{Expression: call}, nil
	}

	var targets []*yulast.Identifier
	for {
		idTok, err := p.expect(yullex.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		targets = append(targets, &yulast.Identifier{Inner: idTok.Text})
		if p.current.Type != yullex.COMMA {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(yullex.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &yulast.Assignment{Targets: targets, Value: value}, nil
}

// parseFunctionDefinition parses `function NAME(PARAMS) [-> RESULTS] BLOCK`.
func (p *Parser) parseFunctionDefinition() (*yulast.FunctionDefinition, error) {
	if _, err := p.expect(yullex.FUNCTION); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(yullex.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	params, err := p.parseTypedIdentifierList()
	if err != nil {
		return nil, err
	}

	var results []*yulast.Identifier
	if p.current.Type == yullex.ARROW {
		if err := p.advance(); err != nil {
			return nil, err
		}
		results, err = p.parseBareTypedIdentifierList()
		if err != nil {
			return nil, err
		}
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &yulast.FunctionDefinition{
		Identifier: nameTok.Text,
		Arguments:  params,
		Result:     results,
		Body:       body,
	}, nil
}

// parseTypedIdentifierList parses a parenthesized, comma-separated list of
// `name[:type]` bindings, as in a function's parameter list.
func (p *Parser) parseTypedIdentifierList() ([]*yulast.Identifier, error) {
	if _, err := p.expect(yullex.LPAREN); err != nil {
		return nil, err
	}
	var idents []*yulast.Identifier
	for p.current.Type != yullex.RPAREN {
		if len(idents) > 0 {
			if _, err := p.expect(yullex.COMMA); err != nil {
				return nil, err
			}
		}
		ident, err := p.parseOneTypedIdentifier()
		if err != nil {
			return nil, err
		}
		idents = append(idents, ident)
	}
	if _, err := p.expect(yullex.RPAREN); err != nil {
		return nil, err
	}
	return idents, nil
}

// parseBareTypedIdentifierList parses a comma-separated `name[:type]` list
// with no enclosing parentheses, as in a function's result list or a `let`
// binding list.
func (p *Parser) parseBareTypedIdentifierList() ([]*yulast.Identifier, error) {
	var idents []*yulast.Identifier
	for {
		ident, err := p.parseOneTypedIdentifier()
		if err != nil {
			return nil, err
		}
		idents = append(idents, ident)
		if p.current.Type != yullex.COMMA {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return idents, nil
}

func (p *Parser) parseOneTypedIdentifier() (*yulast.Identifier, error) {
	nameTok, err := p.expect(yullex.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	ident := &yulast.Identifier{Inner: nameTok.Text}
	if p.current.Type == yullex.COLON {
		if err := p.advance(); err != nil {
			return nil, err
		}
		typeTok, err := p.expect(yullex.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		typeName := typeTok.Text
		ident.Type = &typeName
	}
	return ident, nil
}

func (p *Parser) parseVariableDeclaration() (*yulast.VariableDeclaration, error) {
	if _, err := p.expect(yullex.LET); err != nil {
		return nil, err
	}
	bindings, err := p.parseBareTypedIdentifierList()
	if err != nil {
		return nil, err
	}
	decl := &yulast.VariableDeclaration{Bindings: bindings}
	if p.current.Type == yullex.ASSIGN {
		if err := p.advance(); err != nil {
			return nil, err
		}
		decl.Initializer, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	return decl, nil
}

func (p *Parser) parseIf() (*yulast.If, error) {
	if _, err := p.expect(yullex.IF); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &yulast.If{Condition: cond, Body: body}, nil
}

func (p *Parser) parseSwitch() (*yulast.Switch, error) {
	if _, err := p.expect(yullex.SWITCH); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	s := &yulast.Switch{Expression: expr}
	for p.current.Type == yullex.CASE {
		if err := p.advance(); err != nil {
			return nil, err
		}
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		s.Cases = append(s.Cases, &yulast.Case{Literal: lit, Block: block})
	}
	if p.current.Type == yullex.DEFAULT {
		if err := p.advance(); err != nil {
			return nil, err
		}
		s.Default, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	if len(s.Cases) == 0 && s.Default == nil {
		return nil, p.errorf("switch requires at least one case or a default arm")
	}
	return s, nil
}

func (p *Parser) parseForLoop() (*yulast.ForLoop, error) {
	if _, err := p.expect(yullex.FOR); err != nil {
		return nil, err
	}
	init, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	post, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &yulast.ForLoop{Init: init, Condition: cond, Post: post, Body: body}, nil
}
