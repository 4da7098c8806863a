package yulparse

import (
	"github.com/yulcrypt/yul2ec/internal/yulast"
	"github.com/yulcrypt/yul2ec/internal/yullex"
)

func (p *Parser) parseExpression() (yulast.Expression, error) {
	switch p.current.Type {
	case yullex.NUMBER, yullex.HEXNUMBER, yullex.STRING, yullex.TRUE, yullex.FALSE:
		return p.parseLiteral()
	case yullex.IDENTIFIER:
		next, err := p.peek()
		if err != nil {
			return nil, err
		}
		if next.Type == yullex.LPAREN {
			return p.parseFunctionCallExpr()
		}
		idTok := p.current
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &yulast.IdentifierRef{Inner: idTok.Text}, nil
	default:
		return nil, p.errorf("expected an expression, found %s %q", p.current.Type, p.current.Text)
	}
}

func (p *Parser) parseLiteral() (*yulast.Literal, error) {
	tok := p.current
	switch tok.Type {
	case yullex.NUMBER:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &yulast.Literal{Kind: yulast.LiteralDecimal, Text: tok.Text}, nil
	case yullex.HEXNUMBER:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &yulast.Literal{Kind: yulast.LiteralHex, Text: tok.Text}, nil
	case yullex.STRING:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &yulast.Literal{Kind: yulast.LiteralString, Text: tok.Text}, nil
	case yullex.TRUE, yullex.FALSE:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &yulast.Literal{Kind: yulast.LiteralBool, Value: tok.Type == yullex.TRUE}, nil
	default:
		return nil, p.errorf("expected a literal, found %s %q", tok.Type, tok.Text)
	}
}

// parseFunctionCallExpr parses `NAME(ARG, ARG, ...)`, resolving NAME
// against the fixed builtin mnemonic table so the translator never has to
// do that lookup itself.
func (p *Parser) parseFunctionCallExpr() (*yulast.FunctionCall, error) {
	nameTok, err := p.expect(yullex.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(yullex.LPAREN); err != nil {
		return nil, err
	}
	var args []yulast.Expression
	for p.current.Type != yullex.RPAREN {
		if len(args) > 0 {
			if _, err := p.expect(yullex.COMMA); err != nil {
				return nil, err
			}
		}
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if _, err := p.expect(yullex.RPAREN); err != nil {
		return nil, err
	}
	return &yulast.FunctionCall{Name: resolveName(nameTok.Text), Arguments: args}, nil
}

func resolveName(identifier string) yulast.Name {
	if b, ok := yulast.LookupBuiltin(identifier); ok {
		return yulast.BuiltinName(b)
	}
	return yulast.UserName(identifier)
}
