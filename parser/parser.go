// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parser implements the recursive-descent parser that turns the
// lexer's token stream into serval's S-expression Values, reading tokens
// with a small lookahead buffer (fill/match) in the same channel-
// consuming style as the rest of the front end.
package parser

import (
	"strconv"

	"serval/interperr"
	"serval/lexer"
	"serval/value"
)

// Parser reads data from a token channel with a small lookahead buffer,
// since the dotted-pair grammar needs to look past the current datum
// to see whether a DOT follows.
type Parser struct {
	tokens    <-chan lexer.Token
	lookahead []lexer.Token
}

// New creates a Parser that pulls tokens from the given channel, typically
// the result of lexer.Lex.
func New(tokens <-chan lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseString lexes and parses a complete buffer, returning every
// top-level datum in order.
func ParseString(name, input string) ([]value.Value, error) {
	return New(lexer.Lex(name, input)).Parse()
}

// Parse consumes the entire token stream and returns the ordered sequence
// of top-level datums ("program := datum*").
func (p *Parser) Parse() ([]value.Value, error) {
	var result []value.Value
	for p.peekType(0) != lexer.EOF {
		datum, err := p.datum()
		if err != nil {
			return result, err
		}
		result = append(result, datum)
	}
	return result, nil
}

// fill ensures at least n+1 tokens are buffered in lookahead.
func (p *Parser) fill(n int) {
	for len(p.lookahead) <= n {
		t, ok := <-p.tokens
		if !ok {
			p.lookahead = append(p.lookahead, lexer.Token{Type: lexer.EOF})
			return
		}
		p.lookahead = append(p.lookahead, t)
	}
}

func (p *Parser) peek(n int) lexer.Token {
	p.fill(n)
	return p.lookahead[n]
}

func (p *Parser) peekType(n int) lexer.TokenType {
	return p.peek(n).Type
}

// consume drops the current lookahead token, shifting the buffer.
func (p *Parser) consume() lexer.Token {
	p.fill(0)
	t := p.lookahead[0]
	p.lookahead = p.lookahead[1:]
	return t
}

// match consumes the current token if it has the expected type, else
// returns a ParseError naming the offending token.
func (p *Parser) match(want lexer.TokenType) (lexer.Token, error) {
	got := p.peek(0)
	if got.Type != want {
		return got, interperr.Newf(interperr.ParseError,
			"expecting token type %d; found %q", want, got.Text)
	}
	return p.consume(), nil
}

// datum := simple | list.
func (p *Parser) datum() (value.Value, error) {
	t := p.peek(0)
	if t.Type == lexer.ERROR {
		p.consume()
		return nil, interperr.New(interperr.LexError, t.Text)
	}
	if t.Type == lexer.LPAREN || t.Type == lexer.QUOTE {
		return p.list()
	}
	return p.simpleDatum()
}

// simpleDatum := NUMBER | BOOLEAN | CHARACTER | STRING | ID.
func (p *Parser) simpleDatum() (value.Value, error) {
	t := p.peek(0)
	var result value.Value
	switch t.Type {
	case lexer.NUMBER:
		n, err := strconv.ParseInt(t.Text, 10, 64)
		if err != nil {
			return nil, interperr.Newf(interperr.ParseError, "invalid number literal: %q", t.Text)
		}
		result = value.Number(n)
	case lexer.BOOLEAN:
		result = value.Boolean(t.Text == "#t")
	case lexer.CHARACTER:
		result = value.Character(t.Text[2:])
	case lexer.STRING:
		result = value.String(t.Text[1 : len(t.Text)-1])
	case lexer.ID:
		result = value.Symbol(t.Text)
	default:
		return nil, interperr.Newf(interperr.ParseError, "no viable alternative at %q", t.Text)
	}
	p.consume()
	return result, nil
}

// list handles both abbreviated quote forms and parenthesized lists,
// including the dotted-tail case.
func (p *Parser) list() (value.Value, error) {
	if p.peekType(0) == lexer.QUOTE {
		return p.abbreviation()
	}

	if _, err := p.match(lexer.LPAREN); err != nil {
		return nil, err
	}

	if p.peekType(0) == lexer.RPAREN {
		p.consume()
		return value.EmptyList, nil
	}

	var items []value.Value
	var tail value.Value = value.EmptyList
	for p.peekType(0) != lexer.RPAREN {
		if p.peekType(0) == lexer.EOF {
			return nil, interperr.New(interperr.ParseError, "unexpected EOF inside list")
		}
		head, err := p.datum()
		if err != nil {
			return nil, err
		}
		items = append(items, head)

		if p.peekType(0) == lexer.DOT {
			p.consume()
			last, err := p.datum()
			if err != nil {
				return nil, err
			}
			tail = last
			break
		}
	}
	if _, err := p.match(lexer.RPAREN); err != nil {
		return nil, err
	}

	result := tail
	for i := len(items) - 1; i >= 0; i-- {
		result = value.Cons(items[i], result)
	}
	return result, nil
}

// abbreviation expands 'datum to (quote datum).
func (p *Parser) abbreviation() (value.Value, error) {
	if _, err := p.match(lexer.QUOTE); err != nil {
		return nil, err
	}
	expr, err := p.datum()
	if err != nil {
		return nil, err
	}
	return value.List(value.Symbol("quote"), expr), nil
}
