package style

import (
	"strings"

	"github.com/muesli/termenv"
)

type Kind uint8

const (
	KindPlain Kind = iota
	KindNone
	KindAttr
)

// Chain is a stack of attributes applied to one character, outermost first.
// The zero value is Plain.
type Chain struct {
	kind Kind
	attr Attribute
	rest *Chain
}

// Plain carries no attributes.
func Plain() Chain {
	return Chain{}
}

// None marks a character as invisible: it renders as a blank.
func None() Chain {
	return Chain{kind: KindNone}
}

// Attr pushes attr on top of rest.
func Attr(attr Attribute, rest Chain) Chain {
	return Chain{kind: KindAttr, attr: attr, rest: &rest}
}

// Of builds a chain from attributes listed outermost first. No attributes
// gives Plain.
func Of(attrs ...Attribute) Chain {
	chain := Plain()
	for i := len(attrs) - 1; i >= 0; i-- {
		chain = Attr(attrs[i], chain)
	}
	return chain
}

func (c Chain) Kind() Kind {
	return c.kind
}

func (c Chain) IsStyled() bool {
	return c.kind == KindAttr
}

// Head returns the outermost attribute; ok is false unless the chain is styled.
func (c Chain) Head() (attr Attribute, ok bool) {
	return c.attr, c.kind == KindAttr
}

// Rest returns the chain below the head. It is Plain for unstyled chains.
func (c Chain) Rest() Chain {
	if c.kind != KindAttr || c.rest == nil {
		return Plain()
	}
	return *c.rest
}

// Attributes lists the chain outermost first.
func (c Chain) Attributes() []Attribute {
	var attrs []Attribute
	for link := c; link.kind == KindAttr; link = link.Rest() {
		attrs = append(attrs, link.attr)
	}
	return attrs
}

// Codes concatenates the escape code of every attribute in chain order.
func (c Chain) Codes(profile termenv.Profile) string {
	buf := strings.Builder{}
	for _, attr := range c.Attributes() {
		buf.WriteString(attr.CodeFor(profile))
	}
	return buf.String()
}

func (c Chain) Equal(other Chain) bool {
	if c.kind != other.kind {
		return false
	}
	if c.kind != KindAttr {
		return true
	}
	return c.attr == other.attr && c.Rest().Equal(other.Rest())
}

func (c Chain) String() string {
	switch c.kind {
	case KindNone:
		return "None"
	case KindPlain:
		return "Plain"
	}
	names := []string{}
	for _, attr := range c.Attributes() {
		names = append(names, attr.String())
	}
	return "Style(" + strings.Join(names, ", ") + ")"
}

// Parse builds a chain from attribute names, outermost first.
func Parse(names []string) (Chain, error) {
	attrs := make([]Attribute, 0, len(names))
	for _, name := range names {
		attr, err := ParseAttribute(name)
		if err != nil {
			return Chain{}, err
		}
		attrs = append(attrs, attr)
	}
	return Of(attrs...), nil
}
