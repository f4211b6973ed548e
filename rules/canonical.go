// Package rules finds style rules shared between stylesheets of a single
// directory and writes them out.
//
// A rule is identified by its selector and canonical form of its
// declarations: every declaration rendered as "name: value;" with the whole
// list sorted. Two rules are duplicates only when both selector and
// canonical declarations are byte-for-byte equal, declaration order does not
// matter, nothing else is normalized.
package rules

import (
	"iter"
	"slices"
	"strings"

	"go.uber.org/zap"

	"cssshare/css"
)

// keySep never appears in parsed CSS, tokenizer replaces NUL with U+FFFD.
const keySep = "\x00"

// Properties is a frozen sorted list of rendered declarations. Zero value is
// an empty list.
type Properties struct {
	items []string
}

// NewProperties renders declarations and sorts them.
func NewProperties(decls []css.Declaration) Properties {
	items := make([]string, 0, len(decls))
	for _, d := range decls {
		items = append(items, d.String())
	}
	slices.Sort(items)
	return Properties{items: items}
}

// Len returns number of declarations.
func (p Properties) Len() int {
	return len(p.items)
}

// At returns i-th rendered declaration.
func (p Properties) At(i int) string {
	return p.items[i]
}

// All iterates over rendered declarations in sorted order.
func (p Properties) All() iter.Seq[string] {
	return slices.Values(p.items)
}

// Equal reports whether both lists hold the same declarations.
func (p Properties) Equal(other Properties) bool {
	return slices.Equal(p.items, other.items)
}

// Key returns a string usable as map key, equal keys mean equal properties.
func (p Properties) Key() string {
	return strings.Join(p.items, keySep)
}

// RuleMap maps selectors to their canonical properties preserving order in
// which selectors were first seen. Setting an existing selector replaces its
// properties but keeps its position.
type RuleMap struct {
	order []string
	props map[string]Properties
}

// NewRuleMap returns an empty RuleMap.
func NewRuleMap() *RuleMap {
	return &RuleMap{props: make(map[string]Properties)}
}

// Set stores properties for selector, last write wins.
func (m *RuleMap) Set(selector string, props Properties) {
	if _, exists := m.props[selector]; !exists {
		m.order = append(m.order, selector)
	}
	m.props[selector] = props
}

// Get returns properties stored for selector.
func (m *RuleMap) Get(selector string) (Properties, bool) {
	p, ok := m.props[selector]
	return p, ok
}

// Len returns number of selectors in the map.
func (m *RuleMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

// All iterates over selectors and their properties in first seen order.
func (m *RuleMap) All() iter.Seq2[string, Properties] {
	return func(yield func(string, Properties) bool) {
		if m == nil {
			return
		}
		for _, sel := range m.order {
			if !yield(sel, m.props[sel]) {
				return
			}
		}
	}
}

// Canonicalize converts top-level style rules of the stylesheet into a
// RuleMap. Rules without selector or without declarations are skipped. When
// selector repeats in the same stylesheet the last rule wins.
func Canonicalize(sheet *css.Stylesheet) *RuleMap {
	m := NewRuleMap()
	if sheet == nil {
		return m
	}
	for _, item := range sheet.Items {
		switch item.Kind {
		case css.KindStyleRule:
			r := item.Rule
			if r == nil || len(strings.TrimSpace(r.Selector)) == 0 || len(r.Declarations) == 0 {
				continue
			}
			m.Set(r.Selector, NewProperties(r.Declarations))
		default:
			// at-rules, comments and the rest are not descended into
		}
	}
	return m
}

// Canonicalizer parses stylesheet files and canonicalizes their rules.
type Canonicalizer struct {
	parser *css.Parser
	log    *zap.Logger
}

// NewCanonicalizer returns Canonicalizer using parser to read files.
func NewCanonicalizer(parser *css.Parser, log *zap.Logger) *Canonicalizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Canonicalizer{parser: parser, log: log}
}

// File parses stylesheet at path and canonicalizes it. Files which could not
// be parsed produce empty map, failure is logged and never propagated.
func (c *Canonicalizer) File(path string) *RuleMap {
	sheet, err := c.parser.ParseFile(path)
	if err != nil {
		c.log.Warn("Unable to parse stylesheet, ignoring", zap.String("file", path), zap.Error(err))
		return NewRuleMap()
	}
	if len(sheet.Warnings) > 0 {
		c.log.Debug("Stylesheet has dropped fragments", zap.String("file", path), zap.Strings("warnings", sheet.Warnings))
	}
	return Canonicalize(sheet)
}
