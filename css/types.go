package css

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// NodeKind tells what kind of top-level item a stylesheet node holds.
type NodeKind int

const (
	KindStyleRule NodeKind = iota // selector + declaration block
	KindAtRule                    // @media, @import, @font-face, @keyframes, ...
	KindComment                   // top level comment
	KindOther                     // anything else parser had to step over (CDO/CDC, stray tokens)
)

// String returns the name of the node kind.
func (k NodeKind) String() string {
	switch k {
	case KindStyleRule:
		return "style-rule"
	case KindAtRule:
		return "at-rule"
	case KindComment:
		return "comment"
	case KindOther:
		return "other"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

// Declaration is a single property declaration inside a rule.
type Declaration struct {
	Name  string // Property name as produced by parser (lowercased, custom properties kept as is)
	Value string // Property value as produced by parser
}

// String renders declaration as "name: value;".
func (d Declaration) String() string {
	return d.Name + ": " + d.Value + ";"
}

// StyleRule is a selector with its declarations in source order.
type StyleRule struct {
	Selector     string
	Declarations []Declaration
}

// Node is a single top-level item in a stylesheet. Rule is set only for
// KindStyleRule, Name holds at-rule name or raw text for other kinds.
type Node struct {
	Kind NodeKind
	Rule *StyleRule
	Name string
}

// Stylesheet represents a parsed CSS stylesheet.
type Stylesheet struct {
	Items    []Node   // All top-level items in source order
	Warnings []string // Fragments parser had to drop
}

// StyleRules iterates over top-level style rules in source order.
func (s *Stylesheet) StyleRules() iter.Seq[*StyleRule] {
	return func(yield func(*StyleRule) bool) {
		for _, item := range s.Items {
			if item.Kind != KindStyleRule || item.Rule == nil {
				continue
			}
			if !yield(item.Rule) {
				return
			}
		}
	}
}

// RulesBySelector returns all top-level rules matching the given selector string.
func (s *Stylesheet) RulesBySelector(selector string) []*StyleRule {
	var matches []*StyleRule
	for r := range s.StyleRules() {
		if r.Selector == selector {
			matches = append(matches, r)
		}
	}
	return matches
}

// WriteTo writes style rules of the stylesheet to w in source order,
// implementing io.WriterTo. Declarations are written in source order,
// everything which is not a style rule is written as a comment.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, item := range s.Items {
		var n int
		var err error

		switch item.Kind {
		case KindStyleRule:
			n, err = writeRule(w, item.Rule)
		default:
			n, err = fmt.Fprintf(w, "/* %s %s */\n", item.Kind, strings.ReplaceAll(item.Name, "*/", "*\\/"))
		}

		total += int64(n)
		if err != nil {
			return total, err
		}

		// Add blank line between items (except after last)
		if i < len(s.Items)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// writeRule writes a single CSS rule to w.
func writeRule(w io.Writer, rule *StyleRule) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s {\n", rule.Selector)
	total += n
	if err != nil {
		return total, err
	}
	for _, d := range rule.Declarations {
		n, err = fmt.Fprintf(w, "  %s\n", d)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}
