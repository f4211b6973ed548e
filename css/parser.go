package css

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"cssshare/common"
)

// Parser parses CSS stylesheets into structured rules.
type Parser struct {
	log        *zap.Logger
	strictness common.ParseStrictness
	logLevel   common.ParserLogLevel
}

// Option configures Parser.
type Option func(*Parser)

// WithStrictness selects what happens to fragments parser cannot understand.
// Permissive parser drops them and records a warning, strict parser fails
// the whole stylesheet on the first one.
func WithStrictness(s common.ParseStrictness) Option {
	return func(p *Parser) {
		p.strictness = s
	}
}

// WithLogLevel selects how chatty parser is.
func WithLogLevel(l common.ParserLogLevel) Option {
	return func(p *Parser) {
		p.logLevel = l
	}
}

// NewParser creates a new CSS parser. By default parser is permissive and
// only reports errors.
func NewParser(log *zap.Logger, opts ...Option) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Parser{}
	for _, setOpt := range opts {
		setOpt(p)
	}

	log = log.Named("css-parser")
	if p.logLevel == common.ParserLogLevelErrors {
		if log.Core().Enabled(zapcore.ErrorLevel) {
			log = log.WithOptions(zap.IncreaseLevel(zapcore.ErrorLevel))
		} else {
			// nothing to increase, core would not report errors anyway
			log = zap.NewNop()
		}
	}
	p.log = log
	return p
}

// ParseFile reads, decodes and parses the stylesheet at path. Read and
// encoding problems are reported as errors.
func (p *Parser) ParseFile(path string) (*Stylesheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read css file: %w", err)
	}
	if data, err = Decode(data); err != nil {
		return nil, fmt.Errorf("unable to decode css file: %w", err)
	}
	return p.Parse(data, path)
}

// Parse parses CSS text into a Stylesheet. The optional source parameter
// identifies what's being parsed (for debug logging).
//
// Only top-level style rules are collected. Content of at-rule blocks and
// nested rulesets is stepped over.
func (p *Parser) Parse(data []byte, source ...string) (*Stylesheet, error) {
	sheet := &Stylesheet{
		Items:    make([]Node, 0),
		Warnings: make([]string, 0),
	}

	log := p.log
	if len(source) > 0 && source[0] != "" {
		log = log.With(zap.String("source", source[0]))
		log.Debug("Parsing CSS", zap.Int("bytes", len(data)))
	}

	parser := css.NewParser(parse.NewInputBytes(data), false)

	// nil frames are blocks we do not collect: at-rule blocks and nested rulesets
	var stack []*StyleRule

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if !parser.HasParseError() {
				if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
					return nil, fmt.Errorf("unable to parse css: %w", err)
				}
				return sheet, nil
			}
			err := parser.Err()
			if p.strictness.IsStrict() {
				return nil, fmt.Errorf("malformed css: %w", err)
			}
			var perr *parse.Error
			if errors.As(err, &perr) {
				sheet.Warnings = append(sheet.Warnings, fmt.Sprintf("%s (line %d, column %d)", perr.Message, perr.Line, perr.Column))
				log.Debug("Dropping malformed fragment", zap.String("reason", perr.Message), zap.Int("line", perr.Line), zap.Int("column", perr.Column))
			} else {
				sheet.Warnings = append(sheet.Warnings, err.Error())
				log.Debug("Dropping malformed fragment", zap.Error(err))
			}

		case css.CommentGrammar:
			if len(stack) == 0 {
				sheet.Items = append(sheet.Items, Node{Kind: KindComment, Name: string(data)})
			}

		case css.AtRuleGrammar:
			// @-rule without block (e.g., @import, @charset)
			if len(stack) == 0 {
				sheet.Items = append(sheet.Items, Node{Kind: KindAtRule, Name: atRuleText(data, parser.Values())})
			}
			log.Debug("Skipping @-rule", zap.String("rule", string(data)))

		case css.BeginAtRuleGrammar:
			if len(stack) == 0 {
				sheet.Items = append(sheet.Items, Node{Kind: KindAtRule, Name: atRuleText(data, parser.Values())})
			}
			log.Debug("Skipping @-rule block", zap.String("rule", string(data)))
			stack = append(stack, nil)

		case css.BeginRulesetGrammar:
			var rule *StyleRule
			if len(stack) == 0 {
				rule = &StyleRule{Selector: joinTokens(parser.Values())}
			} else {
				log.Debug("Skipping nested ruleset", zap.String("selector", joinTokens(parser.Values())))
			}
			stack = append(stack, rule)

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			if len(stack) != 1 || stack[0] == nil {
				continue
			}
			name := string(data)
			value := joinTokens(parser.Values())
			if len(value) == 0 {
				sheet.Warnings = append(sheet.Warnings, fmt.Sprintf("empty value for property %q in %q", name, stack[0].Selector))
				log.Debug("Dropping declaration without value", zap.String("selector", stack[0].Selector), zap.String("property", name))
				continue
			}
			stack[0].Declarations = append(stack[0].Declarations, Declaration{Name: name, Value: value})

		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			if len(stack) == 0 {
				continue
			}
			rule := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if rule != nil {
				sheet.Items = append(sheet.Items, Node{Kind: KindStyleRule, Rule: rule})
				log.Debug("Parsed rule", zap.String("selector", rule.Selector), zap.Int("declarations", len(rule.Declarations)))
			}

		case css.TokenGrammar:
			if len(stack) == 0 {
				sheet.Items = append(sheet.Items, Node{Kind: KindOther, Name: string(data)})
			}
		}
	}
}

// joinTokens concatenates token data. Parser already collapsed whitespace
// between tokens, so the result is used verbatim except for trimming.
func joinTokens(tokens []css.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.Write(t.Data)
	}
	return strings.TrimSpace(sb.String())
}

// atRuleText restores "@name prelude" text for an at-rule.
func atRuleText(name []byte, prelude []css.Token) string {
	rest := joinTokens(prelude)
	if len(rest) == 0 {
		return string(name)
	}
	return string(name) + " " + rest
}
