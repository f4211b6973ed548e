// The only reason this package exists is that both configuration and css
// parser need the same enums and css package should not depend on program
// configuration.
package common

//go:generate go tool go-enum --marshal --names --nocase --file=$GOFILE

// Order in which files of a single directory are visited. Order matters
// because it defines order of files in provenance comments and order of
// rules in produced output.
// ENUM(lexical, natural)
type FileOrder int

// How CSS parser treats fragments it cannot understand.
// ENUM(permissive, strict)
type ParseStrictness int

func (s ParseStrictness) IsStrict() bool {
	return s == ParseStrictnessStrict
}

// What CSS parser is allowed to log.
// ENUM(errors, all)
type ParserLogLevel int
