package rules

// FileRules holds canonical rules of a single stylesheet.
type FileRules struct {
	Path  string
	Rules *RuleMap
}

// Group is a rule found in two or more stylesheets. Files are listed in the
// order they were visited.
type Group struct {
	Selector   string
	Properties Properties
	Files      []string
}

type groupKey struct {
	selector string
	props    string
}

// FindDuplicates returns rules present in at least two of the files. Groups
// are ordered by first appearance of the rule when files are visited in the
// given order.
func FindDuplicates(files []FileRules) []Group {
	index := make(map[groupKey]int)
	var all []Group

	for _, f := range files {
		for sel, props := range f.Rules.All() {
			k := groupKey{selector: sel, props: props.Key()}
			i, ok := index[k]
			if !ok {
				i = len(all)
				index[k] = i
				all = append(all, Group{Selector: sel, Properties: props})
			}
			all[i].Files = append(all[i].Files, f.Path)
		}
	}

	dups := all[:0]
	for _, g := range all {
		if len(g.Files) > 1 {
			dups = append(dups, g)
		}
	}
	if len(dups) == 0 {
		return nil
	}
	return dups
}
