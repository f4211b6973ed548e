// Package scan walks directory tree and produces shared rules file in every
// directory where stylesheets have rules in common.
package scan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssshare/common"
	"cssshare/config"
	"cssshare/css"
	"cssshare/rules"
	"cssshare/utils/debug"
)

// ErrInvalidRoot is returned when tree root does not exist or is not a
// directory.
var ErrInvalidRoot = errors.New("invalid root directory")

// Summary describes what was done during single Process call.
type Summary struct {
	// Directories is the number of visited directories.
	Directories int
	// Skipped counts directories which did not need shared rules file.
	Skipped int
	// Written counts produced shared rules files.
	Written int
	// Groups is total number of shared rules written.
	Groups int
	// Failures accumulates per directory errors, nil when there were none.
	Failures error
}

// Processor handles directories one at a time, nothing is carried between
// directories.
type Processor struct {
	cfg   *config.ScanConfig
	canon *rules.Canonicalizer
	rpt   *config.Report
	log   *zap.Logger

	dumps int
}

// New returns Processor. Report may be nil.
func New(cfg *config.ScanConfig, parser *css.Parser, rpt *config.Report, log *zap.Logger) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("scan")
	return &Processor{
		cfg:   cfg,
		canon: rules.NewCanonicalizer(parser, log),
		rpt:   rpt,
		log:   log,
	}
}

// Process walks the tree under root. Symbolic links to directories are not
// followed. Failures in a single directory are logged and collected in
// Summary, they never stop the walk. Returned error means the walk itself
// could not be done or was interrupted.
func (p *Processor) Process(ctx context.Context, root string) (*Summary, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %w", ErrInvalidRoot, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w '%s': not a directory", ErrInvalidRoot, root)
	}

	sum := &Summary{}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			// directory was already reported by processDir
			p.log.Debug("Unable to descend", zap.String("dir", path), zap.Error(err))
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		sum.Directories++
		written, groups, err := p.processDir(ctx, path)
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return err
		case err != nil:
			p.log.Warn("Unable to process directory", zap.String("dir", path), zap.Error(err))
			sum.Failures = multierr.Append(sum.Failures, err)
		case written:
			sum.Written++
			sum.Groups += groups
		default:
			sum.Skipped++
		}
		return nil
	})
	return sum, err
}

// processDir looks at stylesheets directly in dir and writes shared rules
// file when there is something to share.
func (p *Processor) processDir(ctx context.Context, dir string) (bool, int, error) {
	files, err := p.listStylesheets(dir)
	if err != nil {
		return false, 0, err
	}
	if len(files) < 2 {
		p.log.Debug("Not enough stylesheets, skipping", zap.String("dir", dir), zap.Int("files", len(files)))
		return false, 0, nil
	}

	parsed := make([]rules.FileRules, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return false, 0, err
		}
		m := p.canon.File(path)
		if m.Len() == 0 {
			p.log.Debug("No rules found", zap.String("file", path))
			continue
		}
		p.log.Debug("Stylesheet parsed", zap.String("file", path), zap.Int("rules", m.Len()))
		parsed = append(parsed, rules.FileRules{Path: path, Rules: m})
	}
	if len(parsed) == 0 {
		p.log.Info("No rules in stylesheets, skipping", zap.String("dir", dir))
		return false, 0, nil
	}

	groups := rules.FindDuplicates(parsed)
	p.dump(dir, parsed, groups)
	if len(groups) == 0 {
		p.log.Info("No shared rules", zap.String("dir", dir), zap.Int("files", len(parsed)))
		return false, 0, nil
	}

	dst, err := rules.WriteShared(groups, dir, p.cfg.OutputName)
	if err != nil {
		return false, 0, err
	}
	p.log.Info("Shared rules written", zap.String("file", dst), zap.Int("rules", len(groups)))
	if err := p.rpt.StoreCopy(fmt.Sprintf("scan/%04d-%s", p.dumps, filepath.Base(dst)), dst); err != nil {
		p.log.Debug("Unable to store result in report", zap.String("file", dst), zap.Error(err))
	}
	return true, len(groups), nil
}

// listStylesheets returns stylesheets located directly in dir in processing
// order. Produced file is never a stylesheet to analyze.
func (p *Processor) listStylesheets(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("unable to read directory '%s': %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if name == p.cfg.OutputName || !p.hasExtension(name) {
			continue
		}
		switch {
		case e.Type().IsRegular():
		case e.Type()&fs.ModeSymlink != 0:
			fi, err := os.Stat(filepath.Join(dir, name))
			if err != nil || !fi.Mode().IsRegular() {
				p.log.Debug("Ignoring link", zap.String("dir", dir), zap.String("name", name), zap.Error(err))
				continue
			}
		default:
			continue
		}
		names = append(names, name)
	}

	switch p.cfg.FileOrder {
	case common.FileOrderNatural:
		sort.Sort(natural.StringSlice(names))
	default:
		slices.Sort(names)
	}

	paths := make([]string, 0, len(names))
	for _, name := range names {
		paths = append(paths, filepath.Join(dir, name))
	}
	return paths, nil
}

func (p *Processor) hasExtension(name string) bool {
	return slices.ContainsFunc(p.cfg.Extensions, func(ext string) bool {
		return len(name) > len(ext) && strings.HasSuffix(name, ext)
	})
}

// dump stores readable state of processed directory in the debug report.
func (p *Processor) dump(dir string, files []rules.FileRules, groups []rules.Group) {
	if p.rpt == nil {
		return
	}

	tw := debug.NewTreeWriter()
	tw.TextBlock(0, "directory", dir)
	tw.Line(1, "stylesheets (%d)", len(files))
	for _, f := range files {
		tw.TextBlock(2, "file", filepath.Base(f.Path))
		for sel, props := range f.Rules.All() {
			tw.TextBlock(3, "selector", sel)
			tw.List(4, "properties", slices.Collect(props.All()))
		}
	}
	tw.Line(1, "shared (%d)", len(groups))
	for i, g := range groups {
		used := make([]string, 0, len(g.Files))
		for _, f := range g.Files {
			used = append(used, filepath.Base(f))
		}
		tw.Line(2, "rule %d", i+1)
		tw.TextBlock(3, "selector", g.Selector)
		tw.List(3, "properties", slices.Collect(g.Properties.All()))
		tw.List(3, "used in", used)
	}

	p.dumps++
	p.rpt.StoreData(fmt.Sprintf("scan/%04d.txt", p.dumps), tw.Bytes())
}
