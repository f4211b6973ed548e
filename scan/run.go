package scan

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssshare/config"
	"cssshare/css"
	"cssshare/state"
)

// Run is the command action: it scans directory given as the first argument.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Logger().Named("scan")

	root := cmd.Args().Get(0)
	if len(root) == 0 {
		return fmt.Errorf("%w: no directory has been specified", ErrInvalidRoot)
	}
	if root, err = filepath.Abs(root); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRoot, err)
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many directories", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	if name := cmd.String("output-name"); len(name) > 0 {
		clean := config.CleanFileName(name)
		if clean != name {
			log.Warn("Output file name was sanitized", zap.String("requested", name), zap.String("actual", clean))
		}
		env.Cfg.Scan.OutputName = clean
	}

	parser := css.NewParser(env.Log,
		css.WithStrictness(env.Cfg.Parser.Strictness),
		css.WithLogLevel(env.Cfg.Parser.LogLevel))
	proc := New(&env.Cfg.Scan, parser, env.Rpt, env.Log)

	log.Info("Processing starting", zap.String("root", root), zap.String("output", env.Cfg.Scan.OutputName))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	sum, err := proc.Process(ctx, root)
	if err != nil {
		return err
	}

	log.Info("Summary",
		zap.Int("directories", sum.Directories),
		zap.Int("written", sum.Written),
		zap.Int("skipped", sum.Skipped),
		zap.Int("rules", sum.Groups))
	if sum.Failures != nil {
		log.Warn("Some directories were not processed", zap.Int("count", len(multierr.Errors(sum.Failures))), zap.Error(sum.Failures))
	}
	return nil
}
