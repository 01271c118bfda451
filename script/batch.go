package script

import (
	"bytes"
	"context"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/percona-lab/nodelist/errors"
	"github.com/percona-lab/nodelist/log"
)

// RunOptions configures RunFiles.
type RunOptions struct {
	// Jobs is the number of scripts evaluated at once. Less than 1 means no
	// limit.
	Jobs int
	// MaxLineSize is the longest line accepted. Zero uses the default.
	MaxLineSize int
}

// Result is the output of one script.
type Result struct {
	Path   string
	Output []byte
}

// RunFiles evaluates the script files at paths. Every script runs in its own
// interpreter, so no list is shared between scripts. Results are returned in
// the order of paths. The first failure cancels the scripts still running.
func RunFiles(ctx context.Context, paths []string, opts RunOptions) ([]Result, error) {
	results := make([]Result, len(paths))

	grp, grpCtx := errgroup.WithContext(ctx)
	if opts.Jobs > 0 {
		grp.SetLimit(opts.Jobs)
	}

	for i, path := range paths {
		grp.Go(func() error {
			var buf bytes.Buffer

			err := runFile(grpCtx, path, New(&buf, WithMaxLineSize(opts.MaxLineSize)))
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					log.Error(log.WithAttrs(ctx, log.Script(path, 0)), err, "script failed")
				}

				return err
			}

			results[i] = Result{Path: path, Output: buf.Bytes()}

			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	log.Debugf(ctx, "evaluated %d scripts", len(paths))

	return results, nil
}

func runFile(ctx context.Context, path string, in *Interpreter) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open script")
	}

	defer func() {
		err = errors.Join(err, errors.Wrap(f.Close(), "close script"))
	}()

	return in.Run(ctx, path, f)
}
