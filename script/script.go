// Package script evaluates line-oriented scripts that build and reshape named
// lists of strings.
//
// Each line is a command followed by its arguments, separated by spaces.
// Blank lines and lines starting with '#' are skipped:
//
//	new a 1 2 3
//	insert a 1 9
//	split a 2 b
//	print a
//	print b
package script

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/percona-lab/nodelist/config"
	"github.com/percona-lab/nodelist/errors"
	"github.com/percona-lab/nodelist/list"
	"github.com/percona-lab/nodelist/log"
	"github.com/percona-lab/nodelist/metrics"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUnknownList    = errors.New("unknown list")
	ErrUsage          = errors.New("invalid arguments")
)

// none is printed in place of an absent element.
const none = "none"

// Interpreter holds the named lists a script works on. It is not safe for
// concurrent use.
type Interpreter struct {
	lists       map[string]*list.List[string]
	out         io.Writer
	maxLineSize int
}

type Option func(in *Interpreter)

// WithMaxLineSize sets the longest line Run accepts.
func WithMaxLineSize(size int) Option {
	return func(in *Interpreter) {
		if size > 0 {
			in.maxLineSize = size
		}
	}
}

// New returns an interpreter that writes command output to out.
func New(out io.Writer, opts ...Option) *Interpreter {
	in := &Interpreter{
		lists:       make(map[string]*list.List[string]),
		out:         out,
		maxLineSize: config.DefaultMaxLineSize,
	}

	for _, opt := range opts {
		opt(in)
	}

	return in
}

// List returns the list registered under name.
func (in *Interpreter) List(name string) (*list.List[string], bool) {
	l, ok := in.lists[name]
	return l, ok
}

// Run executes the script read from r line by line. It stops at the first
// failing line. name is used in errors and logs.
func (in *Interpreter) Run(ctx context.Context, name string, r io.Reader) error {
	startedAt := time.Now()
	defer func() {
		metrics.AddScript()
		metrics.SetScriptDuration(time.Since(startedAt))
	}()

	ctx = log.WithAttrs(ctx, log.Scope("script"))

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(in.maxLineSize, 4*config.KiB)), in.maxLineSize)

	lineno := 0
	for scanner.Scan() {
		lineno++

		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "%s:%d", name, lineno)
		}

		lineCtx := log.WithAttrs(ctx, log.Script(name, lineno))
		if err := in.Exec(lineCtx, scanner.Text()); err != nil {
			return errors.Wrapf(err, "%s:%d", name, lineno)
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "read %s", name)
	}

	log.Debugf(log.WithAttrs(ctx, log.Script(name, 0)),
		"%d lines in %s", lineno, time.Since(startedAt))

	return nil
}

// Exec executes a single command line.
func (in *Interpreter) Exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	op, args := fields[0], fields[1:]

	cmd, ok := commands[op]
	if !ok {
		return errors.Wrapf(ErrUnknownCommand, "%q", op)
	}

	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		metrics.AddOperationError(op)
		return errors.Wrapf(ErrUsage, "usage: %s %s", op, cmd.usage)
	}

	ctx = log.WithAttrs(ctx, log.Operation(op))

	touched, err := cmd.run(in, args)
	if err != nil {
		metrics.AddOperationError(op)
		return errors.Wrap(err, op)
	}

	metrics.AddOperation(op)
	if touched != nil {
		metrics.SetLastDepth(touched.Depth())
		log.Tracef(ctx, "%s", touched)
	}

	log.Debug(ctx, strings.Join(args, " "))

	return nil
}

func (in *Interpreter) get(name string) (*list.List[string], error) {
	l, ok := in.lists[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownList, "%q", name)
	}

	return l, nil
}

func (in *Interpreter) getOrCreate(name string) *list.List[string] {
	l, ok := in.lists[name]
	if !ok {
		l = list.New[string]()
		in.lists[name] = l
	}

	return l
}

func (in *Interpreter) println(s string) error {
	_, err := fmt.Fprintln(in.out, s)
	return errors.Wrap(err, "write output")
}

func (in *Interpreter) printValue(val string, ok bool) error {
	if !ok {
		return in.println(none)
	}

	return in.println(val)
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(ErrUsage, "index %q", s)
	}

	return i, nil
}
