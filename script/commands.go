package script

import (
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/percona-lab/nodelist/errors"
	"github.com/percona-lab/nodelist/list"
)

type command struct {
	usage   string
	minArgs int
	maxArgs int // -1 for no limit

	// run returns the list it changed or read, if any.
	run func(in *Interpreter, args []string) (*list.List[string], error)
}

//nolint:gochecknoglobals
var commands = map[string]command{
	"new": {
		usage:   "NAME [VALUE...]",
		minArgs: 1, maxArgs: -1,
		run: func(in *Interpreter, args []string) (*list.List[string], error) {
			l := list.FromSlice(args[1:])
			in.lists[args[0]] = l

			return l, nil
		},
	},
	"push": {
		usage:   "NAME VALUE...",
		minArgs: 2, maxArgs: -1,
		run: func(in *Interpreter, args []string) (*list.List[string], error) {
			l := in.getOrCreate(args[0])
			for _, val := range args[1:] {
				l.Push(val)
			}

			return l, nil
		},
	},
	"append": {
		usage:   "NAME VALUE...",
		minArgs: 2, maxArgs: -1,
		run: func(in *Interpreter, args []string) (*list.List[string], error) {
			l := in.getOrCreate(args[0])
			for _, val := range args[1:] {
				l.Append(val)
			}

			return l, nil
		},
	},
	"pop": {
		usage:   "NAME",
		minArgs: 1, maxArgs: 1,
		run: func(in *Interpreter, args []string) (*list.List[string], error) {
			l, err := in.get(args[0])
			if err != nil {
				return nil, err
			}

			return l, in.printValue(l.Pop())
		},
	},
	"insert": {
		usage:   "NAME INDEX VALUE",
		minArgs: 3, maxArgs: 3,
		run: func(in *Interpreter, args []string) (*list.List[string], error) {
			i, err := parseIndex(args[1])
			if err != nil {
				return nil, err
			}

			return in.getOrCreate(args[0]).InsertAt(i, args[2]), nil
		},
	},
	"split": {
		usage:   "NAME INDEX DEST",
		minArgs: 3, maxArgs: 3,
		run: func(in *Interpreter, args []string) (*list.List[string], error) {
			if args[0] == args[2] {
				return nil, errors.Wrap(ErrUsage, "destination is the source list")
			}

			l, err := in.get(args[0])
			if err != nil {
				return nil, err
			}

			i, err := parseIndex(args[1])
			if err != nil {
				return nil, err
			}

			rest := l.Split(i)
			if rest == nil {
				rest = list.New[string]()
			}

			in.lists[args[2]] = rest

			return l, nil
		},
	},
	"splice": {
		usage:   "NAME OTHER",
		minArgs: 2, maxArgs: 2,
		run: func(in *Interpreter, args []string) (*list.List[string], error) {
			other, err := in.get(args[1])
			if err != nil {
				return nil, err
			}

			return in.getOrCreate(args[0]).Splice(other), nil
		},
	},
	"splice-before": {
		usage:   "NAME OTHER",
		minArgs: 2, maxArgs: 2,
		run: func(in *Interpreter, args []string) (*list.List[string], error) {
			other, err := in.get(args[1])
			if err != nil {
				return nil, err
			}

			return in.getOrCreate(args[0]).SpliceBefore(other), nil
		},
	},
	"at": {
		usage:   "NAME INDEX",
		minArgs: 2, maxArgs: 2,
		run: func(in *Interpreter, args []string) (*list.List[string], error) {
			l, err := in.get(args[0])
			if err != nil {
				return nil, err
			}

			i, err := parseIndex(args[1])
			if err != nil {
				return nil, err
			}

			return l, in.printValue(l.At(i))
		},
	},
	"head": {
		usage:   "NAME",
		minArgs: 1, maxArgs: 1,
		run: func(in *Interpreter, args []string) (*list.List[string], error) {
			l, err := in.get(args[0])
			if err != nil {
				return nil, err
			}

			return l, in.printValue(l.Head())
		},
	},
	"last": {
		usage:   "NAME",
		minArgs: 1, maxArgs: 1,
		run: func(in *Interpreter, args []string) (*list.List[string], error) {
			l, err := in.get(args[0])
			if err != nil {
				return nil, err
			}

			return l, in.printValue(l.Last().Head())
		},
	},
	"depth": {
		usage:   "NAME",
		minArgs: 1, maxArgs: 1,
		run: func(in *Interpreter, args []string) (*list.List[string], error) {
			l, err := in.get(args[0])
			if err != nil {
				return nil, err
			}

			return l, in.println(humanize.Comma(int64(l.Depth())))
		},
	},
	"print": {
		usage:   "NAME",
		minArgs: 1, maxArgs: 1,
		run: func(in *Interpreter, args []string) (*list.List[string], error) {
			l, err := in.get(args[0])
			if err != nil {
				return nil, err
			}

			return l, in.println(l.String())
		},
	},
	"eq": {
		usage:   "NAME OTHER",
		minArgs: 2, maxArgs: 2,
		run: func(in *Interpreter, args []string) (*list.List[string], error) {
			a, err := in.get(args[0])
			if err != nil {
				return nil, err
			}

			b, err := in.get(args[1])
			if err != nil {
				return nil, err
			}

			return nil, in.println(strconv.FormatBool(list.Equal(a, b)))
		},
	},
	"match": {
		usage:   "NAME [VALUE...]",
		minArgs: 1, maxArgs: -1,
		run: func(in *Interpreter, args []string) (*list.List[string], error) {
			l, err := in.get(args[0])
			if err != nil {
				return nil, err
			}

			return l, in.println(strconv.FormatBool(list.EqualSlice(l, args[1:])))
		},
	},
	"copy": {
		usage:   "NAME DEST",
		minArgs: 2, maxArgs: 2,
		run: func(in *Interpreter, args []string) (*list.List[string], error) {
			l, err := in.get(args[0])
			if err != nil {
				return nil, err
			}

			c := l.Clone()
			in.lists[args[1]] = c

			return c, nil
		},
	},
	"clear": {
		usage:   "NAME",
		minArgs: 1, maxArgs: 1,
		run: func(in *Interpreter, args []string) (*list.List[string], error) {
			l, err := in.get(args[0])
			if err != nil {
				return nil, err
			}

			l.Clear()

			return l, nil
		},
	},
	"drop": {
		usage:   "NAME",
		minArgs: 1, maxArgs: 1,
		run: func(in *Interpreter, args []string) (*list.List[string], error) {
			if _, err := in.get(args[0]); err != nil {
				return nil, err
			}

			delete(in.lists, args[0])

			return nil, nil
		},
	},
}
