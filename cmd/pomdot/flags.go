package main

import (
	"strconv"

	"github.com/spf13/pflag"
)

// toggle is a boolean flag that shares its target with its opposite flag.
// Each occurrence overwrites the target, so the last of a --x/--no-x pair
// wins. The target stays nil when neither flag is given.
type toggle struct {
	target **bool
	value  bool
}

func (t toggle) String() string {
	if t.target == nil || *t.target == nil {
		return "false"
	}
	return strconv.FormatBool(**t.target == t.value)
}

func (t toggle) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	v := b == t.value
	*t.target = &v
	return nil
}

func (t toggle) Type() string {
	return "bool"
}

// toggleVar registers a toggle flag that sets *target to value when given.
func toggleVar(fs *pflag.FlagSet, target **bool, name string, value bool, usage string) {
	fl := fs.VarPF(toggle{target: target, value: value}, name, "", usage)
	fl.NoOptDefVal = "true"
}

// flagEvent records a flag occurrence and how many positional arguments
// pflag had collected before it.
type flagEvent struct {
	name string
	args int
}

// flagOrder tracks flag occurrences in argument order so positional
// arguments can be tied to the flag they follow.
type flagOrder struct {
	fs     *pflag.FlagSet
	events []flagEvent
}

// recordedValue wraps a flag value to log each occurrence.
type recordedValue struct {
	pflag.Value
	name  string
	order *flagOrder
}

func (v recordedValue) Set(s string) error {
	v.order.events = append(v.order.events, flagEvent{name: v.name, args: len(v.order.fs.Args())})
	return v.Value.Set(s)
}

// recordFlagOrder wraps every flag registered on fs so far.
func recordFlagOrder(fs *pflag.FlagSet) *flagOrder {
	o := &flagOrder{fs: fs}
	fs.VisitAll(func(f *pflag.Flag) {
		f.Value = recordedValue{Value: f.Value, name: f.Name, order: o}
	})
	return o
}

// continues reports whether all nargs positional arguments directly follow
// the last occurrence of the named flag, with no other flag in between.
func (o *flagOrder) continues(name string, nargs int) bool {
	last := -1
	for i, e := range o.events {
		if e.name == name {
			last = i
		}
	}
	if last < 0 {
		return nargs == 0
	}
	if o.events[last].args != 0 {
		return false
	}
	for _, e := range o.events[last+1:] {
		if e.args != nargs {
			return false
		}
	}
	return true
}
