// Package script runs Starlark playground programs against a processor.
//
// Registers are named as in LookupRegister ("D3", "a7", "pc"). Integers
// passed to the builtins may be negative; they are stored by their
// two's-complement bit pattern.
package script

import (
	_ "embed"
	"fmt"
	"io"
	"log"
	"math"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/simplecpu/processor"
	"github.com/ezrec/simplecpu/value"
)

// DEFAULT_SCRIPT is the built-in playground session.
//
//go:embed playground.star
var DEFAULT_SCRIPT string

// Playground binds a processor to the Starlark builtins.
type Playground struct {
	Verbose   bool                 // If set, logs script execution.
	Processor *processor.Processor // Machine state the script works on.
	Output    io.Writer            // Destination of print().
}

// NewPlayground creates a playground over proc, printing to output.
func NewPlayground(proc *processor.Processor, output io.Writer) (pg *Playground) {
	pg = &Playground{
		Processor: proc,
		Output:    output,
	}

	return
}

type builtinFunc func(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

// toWord converts a Starlark int to a word.
func toWord(v starlark.Value) (rv value.RegisterValue, err error) {
	num, ok := v.(starlark.Int)
	if !ok {
		err = ErrNotInteger(v.Type())
		return
	}

	i64, ok := num.Int64()
	if !ok || i64 > math.MaxUint32 || i64 < math.MinInt32 {
		err = ErrWordRange(num.String())
		return
	}

	if i64 < 0 {
		rv = value.SignedRegisterValue(i64).AsUnsigned()
	} else {
		rv = value.RegisterValue(i64)
	}
	return
}

func fromWord(rv value.RegisterValue) starlark.Value {
	return starlark.MakeUint64(uint64(rv))
}

// unpackWords unpacks positional word arguments.
func unpackWords(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple, names ...string) (words []value.RegisterValue, err error) {
	vals := make([]starlark.Value, len(names))
	pairs := make([]any, 0, 2*len(names))
	for n, name := range names {
		pairs = append(pairs, name, &vals[n])
	}

	err = starlark.UnpackArgs(b.Name(), args, kwargs, pairs...)
	if err != nil {
		return
	}

	words = make([]value.RegisterValue, len(names))
	for n, v := range vals {
		words[n], err = toWord(v)
		if err != nil {
			err = fmt.Errorf("%v: %v: %w", b.Name(), names[n], err)
			return
		}
	}

	return
}

func (pg *Playground) lookup(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple, extra ...any) (name processor.RegisterName, err error) {
	var text string
	pairs := append([]any{"reg", &text}, extra...)
	err = starlark.UnpackArgs(b.Name(), args, kwargs, pairs...)
	if err != nil {
		return
	}

	name, err = processor.LookupRegister(text)
	if err != nil {
		err = fmt.Errorf("%v: %w", b.Name(), err)
	}
	return
}

func (pg *Playground) get(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	name, err := pg.lookup(b, args, kwargs)
	if err != nil {
		return nil, err
	}

	rv, err := pg.Processor.Value(name)
	if err != nil {
		return nil, err
	}

	return fromWord(rv), nil
}

func (pg *Playground) assign(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var v starlark.Value
	name, err := pg.lookup(b, args, kwargs, "value", &v)
	if err != nil {
		return nil, err
	}

	rv, err := toWord(v)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", b.Name(), err)
	}

	return starlark.None, pg.Processor.SetValue(name, rv)
}

// set parses text into a register. It returns False, and zeroes the
// register, when the text is not a hex value.
func (pg *Playground) set(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text string
	name, err := pg.lookup(b, args, kwargs, "text", &text)
	if err != nil {
		return nil, err
	}

	reg := pg.Processor.Register(name)
	if reg != nil {
		err = reg.SetValueFrom(text)
	} else {
		var rv value.RegisterValue
		rv, err = value.Parse(text)
		pg.Processor.Pc = rv
	}

	if err != nil && pg.Verbose {
		log.Printf("script: %v: %v", b.Name(), err)
	}

	return starlark.Bool(err == nil), nil
}

func (pg *Playground) name(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	name, err := pg.lookup(b, args, kwargs)
	if err != nil {
		return nil, err
	}

	reg := pg.Processor.Register(name)
	if reg == nil {
		return starlark.String("PC"), nil
	}

	return starlark.String(reg.NameString()), nil
}

func (pg *Playground) show(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	name, err := pg.lookup(b, args, kwargs)
	if err != nil {
		return nil, err
	}

	reg := pg.Processor.Register(name)
	if reg == nil {
		return starlark.String("PC: " + pg.Processor.Pc.HexString(value.FLAG_HASH)), nil
	}

	return starlark.String(reg.DisplayString()), nil
}

func (pg *Playground) hex(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var v starlark.Value
	prefix := ""
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "value", &v, "flag?", &prefix)
	if err != nil {
		return nil, err
	}

	rv, err := toWord(v)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", b.Name(), err)
	}

	flag, ok := value.HexFlagOf(prefix)
	if !ok {
		return nil, fmt.Errorf("%v: %w", b.Name(), ErrHexFlag(prefix))
	}

	return starlark.String(rv.HexString(flag)), nil
}

func (pg *Playground) parse(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text string
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "text", &text)
	if err != nil {
		return nil, err
	}

	rv, err := value.Parse(text)
	if err != nil {
		return starlark.None, nil
	}

	return fromWord(rv), nil
}

func (pg *Playground) signed(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	words, err := unpackWords(b, args, kwargs, "value")
	if err != nil {
		return nil, err
	}

	return starlark.MakeInt64(int64(words[0].AsSigned())), nil
}

func (pg *Playground) parity(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	words, err := unpackWords(b, args, kwargs, "value")
	if err != nil {
		return nil, err
	}

	return starlark.Bool(words[0].EvenParity()), nil
}

// fetcher wraps a memory read as a builtin.
func (pg *Playground) fetcher(read func(address value.RegisterValue) (value.RegisterValue, error)) builtinFunc {
	return func(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		words, err := unpackWords(b, args, kwargs, "address")
		if err != nil {
			return nil, err
		}

		rv, err := read(words[0])
		if err != nil {
			return nil, fmt.Errorf("%v: %w", b.Name(), err)
		}

		return fromWord(rv), nil
	}
}

// storer wraps a memory write as a builtin.
func (pg *Playground) storer(write func(address value.RegisterValue, data value.RegisterValue) error) builtinFunc {
	return func(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		words, err := unpackWords(b, args, kwargs, "address", "value")
		if err != nil {
			return nil, err
		}

		err = write(words[0], words[1])
		if err != nil {
			return nil, fmt.Errorf("%v: %w", b.Name(), err)
		}

		return starlark.None, nil
	}
}

func (pg *Playground) flag(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text string
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &text)
	if err != nil {
		return nil, err
	}

	flag, err := processor.LookupFlag(text)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", b.Name(), err)
	}

	return starlark.Bool(pg.Processor.Flags.Has(flag)), nil
}

func (pg *Playground) setFlag(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text string
	on := true
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &text, "on?", &on)
	if err != nil {
		return nil, err
	}

	flag, err := processor.LookupFlag(text)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", b.Name(), err)
	}

	pg.Processor.Flags = pg.Processor.Flags.Assign(flag, on)
	return starlark.None, nil
}

func (pg *Playground) dump(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	err := starlark.UnpackArgs(b.Name(), args, kwargs)
	if err != nil {
		return nil, err
	}

	return starlark.String(pg.Processor.String()), nil
}

// Predeclared returns the builtins bound to the playground processor.
func (pg *Playground) Predeclared() starlark.StringDict {
	mem := pg.Processor.Memory
	funcs := map[string]builtinFunc{
		"get":         pg.get,
		"assign":      pg.assign,
		"set":         pg.set,
		"name":        pg.name,
		"show":        pg.show,
		"hex":         pg.hex,
		"parse":       pg.parse,
		"signed":      pg.signed,
		"parity":      pg.parity,
		"peek":        pg.fetcher(mem.Byte),
		"poke":        pg.storer(mem.StoreByte),
		"short":       pg.fetcher(mem.Short),
		"store_short": pg.storer(mem.StoreShort),
		"word":        pg.fetcher(mem.Word),
		"store_word":  pg.storer(mem.StoreWord),
		"flag":        pg.flag,
		"set_flag":    pg.setFlag,
		"dump":        pg.dump,
	}

	dict := starlark.StringDict{}
	for name, fn := range funcs {
		dict[name] = starlark.NewBuiltin(name, func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			return fn(b, args, kwargs)
		})
	}

	return dict
}

// Exec runs a Starlark program, returning its global variables.
// The source src may be anything starlark.ExecFile accepts.
func (pg *Playground) Exec(filename string, src any) (globals starlark.StringDict, err error) {
	if pg.Verbose {
		log.Printf("script: exec %v", filename)
	}

	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			if pg.Output != nil {
				fmt.Fprintln(pg.Output, msg)
			}
		},
	}

	opts := syntax.FileOptions{}
	globals, err = starlark.ExecFileOptions(&opts, thread, filename, src, pg.Predeclared())
	if err != nil && pg.Verbose {
		if eval, ok := err.(*starlark.EvalError); ok {
			log.Printf("script: %v", eval.Backtrace())
		}
	}

	return
}

// Run executes the built-in playground session.
func (pg *Playground) Run() (err error) {
	_, err = pg.Exec("playground.star", DEFAULT_SCRIPT)
	return
}
