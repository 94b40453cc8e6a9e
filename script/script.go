// Package script generates ubf source text from Starlark programs.
//
// A script builds its program by calling the predeclared builtins:
//
//	emit(*text)    append raw source text
//	add(n)         n '+' symbols, or -n '-' symbols
//	move(n)        n '>' symbols, or -n '<' symbols
//	put(n=1)       n '.' symbols
//	get(n=1)       n ',' symbols
//	loop(body)     '[', the text emitted by calling body(), then ']'
//	clear()        '[-]'
//	text(s)        clear the current cell, then print s byte by byte
//
// The constant MAX_COUNT is also predeclared.
package script

import (
	"bytes"
	"log"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/ubf/bytecode"
)

// Generator collects source text emitted by a Starlark program.
type Generator struct {
	Verbose bool // If set, logs Starlark print() output.

	source bytes.Buffer
}

// Generate runs the Starlark program src, read from filename if src is
// nil, with a default Generator.
func Generate(filename string, src any) (source []byte, err error) {
	gen := &Generator{}
	return gen.Generate(filename, src)
}

// Generate runs the Starlark program src and returns the emitted source.
// src may be a string, []byte, io.Reader, or nil to read filename.
func (gen *Generator) Generate(filename string, src any) (source []byte, err error) {
	gen.source.Reset()

	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			if gen.Verbose {
				log.Printf("script: %v", msg)
			}
		},
	}

	opts := syntax.FileOptions{
		TopLevelControl: true,
		While:           true,
	}
	_, err = starlark.ExecFileOptions(&opts, thread, filename, src, gen.predeclared())
	if err != nil {
		err = &ErrScript{Filename: filename, Err: err}
		return
	}

	source = bytes.Clone(gen.source.Bytes())
	return
}

// predeclared returns the builtins visible to scripts.
func (gen *Generator) predeclared() starlark.StringDict {
	return starlark.StringDict{
		"MAX_COUNT": starlark.MakeInt(bytecode.MAX_COUNT),
		"emit":      starlark.NewBuiltin("emit", gen.emit),
		"add":       starlark.NewBuiltin("add", gen.signed('+', '-')),
		"move":      starlark.NewBuiltin("move", gen.signed('>', '<')),
		"put":       starlark.NewBuiltin("put", gen.repeat('.')),
		"get":       starlark.NewBuiltin("get", gen.repeat(',')),
		"loop":      starlark.NewBuiltin("loop", gen.loop),
		"clear":     starlark.NewBuiltin("clear", gen.clear),
		"text":      starlark.NewBuiltin("text", gen.text),
	}
}

func (gen *Generator) emit(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) != 0 {
		return nil, ErrKeywords
	}

	for _, arg := range args {
		str, ok := starlark.AsString(arg)
		if !ok {
			return nil, ErrNotString(arg.Type())
		}
		gen.source.WriteString(str)
	}

	return starlark.None, nil
}

// addCount writes the symbol for the sign of n, |n| times.
func (gen *Generator) addCount(n int, up, down byte) {
	symbol := up
	if n < 0 {
		symbol = down
		n = -n
	}
	gen.source.WriteString(strings.Repeat(string(symbol), n))
}

func (gen *Generator) signed(up, down byte) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var n int
		err := starlark.UnpackArgs(fn.Name(), args, kwargs, "n", &n)
		if err != nil {
			return nil, err
		}

		gen.addCount(n, up, down)
		return starlark.None, nil
	}
}

func (gen *Generator) repeat(symbol byte) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		n := 1
		err := starlark.UnpackArgs(fn.Name(), args, kwargs, "n?", &n)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, ErrNegative(n)
		}

		gen.addCount(n, symbol, symbol)
		return starlark.None, nil
	}
}

func (gen *Generator) loop(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var body starlark.Callable
	err := starlark.UnpackArgs(fn.Name(), args, kwargs, "body", &body)
	if err != nil {
		return nil, err
	}

	gen.source.WriteByte('[')
	_, err = starlark.Call(thread, body, nil, nil)
	if err != nil {
		return nil, err
	}
	gen.source.WriteByte(']')

	return starlark.None, nil
}

func (gen *Generator) clear(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	err := starlark.UnpackArgs(fn.Name(), args, kwargs)
	if err != nil {
		return nil, err
	}

	gen.source.WriteString("[-]")
	return starlark.None, nil
}

func (gen *Generator) text(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var str string
	err := starlark.UnpackArgs(fn.Name(), args, kwargs, "s", &str)
	if err != nil {
		return nil, err
	}

	gen.source.WriteString("[-]")

	// Take the shorter way around the 256 value ring.
	var value byte
	for _, c := range []byte(str) {
		delta := int(int8(c - value))
		gen.addCount(delta, '+', '-')
		gen.source.WriteByte('.')
		value = c
	}

	return starlark.None, nil
}
