// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/ubf/compiler"
	ubfio "github.com/ezrec/ubf/io"
	"github.com/ezrec/ubf/script"
	"github.com/ezrec/ubf/translate"
	"github.com/ezrec/ubf/vm"
)

func main() {
	var file string
	var starlark string
	var input string
	var output string
	var disassemble bool
	var dump bool
	var eof string
	var ticks int
	var showTape bool
	var verbose bool
	var lang string

	flag.StringVar(&file, "f", "-", "Program file")
	flag.StringVar(&starlark, "s", "", "Starlark script generating the program")
	flag.StringVar(&input, "i", "", "Program input (default: terminal)")
	flag.StringVar(&output, "o", "-", "Program output")
	flag.BoolVar(&disassemble, "d", false, "Disassemble, do not execute")
	flag.BoolVar(&dump, "x", false, "Hex dump bytecode, do not execute")
	flag.StringVar(&eof, "e", vm.EOF_MINUS_ONE.String(), "Input EOF stores: minus, zero, or keep")
	flag.IntVar(&ticks, "n", 0, "Maximum instructions to execute (0: unlimited)")
	flag.BoolVar(&showTape, "t", false, "Print the VM state after execution")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&lang, "l", "", "Message locale (default: from environment)")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(lang) != 0 {
		err := translate.SetLocale(lang)
		if err != nil {
			log.Fatalf("%v: -l %v: %v", os.Args[0], lang, err)
		}
	}

	eofMode, ok := vm.ParseEOFMode(eof)
	if !ok {
		log.Fatalf("%v: -e %v: must be minus, zero, or keep", os.Args[0], eof)
	}

	var source []byte
	var err error
	name := file

	// Load or generate the program text.
	switch {
	case len(starlark) != 0:
		name = starlark
		gen := &script.Generator{Verbose: verbose}
		source, err = gen.Generate(starlark, nil)
	case file == "-":
		name = "stdin"
		source, err = io.ReadAll(os.Stdin)
	default:
		source, err = os.ReadFile(file)
	}
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	cc := &compiler.Compiler{Verbose: verbose}
	chunk, err := cc.Compile(source)
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	if dump || disassemble {
		if disassemble {
			err = chunk.Disassemble(os.Stdout)
		} else {
			err = chunk.Dump(os.Stdout)
		}
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	machine := vm.NewVm()
	machine.Verbose = verbose
	machine.EOF = eofMode
	machine.TickLimit = ticks

	if len(input) != 0 {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		machine.Input = ubfio.NewStream(inf, nil)
	}

	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		machine.Output = ubfio.NewStream(nil, ouf)
	}

	err = machine.Run(chunk)

	if showTape {
		fmt.Fprint(os.Stderr, machine.String())
	}

	cerr := machine.Close()
	if err == nil {
		err = cerr
	}
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}
}
