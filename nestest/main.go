// nestest runs a cartridge from its reset vector (or from a fixed start
// address) and prints an FCEUX style execution trace, or compares the trace
// against a reference log.
//
//	nestest -rom nestest.nes -pc C000 -n 8991
//	nestest -rom game.nes -log reference.log
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/meadori/nescore/cartridge"
	"github.com/meadori/nescore/curated"
	"github.com/meadori/nescore/logger"
	"github.com/meadori/nescore/machine"
	"github.com/meadori/nescore/trace"
)

func main() {
	romPath := flag.String("rom", "nestest/testdata/nestest.nes", "path to the iNES image")
	refPath := flag.String("log", "", "reference log to compare against")
	start := flag.String("pc", "", "start address in hex, instead of the reset vector")
	count := flag.Int("n", -1, "number of instructions to trace (-1 runs until halted)")
	verbose := flag.Bool("v", false, "echo the emulator log to stderr")
	flag.Parse()

	if *verbose {
		logger.SetEcho(os.Stderr)
	}

	cart, err := cartridge.Load(*romPath)
	if err != nil {
		log.Fatalf("Error loading %s: %v", *romPath, err)
	}

	m := machine.New(cart, nil)
	if *start != "" {
		pc, err := strconv.ParseUint(*start, 16, 16)
		if err != nil {
			log.Fatalf("Invalid start address %q: %v", *start, err)
		}
		m.CPU.PC = uint16(pc)
	}

	if *refPath != "" {
		f, err := os.Open(*refPath)
		if err != nil {
			log.Fatalf("Error opening reference log: %v", err)
		}
		defer f.Close()

		n, err := trace.Compare(m, f)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			logger.Tail(os.Stderr, 10)
			os.Exit(1)
		}
		fmt.Printf("%d lines match\n", n)
		return
	}

	w := bufio.NewWriter(os.Stdout)
	err = trace.Run(m, w, *count)
	w.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if !curated.IsUnimplemented(err) {
			os.Exit(1)
		}
	}
}
