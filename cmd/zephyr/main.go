// Command zephyr runs a source file through the interpreter pipeline.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shadowCow/zephyr-lang-go/internal/host"
	"github.com/shadowCow/zephyr-lang-go/internal/runner"
)

func main() {
	flags := flag.NewFlagSet("zephyr", flag.ExitOnError)
	debug := flags.Bool("debug", false, "print grammar, FIRST/FOLLOW sets, parse table, and parse trace")
	seed := flags.Int64("seed", 0, "seed the \"random\" keyword's PRNG (defaults to the current time)")
	flags.Parse(os.Args[1:])

	if flags.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [--debug] [--seed N] <file.zph>\n", os.Args[0])
		os.Exit(1)
	}
	filePath := flags.Arg(0)

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	io := host.NewStdio(os.Stdin, os.Stdout)
	if err := runner.Run(filePath, io, s, *debug, os.Stderr); err != nil {
		log.Fatal(err)
	}
}
