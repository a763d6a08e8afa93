// Command enigma is the interactive shell and batch CLI around the core
// Enigma/Bombe engine. It is deliberately out of core scope (spec.md §1):
// every subcommand here delegates straight into internal/enigma or
// internal/bombe and carries no cryptanalysis logic of its own.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/forcedentropy/enigma/internal/bombelog"
	"github.com/forcedentropy/enigma/internal/validation"
)

// globals are flags shared by every subcommand, following the pattern in
// sergeii-swat4master/cmd/swat4master/commander.Globals.
type globals struct {
	LogLevel string `default:"info" enum:"debug,info,warn,error" help:"Minimum severity level for log messages."`
}

type cli struct {
	globals

	Encode    encodeCmd    `cmd:"" help:"Encode a message with the current Enigma settings."`
	Crack     crackCmd     `cmd:"" help:"Crack a ciphertext/crib pair with one fixed rotor order."`
	FarmCrack farmCrackCmd `cmd:"" help:"Crack a ciphertext/crib pair across all 60 rotor orders."`
	Repl      replCmd      `cmd:"" help:"Start the interactive Enigma shell."`
}

func main() {
	var c cli

	ctx := kong.Parse(&c,
		kong.Name("enigma"),
		kong.Description("Enigma scrambler and Turing-Welchman Bombe cryptanalysis engine."),
		kong.UsageOnError(),
	)

	logger, err := bombelog.New(os.Stderr, c.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	validate, err := validation.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runCtx := &context{logger: logger, validate: validate}

	if err := ctx.Run(runCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
