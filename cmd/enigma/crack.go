package main

import (
	"fmt"

	"github.com/forcedentropy/enigma/internal/bombe"
	"github.com/forcedentropy/enigma/internal/enigma"
)

type crackCmd struct {
	Rotors     []string `default:"I,II,III" help:"Left, middle, right rotor names to crack against."`
	Reflector  string   `default:"B" help:"Reflector name, B or C."`
	Check      bool     `default:"true" help:"Run the checking machine on ambiguous stops."`
	CipherText string   `arg:""`
	Crib       string   `arg:""`
}

func (c *crackCmd) Run(ctx *context) error {
	req := enigma.CrackOneRequest{
		Rotors:     c.Rotors,
		Reflector:  c.Reflector,
		CipherText: c.CipherText,
		Crib:       c.Crib,
		Check:      c.Check,
	}
	if err := req.Validate(ctx.validate); err != nil {
		return err
	}

	machine, err := buildEnigma(req.Reflector, req.Rotors, "aaa", "aaa", "")
	if err != nil {
		return err
	}

	b, err := bombe.New(machine, req.CipherText, req.Crib, req.Check)
	if err != nil {
		return err
	}

	stops, err := b.Run()
	if err != nil {
		return err
	}

	printStops(stops, false)
	return nil
}

func printStops(stops []bombe.Stop, withConfiguration bool) {
	fmt.Printf("Possible rotor rotations and plug board deductions (%d stops):\n", len(stops))
	for i, stop := range stops {
		if withConfiguration {
			fmt.Printf("%d) %s: %s %s\n", i+1, stop.Indicator, stop.Plugboard, stop.Configuration)
		} else {
			fmt.Printf("%d) %s: %s\n", i+1, stop.Indicator, stop.Plugboard)
		}
	}
}
