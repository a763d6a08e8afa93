package main

import (
	"fmt"
	"strings"

	"github.com/forcedentropy/enigma/internal/enigma"
	"github.com/forcedentropy/enigma/internal/plugboard"
)

type encodeCmd struct {
	Rotors    []string `default:"I,II,III" help:"Left, middle, right rotor names, e.g. I,IV,III."`
	Reflector string   `default:"B" help:"Reflector name, B or C."`
	Rings     string   `default:"aaa" help:"Three ring-setting letters, left to right."`
	Rotations string   `default:"aaa" help:"Three starting-rotation letters, left to right."`
	Steckers  string   `help:"Space-separated plugboard pairs, e.g. \"ab cd\"."`
	Message   []string `arg:"" help:"Message to encode."`
}

func (c *encodeCmd) Run(ctx *context) error {
	req := enigma.EncodeRequest{
		Rotors:    c.Rotors,
		Reflector: c.Reflector,
		Rings:     c.Rings,
		Rotations: c.Rotations,
		Plugboard: c.Steckers,
		Message:   strings.Join(c.Message, " "),
	}
	if err := req.Validate(ctx.validate); err != nil {
		return err
	}

	machine, err := buildEnigma(req.Reflector, req.Rotors, req.Rings, req.Rotations, req.Plugboard)
	if err != nil {
		return err
	}

	fmt.Println(machine.Encode(req.Message))
	return nil
}

// buildEnigma assembles a machine from the CLI's flat string parameters,
// shared by the encode and crack subcommands.
func buildEnigma(reflector string, rotors []string, rings, rotations, steckers string) (*enigma.Enigma, error) {
	b := enigma.NewBuilder().
		SetReflector(reflector).
		SetLeft(rotors[0], rings[0], rotations[0]).
		SetMiddle(rotors[1], rings[1], rotations[1]).
		SetRight(rotors[2], rings[2], rotations[2])

	if steckers != "" {
		board, err := plugboard.Parse(steckers)
		if err != nil {
			return nil, err
		}
		b.SetBoard(board)
	}

	return b.Build()
}
