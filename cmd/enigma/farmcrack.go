package main

import (
	"github.com/forcedentropy/enigma/internal/bombe"
	"github.com/forcedentropy/enigma/internal/enigma"
)

type farmCrackCmd struct {
	Check      bool   `default:"true" help:"Run the checking machine on ambiguous stops."`
	CipherText string `arg:""`
	Crib       string `arg:""`
}

func (c *farmCrackCmd) Run(ctx *context) error {
	req := enigma.CrackFarmRequest{
		CipherText: c.CipherText,
		Crib:       c.Crib,
		Check:      c.Check,
	}
	if err := req.Validate(ctx.validate); err != nil {
		return err
	}

	farm := bombe.NewFarm(req.CipherText, req.Crib, req.Check, ctx.logger)
	stops, err := farm.Run()
	if err != nil {
		return err
	}

	printStops(stops, true)
	return nil
}
