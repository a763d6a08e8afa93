package main

import (
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// context is passed by kong into every subcommand's Run method.
type context struct {
	logger   zerolog.Logger
	validate *validator.Validate
}
