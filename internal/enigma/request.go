package enigma

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/forcedentropy/enigma/internal/errs"
)

// EncodeRequest captures spec.md §6's "Encode" programmatic surface
// inputs, with validator tags enforcing the "Constraints on external
// inputs" the spec lists.
type EncodeRequest struct {
	Rotors    []string `validate:"len=3,distinctrotors,dive,oneof=I II III IV V"`
	Reflector string   `validate:"oneof=B C"`
	Rings     string   `validate:"len=3,lowercase,alpha"`
	Rotations string   `validate:"len=3,lowercase,alpha"`
	Plugboard string   // parsed separately; format errors surface from plugboard.Parse.
	Message   string   `validate:"required"`
}

// CrackOneRequest captures the "Crack-one" surface: one fixed rotor order
// and reflector, a ciphertext/crib pair, and the checking-machine flag.
type CrackOneRequest struct {
	Rotors     []string `validate:"len=3,distinctrotors,dive,oneof=I II III IV V"`
	Reflector  string   `validate:"oneof=B C"`
	CipherText string   `validate:"required,lowercase,alpha"`
	Crib       string   `validate:"required,lowercase,alpha"`
	Check      bool
}

// CrackFarmRequest captures the "Crack-farm" surface: the ciphertext/crib
// pair, swept across all 60 rotor orderings.
type CrackFarmRequest struct {
	CipherText string `validate:"required,lowercase,alpha"`
	Crib       string `validate:"required,lowercase,alpha"`
	Check      bool
}

// Validate runs v against the struct tags, then enforces the cross-field
// rule the tag language can't express directly: ciphertext and crib must
// be the same length (spec.md §6, §4.6).
func (r CrackOneRequest) Validate(v *validator.Validate) error {
	if err := v.Struct(&r); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrInvalidInput, err)
	}
	if len(r.CipherText) != len(r.Crib) {
		return fmt.Errorf("%w: ciphertext and crib must be equal length", errs.ErrInvalidInput)
	}
	return nil
}

// Validate runs v against the struct tags and the equal-length rule.
func (r CrackFarmRequest) Validate(v *validator.Validate) error {
	if err := v.Struct(&r); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrInvalidInput, err)
	}
	if len(r.CipherText) != len(r.Crib) {
		return fmt.Errorf("%w: ciphertext and crib must be equal length", errs.ErrInvalidInput)
	}
	return nil
}

// Validate runs v against the struct tags for an EncodeRequest.
func (r EncodeRequest) Validate(v *validator.Validate) error {
	if err := v.Struct(&r); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrInvalidInput, err)
	}
	return nil
}
