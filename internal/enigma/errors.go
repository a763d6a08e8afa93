package enigma

import (
	"fmt"

	"github.com/forcedentropy/enigma/internal/errs"
)

var errInvalidRotorName = fmt.Errorf("%w", errs.ErrInvalidInput)
