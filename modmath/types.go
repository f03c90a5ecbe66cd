package modmath

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cpkit"
)

var (
	// ErrInvalidArgument indicates an exponent or modulus outside the domain.
	ErrInvalidArgument = fmt.Errorf("modmath: %w", cpkit.ErrInvalidArgument)

	// ErrNoInverse indicates that a has no inverse modulo mod.
	ErrNoInverse = errors.New("modmath: no modular inverse")
)
