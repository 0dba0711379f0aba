package types

import "cosmossdk.io/errors"

var (
	ErrInvalidRequest     = errors.Register(ModuleName, 2, "invalid request")
	ErrArithmeticOverflow = errors.Register(ModuleName, 3, "arithmetic overflow")
	ErrDivisionByZero     = errors.Register(ModuleName, 4, "division by zero")
	ErrBindingMismatch    = errors.Register(ModuleName, 5, "authority binding mismatch")
	ErrAlreadyInitialized = errors.Register(ModuleName, 6, "vault already initialized")
	// ErrUnauthorized holds code 7 for ownership failures. Ownership of
	// deposited funds and burned shares is enforced by the bank keeper, which
	// reports its own errors; the code stays registered so the module's error
	// space does not shift if that enforcement ever moves in-module.
	ErrUnauthorized  = errors.Register(ModuleName, 7, "unauthorized")
	ErrVaultNotFound = errors.Register(ModuleName, 8, "vault not found")
)
