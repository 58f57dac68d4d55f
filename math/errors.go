// math/errors.go
// Copyright(c) 2024 canvas contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"errors"
	"fmt"
)

var ErrContractViolation = errors.New("contract violation")

// ContractError is returned when a caller breaks a precondition of one of
// the geometric routines (an out-of-range angle, an empty point set, a
// zero-length segment). It always matches ErrContractViolation with
// errors.Is.
type ContractError struct {
	Op  string
	Msg string
}

func (e *ContractError) Error() string {
	return e.Op + ": " + e.Msg
}

func (e *ContractError) Unwrap() error {
	return ErrContractViolation
}

func contractf(op string, format string, args ...any) error {
	return &ContractError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
