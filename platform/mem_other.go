// platform/mem_other.go
// Copyright(c) 2024 canvas contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

//go:build !linux

package platform

import "errors"

func fallbackTotalMemory() (uint64, error) {
	return 0, errors.New("no fallback memory query on this platform")
}
