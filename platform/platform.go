// platform/platform.go
// Copyright(c) 2024 canvas contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package platform wraps the handful of host queries the canvas needs to
// size its work: total physical memory and the number of CPUs.
package platform

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// MemoryQuerier is the interface that abstracts the system memory query so
// that callers can substitute a fixed value.
type MemoryQuerier interface {
	// TotalMemory returns the total physical memory, in bytes.
	TotalMemory() (uint64, error)
}

// SystemMemory implements MemoryQuerier using the live system state.
type SystemMemory struct{}

func (SystemMemory) TotalMemory() (uint64, error) {
	return SystemRAM()
}

// FixedMemory implements MemoryQuerier, always returning the given number
// of megabytes.
type FixedMemory uint64

func (f FixedMemory) TotalMemory() (uint64, error) {
	return BytesFromMegabytes(uint64(f)), nil
}

// BytesFromMegabytes converts a platform-reported size in megabytes to
// bytes.
func BytesFromMegabytes(mb uint64) uint64 {
	return mb * 1024 * 1024
}

// SystemRAM returns the total physical memory in bytes. The platform's
// report is taken at megabyte granularity.
func SystemRAM() (uint64, error) {
	mb, err := systemRAMMegabytes()
	if err != nil {
		return 0, err
	}
	return BytesFromMegabytes(mb), nil
}

func systemRAMMegabytes() (uint64, error) {
	vm, err := mem.VirtualMemory()
	if err == nil && vm.Total > 0 {
		return vm.Total / (1024 * 1024), nil
	}

	total, ferr := fallbackTotalMemory()
	if ferr != nil {
		if err == nil {
			err = errors.New("zero total memory reported")
		}
		return 0, fmt.Errorf("unable to query system memory: %w (fallback: %v)", err, ferr)
	}
	return total / (1024 * 1024), nil
}

// NumCPU returns the number of logical CPUs.
func NumCPU() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}
