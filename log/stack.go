// log/stack.go
// Copyright(c) 2024 canvas contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package log

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

const maxStackFrames = 16

type StackFrame struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Function string `json:"function"`
}

// Callstack returns the stack of its caller's callers, innermost first.
// skip gives the number of additional frames to omit, so that logging
// wrappers can leave themselves out. Collection stops at main.main or
// when the Go runtime or test harness is reached.
func Callstack(skip int) []StackFrame {
	var callers [maxStackFrames]uintptr
	n := runtime.Callers(2+skip, callers[:])
	frames := runtime.CallersFrames(callers[:n])

	fr := make([]StackFrame, 0, n)
	for {
		frame, more := frames.Next()
		if frame.Function == "" || isHarnessFrame(frame.Function) {
			break
		}

		fr = append(fr, StackFrame{
			File:     filepath.Base(frame.File),
			Line:     frame.Line,
			Function: trimFunction(frame.Function),
		})
		if !more || frame.Function == "main.main" {
			break
		}
	}
	return fr
}

func isHarnessFrame(fn string) bool {
	return strings.HasPrefix(fn, "runtime.") || strings.HasPrefix(fn, "testing.")
}

func trimFunction(fn string) string {
	fn = strings.TrimPrefix(fn, "github.com/inkwell/canvas/")
	return strings.TrimPrefix(fn, "main.")
}

func (f StackFrame) String() string {
	return f.File + ":" + strconv.Itoa(f.Line) + ":" + f.Function
}
