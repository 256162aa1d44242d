// Package monitoring holds the diagnostic logger shared by the ROC tooling.
// The numeric kernel never logs; only helpers that touch the filesystem do.
package monitoring

import (
	"fmt"
	"log"
)

// Logf is the package-level diagnostic logger. It defaults to log.Printf.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces Logf. Passing nil mutes logging.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Capture redirects Logf into the returned slice until restore is called.
// Intended for tests that assert on emitted diagnostics.
func Capture() (lines *[]string, restore func()) {
	prev := Logf
	var buf []string
	Logf = func(format string, v ...interface{}) {
		buf = append(buf, fmt.Sprintf(format, v...))
	}
	return &buf, func() { Logf = prev }
}
