// Package options provides shared validation for functional option sets.
package options

import "fmt"

// CountSet returns how many of the given flags are set.
func CountSet(flags ...bool) int {
	n := 0
	for _, set := range flags {
		if set {
			n++
		}
	}
	return n
}

// ValidateSingleInputSource ensures exactly one input source is specified.
// sources is a variadic list of booleans indicating whether each source is
// set; noSourceMsg and multiSourceMsg are the errors for zero sources and
// for more than one.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	switch n := CountSet(sources...); {
	case n == 0:
		return fmt.Errorf("%s", noSourceMsg)
	case n > 1:
		return fmt.Errorf("%s", multiSourceMsg)
	}
	return nil
}
