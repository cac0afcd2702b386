// Package pathutil provides name manipulation for codec inputs and outputs.
package pathutil

import "strings"

// SwapSuffix replaces oldSuffix at the end of name with newSuffix. It
// reports false when name does not end with oldSuffix or consists of
// nothing but the suffix.
func SwapSuffix(name, oldSuffix, newSuffix string) (string, bool) {
	if len(name) <= len(oldSuffix) || !strings.HasSuffix(name, oldSuffix) {
		return "", false
	}
	return name[:len(name)-len(oldSuffix)] + newSuffix, true
}

// Hidden reports whether a directory entry name is dot-prefixed. Hidden
// entries are skipped during encoding.
func Hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
