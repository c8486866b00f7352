package utils

import (
	"github.com/sanity-io/litter"
)

// Dumps a value as Go-syntax-ish text for debug logs.
func Prettify(v any) string {
	return litter.Sdump(v)
}
