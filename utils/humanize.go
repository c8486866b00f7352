package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Like fmt.Sprintf but formats numeric verbs with thousands separators,
// i.e. a %d of 5204850243 becomes "5,204,850,243".
func HumanizedSprintf(format string, a ...any) string {
	return printer.Sprintf(format, a...)
}
