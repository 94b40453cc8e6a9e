// Package translate formats user visible messages in the caller's locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("ubf: locale: %v", err)
	}

	printer = newPrinter(locales...)
}

// newPrinter returns a printer for the best match among locales,
// falling back to en-US.
func newPrinter(locales ...string) *message.Printer {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return message.NewPrinter(message.MatchLanguage(locales...))
}

// SetLocale overrides the detected locale, for example from a command
// line flag.
func SetLocale(name string) (err error) {
	tag, err := language.Parse(name)
	if err != nil {
		return
	}

	printer = newPrinter(tag.String())
	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
