// Package translate formats user visible twoq messages for the current
// locale.
package translate

import (
	"log"
	"sync/atomic"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer atomic.Pointer[message.Printer]

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("twoq: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer.Store(message.NewPrinter(message.MatchLanguage(locales...)))
}

// SetLanguage overrides the detected locale, eg. from configuration.
func SetLanguage(tag string) (err error) {
	lang, err := language.Parse(tag)
	if err != nil {
		return
	}

	printer.Store(message.NewPrinter(lang))
	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Load().Sprintf(key, args...)
}
