// Package translate formats user-facing message text in the host locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DEFAULT_LOCALE is used when the host reports no locale.
const DEFAULT_LOCALE = "en-US"

var (
	setup   sync.Once
	tag     language.Tag
	printer *message.Printer
)

func load() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("simplecpu: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{DEFAULT_LOCALE}
	}

	tag = message.MatchLanguage(locales...)
	printer = message.NewPrinter(tag)
}

// Language is the language tag that messages are printed in.
func Language() language.Tag {
	setup.Do(load)
	return tag
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	setup.Do(load)
	return printer.Sprintf(key, args...)
}
