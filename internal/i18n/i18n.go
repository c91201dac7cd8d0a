// Package i18n resolves UI strings for Arabic, English and French and
// derives the text direction for the active language. Arabic is both the
// default and the fallback language.
package i18n

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var localeFiles = []string{
	"locales/active.ar.toml",
	"locales/active.en.toml",
	"locales/active.fr.toml",
}

// Direction is the text direction of the active language.
type Direction int

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

func (d Direction) String() string {
	if d == DirectionRTL {
		return "rtl"
	}
	return "ltr"
}

// Localizer resolves message IDs for one selected language.
type Localizer struct {
	tag language.Tag
	loc *goi18n.Localizer
}

// New builds a localizer for the given language code. Unknown codes fall
// back to Arabic, matching the bundle fallback.
func New(lang string) (*Localizer, error) {
	bundle := goi18n.NewBundle(language.Arabic)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, f := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, f); err != nil {
			return nil, fmt.Errorf("i18n.New: load %s: %w", f, err)
		}
	}

	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Arabic
	}
	return &Localizer{
		tag: tag,
		loc: goi18n.NewLocalizer(bundle, lang, "ar"),
	}, nil
}

// T resolves a message ID. An unknown ID resolves to the ID itself so a
// missing string never blanks out a view.
func (l *Localizer) T(id string) string {
	msg, err := l.loc.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

// Lang returns the base language code of the active language.
func (l *Localizer) Lang() string {
	base, _ := l.tag.Base()
	return base.String()
}

// Dir returns the text direction of the active language.
func (l *Localizer) Dir() Direction {
	if l.Lang() == "ar" {
		return DirectionRTL
	}
	return DirectionLTR
}

// RTL reports whether the active language lays out right-to-left.
func (l *Localizer) RTL() bool {
	return l.Dir() == DirectionRTL
}
