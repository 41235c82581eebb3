package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Detect picks the display language from LANG and LC_ALL. A Chinese locale
// in either variable wins; any other non-empty value selects English. When
// both are empty the platform UI language is consulted.
func Detect(lookup LookupFunc) language.Tag {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	set := false
	for _, key := range []string{"LANG", "LC_ALL"} {
		value, _ := lookup(key)
		if value == "" {
			continue
		}
		set = true
		if isChinese(ParseLocale(value)) {
			return language.SimplifiedChinese
		}
	}
	if set {
		return language.English
	}

	for _, name := range platformLanguages() {
		if isChinese(ParseLocale(name)) {
			return language.SimplifiedChinese
		}
	}
	return language.English
}

// Resolve applies an explicit language choice ("en", "zh", ...), falling back
// to Detect for "auto" or an empty value.
func Resolve(choice string, lookup LookupFunc) language.Tag {
	choice = strings.TrimSpace(choice)
	if choice == "" || strings.EqualFold(choice, "auto") {
		return Detect(lookup)
	}
	return ParseLocale(choice)
}

// IsSupported reports whether choice names one of the Supported languages,
// ignoring region and script.
func IsSupported(choice string) bool {
	tag := ParseLocale(strings.TrimSpace(choice))
	if tag == language.Und {
		return false
	}
	base, _ := tag.Base()
	for _, t := range Supported {
		if b, _ := t.Base(); b == base {
			return true
		}
	}
	return false
}

// ParseLocale turns a POSIX locale such as "zh_CN.UTF-8" or a BCP 47 name
// into a language tag. Unparseable values yield language.Und.
func ParseLocale(s string) language.Tag {
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "_", "-")
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und
	}
	return tag
}

func isChinese(tag language.Tag) bool {
	base, conf := tag.Base()
	return conf != language.No && base.String() == "zh"
}
