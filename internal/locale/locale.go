// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package locale resolves the user's locale from the POSIX environment
package locale

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Fallback is used when no usable locale is configured
const Fallback = "en"

// environment variables consulted in order of precedence
var envVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// Resolve returns the BCP 47 tag of the current locale such as en-US
func Resolve() string {
	return ResolveFrom(os.Getenv)
}

// ResolveFrom resolves the locale using getenv to look up variables
func ResolveFrom(getenv func(string) string) string {
	for _, v := range envVars {
		val := getenv(v)
		if val == "" {
			continue
		}

		if tag, ok := Parse(val); ok {
			return tag
		}
	}

	return Fallback
}

// Parse converts a POSIX locale like en_US.UTF-8@euro into a canonical BCP 47
// tag, C and POSIX are not considered valid locales
func Parse(posix string) (string, bool) {
	l := posix
	if i := strings.IndexAny(l, ".@"); i >= 0 {
		l = l[:i]
	}

	l = strings.TrimSpace(l)
	if l == "" || l == "C" || l == "POSIX" {
		return "", false
	}

	tag, err := language.Parse(strings.ReplaceAll(l, "_", "-"))
	if err != nil || tag == language.Und {
		return "", false
	}

	return tag.String(), true
}
