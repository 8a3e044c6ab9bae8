// Copyright (c) 2023-2024, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package forms

import (
	"os"
	"regexp"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	terminal "golang.org/x/term"
)

var (
	colorMap = map[string]text.Color{
		"bold":      text.Bold,
		"black":     text.FgBlack,
		"red":       text.FgRed,
		"green":     text.FgGreen,
		"yellow":    text.FgYellow,
		"blue":      text.FgBlue,
		"magenta":   text.FgMagenta,
		"cyan":      text.FgCyan,
		"white":     text.FgWhite,
		"hiblack":   text.FgHiBlack,
		"hired":     text.FgHiRed,
		"higreen":   text.FgHiGreen,
		"hiyellow":  text.FgHiYellow,
		"hiblue":    text.FgHiBlue,
		"himagenta": text.FgHiMagenta,
		"hicyan":    text.FgHiCyan,
		"hiwhite":   text.FgHiWhite,
	}

	// an opening tag, content without further tags and a closing tag
	innermostTag = regexp.MustCompile(`\{([a-zA-Z]+)\}([^{}]*)\{/([a-zA-Z]+)\}`)
)

func isTerminal() bool {
	return terminal.IsTerminal(int(os.Stdin.Fd())) && terminal.IsTerminal(int(os.Stdout.Fd()))
}

func isOneOf(val string, valid ...string) bool {
	for _, v := range valid {
		if val == v {
			return true
		}
	}
	return false
}

// ColorMarkup renders color markup tags like {red}text{/red} using go-pretty
// colors. Tags nest, names are case insensitive and unknown colors are
// removed leaving their content.
func ColorMarkup(input string) string {
	result := input

	for {
		next := innermostTag.ReplaceAllStringFunc(result, func(m string) string {
			parts := innermostTag.FindStringSubmatch(m)
			if parts[1] != parts[3] {
				return m
			}

			color, ok := colorMap[strings.ToLower(parts[1])]
			if !ok {
				return parts[2]
			}

			return text.Colors{color}.Sprint(parts[2])
		})

		if next == result {
			return result
		}

		result = next
	}
}
