// Copyright (c) 2023-2024, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package forms

import (
	"github.com/jedib0t/go-pretty/v6/text"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ColorMarkup", func() {
	red := func(s string) string { return text.Colors{text.FgRed}.Sprint(s) }
	blue := func(s string) string { return text.Colors{text.FgBlue}.Sprint(s) }

	DescribeTable("rendering",
		func(input string, expected string) {
			Expect(ColorMarkup(input)).To(Equal(expected))
		},
		Entry("plain text", "Hello World", "Hello World"),
		Entry("html is left alone", `<meta charset="UTF-8">`, `<meta charset="UTF-8">`),
		Entry("single tag", "{red}Hello{/red} World", red("Hello")+" World"),
		Entry("multiple tags", "{red}Hello{/red} {blue}World{/blue}", red("Hello")+" "+blue("World")),
		Entry("case insensitive", "{RED}Hello{/RED} {Blue}World{/Blue}", red("Hello")+" "+blue("World")),
		Entry("unknown colors are removed", "{invalid}Text{/invalid}", "Text"),
		Entry("empty tag", "{red}{/red}", red("")),
		Entry("unbalanced tags are kept", "{red}Text{/blue}", "{red}Text{/blue}"),
	)

	It("Should handle nested tags", func() {
		input := "{red}Outer {green}Inner{/green} Text{/red}"
		expected := text.Colors{text.FgRed}.Sprint("Outer " + text.Colors{text.FgGreen}.Sprint("Inner") + " Text")
		Expect(ColorMarkup(input)).To(Equal(expected))
	})

	It("Should handle deep nesting and keep all content", func() {
		result := ColorMarkup("{red}Start {blue}Middle {green}End{/green} More{/blue} Final{/red}")
		for _, s := range []string{"Start", "Middle", "End", "More", "Final"} {
			Expect(result).To(ContainSubstring(s))
		}
		Expect(result).ToNot(ContainSubstring("{"))
	})
})

var _ = Describe("Answers", func() {
	a := Answers{
		"bool":    true,
		"string":  "value",
		"int":     2,
		"float":   float64(1),
		"strings": []string{"a", "b"},
		"anys":    []any{"c", 1, "d"},
	}

	It("Should access typed values", func() {
		Expect(a.Bool("bool")).To(BeTrue())
		Expect(a.Bool("string")).To(BeFalse())
		Expect(a.Bool("missing")).To(BeFalse())
		Expect(a.String("string")).To(Equal("value"))
		Expect(a.String("missing")).To(Equal(""))
		Expect(a.Strings("strings")).To(Equal([]string{"a", "b"}))
		Expect(a.Strings("anys")).To(Equal([]string{"c", "d"}))
		Expect(a.Strings("missing")).To(BeNil())
		Expect(a.Has("bool")).To(BeTrue())
		Expect(a.Has("missing")).To(BeFalse())
	})

	DescribeTable("Int",
		func(key string, expected int, found bool) {
			v, ok := a.Int(key)
			Expect(ok).To(Equal(found))
			Expect(v).To(Equal(expected))
		},
		Entry("int", "int", 2, true),
		Entry("float", "float", 1, true),
		Entry("string", "string", 0, false),
		Entry("missing", "missing", 0, false),
	)
})
