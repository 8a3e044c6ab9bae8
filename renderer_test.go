// Copyright (c) 2023-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package boila

import (
	"strings"

	"github.com/choria-io/boila/forms"
	"github.com/choria-io/boila/internal/questions"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Renderer", func() {
	metaTags := []string{questions.MetaCharset, questions.MetaViewport, questions.MetaCompatIE}

	base := func() forms.Answers {
		return forms.Answers{
			questions.HasLang:      false,
			questions.MetaTags:     []string{questions.MetaCharset},
			questions.Title:        "Hi",
			questions.HasStyleTag:  false,
			questions.HasScriptTag: false,
		}
	}

	render := func(engine string, answers forms.Answers) string {
		r, err := NewRenderer(Config{Engine: engine})
		Expect(err).ToNot(HaveOccurred())

		name, body, err := r.DefaultTemplate()
		Expect(err).ToNot(HaveOccurred())

		f, err := r.Compile(name, body)
		Expect(err).ToNot(HaveOccurred())

		res, err := f(NewRenderContext(answers))
		Expect(err).ToNot(HaveOccurred())

		return res
	}

	Describe("ShouldShowScriptTag", func() {
		DescribeTable("Locations",
			func(enabled any, location any, this any, expected bool) {
				Expect(ShouldShowScriptTag(enabled, location, this)).To(Equal(expected))
			},
			Entry("disabled", false, 0, 0, false),
			Entry("nil enabled", nil, 0, 0, false),
			Entry("matching", true, 1, 1, true),
			Entry("different", true, 1, 2, false),
			Entry("mixed numeric types", true, int64(2), 2, true),
			Entry("float location", true, 2.0, 2, true),
			Entry("no location", true, nil, 0, false),
			Entry("string location", true, "0", 0, false),
		)
	})

	Describe("NewRenderer", func() {
		It("Should reject unknown engines", func() {
			_, err := NewRenderer(Config{Engine: "pongo"})
			Expect(err).To(MatchError(`unknown template engine "pongo"`))
		})
	})

	Describe("NewRenderContext", func() {
		It("Should fill in questions that were not asked", func() {
			ctx := NewRenderContext(forms.Answers{questions.Title: "x"})
			Expect(ctx).To(HaveKeyWithValue(questions.HasLang, false))
			Expect(ctx).To(HaveKeyWithValue(questions.Lang, ""))
			Expect(ctx).To(HaveKeyWithValue(questions.MetaTags, []string{}))
			Expect(ctx).To(HaveKeyWithValue(questions.ScriptTagLocation, -1))
			Expect(ctx).To(HaveKeyWithValue(questions.ScriptTagAttrs, []string{}))
			Expect(ctx).To(HaveKeyWithValue("packageName", "boila"))
		})

		It("Should not modify the answers", func() {
			a := forms.Answers{questions.Title: "x"}
			NewRenderContext(a)
			Expect(a).To(Equal(forms.Answers{questions.Title: "x"}))
		})
	})

	for _, engine := range []string{EngineGo, EngineJet} {
		Describe("Built in template using "+engine, func() {
			It("Should render the minimal document", func() {
				Expect(render(engine, base())).To(Equal(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Hi</title>
</head>
<body>
    <!-- Generated by boila -->
</body>
</html>
`))
			})

			It("Should only set the language when requested", func() {
				a := base()
				a[questions.Lang] = "fr-CA"
				Expect(render(engine, a)).ToNot(ContainSubstring("lang="))

				a[questions.HasLang] = true
				Expect(render(engine, a)).To(ContainSubstring(`<html lang="fr-CA">`))
			})

			It("Should emit each selected meta tag exactly once", func() {
				for mask := 0; mask < 1<<len(metaTags); mask++ {
					var selected []string
					for i, t := range metaTags {
						if mask&(1<<i) != 0 {
							selected = append(selected, t)
						}
					}

					a := base()
					a[questions.MetaTags] = selected
					doc := render(engine, a)

					for i, t := range metaTags {
						if mask&(1<<i) != 0 {
							Expect(strings.Count(doc, t)).To(Equal(1), "mask %d tag %s", mask, t)
						} else {
							Expect(doc).ToNot(ContainSubstring(t), "mask %d", mask)
						}
					}
				}
			})

			It("Should link the stylesheet when requested", func() {
				a := base()
				a[questions.HasStyleTag] = true
				a[questions.StyleTagHref] = "/css/site.css"

				Expect(render(engine, a)).To(ContainSubstring(`    <link rel="stylesheet" href="/css/site.css">
</head>`))
			})

			DescribeTable("Script placement",
				func(location int, after string, before string) {
					a := base()
					a[questions.HasScriptTag] = true
					a[questions.ScriptTagLocation] = location
					a[questions.ScriptTagSrc] = "/dist/main.mjs"
					a[questions.ScriptTagAttrs] = []string{questions.AttrModule, questions.AttrDefer}

					doc := render(engine, a)
					tag := `<script src="/dist/main.mjs" type="module" defer></script>`

					Expect(strings.Count(doc, "<script")).To(Equal(1))
					Expect(strings.Index(doc, tag)).To(BeNumerically(">", strings.Index(doc, after)))
					Expect(strings.Index(doc, tag)).To(BeNumerically("<", strings.Index(doc, before)))
				},
				Entry("head", questions.LocationHead, "<title>", "</head>"),
				Entry("body start", questions.LocationBodyStart, "<body>", "<!-- Generated"),
				Entry("body end", questions.LocationBodyEnd, "<!-- Generated", "</body>"),
			)

			It("Should not emit a script when disabled", func() {
				a := base()
				a[questions.ScriptTagLocation] = questions.LocationHead
				a[questions.ScriptTagSrc] = "/dist/main.js"

				Expect(render(engine, a)).ToNot(ContainSubstring("<script"))
			})

			It("Should escape user values", func() {
				a := base()
				a[questions.HasLang] = true
				a[questions.Lang] = `en"x`
				a[questions.Title] = "<b>Tom & Jerry</b>"

				doc := render(engine, a)
				Expect(doc).To(ContainSubstring(`lang="en&#34;x"`))
				Expect(doc).To(ContainSubstring("<title>&lt;b&gt;Tom &amp; Jerry&lt;/b&gt;</title>"))
			})
		})
	}

	It("Should render identical documents with both engines", func() {
		cases := []forms.Answers{
			base(),
			{
				questions.HasLang:           true,
				questions.Lang:              "en",
				questions.MetaTags:          metaTags,
				questions.Title:             "Untitled",
				questions.HasStyleTag:       true,
				questions.StyleTagHref:      "/dist/main.css",
				questions.HasScriptTag:      true,
				questions.ScriptTagLocation: questions.LocationBodyEnd,
				questions.ScriptTagSrc:      "/dist/main.js",
				questions.ScriptTagAttrs:    []string{questions.AttrAsync},
			},
			{questions.Title: "only"},
		}

		for _, c := range cases {
			Expect(render(EngineJet, c)).To(Equal(render(EngineGo, c)))
		}
	})
})
