// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package boila

import (
	"github.com/choria-io/boila/forms"
	"github.com/choria-io/boila/internal/questions"
)

// PackageName is the name of the tool, available to templates as packageName
const PackageName = "boila"

// NewRenderContext builds template data from answers. Every key used by the
// built in templates is present, questions that were not asked get their zero
// value and scriptTagLocation is -1 without a script.
func NewRenderContext(answers forms.Answers) map[string]any {
	ctx := make(map[string]any, len(answers)+11)
	for k, v := range answers {
		ctx[k] = v
	}

	location, ok := answers.Int(questions.ScriptTagLocation)
	if !ok {
		location = -1
	}

	ctx[questions.HasLang] = answers.Bool(questions.HasLang)
	ctx[questions.Lang] = answers.String(questions.Lang)
	ctx[questions.MetaTags] = nonNil(answers.Strings(questions.MetaTags))
	ctx[questions.Title] = answers.String(questions.Title)
	ctx[questions.HasStyleTag] = answers.Bool(questions.HasStyleTag)
	ctx[questions.StyleTagHref] = answers.String(questions.StyleTagHref)
	ctx[questions.HasScriptTag] = answers.Bool(questions.HasScriptTag)
	ctx[questions.ScriptTagLocation] = location
	ctx[questions.ScriptTagSrc] = answers.String(questions.ScriptTagSrc)
	ctx[questions.ScriptTagAttrs] = nonNil(answers.Strings(questions.ScriptTagAttrs))
	ctx["packageName"] = PackageName

	return ctx
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
