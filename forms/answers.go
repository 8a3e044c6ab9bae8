// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package forms

// Answers holds the responses to a question flow keyed by question name.
// Confirm answers are bool, input answers string, list answers the selected
// choice value and checkbox answers []string of selected choice names.
type Answers map[string]any

// Has reports whether the question name was answered
func (a Answers) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// Bool returns a confirm answer, false when absent
func (a Answers) Bool(name string) bool {
	v, _ := a[name].(bool)
	return v
}

// String returns an input answer, empty when absent
func (a Answers) String(name string) string {
	v, _ := a[name].(string)
	return v
}

// Int returns a numeric list answer
func (a Answers) Int(name string) (int, bool) {
	switch v := a[name].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// Strings returns a checkbox answer, nil when absent
func (a Answers) Strings(name string) []string {
	switch v := a[name].(type) {
	case []string:
		return v
	case []any:
		var res []string
		for _, i := range v {
			if s, ok := i.(string); ok {
				res = append(res, s)
			}
		}
		return res
	default:
		return nil
	}
}
