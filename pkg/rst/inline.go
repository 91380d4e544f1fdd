package rst

import (
	"regexp"
	"strings"
)

// inlineRole is one interpreted-text form. Both the role-prefixed
// (:name:`text`) and role-suffixed (`text`:name:) spellings are
// rewritten with the role's render function. Content is limited to
// word characters and spaces; matching is non-overlapping, left to
// right.
type inlineRole struct {
	prefix *regexp.Regexp
	suffix *regexp.Regexp
	render func(string) string
}

func newInlineRole(name string, render func(string) string) inlineRole {
	return inlineRole{
		prefix: regexp.MustCompile(":" + name + ":`([\\w ]+)`"),
		suffix: regexp.MustCompile("`([\\w ]+)`:" + name + ":"),
		render: render,
	}
}

// inlineRoles is the fixed registry of interpreted-text roles.
var inlineRoles = []inlineRole{
	newInlineRole("code", func(s string) string { return `"` + s + `"` }),
}

// parseInterpreted rewrites every interpreted-text occurrence in s.
func parseInterpreted(s string) string {
	for _, role := range inlineRoles {
		s = rewriteRole(role.prefix, s, role.render)
		s = rewriteRole(role.suffix, s, role.render)
	}
	return s
}

func rewriteRole(re *regexp.Regexp, s string, render func(string) string) string {
	return re.ReplaceAllStringFunc(s, func(m string) string {
		return render(re.FindStringSubmatch(m)[1])
	})
}

// parseInline joins a simple block into paragraph text and applies the
// inline substitutions: literal double backticks become straight
// double quotes, then the interpreted-text roles are rewritten.
func parseInline(block []Line) string {
	parts := make([]string, len(block))
	for i, l := range block {
		parts[i] = l.Text
	}
	return parseInterpreted(strings.ReplaceAll(strings.Join(parts, " "), "``", `"`))
}
