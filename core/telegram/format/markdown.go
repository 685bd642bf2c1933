// Package format holds Telegram text formatting helpers.
package format

import "strings"

var mdV1Escaper = strings.NewReplacer(
	"_", `\_`,
	"*", `\*`,
	"[", `\[`,
	"`", "\\`",
)

// EscapeMarkdown escapes legacy Markdown specials in user-supplied text so
// display names can be embedded into formatted messages without breaking
// entities.
func EscapeMarkdown(text string) string {
	return mdV1Escaper.Replace(text)
}
