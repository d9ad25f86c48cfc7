package components

import "strings"

// unicodeReplacer swaps emoji the model likes to emit for plain-text
// equivalents that survive every terminal and file encoding.
var unicodeReplacer = strings.NewReplacer(
	"✨", "*",
	"🚀", "*",
	"🎯", "*",
	"💡", "*",
	"⚡", "Lightning",
	"🔒", "Security",
	"🎧", "Support",
	"📱", "Mobile",
	"💻", "Desktop",
	"🌟", "*",
	"🔥", "Hot",
	"💰", "Money",
)

// CleanUnicode replaces problematic Unicode characters in generated code.
func CleanUnicode(text string) string {
	return unicodeReplacer.Replace(text)
}
