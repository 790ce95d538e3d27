package service

import (
	"strconv"
	"strings"
)

var quoteEscaper = strings.NewReplacer(
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// decodeEscapes resolves literal backslash escape sequences (\uXXXX, \n and
// friends) that survive JSON decoding because the platform double-escapes
// some fields. Strings without a backslash pass through untouched, as does
// anything strconv cannot interpret.
func decodeEscapes(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	decoded, err := strconv.Unquote(`"` + quoteEscaper.Replace(s) + `"`)
	if err != nil {
		return s
	}
	return decoded
}

var brReplacer = strings.NewReplacer(
	"\r\n", "<br />\r\n",
	"\n\r", "<br />\n\r",
	"\r", "<br />\r",
	"\n", "<br />\n",
)

// nl2br inserts a break tag before every newline, keeping the newline.
func nl2br(s string) string {
	return brReplacer.Replace(s)
}
