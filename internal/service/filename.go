package service

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]`)

// SanitizeFilename replaces every character outside [a-zA-Z0-9.-_] with an
// underscore per UTF-16 code unit, so characters outside the BMP become "__".
// The result never contains a path separator.
func SanitizeFilename(name string) string {
	return unsafeFilenameChars.ReplaceAllStringFunc(name, func(match string) string {
		n := 0
		for _, r := range match {
			n += utf16.RuneLen(r)
		}
		return strings.Repeat("_", n)
	})
}

// StoredFilename is the on-disk name for an upload: the creation time in
// epoch milliseconds, an underscore, then the sanitized original name.
func StoredFilename(epochMillis int64, original string) string {
	return strconv.FormatInt(epochMillis, 10) + "_" + SanitizeFilename(original)
}
