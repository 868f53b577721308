package utils

import (
	"regexp"
	"strings"
)

var unsafeName = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)

func CleanDirName(input string) string {
	cleaned := unsafeName.ReplaceAllString(input, "_")

	cleaned = strings.TrimSpace(cleaned)

	return cleaned
}

// PathFileName names the exported snapshot of a route path, e.g.
// "/books/42" becomes "books_42.html" and "/" becomes "index.html".
func PathFileName(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return "index.html"
	}
	return CleanDirName(trimmed) + ".html"
}
