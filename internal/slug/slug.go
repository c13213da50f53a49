// Copyright (c) 2026 Laith Alsalami <contact@laithalsalami.com>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug derivation from blog titles.
// The site publishes in Arabic, so Arabic letters are part of the
// permitted character set alongside ASCII word characters.
package slug

import (
	"regexp"
	"strings"
)

var (
	// whitespaceRun matches one or more consecutive whitespace characters.
	whitespaceRun = regexp.MustCompile(`\s+`)
	// disallowed matches anything outside Arabic letters, ASCII word
	// characters, and hyphens.
	disallowed = regexp.MustCompile(`[^\x{0621}-\x{064A}a-z0-9_-]`)
)

// Generate derives a slug from the given title: lower-cased, whitespace
// runs replaced with hyphens, everything outside the permitted set
// stripped. The same title always yields the same slug regardless of
// case or surrounding whitespace.
// Example: "تحليل الذهب اليوم" → "تحليل-الذهب-اليوم"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = whitespaceRun.ReplaceAllString(result, "-")
	result = disallowed.ReplaceAllString(result, "")
	return result
}
