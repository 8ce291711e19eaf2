// Copyright 2026 The kn3d Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package commerce

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const ellipsis = "..."

//nolint:gochecknoglobals
var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonWordChars  = regexp.MustCompile(`[^\w-]+`)
	hyphenRun     = regexp.MustCompile(`-{2,}`)
)

// Slugify turns text into a lower case, hyphen separated, ASCII word string.
// Diacritics are stripped, so "Filamento PLA Ñoño" becomes "filamento-pla-nono".
// Slugify(Slugify(s)) == Slugify(s) holds for every s.
func Slugify(text string) string {
	stripped, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		text,
	)
	if err != nil {
		stripped = text
	}

	slug := strings.TrimSpace(strings.ToLower(stripped))
	slug = whitespaceRun.ReplaceAllString(slug, "-")
	slug = nonWordChars.ReplaceAllString(slug, "")
	slug = hyphenRun.ReplaceAllString(slug, "-")

	return strings.Trim(slug, "-")
}

// TruncateText shortens text to maxLength characters, drops trailing whitespace
// and appends "...". Text that already fits is returned unchanged.
func TruncateText(text string, maxLength int) string {
	maxLength = max(maxLength, 0)

	chars := []rune(text)
	if len(chars) <= maxLength {
		return text
	}

	return strings.TrimRightFunc(string(chars[:maxLength]), unicode.IsSpace) + ellipsis
}
