// Copyright 2024 Aletheia Cui
//   This file is part of PROVIDENCE.
//
//  PROVIDENCE is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  PROVIDENCE is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with PROVIDENCE.  If not, see <https://www.gnu.org/licenses/>.

// Package dict provides the pronunciation dictionary used to transcribe
// adult speech. The expected data format is the CMU pronouncing
// dictionary: one entry per line, `WORD  PH PH ...`, with `;;;` comment
// lines and `WORD(n)` alternate pronunciations.
package dict

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/czcorpus/cnc-gokit/fs"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeTerm lowercases and trims a lookup term and strips combining
// marks so UTF-8 orthography coming from transcripts matches the ASCII
// dictionary keys.
func NormalizeTerm(s string) string {
	ans, _, _ := transform.String(stripAccents, strings.ToLower(strings.TrimSpace(s)))
	return ans
}

// Dict maps a normalized orthographic word to its baseline Arpabet
// pronunciation (the first listed variant). It is read-only once loaded
// and safe for concurrent readers.
type Dict struct {
	entries map[string][]string
}

// Load reads a CMU-format pronouncing dictionary from path. Alternate
// pronunciations are ignored; the first variant of a word wins.
func Load(path string) (*Dict, error) {
	isFile, err := fs.IsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load pronunciation dictionary: %w", err)
	}
	if !isFile {
		return nil, fmt.Errorf("failed to load pronunciation dictionary: %s is not a file", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load pronunciation dictionary: %w", err)
	}
	defer f.Close()

	ans := &Dict{entries: make(map[string][]string)}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}
		items := strings.Fields(line)
		if len(items) < 2 || strings.Contains(items[0], "(") {
			continue
		}
		key := NormalizeTerm(items[0])
		if _, ok := ans.entries[key]; ok {
			continue
		}
		ans.entries[key] = items[1:]
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to load pronunciation dictionary: %w", err)
	}
	return ans, nil
}

// Lookup returns the baseline pronunciation of a word. A miss is an
// absence signal for the caller to skip the word, never an error.
func (d *Dict) Lookup(word string) ([]string, bool) {
	phones, ok := d.entries[NormalizeTerm(word)]
	return phones, ok
}

// Contains reports whether the word has a pronunciation entry.
func (d *Dict) Contains(word string) bool {
	_, ok := d.entries[NormalizeTerm(word)]
	return ok
}

// Size returns the number of loaded entries.
func (d *Dict) Size() int {
	return len(d.entries)
}
