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

package phon

import (
	"strings"

	"providence/perror"
)

// TranslateArpabet converts an Arpabet pronunciation into a sequence of
// IPA symbols. Stress digits are stripped before lookup, except for AH0
// whose reduced quality depends on them. After translation, a schwa
// followed by /l/ merges into a single syllabic unit when the /l/ is
// sequence-final or followed by a vowel.
//
// A symbol absent from the translation table means the dictionary and
// the table disagree; that returns perror.SymbolNotFound and must not
// be treated as a per-word skip.
func TranslateArpabet(arpa []string) ([]string, error) {
	ipa := make([]string, 0, len(arpa))
	for i, p := range arpa {
		key := p
		if p != reducedVowel {
			key = strings.Trim(p, "012")
		}
		sym, ok := arpaToIPA[key]
		if !ok {
			return nil, perror.SymbolNotFound{Symbol: p}
		}
		atBoundary := i == len(arpa)-1 || isArpaVowel(arpa[i+1])
		if sym == "l" && atBoundary && len(ipa) > 0 && ipa[len(ipa)-1] == "ə" {
			ipa[len(ipa)-1] += sym
		} else {
			ipa = append(ipa, sym)
		}
	}
	return ipa, nil
}

func isArpaVowel(p string) bool {
	return !arpaConsonants[strings.Trim(p, "012")]
}
