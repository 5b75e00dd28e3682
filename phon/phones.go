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

import "github.com/czcorpus/cnc-gokit/collections"

// CoalescePhones normalizes a raw annotated phone sequence as produced
// by child-speech transcription. The fold keeps a single piece of state,
// the previous raw symbol, which both the digraph rule and the syllabic-l
// rule test against (the previous raw symbol, not the previous output
// unit, which may already have been merged or replaced).
//
// Per symbol the rules apply in a fixed order: stop at an unintelligible
// bracket, skip a length mark, merge a digraph against its left context,
// merge schwa+l when the /l/ is final or followed by a vowel, otherwise
// append; whichever path placed the symbol, the replacement table then
// rewrites the placed unit in place.
func CoalescePhones(raw []string) []string {
	out := make([]string, 0, len(raw))
	lastRaw := ""
	for i, p := range raw {
		if p == lengthMark {
			continue
		}
		if p == unintelligible {
			break
		}
		switch {
		case len(out) > 0 && collections.SliceContains(digraphs[p], lastRaw):
			out[len(out)-1] += p
		case len(out) > 0 && p == "l" && lastRaw == "ə" &&
			(i == len(raw)-1 || vowels[raw[i+1]]):
			out[len(out)-1] += p
		default:
			out = append(out, p)
		}
		if rep, ok := replacements[out[len(out)-1]]; ok {
			out[len(out)-1] = rep
		}
		lastRaw = p
	}
	return out
}
