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

// Package phon implements the phoneme normalization pipeline: the static
// rule tables, Arpabet to IPA translation for dictionary pronunciations,
// coalescing of raw annotated phone sequences, and the transcriber that
// picks the right path per speaker.
package phon

const (
	// reducedVowel is the only stress-sensitive Arpabet symbol; it is
	// looked up with its stress digit intact.
	reducedVowel = "AH0"

	// lengthMark in a raw phone annotation is dropped entirely.
	lengthMark = "ː"

	// unintelligible opens a bracketed segment; everything from here on
	// is discarded.
	unintelligible = "("
)

// digraphs maps a phone symbol to the raw left-context symbols it merges
// with into a single perceived unit (diphthongs, affricates, rhotics,
// syllabic and nasalized segments).
var digraphs = map[string][]string{
	"ɪ": {"a", "ɑ", "o", "e", "ɔ"},
	"ʊ": {"a", "ɑ", "o", "ɔ"},
	"ʃ": {"t"},
	"ʒ": {"d"},
	"r": {"ʌ", "ə", "ɜ˞"},
	"ɹ": {"ʌ", "ə"},
	"̩": {"n", "l", "m"},
	"̃": {"i", "ɪ", "e", "ɛ", "æ", "ʌ", "ə", "a", "ɑ", "ɔ", "o", "ʊ", "u"},
	"˞": {"ɜ"},
}

// replacements rewrites a just-placed output unit in place, collapsing
// two-symbol sequences into single affricate/rhotic symbols and backing
// bare vowel variants.
var replacements = map[string]string{
	"tʃ":  "ʧ",
	"əl":  "l̩",
	"ʌɹ":  "ɚ",
	"əɹ":  "ɚ",
	"ɜ˞r": "ɚ",
	"ɜ˞":  "ɚ",
	"ər":  "ɚ",
	"oɪ":  "ɔɪ",
	"oʊ":  "o",
	"dʒ":  "ʤ",
	"a":   "ɑ",
}

// arpaToIPA translates stress-stripped Arpabet symbols; AH0 is looked up
// unstripped. The upstream NLTK-based table listed OW twice (oʊ, then o);
// only the second assignment ever took effect there, so o is the canonical
// mapping here.
var arpaToIPA = map[string]string{
	"AO":  "ɔ",
	"AA":  "ɑ",
	"IY":  "i",
	"UW":  "u",
	"EH":  "ɛ",
	"IH":  "ɪ",
	"UH":  "ʊ",
	"AH":  "ʌ",
	"AH0": "ə",
	"AE":  "æ",
	"AX":  "ə",
	"EY":  "eɪ",
	"AY":  "aɪ",
	"OW":  "o",
	"AW":  "aʊ",
	"OY":  "ɔɪ",
	"ER":  "ɚ",
	"P":   "p",
	"B":   "b",
	"T":   "t",
	"D":   "d",
	"K":   "k",
	"G":   "g",
	"CH":  "ʧ",
	"JH":  "ʤ",
	"F":   "f",
	"V":   "v",
	"TH":  "θ",
	"DH":  "ð",
	"S":   "s",
	"Z":   "z",
	"SH":  "ʃ",
	"ZH":  "ʒ",
	"HH":  "h",
	"M":   "m",
	"N":   "n",
	"NG":  "ŋ",
	"L":   "l",
	"R":   "r",
	"W":   "w",
	"Y":   "j",
	"Q":   "ʔ",
}

// vowels classifies IPA symbols as they appear in raw phone annotations.
var vowels = map[string]bool{
	"ɔ": true, "ɑ": true, "i": true, "u": true, "ɛ": true, "ɪ": true,
	"ʊ": true, "ʌ": true, "ə": true, "æ": true, "e": true, "eɪ": true,
	"aɪ": true, "oʊ": true, "o": true, "aʊ": true, "ɔɪ": true, "ɚ": true,
}

// arpaConsonants classifies stress-stripped Arpabet symbols.
var arpaConsonants = map[string]bool{
	"P": true, "B": true, "T": true, "D": true, "K": true, "G": true,
	"CH": true, "JH": true, "F": true, "V": true, "TH": true, "DH": true,
	"S": true, "Z": true, "SH": true, "ZH": true, "HH": true, "M": true,
	"N": true, "NG": true, "L": true, "R": true, "W": true, "Y": true,
	"Q": true,
}
