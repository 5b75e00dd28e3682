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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"providence/perror"
)

func TestTranslateMergesSchwaLBeforeVowel(t *testing.T) {
	ipa, err := TranslateArpabet([]string{"HH", "AH0", "L", "OW"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"h", "əl", "o"}, ipa)
}

func TestTranslateMergesSchwaLAtEnd(t *testing.T) {
	ipa, err := TranslateArpabet([]string{"AH0", "L"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"əl"}, ipa)
}

func TestTranslateKeepsLBeforeConsonant(t *testing.T) {
	ipa, err := TranslateArpabet([]string{"HH", "AH0", "L", "P"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"h", "ə", "l", "p"}, ipa)
}

func TestTranslateStripsStressDigits(t *testing.T) {
	ipa, err := TranslateArpabet([]string{"B", "AO1", "L"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"b", "ɔ", "l"}, ipa)
}

func TestTranslateReducedVowelIsStressSensitive(t *testing.T) {
	ipa, err := TranslateArpabet([]string{"AH0", "B", "AH1", "V"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"ə", "b", "ʌ", "v"}, ipa)
}

func TestTranslateUnknownSymbolFails(t *testing.T) {
	_, err := TranslateArpabet([]string{"HH", "XX"})
	assert.Error(t, err)
	var symErr perror.SymbolNotFound
	assert.True(t, errors.As(err, &symErr))
	assert.Equal(t, "XX", symErr.Symbol)
}

func TestTranslateEmptySequence(t *testing.T) {
	ipa, err := TranslateArpabet(nil)
	assert.NoError(t, err)
	assert.Empty(t, ipa)
}

// TestTranslateCoversArpabetInventory checks the table completeness
// property: every symbol the CMU dictionary can produce translates
// without error, with any stress digit attached.
func TestTranslateCoversArpabetInventory(t *testing.T) {
	inventory := []string{
		"AA", "AE", "AH", "AO", "AW", "AY", "EH", "ER", "EY", "IH",
		"IY", "OW", "OY", "UH", "UW",
	}
	consonants := []string{
		"P", "B", "T", "D", "K", "G", "CH", "JH", "F", "V", "TH", "DH",
		"S", "Z", "SH", "ZH", "HH", "M", "N", "NG", "L", "R", "W", "Y",
	}
	for _, vowel := range inventory {
		for _, stress := range []string{"0", "1", "2"} {
			_, err := TranslateArpabet([]string{vowel + stress})
			assert.NoError(t, err, "symbol %s%s", vowel, stress)
		}
	}
	for _, cons := range consonants {
		_, err := TranslateArpabet([]string{cons})
		assert.NoError(t, err, "symbol %s", cons)
	}
}
