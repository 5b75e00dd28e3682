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

package perror

import "fmt"

// TranscriptionNotFound signals that a word has no entry in the
// pronunciation dictionary. Callers are expected to skip the word
// and continue; this is never a fatal condition.
type TranscriptionNotFound struct {
	Word string
}

func (err TranscriptionNotFound) Error() string {
	return fmt.Sprintf("transcription not found for word '%s'", err.Word)
}

// ----------------------------

// SymbolNotFound signals an Arpabet symbol with no IPA mapping, i.e.
// the pronunciation dictionary and the translation table disagree.
// This is a data inconsistency and must terminate processing.
type SymbolNotFound struct {
	Symbol string
}

func (err SymbolNotFound) Error() string {
	return fmt.Sprintf("no IPA mapping for Arpabet symbol '%s'", err.Symbol)
}

// ---------------------------

type InputError struct {
	Msg string
}

func (err InputError) Error() string {
	return err.Msg
}
