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

	"github.com/beevik/etree"

	"providence/dict"
	"providence/perror"
)

// ChildTranscription pairs the adult-target (model) and child-produced
// (actual) pronunciations of one word.
type ChildTranscription struct {
	Model  []string
	Actual []string
}

// Transcription is the resolved pronunciation of one word. Exactly one
// branch is set: Phonemes for adult speakers, Child for the target child.
type Transcription struct {
	Phonemes []string
	Child    *ChildTranscription
}

// Transcriber resolves word pronunciations either from annotated phone
// sequences (child speech) or from the pronunciation dictionary (adult
// speech).
type Transcriber struct {
	dict *dict.Dict
}

func NewTranscriber(d *dict.Dict) *Transcriber {
	return &Transcriber{dict: d}
}

// Transcribe resolves the pronunciation of one word node. For child
// speech, the model and actual annotation branches are walked
// independently through the raw-phone coalescer. For adult speech, a
// dictionary miss returns perror.TranscriptionNotFound, which callers
// must treat as "skip this word".
func (t *Transcriber) Transcribe(isChild bool, word *etree.Element, orthography string) (Transcription, error) {
	if isChild {
		return Transcription{
			Child: &ChildTranscription{
				Model:  CoalescePhones(phoneTexts(word, "model")),
				Actual: CoalescePhones(phoneTexts(word, "actual")),
			},
		}, nil
	}
	orthography = strings.TrimSpace(orthography)
	if orthography == "" {
		return Transcription{}, perror.InputError{Msg: "cannot transcribe an empty word"}
	}
	arpa, ok := t.dict.Lookup(orthography)
	if !ok {
		return Transcription{}, perror.TranscriptionNotFound{Word: orthography}
	}
	phonemes, err := TranslateArpabet(arpa)
	if err != nil {
		return Transcription{}, err
	}
	return Transcription{Phonemes: phonemes}, nil
}

// phoneTexts collects the raw phone symbols of one annotation branch
// (model or actual) in document order.
func phoneTexts(word *etree.Element, branch string) []string {
	phones := word.FindElements(".//" + branch + "/pw/ph")
	ans := make([]string, len(phones))
	for i, ph := range phones {
		ans[i] = ph.Text()
	}
	return ans
}
