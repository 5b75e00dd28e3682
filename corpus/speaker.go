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

package corpus

import "github.com/czcorpus/cnc-gokit/collections"

// ChildSpeaker is the TalkBank participant code of the target child.
const ChildSpeaker = "CHI"

// SpeakerFilter selects which utterances of a transcript are extracted,
// either all of them or those of an explicit set of participant codes.
// Construct via AllSpeakers, Speakers or ChildOf.
type SpeakerFilter struct {
	all       bool
	codes     *collections.Set[string]
	childCode string
}

func AllSpeakers() SpeakerFilter {
	return SpeakerFilter{all: true}
}

func Speakers(codes ...string) SpeakerFilter {
	return SpeakerFilter{codes: collections.NewSet(codes...)}
}

// ChildOf selects exactly the target child recorded under the given
// participant code, for corpora where it differs from the usual CHI.
func ChildOf(code string) SpeakerFilter {
	return SpeakerFilter{codes: collections.NewSet(code), childCode: code}
}

func (sf SpeakerFilter) Matches(code string) bool {
	return sf.all || sf.codes.Contains(code)
}

// ChildOnly reports whether the filter selects exactly the target child.
// Child speech carries phonetic annotation and its word nodes are nested
// one level deeper than adult word nodes.
func (sf SpeakerFilter) ChildOnly() bool {
	child := sf.childCode
	if child == "" {
		child = ChildSpeaker
	}
	return !sf.all && sf.codes.Size() == 1 && sf.codes.Contains(child)
}
