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

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// MediaTimes is the position of an utterance within its audio recording,
// in seconds. The zero value stands for an utterance without media
// annotation.
type MediaTimes struct {
	Start float64
	End   float64
}

// mediaTimesOf resolves the media time bounds of one utterance. A missing
// media node yields the (0, 0) default; a media node with unparsable
// attributes is a malformed document.
func mediaTimesOf(utt *etree.Element) (MediaTimes, error) {
	media := utt.FindElement(".//media")
	if media == nil {
		return MediaTimes{}, nil
	}
	start, err := strconv.ParseFloat(media.SelectAttrValue("start", ""), 64)
	if err != nil {
		return MediaTimes{}, fmt.Errorf("malformed media annotation: %w", err)
	}
	end, err := strconv.ParseFloat(media.SelectAttrValue("end", ""), 64)
	if err != nil {
		return MediaTimes{}, fmt.Errorf("malformed media annotation: %w", err)
	}
	return MediaTimes{Start: start, End: end}, nil
}

// wordNodes locates the word nodes of one utterance. Child-speech
// annotation wraps each word in a phonology group (pg) node.
func wordNodes(utt *etree.Element, childOnly bool) []*etree.Element {
	if childOnly {
		return utt.FindElements(".//pg")
	}
	return utt.FindElements(".//w")
}

// wordText returns the lowercased, stripped surface text of a word node.
func wordText(word *etree.Element) string {
	if word.Tag == "pg" {
		word = word.FindElement(".//w")
		if word == nil {
			return ""
		}
	}
	return strings.ToLower(strings.TrimSpace(word.Text()))
}

// wordStem extracts the morphological stem, extended with an inflection
// marker (-) and/or the stem of a bound suffix (~) when present. Absent
// sub-nodes are simply absent, not an error.
func wordStem(word *etree.Element, fallback string) string {
	stem := fallback
	if node := word.FindElement(".//stem"); node != nil {
		stem = node.Text()
	}
	if infl := word.FindElement(".//mor/mw/mk"); infl != nil {
		stem += "-" + infl.Text()
	}
	if suffix := word.FindElement(".//mor/mor-post/mw/stem"); suffix != nil && suffix.Text() != "" {
		stem += "~" + suffix.Text()
	}
	return strings.ToLower(stem)
}

// wordPOS extracts the part-of-speech tag: category text, colon-joined
// with the subcategory when present, optionally extended with a suffix
// tag (~) built the same way from the bound morpheme's pos node.
func wordPOS(word *etree.Element) string {
	var tag string
	if c := word.FindElement(".//c"); c != nil {
		tag = c.Text()
		if s := word.FindElement(".//s"); s != nil {
			tag += ":" + s.Text()
		}
	}
	if sc := word.FindElement(".//mor/mor-post/mw/pos/c"); sc != nil {
		suffixTag := sc.Text()
		if ss := word.FindElement(".//mor/mor-post/mw/pos/s"); ss != nil {
			suffixTag += ":" + ss.Text()
		}
		tag += "~" + suffixTag
	}
	return tag
}
