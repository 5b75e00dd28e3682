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
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/beevik/etree"
	"github.com/rs/zerolog/log"
)

// ageExpr matches the leading year/month components of an ISO-8601
// duration (e.g. P1Y6M14D); days are ignored.
var ageExpr = regexp.MustCompile(`^P(?:(\d+)Y)?(?:(\d+)M)?`)

// Document is one parsed transcript of the corpus. It is immutable after
// Parse.
type Document struct {
	// FileID is the transcript path relative to the corpus root
	FileID string

	// AgeMonths is the target child's age at recording time
	AgeMonths int

	root *etree.Element
}

// Parse loads one TalkBank XML transcript. A malformed document is a
// fatal error for that file; there is no partial recovery.
func Parse(rootDir, fileID string) (*Document, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromFile(filepath.Join(rootDir, fileID)); err != nil {
		return nil, fmt.Errorf("failed to parse transcript %s: %w", fileID, err)
	}
	root := tree.Root()
	if root == nil {
		return nil, fmt.Errorf("failed to parse transcript %s: empty document", fileID)
	}
	return &Document{
		FileID:    fileID,
		AgeMonths: extractAge(root, fileID),
		root:      root,
	}, nil
}

// extractAge reads the target child's age attribute from the participant
// metadata and converts it to months.
func extractAge(root *etree.Element, fileID string) int {
	for _, participant := range root.FindElements(".//Participants/participant") {
		if participant.SelectAttrValue("id", "") != ChildSpeaker {
			continue
		}
		srch := ageExpr.FindStringSubmatch(participant.SelectAttrValue("age", ""))
		if srch == nil || (srch[1] == "" && srch[2] == "") {
			// a day-only duration such as P14D carries no usable
			// year/month information either
			break
		}
		years, _ := strconv.Atoi(srch[1])
		months, _ := strconv.Atoi(srch[2])
		return years*12 + months
	}
	log.Warn().
		Str("file", fileID).
		Msg("missing or unparsable child age, using 0")
	return 0
}
