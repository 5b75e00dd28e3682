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

// Package export writes the per-subject CSV output of the corpus
// extraction: for every subject directory, one file with the target
// child's words and one with the parent's.
package export

import (
	"encoding/csv"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"providence/corpus"
	"providence/phon"
)

var (
	childHeader = []string{
		"child", "fileid", "age", "orthography", "stem",
		"model", "actual", "pos", "start_time", "end_time",
	}
	parentHeader = []string{
		"child", "fileid", "age", "orthography", "stem",
		"phonemes", "pos", "start_time", "end_time",
	}
)

// Exporter writes one CSV pair per subject of the corpus.
type Exporter struct {
	reader        *corpus.Reader
	outDir        string
	childSpeaker  string
	parentSpeaker string
}

func NewExporter(reader *corpus.Reader, outDir, childSpeaker, parentSpeaker string) *Exporter {
	return &Exporter{
		reader:        reader,
		outDir:        outDir,
		childSpeaker:  childSpeaker,
		parentSpeaker: parentSpeaker,
	}
}

// Run discovers the corpus subjects and exports each of them. Output
// already written for earlier subjects stays in place when a later
// subject fails.
func (e *Exporter) Run() error {
	byChild, err := corpus.FileIDsByChild(e.reader.RootDir())
	if err != nil {
		return err
	}
	subjects := make([]string, 0, len(byChild))
	for name := range byChild {
		subjects = append(subjects, name)
	}
	sort.Strings(subjects)
	for _, subject := range subjects {
		if err := e.ExportSubject(subject, byChild[subject]); err != nil {
			return err
		}
	}
	return nil
}

// ExportSubject writes the <subject>_child.csv and <subject>_parent.csv
// pair for one subject's transcript files.
func (e *Exporter) ExportSubject(subject string, fileIDs []string) error {
	log.Info().
		Str("subject", subject).
		Int("numFiles", len(fileIDs)).
		Msg("exporting subject")
	err := e.writeCSV(
		filepath.Join(e.outDir, subject+"_child.csv"),
		childHeader,
		e.reader.IterWordsInfo(fileIDs, corpus.ChildOf(e.childSpeaker)),
		func(rec corpus.WordRecord) []string { return childRow(subject, rec) },
	)
	if err != nil {
		return err
	}
	return e.writeCSV(
		filepath.Join(e.outDir, subject+"_parent.csv"),
		parentHeader,
		e.reader.IterWordsInfo(fileIDs, corpus.Speakers(e.parentSpeaker)),
		func(rec corpus.WordRecord) []string { return parentRow(subject, rec) },
	)
}

func (e *Exporter) writeCSV(
	path string,
	header []string,
	records iter.Seq2[corpus.WordRecord, error],
	row func(corpus.WordRecord) []string,
) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	for rec, err := range records {
		if err != nil {
			return err
		}
		if err := w.Write(row(rec)); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func childRow(subject string, rec corpus.WordRecord) []string {
	tr := rec.Transcription.Child
	if tr == nil {
		tr = &phon.ChildTranscription{}
	}
	return []string{
		subject,
		rec.FileID,
		strconv.Itoa(rec.AgeMonths),
		rec.Orthography,
		rec.Stem,
		strings.Join(tr.Model, "."),
		strings.Join(tr.Actual, "."),
		rec.POS,
		formatSeconds(rec.MediaTimes.Start),
		formatSeconds(rec.MediaTimes.End),
	}
}

func parentRow(subject string, rec corpus.WordRecord) []string {
	return []string{
		subject,
		rec.FileID,
		strconv.Itoa(rec.AgeMonths),
		rec.Orthography,
		rec.Stem,
		strings.Join(rec.Transcription.Phonemes, "."),
		rec.POS,
		formatSeconds(rec.MediaTimes.Start),
		formatSeconds(rec.MediaTimes.End),
	}
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
