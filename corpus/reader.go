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

// Package corpus reads Providence Corpus transcripts (TalkBank XML) and
// turns them into flat word records carrying phonological and linguistic
// annotation.
package corpus

import (
	"errors"
	"iter"
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/rs/zerolog/log"

	"providence/dict"
	"providence/perror"
	"providence/phon"
)

// WordRecord is the primary output entity: one word of one utterance
// with its phonological and linguistic annotations.
type WordRecord struct {
	FileID        string
	AgeMonths     int
	Orthography   string
	Stem          string
	Transcription phon.Transcription
	POS           string
	MediaTimes    MediaTimes
}

// WordTimes pairs a word with the position of its utterance in the
// audio recording.
type WordTimes struct {
	Orthography string
	MediaTimes  MediaTimes
}

// WordTranscription pairs a word with its resolved pronunciation.
type WordTranscription struct {
	Orthography   string
	Transcription phon.Transcription
}

// Reader extracts annotated word records from the transcripts of one
// corpus root. It holds no per-file state and may be shared by
// concurrent callers.
type Reader struct {
	rootDir     string
	dict        *dict.Dict
	transcriber *phon.Transcriber
}

func NewReader(rootDir string, d *dict.Dict) *Reader {
	return &Reader{
		rootDir:     rootDir,
		dict:        d,
		transcriber: phon.NewTranscriber(d),
	}
}

func (r *Reader) RootDir() string {
	return r.rootDir
}

// openDoc parses one transcript and reports the progress all extraction
// shapes share.
func (r *Reader) openDoc(fileID string) (*Document, error) {
	doc, err := Parse(r.rootDir, fileID)
	if err != nil {
		return nil, err
	}
	log.Info().Str("file", fileID).Msg("processing transcript")
	return doc, nil
}

// extractedWord is one word candidate after the utterance walk, before
// transcription resolution.
type extractedWord struct {
	node        *etree.Element
	orthography string
	stem        string
	pos         string
	times       MediaTimes
}

// eachWord walks the document's utterances in order and calls fn for
// every retained word. Media times are resolved once per utterance and
// shared by its words. Adult words absent from the pronunciation
// dictionary are discarded here, before any further processing.
func (r *Reader) eachWord(doc *Document, filter SpeakerFilter, fn func(extractedWord) error) error {
	childOnly := filter.ChildOnly()
	for _, utt := range doc.root.FindElements(".//u") {
		if !filter.Matches(utt.SelectAttrValue("who", "")) {
			continue
		}
		times, err := mediaTimesOf(utt)
		if err != nil {
			return err
		}
		for _, node := range wordNodes(utt, childOnly) {
			orth := wordText(node)
			if orth == "" {
				continue
			}
			if !childOnly && !r.dict.Contains(orth) {
				log.Debug().
					Str("file", doc.FileID).
					Str("word", orth).
					Msg("word not in pronunciation dictionary, skipping")
				continue
			}
			err := fn(extractedWord{
				node:        node,
				orthography: orth,
				stem:        wordStem(node, orth),
				pos:         wordPOS(node),
				times:       times,
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// resolve runs transcription for one extracted word. The skip return
// distinguishes the recoverable dictionary-miss case from fatal errors.
func (r *Reader) resolve(doc *Document, childOnly bool, w extractedWord) (tr phon.Transcription, skip bool, err error) {
	tr, err = r.transcriber.Transcribe(childOnly, w.node, w.orthography)
	if err != nil {
		var notFound perror.TranscriptionNotFound
		if errors.As(err, &notFound) {
			log.Debug().
				Str("file", doc.FileID).
				Str("word", w.orthography).
				Msg("transcription not found, skipping word")
			return phon.Transcription{}, true, nil
		}
		return phon.Transcription{}, false, err
	}
	return tr, false, nil
}

// WordsInfo returns the fully annotated word records of one transcript,
// in document order, for the utterances the filter retains. Words whose
// transcription cannot be resolved are silently excluded.
func (r *Reader) WordsInfo(fileID string, filter SpeakerFilter) ([]WordRecord, error) {
	doc, err := r.openDoc(fileID)
	if err != nil {
		return nil, err
	}
	childOnly := filter.ChildOnly()
	var ans []WordRecord
	err = r.eachWord(doc, filter, func(w extractedWord) error {
		tr, skip, err := r.resolve(doc, childOnly, w)
		if err != nil || skip {
			return err
		}
		ans = append(ans, WordRecord{
			FileID:        filepath.Base(doc.FileID),
			AgeMonths:     doc.AgeMonths,
			Orthography:   w.orthography,
			Stem:          w.stem,
			Transcription: tr,
			POS:           w.pos,
			MediaTimes:    w.times,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ans, nil
}

// WordsTimes returns the words of one transcript paired with their
// utterance's media times.
func (r *Reader) WordsTimes(fileID string, filter SpeakerFilter) ([]WordTimes, error) {
	doc, err := r.openDoc(fileID)
	if err != nil {
		return nil, err
	}
	var ans []WordTimes
	err = r.eachWord(doc, filter, func(w extractedWord) error {
		ans = append(ans, WordTimes{Orthography: w.orthography, MediaTimes: w.times})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ans, nil
}

// WordsTranscription returns the words of one transcript paired with
// their resolved pronunciation.
func (r *Reader) WordsTranscription(fileID string, filter SpeakerFilter) ([]WordTranscription, error) {
	doc, err := r.openDoc(fileID)
	if err != nil {
		return nil, err
	}
	childOnly := filter.ChildOnly()
	var ans []WordTranscription
	err = r.eachWord(doc, filter, func(w extractedWord) error {
		tr, skip, err := r.resolve(doc, childOnly, w)
		if err != nil || skip {
			return err
		}
		ans = append(ans, WordTranscription{Orthography: w.orthography, Transcription: tr})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ans, nil
}

// IterWordsInfo lazily yields annotated word records across the given
// transcripts in order, one document parsed at a time. Re-iterating
// re-parses from the beginning; there is no resuming from a partial
// position. The first fatal per-file error is yielded and ends the
// sequence.
func (r *Reader) IterWordsInfo(fileIDs []string, filter SpeakerFilter) iter.Seq2[WordRecord, error] {
	return func(yield func(WordRecord, error) bool) {
		for _, fileID := range fileIDs {
			records, err := r.WordsInfo(fileID, filter)
			if err != nil {
				yield(WordRecord{}, err)
				return
			}
			for _, rec := range records {
				if !yield(rec, nil) {
					return
				}
			}
		}
	}
}
