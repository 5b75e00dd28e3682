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

package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"providence/corpus"
	"providence/dict"
)

const testTranscript = `<?xml version="1.0" encoding="UTF-8"?>
<CHAT xmlns="http://www.talkbank.org/ns/talkbank" Corpus="Providence" Lang="eng">
	<Participants>
		<participant id="CHI" role="Target_Child" age="P2Y0M07D"/>
		<participant id="MOT" role="Mother"/>
	</Participants>
	<u who="MOT" uID="u0">
		<w>hello<mor type="mor"><mw><pos><c>co</c></pos><stem>hello</stem></mw></mor></w>
		<media start="1.5" end="2.75" unit="s"/>
	</u>
	<u who="CHI" uID="u1">
		<pg>
			<w>ball<mor type="mor"><mw><pos><c>n</c></pos><stem>ball</stem></mw></mor></w>
			<model><pw><ph>b</ph><ph>ɔ</ph><ph>l</ph></pw></model>
			<actual><pw><ph>b</ph><ph>a</ph></pw></actual>
		</pg>
		<media start="3.5" end="4.25" unit="s"/>
	</u>
</CHAT>
`

const testDictData = `HELLO  HH AH0 L OW
BALL  B AO1 L
`

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	assert.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	assert.NoError(t, err)
	return rows
}

// TestExportRoundTrip runs the whole pipeline over a one-subject corpus
// with one transcript containing one child and one adult utterance and
// checks both produced CSV files row by row.
func TestExportRoundTrip(t *testing.T) {
	root := t.TempDir()
	err := os.MkdirAll(filepath.Join(root, "Alex"), 0755)
	assert.NoError(t, err)
	err = os.WriteFile(
		filepath.Join(root, "Alex", "ale01.xml"), []byte(testTranscript), 0644)
	assert.NoError(t, err)
	dictPath := filepath.Join(t.TempDir(), "cmudict.txt")
	err = os.WriteFile(dictPath, []byte(testDictData), 0644)
	assert.NoError(t, err)
	outDir := t.TempDir()

	pronDict, err := dict.Load(dictPath)
	assert.NoError(t, err)
	reader := corpus.NewReader(root, pronDict)
	exporter := NewExporter(reader, outDir, "CHI", "MOT")
	assert.NoError(t, exporter.Run())

	childRows := readCSV(t, filepath.Join(outDir, "Alex_child.csv"))
	assert.Len(t, childRows, 2)
	assert.Equal(t, childHeader, childRows[0])
	assert.Equal(
		t,
		[]string{"Alex", "ale01.xml", "24", "ball", "ball", "b.ɔ.l", "b.ɑ", "n", "3.5", "4.25"},
		childRows[1],
	)

	parentRows := readCSV(t, filepath.Join(outDir, "Alex_parent.csv"))
	assert.Len(t, parentRows, 2)
	assert.Equal(t, parentHeader, parentRows[0])
	assert.Equal(
		t,
		[]string{"Alex", "ale01.xml", "24", "hello", "hello", "h.əl.o", "co", "1.5", "2.75"},
		parentRows[1],
	)
}

const testTranscriptCustomChild = `<?xml version="1.0" encoding="UTF-8"?>
<CHAT xmlns="http://www.talkbank.org/ns/talkbank" Corpus="Providence" Lang="eng">
	<Participants>
		<participant id="CHI2" role="Target_Child" age="P2Y0M07D"/>
		<participant id="MOT" role="Mother"/>
	</Participants>
	<u who="CHI2" uID="u0">
		<pg>
			<w>ball<mor type="mor"><mw><pos><c>n</c></pos><stem>ball</stem></mw></mor></w>
			<model><pw><ph>b</ph><ph>ɔ</ph><ph>l</ph></pw></model>
			<actual><pw><ph>b</ph><ph>a</ph></pw></actual>
		</pg>
	</u>
</CHAT>
`

// TestExportCustomChildSpeaker checks that a configured non-default
// child code still fills the model/actual columns from the phone
// annotation instead of falling back to the adult dictionary path.
func TestExportCustomChildSpeaker(t *testing.T) {
	root := t.TempDir()
	err := os.MkdirAll(filepath.Join(root, "Alex"), 0755)
	assert.NoError(t, err)
	err = os.WriteFile(
		filepath.Join(root, "Alex", "ale01.xml"), []byte(testTranscriptCustomChild), 0644)
	assert.NoError(t, err)
	dictPath := filepath.Join(t.TempDir(), "cmudict.txt")
	err = os.WriteFile(dictPath, []byte(testDictData), 0644)
	assert.NoError(t, err)
	outDir := t.TempDir()

	pronDict, err := dict.Load(dictPath)
	assert.NoError(t, err)
	reader := corpus.NewReader(root, pronDict)
	exporter := NewExporter(reader, outDir, "CHI2", "MOT")
	assert.NoError(t, exporter.Run())

	rows := readCSV(t, filepath.Join(outDir, "Alex_child.csv"))
	assert.Len(t, rows, 2)
	assert.Equal(t, "b.ɔ.l", rows[1][5])
	assert.Equal(t, "b.ɑ", rows[1][6])
}

func TestExportSubjectMissingOutputDirFails(t *testing.T) {
	root := t.TempDir()
	err := os.MkdirAll(filepath.Join(root, "Alex"), 0755)
	assert.NoError(t, err)
	err = os.WriteFile(
		filepath.Join(root, "Alex", "ale01.xml"), []byte(testTranscript), 0644)
	assert.NoError(t, err)
	dictPath := filepath.Join(t.TempDir(), "cmudict.txt")
	err = os.WriteFile(dictPath, []byte(testDictData), 0644)
	assert.NoError(t, err)

	pronDict, err := dict.Load(dictPath)
	assert.NoError(t, err)
	reader := corpus.NewReader(root, pronDict)
	exporter := NewExporter(reader, filepath.Join(root, "no-such-dir"), "CHI", "MOT")
	assert.Error(t, exporter.Run())
}
