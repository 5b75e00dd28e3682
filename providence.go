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

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"

	"providence/cnf"
	"providence/corpus"
	"providence/dict"
	"providence/export"
)

var (
	version   string
	buildDate string
	gitCommit string
)

func cleanVersionInfo(v string) string {
	return strings.TrimLeft(strings.Trim(v, "'"), "v")
}

func runExport(conf *cnf.Conf) {
	pronDict, err := dict.Load(conf.DictionaryPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load pronunciation dictionary")
	}
	log.Info().
		Int("numEntries", pronDict.Size()).
		Msg("pronunciation dictionary loaded")
	reader := corpus.NewReader(conf.CorpusPath, pronDict)
	exporter := export.NewExporter(reader, conf.OutputDir, conf.ChildSpeaker, conf.ParentSpeaker)
	if err := exporter.Run(); err != nil {
		log.Fatal().Err(err).Msg("Export failed")
	}
	log.Info().Msg("Done")
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "PROVIDENCE - phonological extraction from the Providence Corpus\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n\t%s [options] export [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] test [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] version\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	action := flag.Arg(0)
	if action == "version" {
		fmt.Printf(
			"providence %s\nbuild date: %s\nlast commit: %s\n",
			cleanVersionInfo(version), cleanVersionInfo(buildDate), cleanVersionInfo(gitCommit),
		)
		return
	}
	conf := cnf.LoadConfig(flag.Arg(1))
	logging.SetupLogging(conf.LogFile, conf.LogLevel)

	if action == "test" {
		cnf.ValidateAndDefaults(conf)
		log.Info().Msg("config OK")
		return
	}

	log.Info().Msg("Starting PROVIDENCE")
	cnf.ValidateAndDefaults(conf)

	switch action {
	case "export":
		runExport(conf)
	default:
		log.Fatal().Msgf("Unknown action %s", action)
	}
}
