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

package cnf

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"
)

const (
	dfltChildSpeaker  = "CHI"
	dfltParentSpeaker = "MOT"
)

// Conf is a global configuration of the app
type Conf struct {
	CorpusPath     string           `json:"corpusPath"`
	DictionaryPath string           `json:"dictionaryPath"`
	OutputDir      string           `json:"outputDir"`
	ChildSpeaker   string           `json:"childSpeaker"`
	ParentSpeaker  string           `json:"parentSpeaker"`
	LogFile        string           `json:"logFile"`
	LogLevel       logging.LogLevel `json:"logLevel"`

	srcPath string
}

func (conf *Conf) IsDebugMode() bool {
	return conf.LogLevel == "debug"
}

// GetSourcePath returns an absolute path of a file
// the config was loaded from.
func (conf *Conf) GetSourcePath() string {
	if filepath.IsAbs(conf.srcPath) {
		return conf.srcPath
	}
	var cwd string
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "[failed to get working dir]"
	}
	return filepath.Join(cwd, conf.srcPath)
}

func LoadConfig(path string) *Conf {
	if path == "" {
		log.Fatal().Msg("Cannot load config - path not specified")
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	var conf Conf
	conf.srcPath = path
	err = json.Unmarshal(rawData, &conf)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	return &conf
}

func ValidateAndDefaults(conf *Conf) {
	if conf.ChildSpeaker == "" {
		conf.ChildSpeaker = dfltChildSpeaker
		log.Warn().Msgf(
			"childSpeaker not specified, using default: %s",
			dfltChildSpeaker,
		)
	}
	if conf.ParentSpeaker == "" {
		conf.ParentSpeaker = dfltParentSpeaker
		log.Warn().Msgf(
			"parentSpeaker not specified, using default: %s",
			dfltParentSpeaker,
		)
	}
	if conf.OutputDir == "" {
		conf.OutputDir = "."
		log.Warn().Msg("outputDir not specified, using current directory")
	}
	if isDir, err := fs.IsDir(conf.CorpusPath); err != nil || !isDir {
		log.Fatal().
			Err(err).
			Str("corpusPath", conf.CorpusPath).
			Msg("corpusPath must be an existing directory")
	}
	if isFile, err := fs.IsFile(conf.DictionaryPath); err != nil || !isFile {
		log.Fatal().
			Err(err).
			Str("dictionaryPath", conf.DictionaryPath).
			Msg("dictionaryPath must be an existing file")
	}
	if isDir, err := fs.IsDir(conf.OutputDir); err != nil || !isDir {
		log.Fatal().
			Err(err).
			Str("outputDir", conf.OutputDir).
			Msg("outputDir must be an existing directory")
	}
}
