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
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/czcorpus/cnc-gokit/fs"
)

// FileIDsByChild maps each subject directory of the corpus root to its
// sorted transcript file identifiers (paths relative to the root).
// Hidden entries are excluded.
func FileIDsByChild(rootDir string) (map[string][]string, error) {
	isDir, err := fs.IsDir(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list corpus %s: %w", rootDir, err)
	}
	if !isDir {
		return nil, fmt.Errorf("failed to list corpus %s: not a directory", rootDir)
	}
	subdirs, err := os.ReadDir(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list corpus %s: %w", rootDir, err)
	}
	ans := make(map[string][]string)
	for _, subdir := range subdirs {
		if !subdir.IsDir() || strings.HasPrefix(subdir.Name(), ".") {
			continue
		}
		files, err := os.ReadDir(filepath.Join(rootDir, subdir.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to list corpus %s: %w", rootDir, err)
		}
		ids := make([]string, 0, len(files))
		for _, f := range files {
			if f.IsDir() || strings.HasPrefix(f.Name(), ".") {
				continue
			}
			ids = append(ids, filepath.Join(subdir.Name(), f.Name()))
		}
		sort.Strings(ids)
		ans[subdir.Name()] = ids
	}
	return ans, nil
}

// FileIDs returns the transcript file identifiers of the whole corpus as
// a single sorted list.
func FileIDs(rootDir string) ([]string, error) {
	byChild, err := FileIDsByChild(rootDir)
	if err != nil {
		return nil, err
	}
	var ans []string
	for _, ids := range byChild {
		ans = append(ans, ids...)
	}
	sort.Strings(ans)
	return ans, nil
}
