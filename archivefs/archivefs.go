// This file is part of libchip8.
//
// libchip8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// libchip8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with libchip8.  If not, see <https://www.gnu.org/licenses/>.

// Package archivefs lets a filename reach inside a zip archive. The path
//
//	roms.zip/games/breakout.ch8
//
// opens the member games/breakout.ch8 of the archive roms.zip. An archive
// named with no member path is opened when it holds exactly one file, so the
// common case of one ROM per archive needs no member name.
//
// Whether a file is an archive is decided by opening it, not by the filename
// extension.
package archivefs

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kamchy/libchip8/curated"
)

// Open returns the content of filename. Plain files are read directly. When
// an element of the path names a zip archive the remaining elements name a
// member inside it.
func Open(filename string) ([]byte, error) {
	lst := strings.Split(filepath.Clean(filename), string(filepath.Separator))

	// splitting an absolute path leaves an empty first element. put the
	// separator back so that filepath.Join() rebuilds the path correctly
	if lst[0] == "" {
		lst[0] = string(filepath.Separator)
	}

	var path string

	for i, l := range lst {
		path = filepath.Join(path, l)

		fi, err := os.Stat(path)
		if err != nil {
			return nil, curated.Errorf("archivefs: %v", err)
		}
		if fi.IsDir() {
			continue
		}

		// the path so far names a file. if it is an archive the walk
		// continues inside it
		zf, err := zip.OpenReader(path)
		if err != nil {
			if !errors.Is(err, zip.ErrFormat) {
				return nil, curated.Errorf("archivefs: %v", err)
			}
			if i != len(lst)-1 {
				return nil, curated.Errorf("archivefs: %s is not an archive", path)
			}

			// an ordinary file
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, curated.Errorf("archivefs: %v", err)
			}
			return data, nil
		}
		defer zf.Close()

		if i == len(lst)-1 {
			return soleMember(zf, path)
		}

		return member(zf, strings.Join(lst[i+1:], "/"))
	}

	return nil, curated.Errorf("archivefs: %s is a directory", filename)
}

// member returns the content of the named member of the archive. zip member
// names use forward slashes whatever the host separator is.
func member(zf *zip.ReadCloser, name string) ([]byte, error) {
	f, err := zf.Open(name)
	if err != nil {
		return nil, curated.Errorf("archivefs: %v", err)
	}
	return readAll(f)
}

// soleMember returns the content of the only file in the archive. an archive
// holding anything other than exactly one file needs the member spelling out.
func soleMember(zf *zip.ReadCloser, path string) ([]byte, error) {
	var sole *zip.File

	for _, f := range zf.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if sole != nil {
			return nil, curated.Errorf("archivefs: %s holds more than one file", path)
		}
		sole = f
	}

	if sole == nil {
		return nil, curated.Errorf("archivefs: %s holds no files", path)
	}

	f, err := sole.Open()
	if err != nil {
		return nil, curated.Errorf("archivefs: %v", err)
	}
	return readAll(f)
}

func readAll(f io.ReadCloser) ([]byte, error) {
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, curated.Errorf("archivefs: %v", err)
	}
	return data, nil
}
