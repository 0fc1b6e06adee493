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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/kamchy/libchip8/curated"
)

// DefaultPrefsFile is the default filename for the libchip8 preferences file.
const DefaultPrefsFile = "chip8.prefs"

// WarningBoilerPlate is the first line of a prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// NoPrefsFile is returned by Load() when the prefs file does not exist.
// Callers will often want to treat this as a non-fatal error.
const NoPrefsFile = "prefs: no prefs file (%s)"

// the string that separates the key from the value in the prefs file.
const keySep = " :: "

// Disk represents the preference values that are stored in a file. Many Disk
// instances can use the same file, entries that have not been added to an
// instance are left alone on Save().
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to Disk under the supplied key. The key must be unique
// to this Disk instance.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, keySep) || strings.ContainsAny(key, "\n") {
		return curated.Errorf("prefs: invalid key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: duplicate key (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// HasEntry returns true if an entry for the key has been added to this Disk
// instance.
func (dsk *Disk) HasEntry(key string) bool {
	_, ok := dsk.entries[key]
	return ok
}

// String returns the live value of every entry added to this Disk instance,
// in the format used on disk.
func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k].String()))
	}
	return s.String()
}

// read the prefs file as it exists on disk. the returned map contains every
// entry in the file, whether it has been added to this Disk instance or not.
func (dsk *Disk) loadEntries() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	entries := make(map[string]string)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		s := scanner.Text()
		if len(s) == 0 || s == WarningBoilerPlate {
			continue
		}

		kv := strings.SplitN(s, keySep, 2)
		if len(kv) != 2 {
			return nil, curated.Errorf("prefs: not a valid prefs entry (%s)", s)
		}
		entries[kv[0]] = kv[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("prefs: %v", err)
	}

	return entries, nil
}

// Load preference values from disk. Entries in the file that have not been
// added to this Disk instance are ignored. Values pushed onto the command
// line stack take precedence over whatever is stored in the file.
//
// A NoPrefsFile error is returned after the command line stack has been
// consulted, so overrides apply even on a machine with no prefs file yet.
func (dsk *Disk) Load() error {
	var noFile error

	entries, err := dsk.loadEntries()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		noFile = err
		entries = make(map[string]string)
	}

	for k, p := range dsk.entries {
		if v, ok := entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	// consult the command line stack last so that it overrides anything read
	// from the file
	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	return noFile
}

// Save current preference values to disk. Entries in the file belonging to
// other Disk instances are preserved. Defunct keys are dropped.
func (dsk *Disk) Save() error {
	entries, err := dsk.loadEntries()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		entries = make(map[string]string)
	}

	for k, p := range dsk.entries {
		entries[k] = p.String()
	}

	for k := range entries {
		if isDefunct(k) {
			delete(entries, k)
		}
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s\n", WarningBoilerPlate))
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, entries[k]))
	}

	if _, err := f.WriteString(s.String()); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Reset every entry added to this Disk instance to its zero value. The file
// is not touched.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}
