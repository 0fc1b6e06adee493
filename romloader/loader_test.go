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

package romloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kamchy/libchip8/romloader"
	"github.com/kamchy/libchip8/test"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "pong.ch8")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x12, 0x00}, 0o644))

	cl := romloader.NewLoader(fn)
	test.ExpectEquality(t, cl.HasLoaded(), false)
	test.ExpectEquality(t, cl.ShortName(), "pong")

	test.ExpectSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.HasLoaded(), true)
	test.ExpectEquality(t, len(cl.Data), 2)

	// sha1 of the two byte program
	test.ExpectEquality(t, cl.Hash, "92a5652d382a18e89c4881ec57041fc7d885ca80")
}

func TestHashVerification(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "pong.ch8")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x12, 0x00}, 0o644))

	cl := romloader.NewLoader(fn)
	cl.Hash = "0000000000000000000000000000000000000000"
	test.ExpectFailure(t, cl.Load())

	cl = romloader.NewLoader(fn)
	cl.Hash = "92a5652d382a18e89c4881ec57041fc7d885ca80"
	test.ExpectSuccess(t, cl.Load())
}

func TestLoadFailure(t *testing.T) {
	cl := romloader.NewLoader(filepath.Join(t.TempDir(), "missing.ch8"))
	test.ExpectFailure(t, cl.Load())
	test.ExpectEquality(t, cl.HasLoaded(), false)
}
