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

// Package digest produces a fingerprint of the display output. If a freshly
// computed hash differs from a previously recorded value then something in
// the emulation has changed. Useful as the basis for regression tests and
// for eyeball-free comparison of two runs of the same ROM.
package digest

// Digest implementations return a cryptographic hash in response to a Hash()
// request. Generation of the hash is achieved via the Update() function of
// the implementation.
type Digest interface {
	Hash() string
	ResetDigest()
}
