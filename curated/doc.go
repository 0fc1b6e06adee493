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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It works like
// Errorf() in the fmt package except that the pattern string doubles as the
// identity of the error. The Is() function checks an error against a pattern:
//
//	e := curated.Errorf("memory: address out of range: %#04x", 0x1000)
//
//	if curated.Is(e, "memory: address out of range: %#04x") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks for the pattern anywhere in the
// error chain, rather than just at the head. IsAny() answers whether the
// error is curated at all; errors from outside the project (the standard
// library, third-party packages) are uncurated until wrapped.
//
// The Error() function normalises the message chain, dropping duplicate
// adjacent parts. Wrapping an error with the same prefix it already carries
// is therefore harmless:
//
//	err := curated.Errorf("romloader: %v", curated.Errorf("romloader: %v", e))
//
// prints the "romloader" part once. Chains are composed of parts separated
// by the sub-string ': ', as suggested on p239 of "The Go Programming
// Language" (Donovan, Kernighan).
//
// Patterns intended for matching should be stored as const strings, suitably
// named and commented, near the functions that return them.
package curated
