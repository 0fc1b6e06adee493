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

// Package test contains helper functions to remove common testing
// boilerplate.
//
// The Expect functions test a condition and mark the test as failed if the
// condition does not hold, without stopping it. The Demand functions are the
// fatal equivalents, for conditions that later stages of the test rely on.
//
// ExpectSuccess() and ExpectFailure() work on bool and error values. It is
// worth describing how they handle the nil type because it is not obvious:
// nil is considered a success. This follows from how errors usually work, a
// nil error indicating no error. ExpectFailure(t, nil) therefore always
// fails.
//
// ExpectEquality() and ExpectInequality() compare two values of any
// comparable type. ExpectApproximate() compares numeric values within a
// fractional tolerance.
//
// All of these functions accept optional trailing tags which are printed
// with any failure message. Useful when a test makes many expectations in a
// loop.
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. The Writer.Compare() function can then be used to test for
// equality.
package test
