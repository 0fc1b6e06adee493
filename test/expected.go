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

package test

import (
	"fmt"
	"testing"
)

// numeric is the constraint for the ExpectApproximate function.
type numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// id builds the optional identifying prefix for a test report. Tags are
// joined in order.
func id(tags ...any) string {
	if len(tags) == 0 {
		return ""
	}

	s := fmt.Sprintf("%v", tags[0])
	for _, tag := range tags[1:] {
		s = fmt.Sprintf("%s: %v", s, tag)
	}

	return fmt.Sprintf("[%s] ", s)
}

// expect decides whether v is a success value for its type. Used by the
// Expect and Demand success/failure functions.
//
// Supported types:
//
//	bool  -> success if true
//	error -> success if nil
//	nil   -> success
//
// The nil type reads as a success because of how errors work in practice. A
// function that returns a nil error has succeeded.
func expect(t *testing.T, v any, tags ...any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		return v

	case error:
		return v == nil

	case nil:
		return true

	default:
		t.Fatalf("%sunsupported type (%T) for expectation testing", id(tags...), v)
	}

	return false
}

// ExpectSuccess tests argument v for a success value appropriate to its type.
//
// Types bool and error are supported. A bool of true and an error of nil are
// success values, as is the nil type itself.
func ExpectSuccess(t *testing.T, v any, tags ...any) bool {
	t.Helper()

	if !expect(t, v, tags...) {
		t.Errorf("%sa success value is expected for type %T", id(tags...), v)
		return false
	}

	return true
}

// ExpectFailure tests argument v for a failure value appropriate to its type.
//
// Types bool and error are supported. A bool of false and a non-nil error are
// failure values. The nil type always fails the expectation.
func ExpectFailure(t *testing.T, v any, tags ...any) bool {
	t.Helper()

	if expect(t, v, tags...) {
		t.Errorf("%sa failure value is expected for type %T", id(tags...), v)
		return false
	}

	return true
}

// ExpectEquality is used to test equality between one value and another.
func ExpectEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) bool {
	t.Helper()

	if v != expectedValue {
		t.Errorf("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), v, v, expectedValue)
		return false
	}

	return true
}

// ExpectInequality is the inverse of ExpectEquality.
func ExpectInequality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) bool {
	t.Helper()

	if v == expectedValue {
		t.Errorf("%sinequality test of type %T failed: '%v' does equal '%v'", id(tags...), v, v, expectedValue)
		return false
	}

	return true
}

// ExpectApproximate tests whether v is within tolerance of expectedValue.
// Tolerance is expressed as a fraction of expectedValue: a tolerance of 0.1
// accepts values within ±10%.
func ExpectApproximate[T numeric](t *testing.T, v T, expectedValue T, tolerance float64, tags ...any) bool {
	t.Helper()

	top := float64(expectedValue) * (1 + tolerance)
	bot := float64(expectedValue) * (1 - tolerance)
	if bot > top {
		top, bot = bot, top
	}

	if float64(v) < bot || float64(v) > top {
		t.Errorf("%sapproximation test of type %T failed: '%v' is outside the range '%v' to '%v'", id(tags...), v, v, bot, top)
		return false
	}

	return true
}
