/*
 * errors.go, part of gomol.
 *
 * Copyright 2026 The gomol developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package mol

// Error is the interface for errors that all packages in this library implement.
// The Decorate method allows to add and retrieve info from the error, without
// changing its type or wrapping it around something else. The decoration slice
// should contain a list of the functions in the calling stack, plus, for each
// function, any relevant extra information, in the format "FunctionName: Extra info".
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError is the concrete error type for the package. It fulfills the
// mol.Error interface.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

// Decorate adds new information to the error. If passed an empty string,
// it just returns the current decoration without adding to it.
func (err CError) Decorate(dec string) []string {
	//This method does not use a pointer receiver but still alters the
	//receiver, since deco is a slice, hence a pointer itself.
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// errDecorate asserts that err implements mol.Error and decorates it with the
// caller's name before returning it. Errors of any other type are returned
// unchanged. A nil error stays nil.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

//Error messages for the structural (fatal) tier of parse failures.
//Malformed individual records are skipped, not reported.
const (
	ErrTooFewLines    = "File has too few lines for the format"
	ErrBadHeader      = "Ill-formed header or counts line"
	ErrNoAtomRecords  = "No atom records found in file"
	ErrEmptyRecord    = "Empty or whitespace-only record"
	ErrUnknownFormat  = "Could not recognize the file format"
	ErrNilAtoms       = "Given a nil or empty atom slice"
	ErrUnwritableFile = "Cannot write the requested file"
)
