/*
 * errors.go, part of gonci.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 */

package mol2

import "fmt"

//Error is returned when a mol2 file can't be opened or parsed. Read errors are always critical.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	line     int    //0 if the error doesn't refer to a line
	deco     []string
	critical bool
}

func newError(filename string, line int, caller string, format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...), filename: filename, line: line, deco: []string{caller}, critical: true}
}

func (err *Error) Error() string {
	if err.line > 0 {
		return fmt.Sprintf("mol2 file %s error in line %d: %s", err.filename, err.line, err.message)
	}
	return fmt.Sprintf("mol2 file %s error: %s", err.filename, err.message)
}

//Decorate Adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the failing structure was associated
func (err *Error) FileName() string { return err.filename }

//Line returns the line of the file where the error was found, or 0.
func (err *Error) Line() int { return err.line }

//Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }
