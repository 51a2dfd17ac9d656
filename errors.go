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

package nci

import (
	"fmt"
	"strings"
)

//Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
//error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call adds the given string (if not empty) to the decoration slice and returns the resulting slice.
}

//CriticalError is an Error that can tell whether the run should stop.
type CriticalError interface {
	Error
	Critical() bool
}

//errDecorate decorates err with the caller's name, if err implements Error.
//Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
	}
	return err
}

//StructureError is returned when the input structure can't be used
//to classify interactions: no ligand, missing hydrogens or charges, or a malformed bond graph.
//It is always critical.
type StructureError struct {
	message string
	atoms   []int //file IDs of the atoms involved, if any
	residue string
	deco    []string
}

//NewStructureError returns a StructureError with the given message, residue and atom IDs.
func NewStructureError(message, residue string, atoms ...int) *StructureError {
	return &StructureError{message: message, residue: residue, atoms: atoms}
}

func (err *StructureError) Error() string {
	s := []string{"structure error: " + err.message}
	if err.residue != "" {
		s = append(s, "residue "+err.residue)
	}
	if len(err.atoms) > 0 {
		s = append(s, fmt.Sprintf("atom IDs %v", err.atoms))
	}
	return strings.Join(s, ", ")
}

//Decorate adds new information to the error
func (err *StructureError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns true. StructureErrors always abort a run.
func (err *StructureError) Critical() bool { return true }

//Atoms returns the file IDs of the atoms involved in the error.
func (err *StructureError) Atoms() []int { return err.atoms }

//Residue returns the residue involved in the error, or an empty string.
func (err *StructureError) Residue() string { return err.residue }

//DegenerateError signals a geometric measurement that can't be defined
//for the given points, such as the normal of three collinear atoms.
type DegenerateError struct {
	what string
	deco []string
}

func (err *DegenerateError) Error() string {
	return "degenerate geometry: " + err.what
}

//Decorate adds new information to the error
func (err *DegenerateError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns false, a degenerate measurement only invalidates one evaluation.
func (err *DegenerateError) Critical() bool { return false }
