/*
 * doc.go, part of gonci.
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

//Package nci holds the molecular graph used to classify non-covalent
//interactions between a ligand and its environment (protein and solvent).
//
//A Molecule is an arena of atoms addressed by index. Bonds, residues, rings
//and chemical roles are all expressed as indexes into that arena, and are
//computed once, when the Molecule is built. After that, a Molecule is never
//modified, so it can be shared freely among goroutines.
//
//The geometric helpers (see Geom) work on gonum's r3.Vec and report
//degenerate input (zero-length vectors, collinear plane points) through a
//sticky error, so a long chain of measurements can be checked only once.
package nci
