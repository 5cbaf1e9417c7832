/*
 * errors.go, part of chemcalc.
 *
 * Copyright 2024 Marcela Leiva <mleivas{at}protonDOTme>
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

package chemcalc

import "fmt"

//Kind classifies every failure the engine can produce. Callers branch on
//the Kind instead of matching message text.
type Kind int

const (
	ErrSyntax         Kind = iota + 1 //malformed formula or equation text
	ErrUnknownElement                 //symbol absent from the element table
	ErrUnknownUnit                    //unit absent from the registry
	ErrInvalidUnit                    //unit of the wrong dimension for its slot
	ErrBadQuantity                    //negative or zero magnitude where a positive one is required
	ErrUnderdetermined                //more than one dilution quantity missing
	ErrOverdetermined                 //no dilution quantity missing
	ErrUnbalanceable                  //no positive balance exists for the reaction
	ErrDegenerate                     //the balance system admits several independent solutions
)

//String returns a short stable name for the kind, used by chemjson and
//the command-line front end.
func (k Kind) String() string {
	switch k {
	case ErrSyntax:
		return "syntax"
	case ErrUnknownElement:
		return "unknown-element"
	case ErrUnknownUnit:
		return "unknown-unit"
	case ErrInvalidUnit:
		return "invalid-unit"
	case ErrBadQuantity:
		return "bad-quantity"
	case ErrUnderdetermined:
		return "underdetermined"
	case ErrOverdetermined:
		return "overdetermined"
	case ErrUnbalanceable:
		return "unbalanceable"
	case ErrDegenerate:
		return "degenerate"
	}
	return "unknown"
}

//Error is the interface implemented by all errors returned from this
//library. The Decorate method allows adding and retrieving information
//from the error as it is passed up the call stack, without changing its
//type or wrapping it around something else. The decoration slice should
//contain a list of the functions in the calling stack, plus, for each
//function, any relevant extra information in the format
//"FunctionName: Extra info". Decorate, when passed an empty string, only
//returns the current decorations without adding anything.
type Error interface {
	Error() string
	Kind() Kind
	Decorate(string) []string
}

//CError is the concrete error type of the library.
type CError struct {
	kind Kind
	msg  string
	deco []string
}

func (err *CError) Error() string { return err.msg }

//Kind returns the classification of the error.
func (err *CError) Kind() Kind { return err.kind }

//Decorate adds dec to the decoration slice of the error and returns the
//resulting slice. An empty dec is not added.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//newError builds a CError of the given kind with an fmt-style message.
func newError(kind Kind, format string, a ...interface{}) *CError {
	return &CError{kind: kind, msg: fmt.Sprintf(format, a...)}
}

//errDecorate asserts that err implements Error, decorates it with the
//caller's name and returns it. Errors from outside the library are
//returned untouched.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
