/*
 * errors.go, part of gocdft.
 *
 *
 * Copyright 2024 The gocdft Authors
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

package cdft

import (
	"errors"
	"fmt"
	"strings"
)

//ErrInvalidArgument is the only kind of failure in this package. All the errors returned by
//the models unwrap to it, so they can be checked with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

//Error is the error type for the package. Besides the message, it keeps a decoration slice
//with the names of the functions it went through, and some extra info when relevant, in the format
//"FunctionName: Extra info".
type Error struct {
	message string
	deco    []string
}

func newError(message string, deco ...string) *Error {
	return &Error{message: message, deco: deco}
}

func (err *Error) Error() string {
	if len(err.deco) == 0 {
		return fmt.Sprintf("goCDFT: %s: %s", ErrInvalidArgument, err.message)
	}
	return fmt.Sprintf("goCDFT/%s: %s: %s", strings.Join(err.deco, "/"), ErrInvalidArgument, err.message)
}

//Decorate adds deco to the decoration slice and returns the result.
//An empty string only retrieves the current slice.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Unwrap allows errors.Is(err, ErrInvalidArgument)
func (err *Error) Unwrap() error {
	return ErrInvalidArgument
}

//errDecorate decorates err with the caller's name if err is an *Error,
//otherwise it returns err unchanged.
func errDecorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
		return e
	}
	return err
}
