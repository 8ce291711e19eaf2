// Copyright 2026 The kn3d Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package errorchain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/iancoleman/strcase"
)

type element struct {
	err  error
	msg  string
	next *element
}

type ErrorChain struct { // nolint: errname
	head *element
	tail *element
}

func New(err error) *ErrorChain {
	return (&ErrorChain{}).causedBy(err, "")
}

func NewWithMessage(err error, message string) *ErrorChain {
	return (&ErrorChain{}).causedBy(err, message)
}

func NewWithMessagef(err error, format string, a ...any) *ErrorChain {
	return (&ErrorChain{}).causedBy(err, fmt.Sprintf(format, a...))
}

func (ec *ErrorChain) Error() string {
	parts := make([]string, 0, 2) //nolint:mnd

	for c := ec.head; c != nil; c = c.next {
		if len(c.msg) == 0 {
			parts = append(parts, c.err.Error())
		} else {
			parts = append(parts, c.err.Error()+": "+c.msg)
		}
	}

	return strings.Join(parts, ": ")
}

func (ec *ErrorChain) CausedBy(err error) *ErrorChain {
	if err == nil {
		return ec
	}

	return ec.causedBy(err, "")
}

func (ec *ErrorChain) Unwrap() error {
	if ec.head == nil || ec.head.next == nil {
		return nil
	}

	return &ErrorChain{head: ec.head.next, tail: ec.tail}
}

func (ec *ErrorChain) Is(target error) bool {
	if ec.head == nil {
		return false
	}

	return errors.Is(ec.head.err, target)
}

func (ec *ErrorChain) As(target any) bool {
	if ec.head == nil {
		return false
	}

	return errors.As(ec.head.err, target)
}

// Errors returns all errors of the chain, starting with the outermost one.
func (ec *ErrorChain) Errors() []error {
	var errs []error

	for c := ec.head; c != nil; c = c.next {
		errs = append(errs, c.err)
	}

	return errs
}

// Message returns the message attached to the outermost error.
func (ec *ErrorChain) Message() string {
	if ec.head == nil {
		return ""
	}

	return ec.head.msg
}

func (ec *ErrorChain) MarshalJSON() ([]byte, error) {
	type message struct {
		Code    string `json:"code"`
		Message string `json:"message,omitempty"`
	}

	return json.Marshal(message{
		Code:    strcase.ToLowerCamel(ec.head.err.Error()),
		Message: ec.head.msg,
	})
}

func (ec *ErrorChain) causedBy(err error, msg string) *ErrorChain {
	elem := &element{err: err, msg: msg}

	if ec.head == nil {
		ec.head = elem
		ec.tail = elem

		return ec
	}

	ec.tail.next = elem
	ec.tail = elem

	return ec
}
