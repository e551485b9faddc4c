// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package irerr reports errors building the Tern intermediate representation.
//
// The only error class is the construction precondition violation: a caller
// asked for a node with a required child missing or a numeric field out of
// bounds. Violations are surfaced at construction, before the node can enter
// a tree.
package irerr

import (
	goerrors "errors"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Violation is a construction invariant broken by the caller.
type Violation struct {
	// Kind of the node being constructed.
	Kind string
	// Err details the broken invariant(s).
	Err error
}

// Error returns a string description of the error.
func (v *Violation) Error() string {
	return v.Kind + ": " + v.Err.Error()
}

// Unwrap the underlying error.
func (v *Violation) Unwrap() error {
	return v.Err
}

// Violationf returns a violation for a node kind given a formatted reason.
func Violationf(kind, format string, a ...any) error {
	return &Violation{Kind: kind, Err: errors.Errorf(format, a...)}
}

// Undefined returns a violation reporting a required child with no referent.
func Undefined(kind, field string) error {
	return &Violation{Kind: kind, Err: errors.Errorf("%s is undefined", field)}
}

// AsViolation returns the violation wrapped in err, if any.
func AsViolation(err error) (*Violation, bool) {
	var v *Violation
	ok := goerrors.As(err, &v)
	return v, ok
}

// Appender accumulates violations found while constructing one node,
// so that a caller is told about every broken invariant at once.
type Appender struct {
	kind string
	errs error
}

// NewAppender returns an appender collecting violations for a node kind.
func NewAppender(kind string) *Appender {
	return &Appender{kind: kind}
}

// Undefined records a required child with no referent.
func (a *Appender) Undefined(field string) {
	a.errs = multierr.Append(a.errs, errors.Errorf("%s is undefined", field))
}

// Appendf records a violation given a formatted reason.
func (a *Appender) Appendf(format string, args ...any) {
	a.errs = multierr.Append(a.errs, errors.Errorf(format, args...))
}

// Empty returns true if no violation has been recorded.
func (a *Appender) Empty() bool {
	return a.errs == nil
}

// Err returns the collected violations as a single error,
// or nil if none were recorded.
func (a *Appender) Err() error {
	if a.errs == nil {
		return nil
	}
	return &Violation{Kind: a.kind, Err: a.errs}
}
