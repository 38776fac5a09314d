// Copyright 2025 Fsown Authors
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
//
// SPDX-License-Identifier: Apache-2.0

package secfs

import (
	"errors"
	"fmt"
)

// ResolutionErrorKind classifies principal lookup failures.
type ResolutionErrorKind int

const (
	// ResolutionNotFound means no principal matches the given name or SID.
	ResolutionNotFound ResolutionErrorKind = iota
	// ResolutionAmbiguous means the lookup could not disambiguate the
	// domain scope of the name.
	ResolutionAmbiguous
	// ResolutionBackend covers any other failure of the underlying lookup.
	ResolutionBackend
)

// ResolutionError is returned by the principal resolver. Code carries the
// backend error code when one is available.
type ResolutionError struct {
	Kind ResolutionErrorKind
	Name string
	Code uintptr
	Err  error
}

func (e *ResolutionError) Error() string {
	switch e.Kind {
	case ResolutionNotFound:
		return fmt.Sprintf("principal %q not found", e.Name)
	case ResolutionAmbiguous:
		return fmt.Sprintf("principal %q is ambiguous", e.Name)
	default:
		if e.Err != nil {
			return fmt.Sprintf("principal lookup for %q failed: %v", e.Name, e.Err)
		}
		return fmt.Sprintf("principal lookup for %q failed: code=%d", e.Name, e.Code)
	}
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// AccessErrorKind classifies security descriptor access failures.
type AccessErrorKind int

const (
	AccessPathNotFound AccessErrorKind = iota
	// AccessPermissionDenied is an expected outcome when the caller lacks
	// rights to rewrite another principal's descriptor. Callers may treat
	// it as "no-op, not corruption".
	AccessPermissionDenied
	AccessBackend
)

// AccessError is returned by the security descriptor accessor. Op names the
// failing operation for diagnostics, Code the backend error code.
type AccessError struct {
	Kind AccessErrorKind
	Op   string
	Path string
	Code uintptr
	Err  error
}

func (e *AccessError) Error() string {
	switch e.Kind {
	case AccessPathNotFound:
		return fmt.Sprintf("%s %s: path not found", e.Op, e.Path)
	case AccessPermissionDenied:
		return fmt.Sprintf("%s %s: permission denied", e.Op, e.Path)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
		}
		return fmt.Sprintf("%s %s: backend error code=%d", e.Op, e.Path, e.Code)
	}
}

func (e *AccessError) Unwrap() error { return e.Err }

// TranslationErrorKind classifies ACL construction failures.
type TranslationErrorKind int

const (
	// TranslationAdminGroupUnavailable means the built-in administrators
	// principal could not be constructed on this system.
	TranslationAdminGroupUnavailable TranslationErrorKind = iota
	// TranslationACLConstructionFailed means the ACL builder rejected the
	// entry list.
	TranslationACLConstructionFailed
)

// TranslationError is returned by the permission translator.
type TranslationError struct {
	Kind TranslationErrorKind
	Code uintptr
	Err  error
}

func (e *TranslationError) Error() string {
	switch e.Kind {
	case TranslationAdminGroupUnavailable:
		return "administrators principal unavailable"
	default:
		if e.Err != nil {
			return fmt.Sprintf("ACL construction failed: %v", e.Err)
		}
		return fmt.Sprintf("ACL construction failed: code=%d", e.Code)
	}
}

func (e *TranslationError) Unwrap() error { return e.Err }

var (
	errEmptyPrincipal = errors.New("empty principal")
	errEmptyDACL      = errors.New("empty DACL")
)

// IsPermissionDenied reports whether err is an AccessError of kind
// AccessPermissionDenied.
func IsPermissionDenied(err error) bool {
	var ae *AccessError
	return errors.As(err, &ae) && ae.Kind == AccessPermissionDenied
}

// IsNotFound reports whether err is a not-found resolution or access error.
func IsNotFound(err error) bool {
	var re *ResolutionError
	if errors.As(err, &re) {
		return re.Kind == ResolutionNotFound
	}
	var ae *AccessError
	return errors.As(err, &ae) && ae.Kind == AccessPathNotFound
}
