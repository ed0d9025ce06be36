// Copyright 2025 The IRPass Authors
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

// Package errs declares the framework's typed error kinds (spec §7),
// following the auth package's errors.NewKind(...) convention.
package errs

import errors "gopkg.in/src-d/go-errors.v1"

var (
	// ErrSchemaViolation is returned when WithChildren is asked to
	// rebuild a node with a field count or label set that does not
	// match its declared schema.
	ErrSchemaViolation = errors.NewKind("schema violation: %s")

	// ErrInvalidCache names a non-cache value supplied where a
	// *analysiscache.Cache is required. passcore.Context.Cache is a typed
	// field, so no code in this module returns it.
	ErrInvalidCache = errors.NewKind("invalid analysis cache: %s")

	// ErrUnsupportedPattern is returned by match.Substitute when a bound
	// variable has no substitution, by pass.Chain when a pass other than
	// the last yields a non-Node value, and by walk.Walker.Invoke for a
	// rule of none of the three flavors. The match package's structural
	// builder performs no validation and never returns it.
	ErrUnsupportedPattern = errors.NewKind("unsupported pattern form: %s")

	// ErrNoMatch is returned by Substitute when asked to substitute
	// against a model the pattern does not actually match.
	ErrNoMatch = errors.NewKind("pattern does not match model")
)
