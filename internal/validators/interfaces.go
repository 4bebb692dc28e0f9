// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks contact payloads, stored contact identifiers and
// login credentials before the service layer acts on them.
//
// The checks report field-specific sentinels such as [ErrEmptyName] so the
// HTTP layer can answer with a precise reason.
package validators

import "context"

// Validator checks obj and returns the first rule it breaks. When fields are
// given only those fields are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
