// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package partial

import "errors"

// ErrUnboundResolved is returned by [Rebase] when the base configuration
// does not belong to any schema.
var ErrUnboundResolved = errors.New("resolved config is not bound to a schema")
