// SPDX-License-Identifier: MIT

package textio

import "errors"

// ErrInputFormat indicates a short input, a non-integer token or a value
// outside the element type's range.
var ErrInputFormat = errors.New("textio: malformed input")
