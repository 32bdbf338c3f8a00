// SPDX-License-Identifier: MIT

package matrix

// White-box bridge: exposes private helpers to matrix_test only.
var (
	ParseKey = parseKey
)
