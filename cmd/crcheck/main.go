// SPDX-License-Identifier: Apache-2.0

// crcheck verifies that source files begin with a correctly formatted
// copyright header and can repair files that lack one.
package main

func main() {
	Execute()
}
