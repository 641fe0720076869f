// SPDX-License-Identifier: MIT

// Command rowtrace prints and serves step-by-step traces of row reduction,
// linear system solving and matrix inversion.
package main

func main() {
	Execute()
}
