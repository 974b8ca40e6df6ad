// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import "github.com/muesli/termenv"

var (
	submittingStyle  = termenv.Style{}.Foreground(termenv.ANSIYellow)
	completingStyle  = termenv.Style{}.Foreground(termenv.ANSICyan)
	liveAddressStyle = termenv.Style{}.Foreground(termenv.ANSIGreen)
)

var rangeStyle = termenv.Style{}.Bold()
