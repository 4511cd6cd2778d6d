package main

import "strings"

const defaultDisplayText = "Hello"

// displayText joins the positional arguments with single spaces.
func displayText(args []string) string {
	if len(args) == 0 {
		return defaultDisplayText
	}
	return strings.Join(args, " ")
}
