package ui

import "github.com/fatih/color"

var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc()
	HeaderColor  = color.New(color.FgGreen, color.Bold).SprintFunc()
)
