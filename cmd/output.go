package cmd

import "fmt"

// Unified output helpers, shared by all commands.
//
// Icon semantics:
//   ✓  success
//   ⚠  warning
//   ~  neutral info

// printOK prints a success line.
func printOK(msg string) {
	fmt.Printf("  ✓  %s\n", msg)
}

// printWarn prints a warning line.
func printWarn(msg string) {
	fmt.Printf("  ⚠  %s\n", msg)
}

// printInfo prints a neutral informational line.
func printInfo(msg string) {
	fmt.Printf("  ~  %s\n", msg)
}
