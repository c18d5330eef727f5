//go:build windows

package cli

import "golang.org/x/sys/windows"

// setupConsole switches the console output code page to UTF-8 so Turkish
// characters render correctly when the binary is double-clicked rather than
// run from a configured terminal.
func setupConsole() {
	const cpUTF8 = 65001
	kernel32 := windows.NewLazySystemDLL("kernel32.dll")
	setConsoleOutputCP := kernel32.NewProc("SetConsoleOutputCP")
	_, _, _ = setConsoleOutputCP.Call(uintptr(cpUTF8))
}
