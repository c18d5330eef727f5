//go:build !windows

package cli

// setupConsole is a no-op outside Windows: stdout is already an unbuffered
// UTF-8 byte stream.
func setupConsole() {}
