//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd)

package main

func terminalColumns() (int, bool) {
	return 0, false
}
