//go:build linux

package forme

import "golang.org/x/sys/unix"

// Linux's termios ioctl requests are named TCGETS/TCSETS (BSD/Darwin use
// TIOCGETA/TIOCSETA for the same operation); term_unix.go calls through these
// so EnterRawMode/ExitRawMode build on both POSIX families.
const (
	ioctlGetTermios = unix.TCGETS
	ioctlSetTermios = unix.TCSETS
)
