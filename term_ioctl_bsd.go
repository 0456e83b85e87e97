//go:build darwin || freebsd || netbsd || openbsd

package forme

import "golang.org/x/sys/unix"

// BSD/Darwin's termios ioctl requests are named TIOCGETA/TIOCSETA (Linux
// uses TCGETS/TCSETS for the same operation); term_unix.go calls through
// these so EnterRawMode/ExitRawMode build on both POSIX families.
const (
	ioctlGetTermios = unix.TIOCGETA
	ioctlSetTermios = unix.TIOCSETA
)
