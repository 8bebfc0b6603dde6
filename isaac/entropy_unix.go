//go:build unix

package isaac

import "golang.org/x/sys/unix"

const (
	strongOpenFlags = unix.O_RDONLY | unix.O_NOCTTY
	weakOpenFlags   = unix.O_RDONLY | unix.O_NOCTTY | unix.O_NONBLOCK
)
