//go:build !unix

package isaac

import "os"

const (
	strongOpenFlags = os.O_RDONLY
	weakOpenFlags   = os.O_RDONLY
)
