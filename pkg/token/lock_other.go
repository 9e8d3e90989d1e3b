// +build !aix,!darwin,!dragonfly,!freebsd,!linux,!netbsd,!openbsd,!solaris,!windows

package token

import "os"

// advisory locking is unavailable on this platform, writes
// are still atomic thanks to the rename
func lockExclusive(f *os.File) error { return nil }

func unlock(f *os.File) error { return nil }
