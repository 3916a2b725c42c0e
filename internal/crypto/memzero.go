package crypto

import "runtime"

// Wipe zeroes b. Used on scrypt-derived keys once sealing or opening is done;
// best-effort only, since the runtime may have copied the slice elsewhere.
//
//go:noinline
func Wipe(b []byte) {
	clear(b)
	runtime.KeepAlive(b)
}
