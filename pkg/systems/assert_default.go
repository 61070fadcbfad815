//go:build !galagadebug

package systems

import "log"

// assertInvariant 正式构建下只记录日志
func assertInvariant(cond bool, format string, args ...interface{}) {
	if !cond {
		log.Printf("[Invariant] "+format, args...)
	}
}
