//go:build galagadebug

package systems

import "fmt"

// assertInvariant 调试构建下违反不变量直接 panic
func assertInvariant(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("invariant violated: "+format, args...))
	}
}
