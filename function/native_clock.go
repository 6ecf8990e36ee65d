/*
File    : loxwalk/function/native_clock.go
Derived from go-mix/std/builtins.go (Akash Maji) and original_source/src/interpreter/native_functions/clock.rs
*/
package function

import (
	"time"

	"github.com/akashmaji946/loxwalk/values"
)

// NewClock builds the single native the language ships: clock(), which
// takes no arguments and returns the number of seconds since the Unix
// epoch as a Number, matching the reference implementation's clock.rs.
func NewClock() *Native {
	return &Native{
		Name: "clock",
		Arg:  0,
		Fn: func(args []values.Value) values.Value {
			return values.Number(float64(time.Now().UnixNano()) / 1e9)
		},
	}
}
