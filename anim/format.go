package anim

import (
	"fmt"
	"strings"
)

// AsString returns a multi-line breakdown of a curve, one key per line:
//
//	curve of 3 keys
//	  #0  time: 0.0000  value: 0.0000  in: 1.5000  out: 1.5000  Auto/Auto broken
//	  #1  time: 0.5000  value: 0.7500  in: 1.0000  out: 1.0000  Auto/Auto broken
//	  #2  time: 1.0000  value: 1.0000  in: 0.5000  out: 0.5000  Auto/Auto broken
func AsString(c *Curve) string {
	var b strings.Builder
	fmt.Fprintf(&b, "curve of %d keys", c.Len())
	for i := 0; i < c.Len(); i++ {
		fmt.Fprintf(&b, "\n  #%d  %s", i, c.keys[i])
	}
	return b.String()
}
