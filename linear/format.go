// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"fmt"
)

// String returns q in the form "r + i i + j j + k k".
func (q Q) String() string {
	return fmt.Sprintf("%v + %v i + %v j + %v k", q.r, q.i, q.j, q.k)
}

// GoString returns q in the form "Quaternion(r, i, j, k)".
func (q Q) GoString() string {
	return fmt.Sprintf("Quaternion(%v, %v, %v, %v)", q.r, q.i, q.j, q.k)
}
