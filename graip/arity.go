// File: arity.go
// Role: maps the configured graphlet arity to the class-name ordering
// and code->class lookup used by package delta/graphlet.
package graip

import (
	"github.com/ninsei-dev/graiph/graphlet"
)

func classTables(arity int) (names []string, codeToClass map[int]string, ok bool) {
	switch arity {
	case 3:
		return graphlet.ClassNames3, graphlet.CodeToClass3, true
	case 4:
		return graphlet.ClassNames4, graphlet.CodeToClass4, true
	case 5:
		return graphlet.ClassNames5, graphlet.CodeToClass5, true
	default:
		return nil, nil, false
	}
}
