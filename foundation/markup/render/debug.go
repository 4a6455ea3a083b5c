// File: debug.go
// Title: Debug Dump Renderer
// Description: Pretty-prints the Go values of a tree with k0kubun/pp.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package render

import (
	"io"
	"sync"

	"github.com/k0kubun/pp"

	mdwast "github.com/msto63/mdwmarkup/foundation/markup/ast"
)

// ppMu guards the package level coloring switch of pp
var ppMu sync.Mutex

// Debug writes a pretty-printed dump of elem to w
func Debug(w io.Writer, elem mdwast.Element, color bool) error {
	ppMu.Lock()
	defer ppMu.Unlock()

	previous := pp.ColoringEnabled
	pp.ColoringEnabled = color
	defer func() { pp.ColoringEnabled = previous }()

	_, err := pp.Fprintln(w, elem)
	return err
}
