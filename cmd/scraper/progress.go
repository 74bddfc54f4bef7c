package main

import (
	"fmt"
	"io"
	"strings"
)

// progress draws "Loading" followed by zero to three moving dots while the
// rows of a news page are examined.
type progress struct {
	w     io.Writer
	drawn bool
}

func newProgress(w io.Writer) *progress {
	return &progress{w: w}
}

func loadingText(current int) string {
	return "Loading" + strings.Repeat(".", (current/10)%4)
}

func (p *progress) update(current, _ int) {
	fmt.Fprintf(p.w, "\r%-10s", loadingText(current))
	p.drawn = true
}

func (p *progress) done() {
	if p.drawn {
		fmt.Fprintf(p.w, "\r%-10s\r", "")
		p.drawn = false
	}
}
