package svgdoc

import (
	"io"

	"github.com/Matthew-Goosney/svgart/svgshape"
)

// lineWriter keeps the first write error:
// once it is set, further writes are skipped.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) writeString(s string) {
	if lw.err != nil {
		return
	}
	_, lw.err = io.WriteString(lw.w, s)
}

// line writes `content` at the given indentation level.
func (lw *lineWriter) line(level int, content string) {
	lw.writeString(svgshape.Indent(level) + content + "\n")
}
