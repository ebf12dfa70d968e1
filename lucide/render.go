package lucide

import (
	"bufio"
	"context"
	"html"
	"io"
	"strings"
)

// Component renders one icon to w using the attributes in ctx.
type Component func(ctx context.Context, w io.Writer) error

// Render writes an <svg> element wrapping markup. The outer attributes are
// read from ctx on every call.
func Render(ctx context.Context, w io.Writer, markup string) error {
	buf := bufio.NewWriter(w)
	buf.WriteString("<svg")
	for _, a := range Current(ctx).list() {
		if a.key == "class" && a.val == "" {
			continue
		}
		buf.WriteString(" " + a.key + `="` + html.EscapeString(a.val) + `"`)
	}
	buf.WriteString(">")
	buf.WriteString(markup)
	buf.WriteString("</svg>")
	return buf.Flush()
}

// String renders c into a string.
func String(ctx context.Context, c Component) (string, error) {
	var sb strings.Builder
	if err := c(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
