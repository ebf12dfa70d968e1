package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	ErrTooShort  = errors.New("svg document shorter than header and footer")
	ErrMalformed = errors.New("svg document does not match the expected layout")
)

// Layout is the fixed byte length of the document header and footer that
// surround the icon's inner markup.
type Layout struct {
	Header int
	Footer int
}

// Lucide is the layout of the Lucide icon set: a 201 byte multi-line <svg>
// start tag and a trailing "</svg>\n".
var Lucide = Layout{Header: 201, Footer: 7}

// Document is an icon with its outer <svg> element removed.
type Document struct {
	// Markup is the inner markup, byte for byte.
	Markup string
	// Attrs are the attributes of the stripped <svg> tag. Keys are lower
	// case.
	Attrs []html.Attribute
	// Elements counts the elements in Markup, nested ones included.
	Elements int
}

// Attr returns the value of the stripped <svg> attribute key.
func (d *Document) Attr(key string) string {
	key = strings.ToLower(key)
	for _, a := range d.Attrs {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Parse strips layout's header and footer from contents and checks that
// what was removed is exactly the outer <svg> element.
func Parse(contents []byte, layout Layout) (*Document, error) {
	if layout.Header < 0 || layout.Footer < 0 {
		return nil, fmt.Errorf("negative layout %+v", layout)
	}
	if len(contents) < layout.Header+layout.Footer {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d",
			ErrTooShort, len(contents), layout.Header+layout.Footer)
	}
	header := contents[:layout.Header]
	markup := contents[layout.Header : len(contents)-layout.Footer]
	footer := contents[len(contents)-layout.Footer:]

	attrs, err := parseHeader(header)
	if err != nil {
		return nil, err
	}
	if string(bytes.TrimSpace(footer)) != "</svg>" {
		return nil, fmt.Errorf("%w: footer is %q", ErrMalformed, footer)
	}
	if err := checkMarkup(markup); err != nil {
		return nil, err
	}
	elements, err := countElements(markup)
	if err != nil {
		return nil, err
	}
	return &Document{Markup: string(markup), Attrs: attrs, Elements: elements}, nil
}

func parseHeader(header []byte) ([]html.Attribute, error) {
	trimmed := bytes.TrimSpace(header)
	if !bytes.HasPrefix(trimmed, []byte("<svg")) || !bytes.HasSuffix(trimmed, []byte(">")) {
		return nil, fmt.Errorf("%w: header is %q", ErrMalformed, header)
	}

	var attrs []html.Attribute
	seen := false
	z := html.NewTokenizer(bytes.NewReader(header))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				return nil, fmt.Errorf("%w: header: %v", ErrMalformed, z.Err())
			}
			if !seen {
				return nil, fmt.Errorf("%w: header has no <svg> tag", ErrMalformed)
			}
			return attrs, nil
		case html.TextToken:
			if len(bytes.TrimSpace(z.Text())) != 0 {
				return nil, fmt.Errorf("%w: text in header", ErrMalformed)
			}
		case html.StartTagToken:
			tok := z.Token()
			if seen || tok.DataAtom != atom.Svg {
				return nil, fmt.Errorf("%w: unexpected <%s> in header", ErrMalformed, tok.Data)
			}
			seen = true
			attrs = tok.Attr
		default:
			return nil, fmt.Errorf("%w: unexpected %v in header", ErrMalformed, tt)
		}
	}
}

// checkMarkup rejects inner markup that opens or closes an svg element,
// which means the header or footer length did not match the file.
func checkMarkup(markup []byte) error {
	z := html.NewTokenizer(bytes.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return nil
			}
			return fmt.Errorf("%w: markup: %v", ErrMalformed, z.Err())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if string(name) == "svg" {
				return fmt.Errorf("%w: nested svg element in markup", ErrMalformed)
			}
		}
	}
}

func countElements(markup []byte) (int, error) {
	context := &html.Node{
		Type:      html.ElementNode,
		Data:      "svg",
		DataAtom:  atom.Svg,
		Namespace: "svg",
	}
	nodes, err := html.ParseFragment(bytes.NewReader(markup), context)
	if err != nil {
		return 0, fmt.Errorf("%w: markup: %v", ErrMalformed, err)
	}
	count := 0
	for _, n := range nodes {
		countNode(n, &count)
	}
	return count, nil
}

func countNode(n *html.Node, count *int) {
	if n.Type == html.ElementNode {
		*count++
	}
	recursiveMap(n, countNode, count)
}

func recursiveMap[Args any](
	node *html.Node,
	function func(*html.Node, Args),
	args Args,
) {
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		function(c, args)
	}
}
