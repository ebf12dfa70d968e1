// Package names derives Go identifiers from icon file names.
package names

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Marker is appended to a snake name that would otherwise collide with a
// reserved identifier.
const Marker = "_"

var ErrInvalidName = errors.New("invalid icon name")

// buildSuffixes are file name suffixes the go tool treats as build
// constraints or test files.
var buildSuffixes = map[string]bool{
	"test": true,

	"aix": true, "android": true, "darwin": true, "dragonfly": true,
	"freebsd": true, "hurd": true, "illumos": true, "ios": true, "js": true,
	"linux": true, "nacl": true, "netbsd": true, "openbsd": true,
	"plan9": true, "solaris": true, "wasip1": true, "windows": true,
	"zos": true,

	"386": true, "amd64": true, "amd64p32": true, "arm": true, "armbe": true,
	"arm64": true, "arm64be": true, "loong64": true, "mips": true,
	"mipsle": true, "mips64": true, "mips64le": true, "mips64p32": true,
	"mips64p32le": true, "ppc": true, "ppc64": true, "ppc64le": true,
	"riscv": true, "riscv64": true, "s390": true, "s390x": true,
	"sparc": true, "sparc64": true, "wasm": true,
}

// Names are the identifiers derived from one icon file.
type Names struct {
	// Icon is the file name without its extension.
	Icon string
	// Pascal is the exported component name.
	Pascal string
	// Snake is the escaped module name, also used as the file name.
	Snake string
	// Const is the unexported identifier of the markup constant: Snake in
	// lower case.
	Const string
}

// Deriver turns file names into Names. Extra holds reserved words on top of
// the Go keywords and predeclared identifiers.
type Deriver struct {
	Extension string
	Extra     map[string]bool
}

// NewDeriver returns a Deriver for ext with the given extra reserved words.
func NewDeriver(ext string, extra []string) *Deriver {
	d := &Deriver{Extension: ext, Extra: make(map[string]bool, len(extra))}
	for _, w := range extra {
		d.Extra[strings.ToLower(w)] = true
	}
	return d
}

// Derive computes both identifiers for fileName and checks they are valid
// Go identifiers.
func (d *Deriver) Derive(fileName string) (Names, error) {
	if !strings.HasSuffix(fileName, d.Extension) || len(fileName) == len(d.Extension) {
		return Names{}, fmt.Errorf("%w: %q does not end in %q", ErrInvalidName, fileName, d.Extension)
	}
	n := Names{
		Icon:   strings.TrimSuffix(fileName, d.Extension),
		Pascal: Pascal(fileName, d.Extension),
		Snake:  d.Escape(Snake(fileName, d.Extension)),
	}
	n.Const = strings.ToLower(n.Snake)
	if !token.IsIdentifier(n.Pascal) || !token.IsExported(n.Pascal) {
		return Names{}, fmt.Errorf("%w: %q gives component name %q", ErrInvalidName, fileName, n.Pascal)
	}
	// The go tool ignores files whose name starts with an underscore.
	if !token.IsIdentifier(n.Snake) || strings.HasPrefix(n.Snake, "_") {
		return Names{}, fmt.Errorf("%w: %q gives module name %q", ErrInvalidName, fileName, n.Snake)
	}
	if token.IsExported(n.Const) {
		return Names{}, fmt.Errorf("%w: %q has no lower case form", ErrInvalidName, fileName)
	}
	return n, nil
}

// Pascal removes ext, splits on hyphens and uppercases the first character
// of every word: "arrow-up-circle.svg" becomes "ArrowUpCircle".
func Pascal(fileName, ext string) string {
	var sb strings.Builder
	for _, word := range strings.Split(strings.TrimSuffix(fileName, ext), "-") {
		sb.WriteString(upperFirst(word))
	}
	return sb.String()
}

// Snake drops the len(ext) trailing bytes and replaces hyphens with
// underscores: "arrow-up-circle.svg" becomes "arrow_up_circle".
func Snake(fileName, ext string) string {
	if len(fileName) < len(ext) {
		return ""
	}
	return strings.ReplaceAll(fileName[:len(fileName)-len(ext)], "-", "_")
}

// Escape appends Marker when snake is reserved.
func (d *Deriver) Escape(snake string) string {
	if d.Reserved(snake) {
		return snake + Marker
	}
	return snake
}

// Reserved reports whether snake collides, ignoring case, with a Go keyword,
// a predeclared identifier, init or an extra reserved word, or ends in a
// build constraint suffix.
func (d *Deriver) Reserved(snake string) bool {
	lower := strings.ToLower(snake)
	// init may only name a func at package level.
	if lower == "init" {
		return true
	}
	if token.IsKeyword(lower) || types.Universe.Lookup(lower) != nil || d.Extra[lower] {
		return true
	}
	if i := strings.LastIndex(lower, "_"); i >= 0 {
		return buildSuffixes[lower[i+1:]]
	}
	return false
}

func upperFirst(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}
