// Package lucide is the runtime used by generated icon components. It holds
// the shared SVG attributes every icon renders with and writes the final
// <svg> element.
package lucide

const (
	DefaultXmlns          = "http://www.w3.org/2000/svg"
	DefaultWidth          = "16"
	DefaultHeight         = "16"
	DefaultViewBox        = "0 0 24 24"
	DefaultFill           = "none"
	DefaultStroke         = "currentColor"
	DefaultStrokeWidth    = "2"
	DefaultStrokeLinecap  = "round"
	DefaultStrokeLinejoin = "round"
)

// Attributes is the set of attributes placed on the outer <svg> element of
// every icon. The zero value is not useful; start from New.
//
// Setters return the receiver so calls can be chained:
//
//	attrs := lucide.New().SetWidth("24").SetHeight("24").SetStrokeWidth("1.5")
type Attributes struct {
	classes        string
	xmlns          string
	width          string
	height         string
	viewBox        string
	fill           string
	stroke         string
	strokeWidth    string
	strokeLinecap  string
	strokeLinejoin string
}

// New returns the default Lucide attributes.
func New() *Attributes {
	return &Attributes{
		xmlns:          DefaultXmlns,
		width:          DefaultWidth,
		height:         DefaultHeight,
		viewBox:        DefaultViewBox,
		fill:           DefaultFill,
		stroke:         DefaultStroke,
		strokeWidth:    DefaultStrokeWidth,
		strokeLinecap:  DefaultStrokeLinecap,
		strokeLinejoin: DefaultStrokeLinejoin,
	}
}

// NewWithAttributes sets every attribute at once. Use New and the setters
// when only a few values differ from the defaults.
func NewWithAttributes(
	classes, xmlns, width, height, viewBox, fill,
	stroke, strokeWidth, strokeLinecap, strokeLinejoin string,
) *Attributes {
	return &Attributes{
		classes:        classes,
		xmlns:          xmlns,
		width:          width,
		height:         height,
		viewBox:        viewBox,
		fill:           fill,
		stroke:         stroke,
		strokeWidth:    strokeWidth,
		strokeLinecap:  strokeLinecap,
		strokeLinejoin: strokeLinejoin,
	}
}

func (a *Attributes) Classes() string        { return a.classes }
func (a *Attributes) Xmlns() string          { return a.xmlns }
func (a *Attributes) Width() string          { return a.width }
func (a *Attributes) Height() string         { return a.height }
func (a *Attributes) ViewBox() string        { return a.viewBox }
func (a *Attributes) Fill() string           { return a.fill }
func (a *Attributes) Stroke() string         { return a.stroke }
func (a *Attributes) StrokeWidth() string    { return a.strokeWidth }
func (a *Attributes) StrokeLinecap() string  { return a.strokeLinecap }
func (a *Attributes) StrokeLinejoin() string { return a.strokeLinejoin }

// SetClasses sets the class attribute. An empty value drops the attribute
// from the rendered element.
func (a *Attributes) SetClasses(v string) *Attributes {
	a.classes = v
	return a
}

func (a *Attributes) SetXmlns(v string) *Attributes {
	a.xmlns = v
	return a
}

// SetWidth sets the width in pixels.
func (a *Attributes) SetWidth(v string) *Attributes {
	a.width = v
	return a
}

// SetHeight sets the height in pixels.
func (a *Attributes) SetHeight(v string) *Attributes {
	a.height = v
	return a
}

func (a *Attributes) SetViewBox(v string) *Attributes {
	a.viewBox = v
	return a
}

func (a *Attributes) SetFill(v string) *Attributes {
	a.fill = v
	return a
}

func (a *Attributes) SetStroke(v string) *Attributes {
	a.stroke = v
	return a
}

func (a *Attributes) SetStrokeWidth(v string) *Attributes {
	a.strokeWidth = v
	return a
}

func (a *Attributes) SetStrokeLinecap(v string) *Attributes {
	a.strokeLinecap = v
	return a
}

func (a *Attributes) SetStrokeLinejoin(v string) *Attributes {
	a.strokeLinejoin = v
	return a
}

// Clone returns an independent copy.
func (a *Attributes) Clone() *Attributes {
	c := *a
	return &c
}

// attr is one rendered key/value pair.
type attr struct {
	key, val string
}

// list returns the attributes in render order.
func (a *Attributes) list() []attr {
	return []attr{
		{"class", a.classes},
		{"xmlns", a.xmlns},
		{"width", a.width},
		{"height", a.height},
		{"viewBox", a.viewBox},
		{"fill", a.fill},
		{"stroke", a.stroke},
		{"stroke-width", a.strokeWidth},
		{"stroke-linecap", a.strokeLinecap},
		{"stroke-linejoin", a.strokeLinejoin},
	}
}
