package declare

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/buzzkit/buzz/pkg/graphics"
	"github.com/buzzkit/buzz/pkg/layout"
)

// Node types.
const (
	TypeContainer = "container"
	TypeSingle    = "single"
	TypeText      = "text"
	TypeHTML      = "html"
	TypeBuilder   = "builder"
)

// Document is a parsed widget tree description.
type Document struct {
	Root *Node `yaml:"root"`
}

// Node describes one widget.
type Node struct {
	Type     string    `yaml:"type"`
	Text     string    `yaml:"text,omitempty"`
	Color    string    `yaml:"color,omitempty"`
	Markup   string    `yaml:"markup,omitempty"`
	Style    *Style    `yaml:"style,omitempty"`
	Padding  *Insets   `yaml:"padding,omitempty"`
	Margin   *Insets   `yaml:"margin,omitempty"`
	Viewport *Viewport `yaml:"viewport,omitempty"`
	Classes  []string  `yaml:"classes,omitempty"`
	Flex     *bool     `yaml:"flex,omitempty"`
	Child    *Node     `yaml:"child,omitempty"`
	Children []*Node   `yaml:"children,omitempty"`
}

// Style mirrors widgets.ContainerStyle with textual values.
type Style struct {
	Background string  `yaml:"background,omitempty"`
	Width      string  `yaml:"width,omitempty"`
	Height     string  `yaml:"height,omitempty"`
	Alignment  string  `yaml:"alignment,omitempty"`
	Forced     bool    `yaml:"forced,omitempty"`
	Border     *Border `yaml:"border,omitempty"`
	Radius     *Insets `yaml:"radius,omitempty"`
	Shadow     *Shadow `yaml:"shadow,omitempty"`
}

// Border describes a uniform border.
type Border struct {
	Width float64 `yaml:"width"`
	Color string  `yaml:"color,omitempty"`
	Style string  `yaml:"style,omitempty"`
}

// Viewport bounds the box a widget draws into.
type Viewport struct {
	Width      string `yaml:"width,omitempty"`
	Height     string `yaml:"height,omitempty"`
	Scrollable bool   `yaml:"scrollable,omitempty"`
}

func (v *Viewport) view() (*layout.View, error) {
	width, err := layout.ParseDimension(v.Width)
	if err != nil {
		return nil, err
	}
	height, err := layout.ParseDimension(v.Height)
	if err != nil {
		return nil, err
	}
	return &layout.View{Width: width, Height: height, Scrollable: v.Scrollable}, nil
}

// Shadow describes a box shadow.
type Shadow struct {
	Color  string  `yaml:"color,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Blur   float64 `yaml:"blur,omitempty"`
	Spread float64 `yaml:"spread,omitempty"`
	Inset  bool    `yaml:"inset,omitempty"`
}

// Insets holds four side values. In YAML it is either a single number
// applied to every side or a mapping. For radii the keys top, bottom,
// left and right read as topLeft, bottomRight, bottomLeft and topRight.
type Insets struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (i *Insets) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var v float64
		if err := value.Decode(&v); err != nil {
			return fmt.Errorf("line %d: expected a number or a mapping: %w", value.Line, err)
		}
		*i = Insets{Top: v, Bottom: v, Left: v, Right: v}
		return nil
	}
	type plain Insets
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*i = Insets(p)
	return nil
}

// Decode reads a document from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document")
		}
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	if doc.Root == nil {
		return nil, fmt.Errorf("document has no root node")
	}
	if err := doc.Root.validate("root"); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Parse decodes a document held in memory.
func Parse(data []byte) (*Document, error) {
	return Decode(bytes.NewReader(data))
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Marshal encodes the document back to YAML.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// validate checks the whole tree up front so that building never fails
// halfway through.
func (n *Node) validate(path string) error {
	if n == nil {
		return fmt.Errorf("%s: empty node", path)
	}
	switch n.Type {
	case TypeContainer:
		if n.Child != nil {
			return fmt.Errorf("%s: a container takes children, not child", path)
		}
		for i, c := range n.Children {
			if err := c.validate(fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
				return err
			}
		}
	case TypeSingle, TypeBuilder:
		if len(n.Children) > 0 {
			return fmt.Errorf("%s: a %s node takes child, not children", path, n.Type)
		}
		if n.Type == TypeBuilder && n.Child == nil {
			return fmt.Errorf("%s: a builder needs a child", path)
		}
		if n.Child != nil {
			if err := n.Child.validate(path + ".child"); err != nil {
				return err
			}
		}
	case TypeText, TypeHTML:
		if n.Child != nil || len(n.Children) > 0 {
			return fmt.Errorf("%s: a %s node has no children", path, n.Type)
		}
	case "":
		return fmt.Errorf("%s: missing node type", path)
	default:
		return fmt.Errorf("%s: unknown node type %q", path, n.Type)
	}
	if n.Style != nil && n.Type != TypeContainer && n.Type != TypeSingle {
		return fmt.Errorf("%s: style is only supported on containers", path)
	}
	if _, err := n.containerStyle(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if n.Color != "" {
		if _, err := graphics.ParseColor(n.Color); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	if n.Viewport != nil {
		if _, err := n.Viewport.view(); err != nil {
			return fmt.Errorf("%s.viewport: %w", path, err)
		}
	}
	return nil
}
