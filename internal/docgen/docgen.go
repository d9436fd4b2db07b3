// Package docgen converts the plugin's doc_classes XML into markdown
// reference pages, optionally rendered to HTML.
package docgen

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
)

// Class mirrors a godot doc_classes XML file.
type Class struct {
	Name             string   `xml:"name,attr"`
	Inherits         string   `xml:"inherits,attr"`
	BriefDescription string   `xml:"brief_description"`
	Description      string   `xml:"description"`
	Methods          []Method `xml:"methods>method"`
	Members          []Member `xml:"members>member"`
	Signals          []Signal `xml:"signals>signal"`
}

// Method is one documented method.
type Method struct {
	Name        string  `xml:"name,attr"`
	Return      Return  `xml:"return"`
	Params      []Param `xml:"param"`
	Description string  `xml:"description"`
}

type Return struct {
	Type string `xml:"type,attr"`
}

type Param struct {
	Name string `xml:"name,attr"`
	Type string `xml:"type,attr"`
}

// Member is one documented property.
type Member struct {
	Name        string `xml:"name,attr"`
	Type        string `xml:"type,attr"`
	Default     string `xml:"default,attr"`
	Description string `xml:",chardata"`
}

// Signal is one documented signal.
type Signal struct {
	Name        string  `xml:"name,attr"`
	Params      []Param `xml:"param"`
	Description string  `xml:"description"`
}

// ParseClass decodes one doc_classes XML document.
func ParseClass(data []byte) (*Class, error) {
	var c Class
	if err := xml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing class doc: %w", err)
	}
	if c.Name == "" {
		return nil, fmt.Errorf("class doc has no name attribute")
	}
	return &c, nil
}

// Markdown renders the class reference page.
func (c *Class) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", c.Name)
	if c.Inherits != "" {
		fmt.Fprintf(&b, "Inherits: `%s`\n\n", c.Inherits)
	}
	if s := strings.TrimSpace(c.BriefDescription); s != "" {
		fmt.Fprintf(&b, "%s\n\n", s)
	}
	if s := strings.TrimSpace(c.Description); s != "" {
		fmt.Fprintf(&b, "%s\n\n", s)
	}

	if len(c.Members) > 0 {
		b.WriteString("## Properties\n\n")
		for _, m := range c.Members {
			fmt.Fprintf(&b, "- `%s %s`", m.Type, m.Name)
			if m.Default != "" {
				fmt.Fprintf(&b, " (default: `%s`)", m.Default)
			}
			if s := strings.TrimSpace(m.Description); s != "" {
				fmt.Fprintf(&b, " - %s", s)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(c.Methods) > 0 {
		b.WriteString("## Methods\n\n")
		for _, m := range c.Methods {
			fmt.Fprintf(&b, "### %s\n\n```\n%s\n```\n\n", m.Name, m.signature())
			if s := strings.TrimSpace(m.Description); s != "" {
				fmt.Fprintf(&b, "%s\n\n", s)
			}
		}
	}

	if len(c.Signals) > 0 {
		b.WriteString("## Signals\n\n")
		for _, s := range c.Signals {
			fmt.Fprintf(&b, "- `%s(%s)`", s.Name, paramList(s.Params))
			if d := strings.TrimSpace(s.Description); d != "" {
				fmt.Fprintf(&b, " - %s", d)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Method) signature() string {
	ret := m.Return.Type
	if ret == "" {
		ret = "void"
	}
	return fmt.Sprintf("%s %s(%s)", ret, m.Name, paramList(m.Params))
}

func paramList(params []Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Type + " " + p.Name
	}
	return strings.Join(parts, ", ")
}

// RenderHTML converts a markdown page to HTML.
func RenderHTML(md []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert(md, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Generate converts every doc_classes XML file under docDir into a
// markdown page in outDir; with html set it writes HTML beside each
// page. It returns the class names processed, sorted.
func Generate(docDir, outDir string, html bool) ([]string, error) {
	entries, err := os.ReadDir(docDir)
	if err != nil {
		return nil, fmt.Errorf("reading doc classes: %w", err)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".xml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(docDir, entry.Name()))
		if err != nil {
			return nil, err
		}
		c, err := ParseClass(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}

		md := c.Markdown()
		if err := os.WriteFile(filepath.Join(outDir, c.Name+".md"), []byte(md), 0644); err != nil {
			return nil, err
		}
		if html {
			page, err := RenderHTML([]byte(md))
			if err != nil {
				return nil, fmt.Errorf("%s: rendering html: %w", c.Name, err)
			}
			if err := os.WriteFile(filepath.Join(outDir, c.Name+".html"), page, 0644); err != nil {
				return nil, err
			}
		}
		names = append(names, c.Name)
	}

	sort.Strings(names)
	return names, nil
}
