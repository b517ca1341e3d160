// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// element is a node of a decoded XML document. text holds the element's
// inner text, descendants included, in document order.
type element struct {
	name     string
	text     string
	children []*element
}

// parseTree decodes body into an element tree and returns its root.
func parseTree(body []byte) (*element, error) {
	d := xml.NewDecoder(bytes.NewReader(body))
	d.Entity = xml.HTMLEntity

	var (
		root  *element
		stack []*element
		texts []*strings.Builder
	)

	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &element{name: t.Name.Local}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("unexpected second root element <%s>", el.name)
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}
			stack = append(stack, el)
			texts = append(texts, &strings.Builder{})

		case xml.EndElement:
			n := len(stack) - 1
			el := stack[n]
			el.text = texts[n].String()
			stack, texts = stack[:n], texts[:n]
			if n > 0 {
				texts[n-1].WriteString(el.text)
			}

		case xml.CharData:
			if len(texts) > 0 {
				texts[len(texts)-1].Write(t)
			}
		}
	}

	if root == nil {
		return nil, errors.New("document has no root element")
	}
	return root, nil
}

// walk visits the descendants of e in document order until fn returns false.
func (e *element) walk(fn func(*element) bool) bool {
	for _, c := range e.children {
		if !fn(c) || !c.walk(fn) {
			return false
		}
	}
	return true
}

// find returns the first descendant named name, or nil.
func (e *element) find(name string) *element {
	var found *element
	e.walk(func(el *element) bool {
		if el.name == name {
			found = el
			return false
		}
		return true
	})
	return found
}

// findAll returns every descendant named name in document order.
func (e *element) findAll(name string) []*element {
	var out []*element
	e.walk(func(el *element) bool {
		if el.name == name {
			out = append(out, el)
		}
		return true
	})
	return out
}

// findUnder returns the first child named name of any descendant named
// parent, taking parents in document order.
func (e *element) findUnder(parent, name string) *element {
	for _, p := range e.findAll(parent) {
		if c := p.child(name); c != nil {
			return c
		}
	}
	return nil
}

// child returns the first direct child named name, or nil.
func (e *element) child(name string) *element {
	for _, c := range e.children {
		if c.name == name {
			return c
		}
	}
	return nil
}
