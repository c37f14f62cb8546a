package diffsync

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// RenderOptions controls textual rendering of a Diff.
type RenderOptions struct {
	// Color enables ANSI colours (green create, yellow update, red delete).
	Color bool

	// ShowUnchanged also prints elements without differences.
	ShowUnchanged bool
}

// Render writes diff depth-first as
//
//	group
//	  element  MISSING in <side> | changed attributes
//
// It reads the Diff only through its public accessors.
func Render(w io.Writer, diff *Diff, opts RenderOptions) error {
	r := &renderer{
		w:      w,
		opts:   opts,
		create: newColor(opts.Color, color.FgGreen),
		update: newColor(opts.Color, color.FgYellow),
		remove: newColor(opts.Color, color.FgRed),
		plain:  newColor(opts.Color, color.Reset),
	}
	return r.diff(diff, 0)
}

func newColor(enabled bool, attr color.Attribute) *color.Color {
	c := color.New(attr)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

type renderer struct {
	w      io.Writer
	opts   RenderOptions
	create *color.Color
	update *color.Color
	remove *color.Color
	plain  *color.Color
}

func (r *renderer) diff(d *Diff, depth int) error {
	for _, typ := range d.Groups() {
		elements := d.Group(typ)
		if !r.opts.ShowUnchanged && !anyDiffs(elements) {
			continue
		}
		if _, err := fmt.Fprintf(r.w, "%s%s\n", indent(depth), typ); err != nil {
			return err
		}
		for _, e := range elements {
			if !r.opts.ShowUnchanged && !e.HasDiffs() {
				continue
			}
			if err := r.element(e, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *renderer) element(e *DiffElement, depth int) error {
	pad := indent(depth)
	var err error
	switch e.Action() {
	case ActionCreate:
		_, err = r.create.Fprintf(r.w, "%s%s: %s  MISSING in destination\n", pad, e.Type, e.Name)
	case ActionDelete:
		_, err = r.remove.Fprintf(r.w, "%s%s: %s  MISSING in source\n", pad, e.Type, e.Name)
	case ActionUpdate:
		if _, err = r.update.Fprintf(r.w, "%s%s: %s\n", pad, e.Type, e.Name); err != nil {
			return err
		}
		for _, name := range e.ChangedAttrs() {
			_, err = r.update.Fprintf(r.w, "%s  %s    source(%v)    destination(%v)\n",
				pad, name, e.Source[name], e.Dest[name])
			if err != nil {
				return err
			}
		}
	default:
		_, err = r.plain.Fprintf(r.w, "%s%s: %s\n", pad, e.Type, e.Name)
	}
	if err != nil {
		return err
	}
	return r.diff(e.Children(), depth+1)
}

func anyDiffs(elements []*DiffElement) bool {
	for _, e := range elements {
		if e.HasDiffs() {
			return true
		}
	}
	return false
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

// ElementReport is the JSON view of a DiffElement.
type ElementReport struct {
	Type     string          `json:"type"`
	Name     string          `json:"name"`
	Action   Action          `json:"action,omitempty"`
	Source   Attrs           `json:"source,omitempty"`
	Dest     Attrs           `json:"destination,omitempty"`
	Changed  []string        `json:"changed,omitempty"`
	Children []ElementReport `json:"children,omitempty"`
}

// Report returns the JSON view of the tree. With onlyChanges, branches
// without differences are left out.
func (d *Diff) Report(onlyChanges bool) []ElementReport {
	out := []ElementReport{}
	for _, e := range d.Elements() {
		if onlyChanges && !e.HasDiffs() {
			continue
		}
		out = append(out, ElementReport{
			Type:     e.Type,
			Name:     e.Name,
			Action:   e.Action(),
			Source:   e.Source,
			Dest:     e.Dest,
			Changed:  e.ChangedAttrs(),
			Children: e.Children().Report(onlyChanges),
		})
	}
	return out
}
