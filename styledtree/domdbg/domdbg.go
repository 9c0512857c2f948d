/*
Package domdbg implements helpers to debug a styled document tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/tinystyle/style"
	"github.com/npillmayer/tinystyle/styledtree"
	"github.com/npillmayer/tinystyle/tree"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname   string
	Properties []string
	NodeTmpl   *template.Template
	EdgeTmpl   *template.Template
	StylesTmpl *template.Template
	StEdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for a styled tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the tree, a Writer, and an optional list of property names.
// For every element node the diagram includes a table of those of its
// properties which are contained in the list.
//
// If the client does not provide a list of property names, all properties
// of a node will be included.
func ToGraphViz(root *tree.Node[*styledtree.StyNode], w io.Writer, properties []string) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica", Properties: properties}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"label": label,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StylesTmpl = template.Must(template.New("styles").Parse(stylesTmpl))
	gparams.StEdgeTmpl = template.Must(template.New("stedge").Parse(stylesEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	if root != nil {
		dict := make(map[*styledtree.StyNode]string, 1024)
		if err = nodes(root, w, dict, &gparams); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a styled tree and a testing.T, it
// will create a Graphiviz image of the tree and write it to a file in the
// current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(root *tree.Node[*styledtree.StyNode], t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "styled.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing styled tree digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(root, tmpfile, nil); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing styled tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N    *styledtree.StyNode
	Name string
}

type styles struct {
	Name       string
	Properties []style.KeyValue
}

func nodes(n *tree.Node[*styledtree.StyNode], w io.Writer, dict map[*styledtree.StyNode]string,
	gparams *graphParamsType) error {
	//
	if err := domNode(n, w, dict, gparams); err != nil {
		return err
	}
	for _, ch := range n.Children() {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		if err := domEdge(n, ch, w, dict, gparams); err != nil {
			return err
		}
	}
	return nil
}

func domNode(n *tree.Node[*styledtree.StyNode], w io.Writer, dict map[*styledtree.StyNode]string,
	gparams *graphParamsType) error {
	//
	sn := styledtree.Node(n)
	name := nameOf(sn, dict)
	if err := gparams.NodeTmpl.Execute(w, &node{sn, name}); err != nil {
		return err
	}
	props := selectProperties(sn.Styles(), gparams.Properties)
	if len(props) == 0 {
		return nil
	}
	st := styles{Name: name, Properties: props}
	if err := gparams.StylesTmpl.Execute(w, st); err != nil {
		return err
	}
	return gparams.StEdgeTmpl.Execute(w, st)
}

type edge struct {
	N1, N2 node
}

func domEdge(n1, n2 *tree.Node[*styledtree.StyNode], w io.Writer, dict map[*styledtree.StyNode]string,
	gparams *graphParamsType) error {
	//
	sn1, sn2 := styledtree.Node(n1), styledtree.Node(n2)
	e := edge{node{sn1, nameOf(sn1, dict)}, node{sn2, nameOf(sn2, dict)}}
	return gparams.EdgeTmpl.Execute(w, e)
}

func nameOf(sn *styledtree.StyNode, dict map[*styledtree.StyNode]string) string {
	name := dict[sn]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[sn] = name
	}
	return name
}

// selectProperties returns the properties of pmap named in keys, or all of
// them if keys is nil.
func selectProperties(pmap *style.PropertyMap, keys []string) []style.KeyValue {
	all := pmap.Properties()
	if keys == nil {
		return all
	}
	var props []style.KeyValue
	for _, kv := range all {
		for _, k := range keys {
			if kv.Key == k {
				props = append(props, kv)
				break
			}
		}
	}
	return props
}

// label escapes a node label for use as a quoted DOT string.
func label(sn *styledtree.StyNode) string {
	s := sn.String()
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + strings.ReplaceAll(s, " ", "␣") + `"`
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if eq .N.NodeName "#text" }}
{{ .Name }}	[ label={{ label .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ label .N }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const stylesTmpl = `{{ .Name }}_styles [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const stylesEdgeTmpl = `{{ .Name }} -> {{ .Name }}_styles [dir=none weight=1 style="dashed"] ;
`
