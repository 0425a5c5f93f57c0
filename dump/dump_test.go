package dump

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
	"gopkg.in/yaml.v3"

	"bml/common"
	"bml/markup"
)

func exported(t *testing.T, src string) []*markup.NodeTree {
	t.Helper()
	tree, err := markup.NewParser(zaptest.NewLogger(t), markup.WithWarnCustomTags(false)).Parse(src)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return tree.Export()
}

func TestTree(t *testing.T) {
	roots := exported(t, `<div id="m" hidden style="width: 10px"><p>hi</p><my-x/><a download>x</a></div>`)
	var buf bytes.Buffer
	if err := Tree(&buf, roots); err != nil {
		t.Fatalf("Tree() error = %v", err)
	}
	want := `div
  @id: "m"
  @hidden: "true"
  @style: "width: 10px"
  layout: display=block width=10px
  p
    layout: display=block margin=16px 0px 16px 0px
    #text: "hi"
  my-x (custom)
  a
    @download
    #text: "x"
`
	if got := buf.String(); got != want {
		t.Errorf("Tree() =\n%s\nwant\n%s", got, want)
	}
}

func TestYaml(t *testing.T) {
	roots := exported(t, `<a href="x" download title="true">t</a><hr/>`)
	var buf bytes.Buffer
	if err := Yaml(&buf, roots); err != nil {
		t.Fatalf("Yaml() error = %v", err)
	}

	var got []map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid yaml: %v\n%s", err, buf.String())
	}
	if len(got) != 2 {
		t.Fatalf("got %d roots, want 2", len(got))
	}

	a := got[0]
	if a["name"] != "a" || a["type"] != "a" {
		t.Errorf("a = %v", a)
	}
	attrs, _ := a["attributes"].(map[string]any)
	if attrs["href"] != "x" || attrs["title"] != "true" {
		t.Errorf("attributes = %v", attrs)
	}
	if v, ok := attrs["download"]; !ok || v != nil {
		t.Errorf("download = %v, %v; want null", v, ok)
	}
	if _, ok := a["layout"]; ok {
		t.Error("anchor has default layout, nothing should be written")
	}
	children, _ := a["children"].([]any)
	if len(children) != 1 {
		t.Fatalf("children = %v", a["children"])
	}
	text := children[0].(map[string]any)
	if text["name"] != "#text" || text["text"] != "t" {
		t.Errorf("text node = %v", text)
	}

	layout, _ := got[1]["layout"].(map[string]any)
	if layout["height"] != "1px" || layout["width"] != "100%" {
		t.Errorf("hr layout = %v", layout)
	}
}

func TestXml(t *testing.T) {
	roots := exported(t, `<div id="m" class="a  b"><p>x &lt; y</p><br/></div>`)
	var buf bytes.Buffer
	if err := Xml(&buf, roots); err != nil {
		t.Fatalf("Xml() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{`<div id="m" class="a  b">`, `<p>x&amp;lt;y</p>`, `<br/>`, `</div>`} {
		if !strings.Contains(out, want) {
			t.Errorf("Xml() output is missing %q:\n%s", want, out)
		}
	}
}

func TestWrite_Scene(t *testing.T) {
	roots := exported(t, `<body><div class="card">hello</div></body>`)
	var buf bytes.Buffer
	if err := Write(&buf, common.OutputFmtScene, roots, zaptest.NewLogger(t)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) < 4 {
		t.Fatalf("unexpected scene dump:\n%s", buf.String())
	}
	if !strings.HasPrefix(lines[0], "body [") || !strings.HasSuffix(lines[0], "] body") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(buf.String(), "  div-card [") || !strings.Contains(buf.String(), `text: "hello"`) {
		t.Errorf("scene dump =\n%s", buf.String())
	}
}

func TestWrite_AllFormats(t *testing.T) {
	for _, name := range common.OutputFmtNames() {
		format, _ := common.ParseOutputFmt(name)
		var buf bytes.Buffer
		if err := Write(&buf, format, exported(t, `<div><span>a</span></div>`), nil); err != nil {
			t.Errorf("Write(%s) error = %v", name, err)
		}
		if buf.Len() == 0 {
			t.Errorf("Write(%s) produced nothing", name)
		}
	}
	if err := Write(&bytes.Buffer{}, common.OutputFmt(99), nil, nil); err == nil {
		t.Error("Write() should reject unknown format")
	}
}
