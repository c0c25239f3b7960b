package offsets

import (
	"strings"
	"unsafe"

	"testing"

	"github.com/pelletier/go-toml/v2"
)

func TestLayoutSizes(t *testing.T) {
	cases := []struct {
		name string
		size uintptr
		want uintptr
	}{
		{"D3D8", unsafe.Sizeof(D3D8{}), 4},
		{"D3D9", unsafe.Sizeof(D3D9{}), 20},
		{"DXGI", unsafe.Sizeof(DXGI{}), 12},
		{"DDraw", unsafe.Sizeof(DDraw{}), 32},
		{"GraphicOffsets", unsafe.Sizeof(GraphicOffsets{}), 68},
	}
	for _, c := range cases {
		if c.size != c.want {
			t.Errorf("sizeof(%s) = %d, want %d", c.name, c.size, c.want)
		}
	}
}

func TestParsedOffsetsFromTOML(t *testing.T) {
	doc := `
[d3d8]
present = 100

[d3d9]
present = 200
present_ex = 201
present_swap = 202
class_offset = 203
is_ex_class_offset = 204

[dxgi]
present = 300
present1 = 301
resize = 302
`
	var parsed ParsedOffsets
	if err := toml.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	g := parsed.ToGraphicOffsets()
	if g.D3D8.Present != 100 {
		t.Errorf("D3D8.Present = %d, want 100", g.D3D8.Present)
	}
	if g.D3D9.PresentEx != 201 {
		t.Errorf("D3D9.PresentEx = %d, want 201", g.D3D9.PresentEx)
	}
	if g.D3D9.PresentSwap != 202 {
		t.Errorf("D3D9.PresentSwap = %d, want 202", g.D3D9.PresentSwap)
	}
	if g.D3D9.ClassOffset != 203 {
		t.Errorf("D3D9.ClassOffset = %d, want 203", g.D3D9.ClassOffset)
	}
	if g.D3D9.IsExClassOffset != 204 {
		t.Errorf("D3D9.IsExClassOffset = %d, want 204", g.D3D9.IsExClassOffset)
	}
	if g.DXGI.Resize != 302 {
		t.Errorf("DXGI.Resize = %d, want 302", g.DXGI.Resize)
	}
	if g.DDraw != (DDraw{}) {
		t.Errorf("DDraw should remain zeroed, got %+v", g.DDraw)
	}
}

func TestRequireTablesAndKeysMissingTable(t *testing.T) {
	doc := `
[d3d9]
present = 1
present_ex = 2
present_swap = 3
class_offset = 4
is_ex_class_offset = 5

[dxgi]
present = 1
present1 = 2
resize = 3
`
	if err := requireTablesAndKeys([]byte(doc)); err == nil {
		t.Fatal("expected an error for missing d3d8 table")
	}
}

func TestRequireTablesAndKeysMissingKey(t *testing.T) {
	doc := `
[d3d8]
present = 1

[d3d9]
present = 1
present_ex = 2
present_swap = 3
class_offset = 4

[dxgi]
present = 1
present1 = 2
resize = 3
`
	if err := requireTablesAndKeys([]byte(doc)); err == nil {
		t.Fatal("expected an error for missing d3d9.is_ex_class_offset key")
	}
}

func TestRequireTablesAndKeysCompleteDocPasses(t *testing.T) {
	doc := `
[d3d8]
present = 1

[d3d9]
present = 1
present_ex = 2
present_swap = 3
class_offset = 4
is_ex_class_offset = 5

[dxgi]
present = 1
present1 = 2
resize = 3
`
	if err := requireTablesAndKeys([]byte(doc)); err != nil {
		t.Fatalf("unexpected error for complete doc: %v", err)
	}
}

func TestLoadErrorStringIncludesKind(t *testing.T) {
	err := &LoadError{Kind: ParseOutput, Err: errTest{}}
	if got := err.Error(); !strings.Contains(got, ParseOutput.String()) {
		t.Fatalf("error string %q does not include kind %q", got, ParseOutput.String())
	}
}

type errTest struct{}

func (errTest) Error() string { return "boom" }
