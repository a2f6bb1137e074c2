package shader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripComments(t *testing.T) {
	src := "a // line\nb /* block /* nested */ still */ c\n/* x */d"
	assert.Equal(t, "a \nb  c\nd", stripComments(src))
}

func TestSplitAtTopLevelCommas(t *testing.T) {
	assert.Equal(t,
		[]string{"a: f32", " b: array<vec4<f32>, 4>", " c: u32", ""},
		splitAtTopLevelCommas("a: f32, b: array<vec4<f32>, 4>, c: u32,"),
	)
}

func TestResolveTypeLayout(t *testing.T) {
	known := map[string]wgslTypeLayout{"Light": {32, 16}}
	tests := []struct {
		typeName string
		want     wgslTypeLayout
		ok       bool
	}{
		{"f32", wgslTypeLayout{4, 4}, true},
		{"vec3<f32>", wgslTypeLayout{12, 16}, true},
		{"mat4x4<f32>", wgslTypeLayout{64, 16}, true},
		{"Light", wgslTypeLayout{32, 16}, true},
		{"array<vec3<f32>, 4>", wgslTypeLayout{64, 16}, true},
		{"array<Light>", wgslTypeLayout{32, 16}, true},
		{"array<f32, n>", wgslTypeLayout{}, false},
		{"Unknown", wgslTypeLayout{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			got, ok := resolveTypeLayout(tt.typeName, known)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeStructSizes(t *testing.T) {
	// Outer is declared before Inner; both must still resolve.
	src := `
struct Outer {
    inner: Inner,
    scale: f32,
}
struct Inner {
    offset: vec3<f32>,
    flag: u32,
}
struct Broken {
    x: Missing,
}
`
	sizes := computeStructSizes(parseStructBlocks(src))
	assert.Equal(t, wgslTypeLayout{16, 16}, sizes["Inner"])
	assert.Equal(t, wgslTypeLayout{32, 16}, sizes["Outer"])
	assert.NotContains(t, sizes, "Broken")
}

func TestParseStructFields(t *testing.T) {
	fields := parseStructFields(`
    @builtin(position) clip: vec4<f32>,
    @location(2) @interpolate(flat) id: u32,
    plain: f32,
`)
	assert.Equal(t, []parsedField{
		{name: "clip", typeName: "vec4<f32>", location: -1, isBuiltin: true},
		{name: "id", typeName: "u32", location: 2},
		{name: "plain", typeName: "f32", location: -1},
	}, fields)
}
