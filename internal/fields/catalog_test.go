package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	testCases := []struct {
		name            string
		descriptors     []Descriptor
		expectedClasses []string
	}{
		{
			name: "registration order preserved",
			descriptors: []Descriptor{
				{Name: "Switch", Class: ClassSwitch, Methods: []BuilderParam{method("sendTrueOrFalse", KindFlag)}},
				{Name: "Input", Class: ClassInput, Methods: []BuilderParam{method("required", KindFlag)}},
			},
			expectedClasses: []string{ClassSwitch, ClassInput},
		},
		{
			name: "denied classes skipped",
			descriptors: []Descriptor{
				{Name: "Input", Class: ClassInput, Methods: []BuilderParam{method("required", KindFlag)}},
				{Name: "Password", Class: "password"},
				{Name: "Relation", Class: "relation"},
				{Name: "View", Class: "view"},
				{Name: "Label", Class: "label"},
			},
			expectedClasses: []string{ClassInput},
		},
		{
			name: "duplicate class keeps the first registration",
			descriptors: []Descriptor{
				{Name: "Input", Class: ClassInput, Methods: []BuilderParam{method("required", KindFlag)}},
				{Name: "InputAgain", Class: ClassInput, Methods: []BuilderParam{method("mask", KindText)}},
			},
			expectedClasses: []string{ClassInput},
		},
		{
			name: "empty name or class skipped",
			descriptors: []Descriptor{
				{Name: "", Class: ClassInput},
				{Name: "Nameless", Class: ""},
			},
			expectedClasses: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCatalog()
			for _, d := range tc.descriptors {
				c.Register(d)
			}

			classes := make([]string, 0)
			for _, d := range c.List() {
				classes = append(classes, d.Class)
			}

			assert.Equal(t, tc.expectedClasses, classes)
		})
	}
}

func TestRegisterDedupesAndSortsMethods(t *testing.T) {
	c := NewCatalog()
	c.Register(Descriptor{
		Name:  "Input",
		Class: ClassInput,
		Methods: []BuilderParam{
			method("placeholder", KindText, ParamDoc{Name: "text"}),
			method("mask", KindText, ParamDoc{Name: "mask"}),
			method("placeholder", KindText, ParamDoc{Name: "other"}),
			{Name: ""},
		},
	})

	d, ok := c.Lookup(ClassInput)
	require.True(t, ok)
	require.Len(t, d.Methods, 2)
	assert.Equal(t, "mask", d.Methods[0].Name)
	assert.Equal(t, "placeholder", d.Methods[1].Name)
	assert.Equal(t, "text", d.Methods[1].Params[0].Name, "first occurrence wins on duplicates")
}

func TestListFilter(t *testing.T) {
	c := Builtin()

	filtered := c.List(ClassSelect, ClassInput)
	require.Len(t, filtered, 2)
	assert.Equal(t, ClassInput, filtered[0].Class, "filter keeps registration order")
	assert.Equal(t, ClassSelect, filtered[1].Class)

	assert.Empty(t, c.List("nonexistent"))
}

func TestLookup(t *testing.T) {
	c := Builtin()

	d, ok := c.Lookup(ClassMatrix)
	require.True(t, ok)
	assert.Equal(t, "Matrix", d.Name)

	_, ok = c.Lookup("nonexistent")
	assert.False(t, ok)
}

func TestFileClasses(t *testing.T) {
	c := Builtin()

	assert.True(t, c.IsFileClass(ClassUpload))
	assert.True(t, c.IsFileClass(ClassPicture))
	assert.True(t, c.IsFileClass(ClassCropper))
	assert.False(t, c.IsFileClass(ClassInput))

	assert.ElementsMatch(t, []string{ClassUpload, ClassPicture, ClassCropper}, c.FileClasses())
}

func TestBuiltinRequiredDefaults(t *testing.T) {
	c := Builtin()

	testCases := []struct {
		class    string
		param    string
		expected string
	}{
		{ClassSelect, "options", `{"option1": "Option 1"}`},
		{ClassRadio, "options", `{"yes": "Yes", "no": "No"}`},
		{ClassMatrix, "columns", `["key", "value"]`},
		{ClassRange, "min", "0"},
		{ClassRange, "max", "100"},
		{ClassRange, "step", "1"},
		{ClassUpload, "maxFiles", "1"},
	}

	for _, tc := range testCases {
		t.Run(tc.class+"/"+tc.param, func(t *testing.T) {
			d, ok := c.Lookup(tc.class)
			require.True(t, ok)

			m, ok := d.Method(tc.param)
			require.True(t, ok)
			assert.True(t, m.Active, "required parameter arrives pre-activated")
			assert.Equal(t, tc.expected, m.Default)
			assert.Equal(t, tc.expected, m.ParamStr)
		})
	}
}

func TestBuiltinCoversEveryClass(t *testing.T) {
	c := Builtin()

	expected := []string{
		ClassInput, ClassTextArea, ClassNumber, ClassEmail, ClassURL,
		ClassCheckBox, ClassSwitch, ClassSelect, ClassRadio, ClassMatrix,
		ClassCode, ClassDateTime, ClassColor, ClassRange, ClassPicture,
		ClassCropper, ClassUpload,
	}

	classes := make([]string, 0)
	for _, d := range c.List() {
		classes = append(classes, d.Class)
		assert.NotEmpty(t, d.Methods, "every type carries a schema")
	}

	assert.ElementsMatch(t, expected, classes)
}
