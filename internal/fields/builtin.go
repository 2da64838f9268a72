package fields

// Builtin assembles the catalog of built-in field types. The schema mirrors
// the chainable configuration methods the admin UI's field renderer
// understands; required parameters arrive pre-activated with a default
// literal.
func Builtin() *Catalog {
	c := NewCatalog()

	c.Register(Descriptor{
		Name:  "Input",
		Class: ClassInput,
		Methods: []BuilderParam{
			method("placeholder", KindText, ParamDoc{Name: "text"}),
			method("mask", KindText, ParamDoc{Name: "mask"}),
			method("maxlength", KindInt, ParamDoc{Name: "length"}),
			method("required", KindFlag),
			method("disabled", KindFlag),
		},
	})

	c.Register(Descriptor{
		Name:  "TextArea",
		Class: ClassTextArea,
		Methods: []BuilderParam{
			method("rows", KindInt, ParamDoc{Name: "rows", Default: "5"}),
			method("placeholder", KindText, ParamDoc{Name: "text"}),
			method("maxlength", KindInt, ParamDoc{Name: "length"}),
			method("required", KindFlag),
		},
	})

	c.Register(Descriptor{
		Name:  "Number",
		Class: ClassNumber,
		Methods: []BuilderParam{
			method("min", KindFloat, ParamDoc{Name: "min"}),
			method("max", KindFloat, ParamDoc{Name: "max"}),
			method("step", KindFloat, ParamDoc{Name: "step"}),
			method("placeholder", KindText, ParamDoc{Name: "text"}),
			method("required", KindFlag),
		},
	})

	c.Register(Descriptor{
		Name:  "Email",
		Class: ClassEmail,
		Methods: []BuilderParam{
			method("placeholder", KindText, ParamDoc{Name: "text"}),
			method("maxlength", KindInt, ParamDoc{Name: "length"}),
			method("required", KindFlag),
		},
	})

	c.Register(Descriptor{
		Name:  "URL",
		Class: ClassURL,
		Methods: []BuilderParam{
			method("placeholder", KindText, ParamDoc{Name: "text"}),
			method("required", KindFlag),
		},
	})

	c.Register(Descriptor{
		Name:  "CheckBox",
		Class: ClassCheckBox,
		Methods: []BuilderParam{
			method("sendTrueOrFalse", KindFlag),
			method("indeterminate", KindFlag),
		},
	})

	c.Register(Descriptor{
		Name:  "Switch",
		Class: ClassSwitch,
		Methods: []BuilderParam{
			method("sendTrueOrFalse", KindFlag),
		},
	})

	c.Register(Descriptor{
		Name:  "Select",
		Class: ClassSelect,
		Methods: []BuilderParam{
			required(
				method("options", KindJSON, ParamDoc{Name: "options"}),
				`{"option1": "Option 1"}`,
			),
			method("multiple", KindFlag),
			method("empty", KindText, ParamDoc{Name: "label"}),
			method("required", KindFlag),
		},
	})

	c.Register(Descriptor{
		Name:  "RadioButtons",
		Class: ClassRadio,
		Methods: []BuilderParam{
			required(
				method("options", KindJSON, ParamDoc{Name: "options"}),
				`{"yes": "Yes", "no": "No"}`,
			),
			method("required", KindFlag),
		},
	})

	c.Register(Descriptor{
		Name:  "Matrix",
		Class: ClassMatrix,
		Methods: []BuilderParam{
			required(
				method("columns", KindJSON, ParamDoc{Name: "columns"}),
				`["key", "value"]`,
			),
			method("maxRows", KindInt, ParamDoc{Name: "rows"}),
			method("keyValue", KindFlag),
		},
	})

	c.Register(Descriptor{
		Name:  "Code",
		Class: ClassCode,
		Methods: []BuilderParam{
			method("language", KindText, ParamDoc{Name: "language", Default: "json"}),
			method("lineNumbers", KindFlag),
			method("height", KindText, ParamDoc{Name: "height"}),
		},
	})

	c.Register(Descriptor{
		Name:  "DateTimer",
		Class: ClassDateTime,
		Methods: []BuilderParam{
			method("format", KindText, ParamDoc{Name: "format", Default: "Y-m-d H:i"}),
			method("enableTime", KindFlag),
			method("allowInput", KindFlag),
		},
	})

	c.Register(Descriptor{
		Name:  "Color",
		Class: ClassColor,
		Methods: []BuilderParam{
			method("required", KindFlag),
		},
	})

	c.Register(Descriptor{
		Name:  "Range",
		Class: ClassRange,
		Methods: []BuilderParam{
			required(method("min", KindFloat, ParamDoc{Name: "min"}), "0"),
			required(method("max", KindFloat, ParamDoc{Name: "max"}), "100"),
			required(method("step", KindFloat, ParamDoc{Name: "step"}), "1"),
		},
	})

	c.Register(Descriptor{
		Name:  "Picture",
		Class: ClassPicture,
		Methods: []BuilderParam{
			method("width", KindInt, ParamDoc{Name: "width"}),
			method("height", KindInt, ParamDoc{Name: "height"}),
			method("acceptedFiles", KindText, ParamDoc{Name: "accept", Default: "image/*"}),
		},
	})

	c.Register(Descriptor{
		Name:  "Cropper",
		Class: ClassCropper,
		Methods: []BuilderParam{
			method("width", KindInt, ParamDoc{Name: "width"}),
			method("height", KindInt, ParamDoc{Name: "height"}),
			method("keepAspectRatio", KindFlag),
		},
	})

	c.Register(Descriptor{
		Name:  "Upload",
		Class: ClassUpload,
		Methods: []BuilderParam{
			required(method("maxFiles", KindInt, ParamDoc{Name: "count"}), "1"),
			method("acceptedFiles", KindText, ParamDoc{Name: "accept"}),
			method("maxFileSize", KindFloat, ParamDoc{Name: "megabytes"}),
		},
	})

	return c
}

// Default is the process wide catalog of built-in field types.
var Default = Builtin() //nolint:gochecknoglobals
