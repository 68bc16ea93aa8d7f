package ocasdk_test

import (
	"testing"

	ocasdk "github.com/ocasuite/ocasdk"
)

func TestStrict_ArrayElementsTypeChecked(t *testing.T) {
	attrs := map[string]ocasdk.Attribute{
		"tags": {Type: ocasdk.ArrayType{Elem: numeric()}},
	}
	payload := []byte(`{"tags": [1, "two", 3, true]}`)

	// Default mode keeps the bypass.
	st, err := ocasdk.ValidateBytes(attrs, payload)
	if err != nil {
		t.Fatalf("unexpected setup error: %v", err)
	}
	if !st.Valid() {
		t.Fatalf("default mode must bypass arrays, got %v", st.Errors())
	}

	st, err = ocasdk.ValidateBytes(attrs, payload, ocasdk.ValidateOpt{Strict: true})
	if err != nil {
		t.Fatalf("unexpected setup error: %v", err)
	}
	iss := st.Errors()
	if len(iss) != 2 {
		t.Fatalf("expected 2 element issues, got %v", iss)
	}
	if iss[0].Path != "/tags/1" || iss[1].Path != "/tags/3" {
		t.Fatalf("unexpected element paths: %s, %s", iss[0].Path, iss[1].Path)
	}
	if iss[0].Code != ocasdk.CodeInvalidType {
		t.Fatalf("unexpected code: %s", iss[0].Code)
	}
}

func TestStrict_ScalarDeclaredButCompoundValue(t *testing.T) {
	attrs := map[string]ocasdk.Attribute{
		"name":  {Type: text()},
		"count": {Type: numeric()},
	}
	st, err := ocasdk.ValidateBytes(attrs, []byte(`{"name": {"first": "a"}, "count": [1]}`), ocasdk.ValidateOpt{Strict: true})
	if err != nil {
		t.Fatalf("unexpected setup error: %v", err)
	}
	iss := st.Errors()
	if len(iss) != 2 {
		t.Fatalf("expected 2 issues, got %v", iss)
	}
	if iss[0].Path != "/count" || iss[1].Path != "/name" {
		t.Fatalf("unexpected paths: %s, %s", iss[0].Path, iss[1].Path)
	}
}

func TestStrict_NestedTypeAcceptsObject(t *testing.T) {
	attrs := map[string]ocasdk.Attribute{
		"address": {Type: ocasdk.NestedType{Ref: "EAddressCaptureBaseSAID"}},
	}
	st, err := ocasdk.ValidateBytes(attrs, []byte(`{"address": {"street": "main"}}`), ocasdk.ValidateOpt{Strict: true})
	if err != nil {
		t.Fatalf("unexpected setup error: %v", err)
	}
	if !st.Valid() {
		t.Fatalf("nested-typed objects pass shape check, got %v", st.Errors())
	}

	st, _ = ocasdk.ValidateBytes(attrs, []byte(`{"address": ["main"]}`), ocasdk.ValidateOpt{Strict: true})
	iss := st.Errors()
	if len(iss) != 1 || iss[0].Code != ocasdk.CodeInvalidType {
		t.Fatalf("nested-typed arrays must fail shape check, got %v", iss)
	}
}

func TestStrict_EntryCodesApplyPerElement(t *testing.T) {
	attrs := map[string]ocasdk.Attribute{
		"colors": {
			Type:       ocasdk.ArrayType{Elem: text()},
			EntryCodes: ocasdk.CodeList{"red", "green"},
		},
	}
	st, err := ocasdk.ValidateBytes(attrs, []byte(`{"colors": ["red", "blue", 3]}`), ocasdk.ValidateOpt{Strict: true})
	if err != nil {
		t.Fatalf("unexpected setup error: %v", err)
	}
	iss := st.Errors()
	// blue -> invalid_enum; 3 -> invalid_type + not_comparable
	if len(iss) != 3 {
		t.Fatalf("expected 3 issues, got %v", iss)
	}
	if iss[0].Path != "/colors/1" || iss[0].Code != ocasdk.CodeInvalidEnum {
		t.Fatalf("unexpected first issue: %+v", iss[0])
	}
	if iss[1].Path != "/colors/2" || iss[1].Code != ocasdk.CodeInvalidType {
		t.Fatalf("unexpected second issue: %+v", iss[1])
	}
	if iss[2].Path != "/colors/2" || iss[2].Code != ocasdk.CodeNotComparable {
		t.Fatalf("unexpected third issue: %+v", iss[2])
	}
}

func TestStrict_NestedArrayRecursion(t *testing.T) {
	attrs := map[string]ocasdk.Attribute{
		"grid": {Type: ocasdk.ArrayType{Elem: ocasdk.ArrayType{Elem: numeric()}}},
	}
	st, err := ocasdk.ValidateBytes(attrs, []byte(`{"grid": [[1, 2], [3, "x"]]}`), ocasdk.ValidateOpt{Strict: true})
	if err != nil {
		t.Fatalf("unexpected setup error: %v", err)
	}
	iss := st.Errors()
	if len(iss) != 1 || iss[0].Path != "/grid/1/1" {
		t.Fatalf("expected one issue at /grid/1/1, got %v", iss)
	}
}

func TestStrict_UntypedArrayStillEnumChecked(t *testing.T) {
	attrs := map[string]ocasdk.Attribute{
		"codes": {EntryCodes: ocasdk.CodeList{"a", "b"}},
	}
	st, err := ocasdk.ValidateBytes(attrs, []byte(`{"codes": ["a", "z"]}`), ocasdk.ValidateOpt{Strict: true})
	if err != nil {
		t.Fatalf("unexpected setup error: %v", err)
	}
	iss := st.Errors()
	if len(iss) != 1 || iss[0].Path != "/codes/1" || iss[0].Code != ocasdk.CodeInvalidEnum {
		t.Fatalf("expected invalid_enum at /codes/1, got %v", iss)
	}
}
