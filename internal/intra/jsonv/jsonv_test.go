package jsonv

import "testing"

func doc(t *testing.T, raw string) interface{} {
	t.Helper()
	v, ok := Decode([]byte(raw))
	if !ok {
		t.Fatalf("fixture does not parse: %s", raw)
	}
	return v
}

func TestAt(t *testing.T) {
	v := doc(t, `{"room":{"code":"A"},"prof_inst":[{"title":"JD"}]}`)

	if got, ok := Str(v, "room", "code"); !ok || got != "A" {
		t.Fatalf("Str(room.code) = %q, %v", got, ok)
	}
	if got, ok := Str(v, "prof_inst", 0, "title"); !ok || got != "JD" {
		t.Fatalf("Str(prof_inst.0.title) = %q, %v", got, ok)
	}
	if _, ok := Str(v, "prof_inst", 1, "title"); ok {
		t.Fatalf("out-of-range index reported present")
	}
	if _, ok := Str(v, "missing"); ok {
		t.Fatalf("missing key reported present")
	}
	if _, ok := Str(v, "room"); ok {
		t.Fatalf("object extracted as string")
	}
}

func TestUint(t *testing.T) {
	v := doc(t, `{"semester":2,"neg":-1,"frac":1.5,"str":"2"}`)

	if got, ok := Uint(v, "semester"); !ok || got != 2 {
		t.Fatalf("Uint(semester) = %d, %v", got, ok)
	}
	if _, ok := Uint(v, "neg"); ok {
		t.Fatalf("negative accepted")
	}
	if _, ok := Uint(v, "frac"); ok {
		t.Fatalf("fractional accepted")
	}
	if _, ok := Uint(v, "str"); ok {
		t.Fatalf("string accepted")
	}
}

func TestDecodeList(t *testing.T) {
	if _, ok := DecodeList([]byte(`[{"a":1}]`)); !ok {
		t.Fatalf("array rejected")
	}
	// the portal returns an empty object where a list is expected
	if _, ok := DecodeList([]byte(`{}`)); ok {
		t.Fatalf("object accepted as list")
	}
	if _, ok := DecodeList([]byte(`not json`)); ok {
		t.Fatalf("garbage accepted as list")
	}
}
