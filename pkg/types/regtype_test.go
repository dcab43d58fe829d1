package types

import "testing"

func TestRegTypeValid(t *testing.T) {
	if REG_NONE.Valid() {
		t.Fatalf("REG_NONE must not be wire-legal")
	}
	for tag := REG_SZ; tag <= REG_QWORD_BIG_ENDIAN; tag++ {
		if !tag.Valid() {
			t.Fatalf("tag %d should be valid", tag)
		}
	}
	if RegType(13).Valid() {
		t.Fatalf("tag 13 should be invalid")
	}
}

func TestRegTypeKind(t *testing.T) {
	tests := []struct {
		typ  RegType
		kind DataKind
	}{
		{REG_SZ, KindString},
		{REG_EXPAND_SZ, KindString},
		{REG_LINK, KindString},
		{REG_BINARY, KindBinary},
		{REG_DWORD_LITTLE_ENDIAN, KindDword},
		{REG_DWORD_BIG_ENDIAN, KindDword},
		{REG_MULTI_SZ, KindStrings},
		{REG_RESOURCE_LIST, KindStrings},
		{REG_FULL_RESOURCE_DESCRIPTOR, KindStrings},
		{REG_RESOURCE_REQUIREMENTS_LIST, KindStrings},
		{REG_QWORD_LITTLE_ENDIAN, KindQword},
		{REG_QWORD_BIG_ENDIAN, KindQword},
		{REG_NONE, KindNone},
		{RegType(99), KindNone},
	}
	for _, tt := range tests {
		if got := tt.typ.Kind(); got != tt.kind {
			t.Errorf("%s.Kind() = %d, want %d", tt.typ, got, tt.kind)
		}
	}
}

func TestRegTypeString(t *testing.T) {
	if s := REG_MULTI_SZ.String(); s != "REG_MULTI_SZ" {
		t.Errorf("String() = %q", s)
	}
	if s := RegType(42).String(); s != "UNKNOWN_TYPE_42" {
		t.Errorf("String() = %q", s)
	}
}
