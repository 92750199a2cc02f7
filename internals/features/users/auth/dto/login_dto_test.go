// file: internals/features/users/auth/dto/login_dto_test.go
package dto

import "testing"

func TestCoerceTokenFlag(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want bool
	}{
		{"nil", nil, false},
		{"bool true", true, true},
		{"bool false", false, false},
		{"string true", "true", true},
		{"string TRUE", "TRUE", true},
		{"string 1", "1", true},
		{"string yes", "yes", true},
		{"string dengan spasi", "  yes  ", true},
		{"string false", "false", false},
		{"string kosong", "", false},
		{"string sembarang", "maybe", false},
		// decoder JSON mengirim angka sebagai float64
		{"float64 1", float64(1), true},
		{"float64 0", float64(0), false},
		{"int 1", 1, true},
		{"int 0", 0, false},
		{"tipe lain", []string{"true"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CoerceTokenFlag(tc.in); got != tc.want {
				t.Fatalf("CoerceTokenFlag(%v) = %v, mau %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestWantsExistingToken(t *testing.T) {
	r := MobileLoginRequest{Usr: "rizki", Pwd: "rahasia", HasExistingToken: "1"}
	if !r.WantsExistingToken() {
		t.Fatal("has_existing_token=1 harus true")
	}
	r.HasExistingToken = nil
	if r.WantsExistingToken() {
		t.Fatal("tanpa flag harus false")
	}
}
