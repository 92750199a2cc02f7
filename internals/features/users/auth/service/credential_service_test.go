// file: internals/features/users/auth/service/credential_service_test.go
package service

import (
	"strings"
	"testing"
)

func TestPlanAPICredentials(t *testing.T) {
	t.Run("pakai kredensial lama", func(t *testing.T) {
		key := "abcdef123456789"
		plan := PlanAPICredentials(&key, true)
		if plan.Generated {
			t.Fatal("wantExisting tidak boleh generate")
		}
		if plan.Token != nil {
			t.Fatalf("token harus nil, dapat %q", *plan.Token)
		}
		if plan.Message != "Using existing API credentials." {
			t.Fatalf("message = %q", plan.Message)
		}
	})

	t.Run("user tanpa key lama", func(t *testing.T) {
		plan := PlanAPICredentials(nil, false)
		if !plan.Generated {
			t.Fatal("harus generate")
		}
		if len(plan.APIKey) != 15 || len(plan.APISecret) != 15 {
			t.Fatalf("panjang key/secret = %d/%d, mau 15/15", len(plan.APIKey), len(plan.APISecret))
		}
		if plan.Token == nil || *plan.Token != plan.APIKey+":"+plan.APISecret {
			t.Fatalf("token = %v", plan.Token)
		}
		if plan.Message != "API credentials generated successfully." {
			t.Fatalf("message = %q", plan.Message)
		}
	})

	t.Run("key lama dipertahankan secret dirotasi", func(t *testing.T) {
		key := "key-lama-persis"
		plan := PlanAPICredentials(&key, false)
		if plan.APIKey != key {
			t.Fatalf("key berubah: %q", plan.APIKey)
		}
		if plan.APISecret == "" || plan.APISecret == key {
			t.Fatalf("secret harus baru, dapat %q", plan.APISecret)
		}
		if !strings.Contains(plan.Message, "Old credentials are now invalid.") {
			t.Fatalf("message = %q", plan.Message)
		}
	})

	t.Run("key lama whitespace dianggap kosong", func(t *testing.T) {
		key := "   "
		plan := PlanAPICredentials(&key, false)
		if plan.APIKey == "" || strings.TrimSpace(plan.APIKey) != plan.APIKey {
			t.Fatalf("key baru tidak valid: %q", plan.APIKey)
		}
		if plan.Message != "API credentials generated successfully." {
			t.Fatalf("message = %q", plan.Message)
		}
	})

	t.Run("dua login menghasilkan secret berbeda", func(t *testing.T) {
		a := PlanAPICredentials(nil, false)
		b := PlanAPICredentials(nil, false)
		if a.APISecret == b.APISecret {
			t.Fatal("secret harus acak per panggilan")
		}
	})
}
