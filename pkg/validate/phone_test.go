package validate_test

import (
	"errors"
	"testing"

	"github.com/Gunvolt24/seafood-shop/pkg/validate"
)

func TestNormalizePhone(t *testing.T) {
	ok := map[string]string{
		"+7 (916) 123-45-67": "+79161234567",
		"89161234567":        "+79161234567",
		"9161234567":         "+79161234567",
		"7 999 000 11 22":    "+79990001122",
	}
	for in, want := range ok {
		got, err := validate.NormalizePhone(in)
		if err != nil || got != want {
			t.Fatalf("NormalizePhone(%q) = %q, %v; want %q", in, got, err, want)
		}
	}

	bad := []string{"", "12345", "+1 916 123 45 67", "+7 (495) 123-45-67", "991612345678", "+7 (907) 123-45-67"}
	for _, in := range bad {
		if _, err := validate.NormalizePhone(in); !errors.Is(err, validate.ErrInvalidPhone) {
			t.Fatalf("NormalizePhone(%q): want ErrInvalidPhone, got %v", in, err)
		}
	}
}
