package phone

import "testing"

func TestNationalAcceptsCommonForms(t *testing.T) {
	cases := []string{"9876543210", "98765 43210", "987-654-3210", " 9876543210 ", "+91 98765 43210", "+919876543210", "+91 98765-43210"}
	for _, in := range cases {
		got, ok := National(in)
		if !ok {
			t.Errorf("expected %q to parse", in)
			continue
		}
		if got != "9876543210" {
			t.Errorf("National(%q) = %q, want 9876543210", in, got)
		}
	}
}

func TestNationalRejectsWrongLengths(t *testing.T) {
	invalid := []string{"", "987654321", "98765432101", "123456789012", "12-34"}
	for _, in := range invalid {
		if got, ok := National(in); ok {
			t.Errorf("expected %q to be rejected, got %q", in, got)
		}
	}
}

func TestIsValidMobile(t *testing.T) {
	if !IsValidMobile("98765 43210") {
		t.Fatal("expected separated digits to be valid")
	}
	if IsValidMobile("987654321") {
		t.Fatal("expected a 9-digit number to be invalid")
	}
}

func TestSame(t *testing.T) {
	if !Same("+91 9876543210", "98765 43210") {
		t.Fatal("expected numbers with and without country code to match")
	}
	if Same("", "") {
		t.Fatal("empty numbers must never match each other")
	}
	if Same("9876543210", "9876543211") {
		t.Fatal("different numbers must not match")
	}
}
