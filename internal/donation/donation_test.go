package donation

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	valid := Intent{Amount: 50, Frequency: Monthly, DonorEmail: "a@b.org"}

	cases := []struct {
		name   string
		mutate func(*Intent)
		want   error
	}{
		{"ok", func(*Intent) {}, nil},
		{"zero amount", func(i *Intent) { i.Amount = 0 }, ErrBadAmount},
		{"negative amount", func(i *Intent) { i.Amount = -5 }, ErrBadAmount},
		{"bad frequency", func(i *Intent) { i.Frequency = "weekly" }, ErrBadFrequency},
		{"bad designation", func(i *Intent) { i.Designation = "yachts" }, ErrBadDesignation},
		{"ok designation", func(i *Intent) { i.Designation = "water" }, nil},
		{"missing email", func(i *Intent) { i.DonorEmail = "" }, ErrBadEmail},
		{"email without at", func(i *Intent) { i.DonorEmail = "nope" }, ErrBadEmail},
	}
	for _, c := range cases {
		in := valid
		c.mutate(&in)
		if got := Validate(in); !errors.Is(got, c.want) {
			t.Fatalf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestRecordAppends(t *testing.T) {
	log := NewLog(filepath.Join(t.TempDir(), "donations.json"))

	first, err := log.Record(Intent{Amount: 25, Frequency: Once, DonorEmail: "Ana@Example.org "})
	if err != nil {
		t.Fatal(err)
	}
	if first.ID == "" || first.CreatedAt == "" {
		t.Fatalf("record not stamped: %+v", first)
	}
	if first.Currency != "USD" {
		t.Fatalf("default currency = %q", first.Currency)
	}
	if first.DonorEmail != "ana@example.org" {
		t.Fatalf("email not normalized: %q", first.DonorEmail)
	}

	second, err := log.Record(Intent{Amount: 10, Frequency: Monthly, DonorEmail: "b@c.org", Designation: "education"})
	if err != nil {
		t.Fatal(err)
	}

	all := log.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}
	if all[0].ID != first.ID || all[1].ID != second.ID {
		t.Fatal("records out of order")
	}
}

func TestRecordRejectsInvalid(t *testing.T) {
	log := NewLog(filepath.Join(t.TempDir(), "donations.json"))
	if _, err := log.Record(Intent{Amount: 0, Frequency: Once, DonorEmail: "a@b.org"}); err == nil {
		t.Fatal("expected validation error")
	}
	if len(log.All()) != 0 {
		t.Fatal("invalid intent was recorded")
	}
}
