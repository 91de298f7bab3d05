package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	got := New(2025, time.February, 30)
	want := New(2025, time.March, 2)
	if got != want {
		t.Errorf("New(2025, 2, 30) = %v, want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "31/01/2025", want: New(2025, time.January, 31)},
		{in: "1/7/2025", want: New(2025, time.July, 1)},
		{in: "01/07/2025", want: New(2025, time.July, 1)},
		{in: "2025-07-01", wantErr: true},
		{in: "07/31/2025", wantErr: true},
		{in: "31/02/2025", wantErr: true},
		{in: "1/7/25", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	d := New(2025, time.July, 1)
	if got, want := d.String(), "01/07/2025"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := d.ISO(), "2025-07-01"; got != want {
		t.Errorf("ISO() = %q, want %q", got, want)
	}
	if MustParse(d.String()) != d {
		t.Errorf("MustParse(String()) does not give back %v", d)
	}
}

func TestBeforeAfter(t *testing.T) {
	a := New(2025, time.January, 1)
	b := a.Add(1)
	if !a.Before(b) || b.Before(a) {
		t.Errorf("%v should be before %v", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("%v should be after %v", b, a)
	}
	if !(Date{}).IsZero() || a.IsZero() {
		t.Errorf("IsZero() is wrong")
	}
}
