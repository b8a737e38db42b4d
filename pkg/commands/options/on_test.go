package options

import (
	"fmt"
	"testing"
	"time"

	"tableflip.dev/moodlog/pkg/datekey"
)

func TestGetOn(t *testing.T) {
	tests := []struct {
		on      string
		want    datekey.Key
		wantErr bool
	}{
		{on: "", want: datekey.Today()},
		{on: "2025-2-28", want: "2025-02-28"},
		{on: "2024-02-29", want: "2024-02-29"},
		{on: "not-a-date", wantErr: true},
		{on: "2025-2-30", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.on, func(t *testing.T) {
			o := &OnOptions{OnString: tc.on}
			got, err := o.GetOn()
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestGetOnShortForm(t *testing.T) {
	year := time.Now().Year()

	o := &OnOptions{OnString: "3-15"}
	got, err := o.GetOn()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := datekey.Key(fmt.Sprintf("%d-03-15", year)); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestGetOnShortFormLeapDay(t *testing.T) {
	year := time.Now().Year()
	leap := year%4 == 0 && (year%100 != 0 || year%400 == 0)

	o := &OnOptions{OnString: "2-29"}
	got, err := o.GetOn()
	if leap {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := datekey.Key(fmt.Sprintf("%d-02-29", year)); got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
		return
	}
	// A day that does not exist this year must be rejected, not
	// silently normalized into March.
	if err == nil {
		t.Fatalf("expected error for Feb 29 in %d, got %s", year, got)
	}
}
