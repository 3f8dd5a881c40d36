package logger

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	cases := map[int]string{
		-5:    "0s",
		0:     "0s",
		45:    "45s",
		100:   "100s",
		101:   "1m41s",
		125:   "2m5s",
		3600:  "60m0s",
		3601:  "1h1s",
		3661:  "1h1m1s",
		7260:  "2h1m0s",
		90061: "25h1m1s",
	}
	for in, want := range cases {
		if got := FormatDuration(in); got != want {
			t.Errorf("FormatDuration(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatDurationColor(t *testing.T) {
	want := Colorize("2", Yellow, true, false) + Colorize("m", Yellow, false, false) +
		Colorize("5", Green, true, false) + Colorize("s", Green, false, false)
	if got := FormatDurationColor(125); got != want {
		t.Fatalf("FormatDurationColor(125) = %q, want %q", got, want)
	}

	want = Colorize("1", Red, true, false) + Colorize("h", Red, false, false) +
		Colorize("1", Yellow, true, false) + Colorize("m", Yellow, false, false) +
		Colorize("1", Green, true, false) + Colorize("s", Green, false, false)
	if got := FormatDurationColor(3661); got != want {
		t.Fatalf("FormatDurationColor(3661) = %q, want %q", got, want)
	}
}

func TestFormatDurationVerbose(t *testing.T) {
	cases := map[int]string{
		0:     "0 seconds",
		45:    "45 seconds",
		125:   "2 minutes, 5 seconds",
		3600:  "1 hours, 0 seconds",
		3661:  "1 hours, 1 minutes, 1 seconds",
		90061: "1 days, 1 hours, 1 minutes, 1 seconds",
	}
	for in, want := range cases {
		if got := FormatDurationVerbose(in); got != want {
			t.Errorf("FormatDurationVerbose(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	cases := map[int]string{
		5:     "05s",
		60:    "01:00s",
		3661:  "1:01:01s",
		90061: "1d1:01:01s",
	}
	for in, want := range cases {
		if got := FormatClock(in); got != want {
			t.Errorf("FormatClock(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestTimestamp(t *testing.T) {
	ts := time.Date(2022, 9, 21, 20, 4, 35, 0, time.UTC)
	if got := Timestamp(ts); got != "20220921_200435" {
		t.Fatalf("Timestamp() = %q", got)
	}
}
