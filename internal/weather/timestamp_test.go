// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package weather

import (
	"errors"
	"testing"
	"time"
)

func TestParseLocalTimestamp(t *testing.T) {
	tests := []struct {
		name   string
		ts     string
		offset int
		want   time.Time
	}{
		{"date only", "2025-06-01", 180, time.Date(2025, 5, 31, 21, 0, 0, 0, time.UTC)},
		{"minutes with T separator", "2025-06-01T15:00", 180, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		{"minutes with space separator", "2025-06-01 15:00", 0, time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)},
		{"seconds", "2025-06-01T15:00:30", -300, time.Date(2025, 6, 1, 20, 0, 30, 0, time.UTC)},
		{"fraction", "2025-06-01 15:00:30.5", 0, time.Date(2025, 6, 1, 15, 0, 30, 5e8, time.UTC)},
		{"half hour offset", "2025-06-01T00:00:00", 330, time.Date(2025, 5, 31, 18, 30, 0, 0, time.UTC)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseLocalTimestamp(tc.ts, tc.offset)
			if err != nil {
				t.Fatalf("failed to parse timestamp: %s", err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("expected %s, got %s", tc.want, got.UTC())
			}
			_, offset := got.Zone()
			if offset != tc.offset*60 {
				t.Errorf("expected zone offset %d, got %d", tc.offset*60, offset)
			}
		})
	}
	t.Run("malformed timestamps fail", func(t *testing.T) {
		for _, ts := range []string{"", "yesterday", "2025-13-01", "2025-06-01T15", "2025-06-01T15:00:00Z", "01.06.2025"} {
			_, err := ParseLocalTimestamp(ts, 0)
			if err == nil {
				t.Errorf("expected parsing of %q to fail", ts)
				continue
			}
			if !errors.Is(err, ErrMalformedTimestamp) {
				t.Errorf("expected error to be ErrMalformedTimestamp, got %s", err)
			}
		}
	})
}

func TestToUTC(t *testing.T) {
	t.Run("result is in UTC", func(t *testing.T) {
		got, err := ToUTC("2025-01-15T08:00:00", 60)
		if err != nil {
			t.Fatalf("failed to convert timestamp: %s", err)
		}
		if got.Location() != time.UTC {
			t.Errorf("expected location UTC, got %s", got.Location())
		}
		want := time.Date(2025, 1, 15, 7, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})
	t.Run("round trip through the local zone", func(t *testing.T) {
		inputs := []string{
			"2025-03-30T02:30:00",
			"2025-03-30 02:30:00",
			"2025-03-30T02:30:00.5",
			"2025-03-30 02:30:00.123456789",
			"2025-03-30T02:30",
			"2025-03-30 02:30",
			"2025-03-30",
		}
		for _, ts := range inputs {
			layout, err := LocalTimestampLayout(ts)
			if err != nil {
				t.Fatalf("failed to detect layout of %s: %s", ts, err)
			}
			for _, offset := range []int{-720, -570, -60, 0, 180, 345, 840} {
				utc, err := ToUTC(ts, offset)
				if err != nil {
					t.Fatalf("failed to convert timestamp: %s", err)
				}
				if got := FormatLocalTimestamp(utc, offset, layout); got != ts {
					t.Errorf("offset %d: expected %s, got %s", offset, ts, got)
				}
			}
		}
	})
	t.Run("malformed timestamp", func(t *testing.T) {
		if _, err := ToUTC("2025/01/15", 0); !errors.Is(err, ErrMalformedTimestamp) {
			t.Errorf("expected error to be ErrMalformedTimestamp, got %v", err)
		}
	})
}

func TestFixedZone(t *testing.T) {
	tests := []struct {
		offset int
		want   string
	}{
		{0, "UTC+00:00"},
		{180, "UTC+03:00"},
		{-30, "UTC-00:30"},
		{-570, "UTC-09:30"},
	}
	for _, tc := range tests {
		if got := FixedZone(tc.offset).String(); got != tc.want {
			t.Errorf("expected zone name %q, got %q", tc.want, got)
		}
	}
}

func TestIsRelevant(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("hourly slot at now is relevant", func(t *testing.T) {
		if !IsRelevant(now, ModeHourly, now) {
			t.Error("expected slot to be relevant")
		}
	})
	t.Run("hourly slot one second ago is not relevant", func(t *testing.T) {
		if IsRelevant(now.Add(-time.Second), ModeHourly, now) {
			t.Error("expected slot to be irrelevant")
		}
	})
	t.Run("daily entry exactly one day ago is relevant", func(t *testing.T) {
		if !IsRelevant(now.AddDate(0, 0, -1), ModeDaily, now) {
			t.Error("expected entry to be relevant")
		}
	})
	t.Run("daily entry more than one day ago is not relevant", func(t *testing.T) {
		if IsRelevant(now.AddDate(0, 0, -1).Add(-time.Second), ModeDaily, now) {
			t.Error("expected entry to be irrelevant")
		}
	})
	t.Run("comparison uses instants across zones", func(t *testing.T) {
		local, err := ParseLocalTimestamp("2025-06-01T15:00:00", 180)
		if err != nil {
			t.Fatalf("failed to parse timestamp: %s", err)
		}
		if !IsRelevant(local, ModeHourly, now) {
			t.Error("expected slot at 12:00 UTC to be relevant at 12:00 UTC")
		}
		if IsRelevant(local, ModeHourly, now.Add(time.Minute)) {
			t.Error("expected slot at 12:00 UTC to be irrelevant at 12:01 UTC")
		}
	})
}
