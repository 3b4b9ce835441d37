package soc

import (
	"reflect"
	"testing"
)

func TestCacheRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USERPROFILE", t.TempDir()) // Windows

	sections := []RawSection{
		{
			Course:    "INST314",
			SectionID: "INST314-0101",
			Number:    "0101",
			OpenSeats: "37",
			Meetings:  []RawMeeting{{Days: "TuTh", StartTime: "11:00am", EndTime: "12:15pm"}},
		},
	}

	if _, ok := readCache("202608", "INST314"); ok {
		t.Fatalf("Expected a cold cache")
	}

	writeCache("202608", "INST314", sections)

	got, ok := readCache("202608", "INST314")
	if !ok {
		t.Fatalf("Expected a cache hit after writing")
	}
	if !reflect.DeepEqual(got, sections) {
		t.Errorf("Cache round-trip mismatch:\ngot:  %+v\nwant: %+v", got, sections)
	}

	// Different term or course misses
	if _, ok := readCache("202601", "INST314"); ok {
		t.Errorf("Expected a miss for a different term")
	}
	if _, ok := readCache("202608", "MATH141"); ok {
		t.Errorf("Expected a miss for a different course")
	}
}
