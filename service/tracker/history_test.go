package tracker

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestHistoryRoundTrip(t *testing.T) {
	tests := [][]string{
		{},
		{"1.0.0.0"},
		{"1.0.0.0", "1.1.0.0", "2.0.0.0"},
		{"100", "110", "abc-def", "2024.10.01"},
	}

	for _, in := range tests {
		got, err := DecodeHistory(EncodeHistory(in))
		if err != nil {
			t.Fatalf("DecodeHistory(%q) failed: %v", EncodeHistory(in), err)
		}
		if !reflect.DeepEqual(got, in) {
			t.Fatalf("round trip of %v = %v", in, got)
		}
	}
}

func TestDecodeHistoryRepairsDamagedValues(t *testing.T) {
	tests := map[string][]string{
		",":            {},
		"1.0,":         {"1.0"},
		",1.0":         {"1.0"},
		"1.0,,1.1":     {"1.0", "1.1"},
		"1.0,1.1,1.0":  {"1.0", "1.1"},
		"1.0,1.0,,1.0": {"1.0"},
	}

	for raw, want := range tests {
		got, err := DecodeHistory(raw)
		if err != nil {
			t.Fatalf("DecodeHistory(%q) failed: %v", raw, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("DecodeHistory(%q) = %#v, want %#v", raw, got, want)
		}
	}
}

func TestDecodeHistoryInvalidUTF8(t *testing.T) {
	if _, err := DecodeHistory("1.0,\xff\xfe"); err == nil {
		t.Fatalf("expected error for invalid UTF-8")
	}
}

func TestDecodeHistoryBlank(t *testing.T) {
	got, err := DecodeHistory("   ")
	if err != nil {
		t.Fatalf("DecodeHistory failed: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil history, got %#v", got)
	}
}

func TestLoadHistory(t *testing.T) {
	store := newFakeStore()
	store.values[VersionsKey] = "1.0,1.1"
	store.values[BuildsKey] = "10,\xff"
	store.values["repairable"] = "10,,11,10"
	ctx := context.Background()

	got, err := LoadHistory(ctx, store, VersionsKey)
	if err != nil || !reflect.DeepEqual(got, []string{"1.0", "1.1"}) {
		t.Fatalf("LoadHistory(versions) = %v, %v", got, err)
	}

	if _, err := LoadHistory(ctx, store, BuildsKey); !errors.Is(err, ErrMalformedHistory) {
		t.Fatalf("expected ErrMalformedHistory, got %v", err)
	}

	got, err = LoadHistory(ctx, store, "repairable")
	if err != nil || !reflect.DeepEqual(got, []string{"10", "11"}) {
		t.Fatalf("LoadHistory(repairable) = %v, %v", got, err)
	}

	got, err = LoadHistory(ctx, store, "missing")
	if err != nil || len(got) != 0 {
		t.Fatalf("LoadHistory(missing) = %v, %v", got, err)
	}

	store.readErr = errDiskFull
	if _, err := LoadHistory(ctx, store, VersionsKey); !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}
