package storage

import (
	"context"
	"testing"
)

// runStoreContract exercises the behaviour every backend must share.
func runStoreContract(t *testing.T, svc Service) {
	t.Helper()
	ctx := context.Background()

	ok, err := svc.Contains(ctx, "xamVersion")
	if err != nil {
		t.Fatalf("Contains failed: %v", err)
	}
	if ok {
		t.Fatalf("expected empty store")
	}
	if _, found, err := svc.Get(ctx, "xamVersion"); err != nil || found {
		t.Fatalf("Get on empty store = found %v, err %v", found, err)
	}

	if err := svc.Set(ctx, "xamVersion", "1.0.0.0"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := svc.Set(ctx, "xamVersion", "1.0.0.0,1.1.0.0"); err != nil {
		t.Fatalf("Set overwrite failed: %v", err)
	}
	if err := svc.Set(ctx, "xamBuild", "100,110"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	v, found, err := svc.Get(ctx, "xamVersion")
	if err != nil || !found {
		t.Fatalf("Get failed: found %v, err %v", found, err)
	}
	if v != "1.0.0.0,1.1.0.0" {
		t.Fatalf("unexpected value: %q", v)
	}

	keys, err := svc.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 2 || keys[0] != "xamBuild" || keys[1] != "xamVersion" {
		t.Fatalf("unexpected keys: %v", keys)
	}

	if err := svc.Delete(ctx, "xamBuild"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if ok, _ := svc.Contains(ctx, "xamBuild"); ok {
		t.Fatalf("expected xamBuild to be deleted")
	}
	if err := svc.Delete(ctx, "missing"); err != nil {
		t.Fatalf("Delete of missing key failed: %v", err)
	}
}
