package classid

import "testing"

func TestIDDistinctPerVariant(t *testing.T) {
	release, err := ID(VariantRelease)
	if err != nil {
		t.Fatalf("ID(release) failed: %v", err)
	}
	preview, err := ID(VariantPreview)
	if err != nil {
		t.Fatalf("ID(preview) failed: %v", err)
	}
	dev, err := ID(VariantDev)
	if err != nil {
		t.Fatalf("ID(dev) failed: %v", err)
	}
	if release == preview || release == dev || preview == dev {
		t.Fatal("build variants must not share a class id")
	}
}

func TestIDStableAcrossCalls(t *testing.T) {
	a, _ := ID(VariantRelease)
	b, _ := ID(VariantRelease)
	if a != b {
		t.Fatalf("ID(release) not stable: %v != %v", a, b)
	}
}

func TestIDUnknownVariant(t *testing.T) {
	if _, err := ID(Variant("bogus")); err == nil {
		t.Fatal("expected error for unknown variant")
	}
}

func TestClassNameScopesByVariant(t *testing.T) {
	releaseName, err := ClassName(VariantRelease)
	if err != nil {
		t.Fatalf("ClassName(release) failed: %v", err)
	}
	devName, err := ClassName(VariantDev)
	if err != nil {
		t.Fatalf("ClassName(dev) failed: %v", err)
	}
	if releaseName == devName {
		t.Fatal("release and dev must not share a class registry name")
	}
}

func TestPipeNamePrefixScopesByVariant(t *testing.T) {
	release, err := PipeNamePrefix(VariantRelease)
	if err != nil {
		t.Fatalf("PipeNamePrefix(release) failed: %v", err)
	}
	preview, err := PipeNamePrefix(VariantPreview)
	if err != nil {
		t.Fatalf("PipeNamePrefix(preview) failed: %v", err)
	}
	if release == preview {
		t.Fatal("release and preview must not share a pipe name prefix")
	}
}

func TestVariantFromEnvDefaultsToDev(t *testing.T) {
	t.Setenv("WTCORE_BUILD_VARIANT", "")
	if got := VariantFromEnv(); got != VariantDev {
		t.Fatalf("VariantFromEnv() = %q, want %q", got, VariantDev)
	}
}

func TestVariantFromEnvHonorsOverride(t *testing.T) {
	t.Setenv("WTCORE_BUILD_VARIANT", "Release")
	if got := VariantFromEnv(); got != VariantRelease {
		t.Fatalf("VariantFromEnv() = %q, want %q", got, VariantRelease)
	}
}

func TestNewCorrelationIDUnique(t *testing.T) {
	a := NewCorrelationID()
	b := NewCorrelationID()
	if a == b {
		t.Fatal("NewCorrelationID() should not repeat")
	}
	if a == "" || b == "" {
		t.Fatal("NewCorrelationID() returned empty string")
	}
}
