// Package classid assigns the federation-partitioning class identifier
// used by internal/election's class registry race and internal/ipc's
// pipe naming. Release, preview, and dev builds of the same host must
// never discover each other's leaders, so each build variant is pinned
// to its own fixed 128-bit id.
package classid

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/myT-x/wtcore/internal/userutil"
)

// Variant selects which of the three fixed class ids a process belongs to.
type Variant string

const (
	VariantRelease Variant = "release"
	VariantPreview Variant = "preview"
	VariantDev     Variant = "dev"
)

// Fixed per spec.md §6: three stable 128-bit quantities, one per build
// variant, so the core never hard-codes a single value for every build.
var fixedIDs = map[Variant]uuid.UUID{
	VariantRelease: uuid.MustParse("9c858b7e-3b1b-4b6a-8f3b-1e9f6a4c2d01"),
	VariantPreview: uuid.MustParse("9c858b7e-3b1b-4b6a-8f3b-1e9f6a4c2d02"),
	VariantDev:     uuid.MustParse("9c858b7e-3b1b-4b6a-8f3b-1e9f6a4c2d03"),
}

// ErrUnknownVariant is returned by ID when the variant has no fixed id.
var ErrUnknownVariant = fmt.Errorf("classid: unknown build variant")

// ID returns the fixed class id for the given build variant.
func ID(v Variant) (uuid.UUID, error) {
	id, ok := fixedIDs[v]
	if !ok {
		return uuid.UUID{}, fmt.Errorf("%w: %q", ErrUnknownVariant, v)
	}
	return id, nil
}

// VariantFromEnv resolves the build variant the same way the rest of the
// corpus resolves environment-driven knobs: an explicit override first,
// falling back to a conservative default of dev so an unconfigured build
// never accidentally joins the release federation.
func VariantFromEnv() Variant {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("WTCORE_BUILD_VARIANT"))) {
	case "release":
		return VariantRelease
	case "preview":
		return VariantPreview
	default:
		return VariantDev
	}
}

// ClassName derives the OS class-registry name (the mutex name
// internal/election registers) for a variant, scoped per-user the same
// way the teacher scoped its single-instance mutex.
func ClassName(v Variant) (string, error) {
	id, err := ID(v)
	if err != nil {
		return "", err
	}
	username := strings.TrimSpace(os.Getenv("USERNAME"))
	if username == "" {
		username = "unknown"
	}
	return fmt.Sprintf(`Global\wtcore-%s-%s`, id.String(), userutil.SanitizeUsername(username)), nil
}

// PipeNamePrefix derives the base named-pipe prefix internal/ipc uses to
// address the current federation's leader, again scoped per variant and
// per user so release/preview/dev and separate users never cross pipes.
func PipeNamePrefix(v Variant) (string, error) {
	id, err := ID(v)
	if err != nil {
		return "", err
	}
	username := strings.TrimSpace(os.Getenv("USERNAME"))
	if username == "" {
		username = "unknown"
	}
	return fmt.Sprintf(`wtcore-%s-%s`, id.String(), userutil.SanitizeUsername(username)), nil
}

// NewCorrelationID generates a fresh random id. The internal/ipc wire
// envelope carries no correlation field, and nothing in the module calls
// it apart from its test. It carries no identity meaning of its own —
// PeasantId remains the only identity the core understands.
func NewCorrelationID() string {
	return uuid.New().String()
}
