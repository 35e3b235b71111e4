package ipc

import (
	"fmt"

	"github.com/myT-x/wtcore/internal/classid"
)

const pipeNamespace = `\\.\pipe\`

// resolvePrefix returns override as given if non-empty, otherwise derives
// the prefix from the build variant (config.Load already trims the
// configured value). override lets a config file's
// pipe_name_prefix_override pin a federation that doesn't depend on the
// class id/username derivation at all, e.g. for integration tests that run
// several federations side by side under the same user account.
func resolvePrefix(v classid.Variant, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return classid.PipeNamePrefix(v)
}

// LeaderPipeName is the single well-known pipe a federation's leader
// listens on. Followers dial this name to reach ILeader; there is
// exactly one leader pipe per variant/user at a time, named after the
// class id so release/preview/dev never collide. override, when non-empty,
// replaces the class-id-derived prefix outright.
func LeaderPipeName(v classid.Variant, override string) (string, error) {
	prefix, err := resolvePrefix(v, override)
	if err != nil {
		return "", err
	}
	return pipeNamespace + prefix + "-leader", nil
}

// FollowerPipeName is the per-process pipe a peasant listens on so the
// leader can call back into it (ExecuteCommandline, Summon, ...). It is
// scoped by pid since every process in the federation runs its own.
// override behaves as in LeaderPipeName.
func FollowerPipeName(v classid.Variant, pid uint64, override string) (string, error) {
	prefix, err := resolvePrefix(v, override)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%s-peasant-%d", pipeNamespace, prefix, pid), nil
}
