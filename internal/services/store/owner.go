package store

import (
	"os/exec"
	"runtime"
)

// Owner adjusts ownership of freshly written files so the web server
// fronting the storage directory can serve them. Implementations are
// best-effort collaborators: a Chown failure must never fail an upload.
type Owner interface {
	Chown(path string) error
}

// NoopOwner skips the ownership change entirely.
type NoopOwner struct{}

func (NoopOwner) Chown(string) error { return nil }

// ExecOwner shells out to chown(1) with a "user:group" spec. On platforms
// without chown it degrades to a no-op.
type ExecOwner struct {
	Spec string
}

func (o ExecOwner) Chown(path string) error {
	if runtime.GOOS != "linux" {
		return nil
	}
	return exec.Command("chown", o.Spec, path).Run()
}

// OwnerFromConfig picks the ownership strategy for the configured
// "user:group" spec; empty disables the step.
func OwnerFromConfig(spec string) Owner {
	if spec == "" {
		return NoopOwner{}
	}
	return ExecOwner{Spec: spec}
}
