package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/cictl/internal/domain"
	"github.com/doeshing/cictl/internal/infrastructure/config"
)

func TestFileLoader_SeedsDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := config.NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(config.Defaults(), cfg); diff != "" {
		t.Errorf("seeded config mismatch (-want +got):\n%s", diff)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config file not written: %v", err)
	}
}

func TestFileLoader_ReadsExistingConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
release_branch: release
deploy_stage: after_success
stages:
  install:
    - description: install tooling
      command: make tools
      retry: 2
      sleep: 5
`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ReleaseBranch != "release" {
		t.Errorf("ReleaseBranch = %q, want release", cfg.ReleaseBranch)
	}
	if cfg.DeployBuildStage() != domain.StageAfterSuccess {
		t.Errorf("DeployBuildStage() = %v, want after_success", cfg.DeployBuildStage())
	}
	cmds := cfg.StageCommands(domain.StageInstall)
	if len(cmds) != 1 || cmds[0].Command != "make tools" {
		t.Fatalf("StageCommands(install) = %+v", cmds)
	}
	if p := cmds[0].Policy(); p.MaxRetries != 2 || p.SleepSeconds != 5 {
		t.Errorf("Policy() = %+v, want retries 2 sleep 5", p)
	}
	// hydration fills unset fields
	if cfg.Provider != "github" || cfg.Execution.Shell != "auto" {
		t.Errorf("hydrated config = %+v", cfg)
	}
}

func TestFileLoader_EnvOverridePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alt.yaml")
	t.Setenv("CICTL_CONFIG", path)

	loader := config.NewFileLoader("")
	if got := loader.Path(); got != path {
		t.Errorf("Path() = %q, want %q", got, path)
	}
}
