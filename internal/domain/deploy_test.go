package domain_test

import (
	"testing"

	"github.com/doeshing/cictl/internal/domain"
)

// TestShouldDeploy tests the deploy gate conditions
func TestShouldDeploy(t *testing.T) {
	eligible := domain.EnvironmentSnapshot{
		EventType:  domain.EventPush,
		BranchName: "main",
		BuildStage: domain.StageDeploy,
	}

	tests := []struct {
		name          string
		snapshot      domain.EnvironmentSnapshot
		releaseBranch string
		deployStage   domain.BuildStage
		want          bool
	}{
		{
			name:          "eligible push build on release branch",
			snapshot:      eligible,
			releaseBranch: "main",
			deployStage:   domain.StageDeploy,
			want:          true,
		},
		{
			name: "tag build deploys when tag is the release name",
			snapshot: domain.EnvironmentSnapshot{
				EventType:  domain.EventTag,
				TagName:    "v1.0.0",
				BuildStage: domain.StageDeploy,
			},
			releaseBranch: "v1.0.0",
			deployStage:   domain.StageDeploy,
			want:          true,
		},
		{
			name: "pull request never deploys",
			snapshot: domain.EnvironmentSnapshot{
				EventType:     domain.EventPullRequest,
				BranchName:    "main",
				IsPullRequest: true,
				BuildStage:    domain.StageDeploy,
			},
			releaseBranch: "main",
			deployStage:   domain.StageDeploy,
			want:          false,
		},
		{
			name:          "branch mismatch closes the gate",
			snapshot:      eligible,
			releaseBranch: "release",
			deployStage:   domain.StageDeploy,
			want:          false,
		},
		{
			name:          "wrong stage closes the gate",
			snapshot:      eligible,
			releaseBranch: "main",
			deployStage:   domain.StageAfterSuccess,
			want:          false,
		},
		{
			name:          "empty release branch closes the gate",
			snapshot:      domain.EnvironmentSnapshot{BuildStage: domain.StageDeploy},
			releaseBranch: "",
			deployStage:   domain.StageDeploy,
			want:          false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ShouldDeploy(tt.snapshot, tt.releaseBranch, tt.deployStage)
			if got != tt.want {
				t.Errorf("ShouldDeploy() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestShouldDeploy_PullRequestAlwaysBlocked checks the pull-request
// condition independently of the release branch value.
func TestShouldDeploy_PullRequestAlwaysBlocked(t *testing.T) {
	snapshot := domain.EnvironmentSnapshot{
		EventType:     domain.EventPullRequest,
		BranchName:    "main",
		IsPullRequest: true,
		BuildStage:    domain.StageDeploy,
	}

	for _, release := range []string{"main", "release", "", "v1.0.0"} {
		if domain.ShouldDeploy(snapshot, release, domain.StageDeploy) {
			t.Errorf("pull request deployed with releaseBranch=%q", release)
		}
	}
}
