package domain

// ShouldDeploy reports whether the current invocation is eligible to deploy.
// All conditions must hold:
//   - the build is not a pull request (untrusted code never deploys),
//   - the resolved branch equals the designated release branch,
//   - the build stage equals the designated deploy stage.
//
// An unresolvable branch or empty release branch closes the gate; a closed
// gate is a filter, not an error.
func ShouldDeploy(s EnvironmentSnapshot, releaseBranch string, deployStage BuildStage) bool {
	if s.IsPullRequest {
		return false
	}
	if releaseBranch == "" {
		return false
	}
	if ResolveBranch(s) != releaseBranch {
		return false
	}
	return s.BuildStage == deployStage
}
