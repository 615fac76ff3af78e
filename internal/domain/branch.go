package domain

// ResolveBranch maps an environment snapshot to the single logical branch
// identifier for this build. Precedence, highest first: the tag name (a tag
// build is reported as its tag), then the branch name, then the empty
// string. The caller decides how to treat an unresolved branch.
func ResolveBranch(s EnvironmentSnapshot) string {
	if s.TagName != "" {
		return s.TagName
	}
	return s.BranchName
}
