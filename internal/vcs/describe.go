package vcs

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrNotRepository is returned by Describe for a directory outside any git repository
var ErrNotRepository = errors.New("not a git repository")

// RepoInfo summarizes the install root's repository
type RepoInfo struct {
	Branch string // empty on a detached HEAD
	Head   string // short commit hash; empty before the first commit
}

// String renders "main @ 1a2b3c4", "main (no commits)" or "detached @ 1a2b3c4"
func (i RepoInfo) String() string {
	branch := i.Branch
	if branch == "" {
		branch = "detached"
	}
	if i.Head == "" {
		return branch + " (no commits)"
	}
	return branch + " @ " + i.Head
}

// Describe opens the repository containing dir and reads HEAD
func Describe(dir string) (RepoInfo, error) {
	var info RepoInfo

	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return info, ErrNotRepository
		}
		return info, fmt.Errorf("opening repository: %w", err)
	}

	headRef, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return info, fmt.Errorf("reading HEAD: %w", err)
	}
	if headRef.Type() == plumbing.SymbolicReference {
		info.Branch = headRef.Target().Short()
	}

	resolved, err := repo.Head()
	switch {
	case err == nil:
		info.Head = resolved.Hash().String()[:7]
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		// unborn branch
	default:
		return info, fmt.Errorf("resolving HEAD: %w", err)
	}

	return info, nil
}
