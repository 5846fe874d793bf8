package services

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bigfootdev/bigfoot/internal/models"
	"github.com/bigfootdev/bigfoot/internal/repositories"
	"github.com/bigfootdev/bigfoot/pkg/logger"
)

type TrackerService struct {
	commitRepo  *repositories.CommitRepository
	searchPaths []string
	gitTimeout  time.Duration
}

func NewTrackerService(commitRepo *repositories.CommitRepository, searchPaths []string, gitTimeout time.Duration) *TrackerService {
	return &TrackerService{
		commitRepo:  commitRepo,
		searchPaths: searchPaths,
		gitTimeout:  gitTimeout,
	}
}

// FindGitRepositories walks the configured search paths and returns every
// directory containing a .git directory
func (s *TrackerService) FindGitRepositories() []string {
	var repos []string
	seen := make(map[string]bool)

	for _, searchPath := range s.searchPaths {
		if _, err := os.Stat(searchPath); err != nil {
			continue
		}

		err := filepath.WalkDir(searchPath, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return nil // unreadable entries are skipped, not fatal
			}
			if !entry.IsDir() {
				return nil
			}
			if entry.Name() == ".git" {
				repoPath := filepath.Dir(path)
				if !seen[repoPath] {
					seen[repoPath] = true
					repos = append(repos, repoPath)
				}
				return filepath.SkipDir
			}
			// Don't descend into other hidden directories
			if strings.HasPrefix(entry.Name(), ".") && path != searchPath {
				return filepath.SkipDir
			}
			return nil
		})
		if err != nil {
			logger.WithError(err).Warnf("failed to walk %s", searchPath)
		}
	}

	sort.Strings(repos)
	return repos
}

// TrackDate scans every discovered repository for the user's commits on a
// date, aggregates per repo and upserts the results into the store
func (s *TrackerService) TrackDate(ctx context.Context, date time.Time) (*models.TrackResult, error) {
	day := models.DateOnly(date)
	repos := s.FindGitRepositories()

	result := &models.TrackResult{Date: day}
	if len(repos) == 0 {
		return result, nil
	}

	allEmails := make(map[string]bool)
	activityByName := make(map[string]*models.RepoActivity)

	for _, repoPath := range repos {
		emails := s.userEmails(ctx, repoPath)
		for email := range emails {
			allEmails[email] = true
		}

		shas, err := s.commitSHAsForDate(ctx, repoPath, day, emails)
		if err != nil {
			logger.WithError(err).Warnf("could not process %s", repoPath)
			continue
		}
		if len(shas) == 0 {
			continue
		}

		activity := &models.RepoActivity{
			Repo:  filepath.Base(repoPath),
			Count: len(shas),
		}
		for _, sha := range shas {
			added, deleted, files := s.commitStats(ctx, repoPath, sha)
			activity.LinesAdded += added
			activity.LinesDeleted += deleted
			activity.FilesChanged += files
		}

		// Repositories with the same basename aggregate into one record
		if existing, ok := activityByName[activity.Repo]; ok {
			existing.Count += activity.Count
			existing.LinesAdded += activity.LinesAdded
			existing.LinesDeleted += activity.LinesDeleted
			existing.FilesChanged += activity.FilesChanged
		} else {
			activityByName[activity.Repo] = activity
		}
	}

	names := make([]string, 0, len(activityByName))
	for name := range activityByName {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		activity := activityByName[name]
		record := models.NewCommitRecord(activity.Repo, day, activity.Count, activity.LinesAdded, activity.LinesDeleted)
		if err := s.commitRepo.Upsert(record); err != nil {
			return nil, fmt.Errorf("failed to save commits for %s: %w", activity.Repo, err)
		}
		result.Repositories = append(result.Repositories, *activity)
		result.TotalCommits += activity.Count
	}

	for email := range allEmails {
		result.UserEmails = append(result.UserEmails, email)
	}
	sort.Strings(result.UserEmails)

	return result, nil
}

// TrackRange tracks every date in an inclusive range
func (s *TrackerService) TrackRange(ctx context.Context, startDate, endDate time.Time) ([]*models.TrackResult, error) {
	var results []*models.TrackResult

	for day := models.DateOnly(startDate); !day.After(models.DateOnly(endDate)); day = day.AddDate(0, 0, 1) {
		result, err := s.TrackDate(ctx, day)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

// userEmails collects the email addresses the user commits under in a
// repository: global and local git config plus recent commit authors
func (s *TrackerService) userEmails(ctx context.Context, repoPath string) map[string]bool {
	emails := make(map[string]bool)

	if out, err := s.git(ctx, repoPath, "config", "--global", "user.email"); err == nil && out != "" {
		emails[out] = true
	}
	if out, err := s.git(ctx, repoPath, "config", "user.email"); err == nil && out != "" {
		emails[out] = true
	}
	if out, err := s.git(ctx, repoPath, "log", "--format=%ae", "-n", "100"); err == nil {
		for _, line := range strings.Split(out, "\n") {
			email := strings.TrimSpace(line)
			if email != "" && strings.Contains(email, "@") {
				emails[email] = true
			}
		}
	}

	return emails
}

// commitSHAsForDate lists the SHAs of the user's commits on one date
func (s *TrackerService) commitSHAsForDate(ctx context.Context, repoPath string, date time.Time, userEmails map[string]bool) ([]string, error) {
	dateStr := date.Format(models.DateFormat)
	out, err := s.git(ctx, repoPath, "log",
		"--since="+dateStr+" 00:00:00",
		"--until="+dateStr+" 23:59:59",
		"--format=%H|%ae",
	)
	if err != nil {
		return nil, err
	}

	var shas []string
	for _, line := range strings.Split(out, "\n") {
		parts := strings.SplitN(strings.TrimSpace(line), "|", 2)
		if len(parts) != 2 {
			continue
		}
		sha, email := parts[0], parts[1]
		if len(userEmails) > 0 && !userEmails[email] {
			continue
		}
		shas = append(shas, sha)
	}

	return shas, nil
}

// commitStats parses `git show --numstat` output for one commit. Binary
// files report "-" for both columns and count only as changed files.
func (s *TrackerService) commitStats(ctx context.Context, repoPath, sha string) (added, deleted, files int) {
	out, err := s.git(ctx, repoPath, "show", "--numstat", "--format=", sha)
	if err != nil {
		return 0, 0, 0
	}

	for _, line := range strings.Split(out, "\n") {
		parts := strings.Split(line, "\t")
		if len(parts) < 2 {
			continue
		}
		if n, err := strconv.Atoi(parts[0]); err == nil {
			added += n
		}
		if n, err := strconv.Atoi(parts[1]); err == nil {
			deleted += n
		}
		files++
	}

	return added, deleted, files
}

// git runs a git command in a repository with the configured timeout
func (s *TrackerService) git(ctx context.Context, repoPath string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.gitTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = repoPath

	out, err := cmd.Output()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(out)), nil
}
