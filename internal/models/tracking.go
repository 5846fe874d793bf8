package models

import "time"

// RepoActivity is the aggregated activity of one repository on one day
type RepoActivity struct {
	Repo         string `json:"repo"`
	Count        int    `json:"count"`
	LinesAdded   int    `json:"lines_added"`
	LinesDeleted int    `json:"lines_deleted"`
	FilesChanged int    `json:"files_changed"`
}

// TrackResult summarizes one tracking run across all discovered repositories
type TrackResult struct {
	Date         time.Time      `json:"date"`
	TotalCommits int            `json:"total_commits"`
	Repositories []RepoActivity `json:"repositories"`
	UserEmails   []string       `json:"user_emails"`
}
