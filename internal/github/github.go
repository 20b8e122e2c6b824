// Package github loads the locally synced GitHub profile snapshot.
//
// The snapshot lives at <data dir>/github_profile.json and is written
// by an external sync step. Everything here is offline: a missing or
// unreadable snapshot produces an empty summary with a hint message,
// never an error.
package github

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

const snapshotFile = "github_profile.json"

// Profile is the synced user profile.
type Profile struct {
	Name       string `json:"name"`
	Username   string `json:"username"`
	Bio        string `json:"bio"`
	Location   string `json:"location"`
	Followers  int    `json:"followers"`
	Following  int    `json:"following"`
	AvatarFile string `json:"avatar_file"`
}

// Repo is one synced repository entry.
type Repo struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Language    *string `json:"language"`
	Stars       int     `json:"stars"`
	UpdatedAt   string  `json:"updated_at"`
	Private     bool    `json:"private"`
	HTMLURL     string  `json:"html_url"`
}

// Contribution is a single day's contribution count.
type Contribution struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Summary is the dashboard view of the snapshot for one year.
type Summary struct {
	Profile        *Profile       `json:"profile"`
	Repos          []Repo         `json:"repos"`
	Contributions  []Contribution `json:"contributions"`
	AvailableYears []int          `json:"available_years"`
	Year           int            `json:"year"`
	LastSyncYear   *int           `json:"last_sync_year"`
	LastSync       string         `json:"last_sync,omitempty"`
	Message        string         `json:"message,omitempty"`
}

type snapshot struct {
	Profile             *Profile                  `json:"profile"`
	Repos               []Repo                    `json:"repos"`
	Contributions       []Contribution            `json:"contributions"`
	ContributionsByYear map[string][]Contribution `json:"contributions_by_year"`
	LastSync            string                    `json:"last_sync"`
	LastSyncYear        *int                      `json:"last_sync_year"`
	Message             string                    `json:"message"`
}

// Loader reads snapshots from a fixed data directory.
type Loader struct {
	DataDir string
}

// Summary assembles the dashboard view. year 0 means "pick for me":
// the last synced year, else the newest available year, else the
// current year.
func (l *Loader) Summary(year int) Summary {
	path := filepath.Join(l.DataDir, snapshotFile)
	raw, err := os.ReadFile(path)
	if err != nil {
		return Summary{
			Repos:          []Repo{},
			Contributions:  []Contribution{},
			AvailableYears: []int{},
			Year:           pickYear(year, nil, nil),
			Message:        "No GitHub profile data found. Run a sync to populate " + snapshotFile + ".",
		}
	}

	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return Summary{
			Repos:          []Repo{},
			Contributions:  []Contribution{},
			AvailableYears: []int{},
			Year:           pickYear(year, nil, nil),
			Message:        "GitHub profile data is corrupt. Re-run the sync.",
		}
	}

	years := make([]int, 0, len(snap.ContributionsByYear))
	for key := range snap.ContributionsByYear {
		if y, err := strconv.Atoi(key); err == nil {
			years = append(years, y)
		}
	}
	sort.Ints(years)

	selected := pickYear(year, snap.LastSyncYear, years)

	contributions := snap.Contributions
	if len(snap.ContributionsByYear) > 0 {
		contributions = snap.ContributionsByYear[strconv.Itoa(selected)]
	}
	if contributions == nil {
		contributions = []Contribution{}
	}
	if snap.Repos == nil {
		snap.Repos = []Repo{}
	}

	return Summary{
		Profile:        snap.Profile,
		Repos:          snap.Repos,
		Contributions:  contributions,
		AvailableYears: years,
		Year:           selected,
		LastSyncYear:   snap.LastSyncYear,
		LastSync:       snap.LastSync,
		Message:        snap.Message,
	}
}

// AvatarPath resolves a snapshot avatar file name inside the data
// dir. Path traversal is stripped; a missing file yields "".
func (l *Loader) AvatarPath(fileName string) string {
	name := filepath.Base(fileName)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return ""
	}
	path := filepath.Join(l.DataDir, name)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func pickYear(requested int, lastSync *int, available []int) int {
	if requested != 0 {
		return requested
	}
	if lastSync != nil {
		return *lastSync
	}
	if len(available) > 0 {
		return available[len(available)-1]
	}
	return time.Now().Year()
}
