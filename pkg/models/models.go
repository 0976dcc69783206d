package models

// League represents one league or cup collected from the categories page
type League struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Team represents one team collected from a league page
type Team struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// LeagueTeams groups the teams found on a single league page
type LeagueTeams struct {
	LeagueName string `json:"league_name"`
	LeagueURL  string `json:"league_url"`
	Teams      []Team `json:"teams"`
}

// FiltersApplied records, in the stage 1 artifact, which search filters
// produced the league listing. Values are human-readable descriptions.
type FiltersApplied struct {
	Sport  string `json:"sport"`
	Area   string `json:"area"`
	Type   string `json:"type"`
	Gender string `json:"gender"`
	Age    string `json:"age"`
}

// LeaguesDocument is the stage 1 artifact: the filtered league listing
// plus enough metadata for downstream stages and operators to judge it.
type LeaguesDocument struct {
	Timestamp      string         `json:"timestamp"`
	FiltersApplied FiltersApplied `json:"filters_applied"`
	Leagues        []League       `json:"leagues"`
}

// TeamsDocument is the stage 2 artifact. LeaguesProcessed counts the
// upstream leagues attempted; TotalTeams sums the teams extracted.
type TeamsDocument struct {
	Timestamp        string        `json:"timestamp"`
	LeaguesProcessed int           `json:"leagues_processed"`
	TotalTeams       int           `json:"total_teams"`
	Leagues          []LeagueTeams `json:"leagues"`
}

// Official is one roster official as extracted from a team's players page.
// Email may be empty when the page lists the person without contact links.
type Official struct {
	Name     string
	Position string
	Email    string
	Phone    string
}

// ContactCandidate is the at-most-one official chosen for a team, tagged
// with the team and league it was found under. Candidates feed the
// email-keyed merge that produces the final Contact records.
type ContactCandidate struct {
	Official
	Team   string
	League string
}

// Contact is one deduplicated administrator row in the stage 3 CSV.
// Teams and Leagues accumulate, in first-seen order, every team/league
// the same email address was collected from.
type Contact struct {
	Name     string
	Position string
	Email    string
	Phone    string
	Teams    []string
	Leagues  []string
}
