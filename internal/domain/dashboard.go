package domain

// ElectionVotes is one bar of the votes-per-election chart
type ElectionVotes struct {
	Name  string `json:"name"`
	Votes int    `json:"votes"`
}

// ElectionCandidates is one bar of the candidates-per-election chart
type ElectionCandidates struct {
	Name       string `json:"name"`
	Candidates int    `json:"candidates"`
}

// DashboardStats is the admin dashboard aggregate
type DashboardStats struct {
	TotalVotes            int                  `json:"total_votes"`
	TotalElections        int                  `json:"total_elections"`
	TotalCandidates       int                  `json:"total_candidates"`
	ActiveElections       int                  `json:"active_elections"`
	UpcomingElections     int                  `json:"upcoming_elections"`
	ClosedElections       int                  `json:"closed_elections"`
	VotesPerElection      []ElectionVotes      `json:"votes_per_election"`
	CandidatesPerElection []ElectionCandidates `json:"candidates_per_election"`
}
