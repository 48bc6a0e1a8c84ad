package entities

// Dashboard aggregates all jobs for the admin view. It is computed from a
// plain scan and is not a consistent snapshot across records.
type Dashboard struct {
	TotalJobs    int               `json:"total_jobs"`
	OpenJobs     int               `json:"open_jobs"`
	StatusCounts map[JobStatus]int `json:"status_counts"`
	Revenue      float64           `json:"revenue"`
}

func BuildDashboard(jobs []JobRecord) Dashboard {
	d := Dashboard{StatusCounts: make(map[JobStatus]int, len(JobStatuses))}
	for _, s := range JobStatuses {
		d.StatusCounts[s] = 0
	}
	for _, j := range jobs {
		d.TotalJobs++
		d.StatusCounts[j.Status]++
		if j.Status == JobStatusOpen {
			d.OpenJobs++
		}
		for _, q := range j.Quotes {
			if q.Status == QuoteStatusApproved {
				d.Revenue += q.Amount
			}
		}
	}
	return d
}
