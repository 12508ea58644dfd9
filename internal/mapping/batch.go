package mapping

// Jobs-per-request limits enforced by the mapping API.
const (
	MaxJobsWithoutKey = 10
	MaxJobsWithKey    = 100
)

// JobsPerRequest returns how many jobs a single mapping request may carry.
func JobsPerRequest(hasAPIKey bool) int {
	if hasAPIKey {
		return MaxJobsWithKey
	}
	return MaxJobsWithoutKey
}

// Batch splits jobs into consecutive request-sized chunks. A non-positive size
// yields a single chunk. The chunks share the backing array of jobs.
func Batch(jobs []MappingJob, size int) [][]MappingJob {
	if len(jobs) == 0 {
		return nil
	}
	if size <= 0 || size >= len(jobs) {
		return [][]MappingJob{jobs}
	}

	batches := make([][]MappingJob, 0, (len(jobs)+size-1)/size)
	for i := 0; i < len(jobs); i += size {
		end := min(i+size, len(jobs))
		batches = append(batches, jobs[i:end:end])
	}
	return batches
}
