package project

import "github.com/google/uuid"

// Stats counts the tasks associated with one project, grouped by status.
type Stats struct {
	ProjectID  uuid.UUID
	Todo       int
	InProgress int
	Complete   int
	Total      int
}

// ParseIDs converts raw identifiers for a stats request. Malformed values
// become uuid.Nil, which matches no project, so one bad id never fails the
// whole batch.
func ParseIDs(raw []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			id = uuid.Nil
		}
		ids = append(ids, id)
	}
	return ids
}
