package domain

type CacheStatus struct {
	Backend       string       `json:"backend"`
	Entries       int          `json:"entries"`
	Hits          int64        `json:"hits"`
	Misses        int64        `json:"misses"`
	Generation    string       `json:"generation"`
	RecentFetches []SheetFetch `json:"recentFetches,omitempty"`
}
