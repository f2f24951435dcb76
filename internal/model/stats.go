package model

// UserHours is the per-user approved-hour total split by source namespace.
type UserHours struct {
	UserID          string  `json:"userId"`
	ProjectHours    float64 `json:"projectHours"`
	DepartmentHours float64 `json:"departmentHours"`
	TotalHours      float64 `json:"totalHours"`
}

// MemberHours is one leaderboard row.
type MemberHours struct {
	ID              string  `json:"id"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	ProjectHours    float64 `json:"projectHours"`
	DepartmentHours float64 `json:"departmentHours"`
	TotalHours      float64 `json:"totalHours"`
}

// DepartmentLeaderboard is the ordered top-N view consumed by the external
// report renderer. Members with zero total hours are filtered out.
type DepartmentLeaderboard struct {
	DepartmentID   string        `json:"departmentId"`
	DepartmentName string        `json:"departmentName"`
	Members        []MemberHours `json:"members"`
}
