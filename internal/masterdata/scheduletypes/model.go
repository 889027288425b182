package scheduletypes

import "time"

// ScheduleType is a regulatory classification label (Schedule H, H1, X...).
type ScheduleType struct {
	SchTypeCode  int64      `json:"schTypeCode"`
	SchTypeName  string     `json:"schTypeName"`
	CreatedDate  time.Time  `json:"createdDate"`
	ModifiedDate *time.Time `json:"modifiedDate"`
	CreatedBy    string     `json:"createdBy"`
}
