package domain

import (
	"strings"
	"time"
)

// ComplaintStatus enumerates lifecycle states for complaints.
type ComplaintStatus string

const (
	ComplaintStatusPending   ComplaintStatus = "Pending"
	ComplaintStatusResolved  ComplaintStatus = "Resolved"
	ComplaintStatusWithdrawn ComplaintStatus = "Withdrawn"
)

// Complaint is the aggregate for public submissions.
type Complaint struct {
	ID                 string
	TrackingID         string
	SubmitterName      string
	SubmitterEmail     string
	Body               string
	BodyHTML           string
	Status             ComplaintStatus
	SubmitterIP        *string
	SubmitterUserAgent *string
	ResolvedAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TrackingIDFromID derives the public tracking handle from a complaint id:
// the id's leading segment, upper-cased. Lookups treat it case-insensitively.
func TrackingIDFromID(id string) string {
	if i := strings.Index(id, "-"); i > 0 {
		return strings.ToUpper(id[:i])
	}
	return strings.ToUpper(id)
}

// AttachmentReference stores metadata for files held in external storage.
type AttachmentReference struct {
	ID          string
	ComplaintID string
	StorageKey  string
	FileName    string
	MimeType    string
	SizeBytes   int64
	CreatedAt   time.Time
}
