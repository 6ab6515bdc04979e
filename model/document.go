package model

// Document categories.
const (
	DocumentContract = "contract"
	DocumentPolicy   = "policy"
	DocumentReport   = "report"
	DocumentOther    = "other"
)

// Document is an uploaded employee document.
type Document struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	FileName   string `json:"file_name"`
	FileSize   int64  `json:"file_size"`
	FileURL    string `json:"file_url"`
	UploadedBy string `json:"uploaded_by"`
	UploadedAt string `json:"uploaded_at"`
}

// Announcement is a company-wide or audience-targeted announcement.
type Announcement struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	Priority       string `json:"priority"`
	TargetAudience string `json:"target_audience,omitempty"`
	CreatedBy      string `json:"created_by,omitempty"`
	CreatedAt      string `json:"created_at"`
}
