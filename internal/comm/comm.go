package comm

import "time"

// Status is the workflow state of a commission.
type Status string

const (
	StatusPending   Status = "pending"
	StatusProgress  Status = "progress"
	StatusCompleted Status = "completed"
)

// Priority ranks how urgent a commission is.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Kind is the category of work a commission asks for.
type Kind string

const (
	Kind2D          Kind = "2d"
	Kind3D          Kind = "3d"
	KindTranslation Kind = "translation"
	KindWeb         Kind = "web"
)

// Comm is one tracked commission record, persisted as comm.json inside
// the commission's folder. A Price of 0 means the work is a request
// (free). The References field is advisory: the on-disk references
// folder is the source of truth for attachments.
type Comm struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Commissioner string    `json:"commissioner"`
	Price        int64     `json:"price"`
	Currency     string    `json:"currency"`
	Deadline     string    `json:"deadline"`
	Status       Status    `json:"status"`
	Priority     Priority  `json:"priority"`
	Type         Kind      `json:"type"`
	Description  string    `json:"description,omitempty"`
	Pinned       bool      `json:"pinned"`
	References   []string  `json:"references,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// DefaultCurrency is applied when a record carries no currency.
const DefaultCurrency = "USD"

// Configuration is the single process-wide user-preferences record,
// stored as config.json at the data root.
type Configuration struct {
	Username           string `json:"username"`
	Theme              string `json:"theme"`
	PrimaryColor       string `json:"primaryColor"`
	Language           string `json:"language"`
	BackgroundImage    string `json:"backgroundImage"`
	BackgroundAllPages bool   `json:"backgroundAllPages"`
	ZoomLevel          string `json:"zoomLevel"`
}

// DefaultConfiguration returns the preferences written on first run.
func DefaultConfiguration() Configuration {
	return Configuration{
		Username:           "User",
		Theme:              "light",
		PrimaryColor:       "#3b82f6",
		Language:           "en",
		BackgroundImage:    "",
		BackgroundAllPages: false,
		ZoomLevel:          "100",
	}
}
