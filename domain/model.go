package domain

import "time"

type JobStatus string

const (
	JobPending    JobStatus = "pending"
	JobProcessing JobStatus = "processing"
	JobCompleted  JobStatus = "completed"
	JobFailed     JobStatus = "failed"
)

// Terminal reports whether no further transition can leave the status.
func (s JobStatus) Terminal() bool {
	return s == JobCompleted || s == JobFailed
}

// Job is the durable record of one video generation request. The job store
// owns it; the orchestrator only writes status-transition fields back.
type Job struct {
	ID            string
	UserID        string
	Topic         string
	Style         string
	Speaker       int
	EnablePreview bool
	Status        JobStatus
	ResultPath    string
	ErrorDetail   string
	SceneOutcomes []SceneOutcome
	CreatedAt     time.Time
	CompletedAt   *time.Time
}

// Scene is one ranked item of a script. Text is the spoken content and must
// not describe the visuals; VisualConcept is prompt material for image
// generation and is never surfaced to end users.
type Scene struct {
	Text          string
	VisualConcept string
	DurationHint  float64
}

type Script struct {
	Title  string
	Style  string
	Scenes []Scene
}

// SceneAsset pairs one scene's generated image and audio files. Index is the
// scene's position in the script and is the only thing that keeps audio and
// image from crossing scenes, so it is set once and never recomputed.
type SceneAsset struct {
	Index     int
	ImagePath string
	AudioPath string
}

type TitleAsset struct {
	ImagePath string
	AudioPath string
}

// SceneOutcome records whether a scene survived into the encoded output.
type SceneOutcome struct {
	Index    int    `json:"index"`
	Included bool   `json:"included"`
	Reason   string `json:"reason,omitempty"`
}

// Progress is the ephemeral in-flight snapshot kept in the progress cache.
// It is advisory only; the job store status is authoritative.
type Progress struct {
	Percent int    `json:"progress"`
	Step    string `json:"current_step"`
}

type TopicSuggestion struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	EstimatedViews string `json:"estimated_views"`
}

// JobStatusView is the merged store/cache answer to a status query.
type JobStatusView struct {
	JobID         string
	Status        JobStatus
	Percent       int
	Step          string
	ResultURL     string
	ErrorDetail   string
	SceneOutcomes []SceneOutcome
}

// JobSummary is one line of a user's generation history.
type JobSummary struct {
	ID          string
	Topic       string
	Style       string
	Status      JobStatus
	CreatedAt   time.Time
	DownloadURL string
}
