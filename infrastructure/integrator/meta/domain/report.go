package metadomain

// JobStatus é o estado local de um relatório assíncrono
type JobStatus string

const (
	JobStatusCreated   JobStatus = "created"
	JobStatusPolling   JobStatus = "polling"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusSkipped   JobStatus = "skipped"
	JobStatusTimedOut  JobStatus = "timed_out"
)

// Valores de async_status devolvidos pela API
const (
	AsyncStatusCompleted = "Job Completed"
	AsyncStatusFailed    = "Job Failed"
	AsyncStatusSkipped   = "Job Skipped"
)

// ReportJob acompanha um relatório assíncrono (report run)
type ReportJob struct {
	ReportID        string
	Status          JobStatus
	AsyncStatus     string
	PercentComplete int
}

// ReportRunResponse é a resposta do POST /act_<id>/insights
type ReportRunResponse struct {
	ReportRunID string `json:"report_run_id"`
}

// ReportStatusResponse é a resposta do GET /<report_run_id>
type ReportStatusResponse struct {
	ID                     string `json:"id"`
	AsyncStatus            string `json:"async_status"`
	AsyncPercentCompletion int    `json:"async_percent_completion"`
}
