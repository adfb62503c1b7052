// internal/workers/reporting/notify-report-ready/models.go
package notifyreportready

import "saas-benchmarks/internal/models"

type Input struct {
	ReportID   string   `json:"reportId"`
	Recipients []string `json:"recipients,omitempty"`
}

type Output struct {
	Notified   bool              `json:"notified"`
	Channels   []string          `json:"channels"`
	MessageIDs map[string]string `json:"messageIds"`
	Recipients []string          `json:"recipients,omitempty"`
}

// storedReport reads only the envelope of a published report.
type storedReport struct {
	Envelope models.ReportEnvelope `json:"envelope"`
}
