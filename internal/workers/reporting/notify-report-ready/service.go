// internal/workers/reporting/notify-report-ready/service.go
package notifyreportready

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"

	"saas-benchmarks/internal/common/database"
	"saas-benchmarks/internal/common/errors"
	"saas-benchmarks/internal/common/logger"
	"saas-benchmarks/internal/models"
)

const (
	ChannelSNS   = "sns"
	ChannelEmail = "email"
)

// ReportStore is satisfied by database.ReportStore. Sent markers make a
// retried job skip the channels that already went out.
type ReportStore interface {
	Get(ctx context.Context, id string, out interface{}) error
	SentMessageID(ctx context.Context, id, channel string) (string, error)
	MarkSent(ctx context.Context, id, channel, msgID string) error
}

// Mailer is satisfied by aws.SESClient.
type Mailer interface {
	Send(ctx context.Context, to []string, subject, body string) (string, error)
}

// EventPublisher is satisfied by aws.SNSClient.
type EventPublisher interface {
	Publish(ctx context.Context, eventType, subject, message string) (string, error)
}

// ServiceDependencies groups the collaborators. Mailer and Events may be nil
// when the channel is not configured.
type ServiceDependencies struct {
	Reports ReportStore
	Mailer  Mailer
	Events  EventPublisher
	Logger  logger.Logger
}

type Service struct {
	config  *Config
	reports ReportStore
	mailer  Mailer
	events  EventPublisher
	logger  logger.Logger
}

func NewService(deps ServiceDependencies, config *Config) *Service {
	return &Service{
		config:  config,
		reports: deps.Reports,
		mailer:  deps.Mailer,
		events:  deps.Events,
		logger:  deps.Logger,
	}
}

func (s *Service) Execute(ctx context.Context, input *Input) (*Output, error) {
	id := strings.TrimSpace(input.ReportID)
	if id == "" {
		return nil, errors.NewInvalidInputError("reportId is required")
	}

	recipients := input.Recipients
	if len(recipients) == 0 {
		recipients = s.config.Recipients
	}
	for _, r := range recipients {
		if !isValidEmail(r) {
			return nil, errors.NewInvalidInputError(fmt.Sprintf("invalid recipient: %s", r))
		}
	}

	useSNS := s.config.SNSEnabled && s.events != nil
	useEmail := s.config.EmailEnabled && s.mailer != nil && len(recipients) > 0
	if !useSNS && !useEmail {
		return nil, errors.NewNotificationUnavailableError("sns and email are disabled or have no target")
	}

	var stored storedReport
	if err := s.reports.Get(ctx, id, &stored); err != nil {
		if stderrors.Is(err, database.ErrNotFound) {
			return nil, errors.NewReportNotFoundError(id)
		}
		return nil, errors.NewReportStoreFailedError(err)
	}
	env := stored.Envelope
	subject := s.subject(env)

	out := &Output{Channels: []string{}, MessageIDs: map[string]string{}}

	if useSNS {
		payload, err := json.Marshal(env)
		if err != nil {
			return nil, errors.NewInternalError(err)
		}
		msgID, err := s.deliver(ctx, id, ChannelSNS, func() (string, error) {
			return s.events.Publish(ctx, s.config.EventType, subject, string(payload))
		})
		if err != nil {
			return nil, err
		}
		out.Channels = append(out.Channels, ChannelSNS)
		out.MessageIDs[ChannelSNS] = msgID
	}

	if useEmail {
		msgID, err := s.deliver(ctx, id, ChannelEmail, func() (string, error) {
			return s.mailer.Send(ctx, recipients, subject, emailBody(env))
		})
		if err != nil {
			return nil, err
		}
		out.Channels = append(out.Channels, ChannelEmail)
		out.MessageIDs[ChannelEmail] = msgID
		out.Recipients = recipients
	}

	out.Notified = true
	s.logger.Info("report notification sent", map[string]interface{}{
		"reportId": id,
		"channels": out.Channels,
	})
	return out, nil
}

// deliver sends on channel unless an earlier attempt already did, and
// returns the message ID either way.
func (s *Service) deliver(ctx context.Context, id, channel string, send func() (string, error)) (string, error) {
	prev, err := s.reports.SentMessageID(ctx, id, channel)
	if err != nil {
		return "", errors.NewReportStoreFailedError(err)
	}
	if prev != "" {
		s.logger.Info("channel already notified, skipping", map[string]interface{}{
			"reportId":  id,
			"channel":   channel,
			"messageId": prev,
		})
		return prev, nil
	}

	msgID, err := send()
	if err != nil {
		return "", errors.NewNotificationSendFailedError(channel, err)
	}
	if msgID == "" {
		msgID = "sent"
	}
	if err := s.reports.MarkSent(ctx, id, channel, msgID); err != nil {
		s.logger.Warn("sent marker not stored, a retry may resend", map[string]interface{}{
			"reportId": id,
			"channel":  channel,
			"error":    err.Error(),
		})
	}
	return msgID, nil
}

func (s *Service) subject(env models.ReportEnvelope) string {
	name := env.CompanyName
	if name == "" {
		name = env.Bucket
	}
	return fmt.Sprintf("%s: %s", s.config.SubjectPrefix, name)
}

func emailBody(env models.ReportEnvelope) string {
	var b strings.Builder
	if env.CompanyName != "" {
		b.WriteString(fmt.Sprintf("Company: %s\n", env.CompanyName))
	}
	b.WriteString(fmt.Sprintf("ARR scale: %s\n", env.Bucket))
	b.WriteString(fmt.Sprintf("Industry: %s\n", env.Industry))
	b.WriteString(fmt.Sprintf("IPO readiness: %d/100\n", env.IPOScore))
	b.WriteString(fmt.Sprintf("Resilience: %d/100\n", env.Resilience))
	if len(env.Fallbacks) > 0 {
		b.WriteString("\nSubstituted benchmarks:\n")
		for _, f := range env.Fallbacks {
			b.WriteString(fmt.Sprintf("- %s\n", f))
		}
	}
	b.WriteString(fmt.Sprintf("\nReport ID: %s (available until %s)\n",
		env.ReportID, env.ExpiresAt.Format("2006-01-02 15:04 MST")))
	return b.String()
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}
	return strings.Contains(parts[1], ".")
}
