// internal/common/aws/ses.go
package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// EmailAPI is the part of the SES client the mailer needs.
type EmailAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESClient sends plain text summaries from a fixed sender.
type SESClient struct {
	api  EmailAPI
	from string
}

func NewSESClient(ctx context.Context, region, from string) (*SESClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewSESClientWithAPI(ses.NewFromConfig(cfg), from), nil
}

func NewSESClientWithAPI(api EmailAPI, from string) *SESClient {
	return &SESClient{api: api, from: from}
}

// Send mails subject and body to every recipient in one request and
// returns the SES message id.
func (s *SESClient) Send(ctx context.Context, to []string, subject, body string) (string, error) {
	if len(to) == 0 {
		return "", fmt.Errorf("no recipients")
	}

	out, err := s.api.SendEmail(ctx, &ses.SendEmailInput{
		Source:      awssdk.String(s.from),
		Destination: &types.Destination{ToAddresses: to},
		Message: &types.Message{
			Subject: &types.Content{Data: awssdk.String(subject), Charset: awssdk.String("UTF-8")},
			Body: &types.Body{
				Text: &types.Content{Data: awssdk.String(body), Charset: awssdk.String("UTF-8")},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("ses send email: %w", err)
	}
	return awssdk.ToString(out.MessageId), nil
}
