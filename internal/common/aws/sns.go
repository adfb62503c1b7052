// internal/common/aws/sns.go
package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// PublishAPI is the part of the SNS client the publisher needs.
type PublishAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSClient publishes events to a single topic.
type SNSClient struct {
	api      PublishAPI
	topicARN string
}

func NewSNSClient(ctx context.Context, region, topicARN string) (*SNSClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewSNSClientWithAPI(sns.NewFromConfig(cfg), topicARN), nil
}

func NewSNSClientWithAPI(api PublishAPI, topicARN string) *SNSClient {
	return &SNSClient{api: api, topicARN: topicARN}
}

// Publish sends message with an eventType attribute and returns the SNS
// message id.
func (s *SNSClient) Publish(ctx context.Context, eventType, subject, message string) (string, error) {
	if s.topicARN == "" {
		return "", fmt.Errorf("sns topic arn not configured")
	}

	out, err := s.api.Publish(ctx, &sns.PublishInput{
		TopicArn: awssdk.String(s.topicARN),
		Subject:  awssdk.String(subject),
		Message:  awssdk.String(message),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"eventType": {DataType: awssdk.String("String"), StringValue: awssdk.String(eventType)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("sns publish: %w", err)
	}
	return awssdk.ToString(out.MessageId), nil
}
