package notification

import (
	"context"
	"log/slog"

	"billing/config"
	"billing/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// maxMulticastTokens is the FCM limit for a single multicast request.
const maxMulticastTokens = 500

// multicastSender is the part of *messaging.Client the service uses.
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
	logger *slog.Logger
}

// Params holds the dependencies of the FCM notification service
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFirebaseService creates the FCM notification service. Without credentials it
// returns a service that only logs, so local runs need no Firebase project.
func NewFirebaseService(params Params) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Warn("Firebase credentials not configured, push notifications will only be logged")

		return &logOnlyService{logger: params.Logger}, nil
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase app")
	}

	client, err := app.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get messaging client")
	}

	return newFirebaseService(client, params.Logger), nil
}

func newFirebaseService(client multicastSender, logger *slog.Logger) *firebaseService {
	return &firebaseService{client: client, logger: logger}
}

// SendBatchNotification sends one notification to every token, splitting the
// tokens into FCM sized chunks.
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	invalidTokens = make([]string, 0)
	for start := 0; start < len(tokens); start += maxMulticastTokens {
		end := min(start+maxMulticastTokens, len(tokens))
		chunk := tokens[start:end]

		response, sendErr := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: chunk,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		})
		if sendErr != nil {
			return successCount, failureCount, invalidTokens, errors.Wrap(sendErr, "send multicast notification")
		}

		successCount += response.SuccessCount
		failureCount += response.FailureCount

		for idx, sendResponse := range response.Responses {
			if sendResponse.Error == nil {
				continue
			}
			if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
				invalidTokens = append(invalidTokens, chunk[idx])
			}
		}
	}

	return successCount, failureCount, invalidTokens, nil
}

type logOnlyService struct {
	logger *slog.Logger
}

func (s *logOnlyService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, []string, error) {
	s.logger.InfoContext(ctx, "Push notification skipped",
		slog.Int("tokens", len(tokens)),
		slog.String("title", title),
		slog.Any("data", data),
	)

	return len(tokens), 0, nil, nil
}
