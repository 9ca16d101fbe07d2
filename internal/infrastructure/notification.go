package infrastructure

import (
	"fmt"
	"os/exec"

	"github.com/yourusername/media-studio-go/internal/domain"
	"go.uber.org/zap"
)

// NotificationService sends desktop notifications when a batch finishes
type NotificationService struct {
	config *domain.NotificationConfig
	logger *zap.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(config *domain.NotificationConfig, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		config: config,
		logger: logger,
	}
}

// NotifyBatchFinished reports the result of a download batch
func (n *NotificationService) NotifyBatchFinished(succeeded, attempted int) {
	title := "Media Studio"
	message := fmt.Sprintf("Downloaded %d of %d media file(s)", succeeded, attempted)
	if err := n.send(title, message); err != nil {
		n.logger.Warn("Failed to send notification", zap.Error(err))
	}
}

// NotifyGenerationFailed reports a failed generation run
func (n *NotificationService) NotifyGenerationFailed(modelID string, genErr error) {
	title := "Media Studio"
	message := fmt.Sprintf("Generation with %s failed: %v", modelID, genErr)
	if err := n.send(title, message); err != nil {
		n.logger.Warn("Failed to send notification", zap.Error(err))
	}
}

func (n *NotificationService) send(title, message string) error {
	if !n.config.Enabled {
		n.logger.Debug("Notifications disabled, skipping",
			zap.String("title", title),
			zap.String("message", message))
		return nil
	}

	switch n.config.Method {
	case "osascript":
		script := fmt.Sprintf(`display notification %q with title %q`, message, title)
		return exec.Command("osascript", "-e", script).Run()
	case "notify-send":
		return exec.Command("notify-send", title, message).Run()
	default:
		n.logger.Warn("Unknown notification method", zap.String("method", n.config.Method))
		return nil
	}
}
