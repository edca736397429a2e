package notify

import (
	"time"

	"github.com/oarkflow/signup/pkg/models"
)

func Loading(key, content string) models.Notification {
	return models.Notification{Key: key, Type: models.NotificationLoading, Content: content}
}

func Success(key, content string, d time.Duration) models.Notification {
	return models.Notification{Key: key, Type: models.NotificationSuccess, Content: content, Duration: d}
}

func Info(key, content string, d time.Duration) models.Notification {
	return models.Notification{Key: key, Type: models.NotificationInfo, Content: content, Duration: d}
}

func Error(key, content string, d time.Duration) models.Notification {
	return models.Notification{Key: key, Type: models.NotificationError, Content: content, Duration: d}
}
