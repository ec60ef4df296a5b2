package notification

import (
	"go-appointment-api/core/database"
	"go-appointment-api/modules/notification/repository"
	"go-appointment-api/modules/notification/service"

	"github.com/hibiken/asynq"
)

// Init initializes the notification module. It has no HTTP surface; the
// returned service is the dispatcher other modules enqueue through, and
// RegisterHandlers hooks it into the asynq worker.
func Init(db database.Database, client *asynq.Client, sender service.Sender) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	return service.NewNotificationService(repo, client, sender)
}
