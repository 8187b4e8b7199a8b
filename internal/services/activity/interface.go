package activity

//go:generate mockgen -package=mocks -destination=mocks/mock_publisher.go github.com/KirkDiggler/moodmeet/internal/services/activity Publisher

import (
	"context"

	"github.com/KirkDiggler/moodmeet/internal/models"
)

// Publisher announces composite actions once they have been committed
type Publisher interface {
	Publish(ctx context.Context, a *models.Activity) error
}
