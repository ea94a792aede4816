package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/DCSlucifer/quickblog-backend/database"
	"github.com/DCSlucifer/quickblog-backend/pkg/gorm"
	"github.com/google/uuid"
)

// SubscribeStatus describes what Subscribe did with the given address.
type SubscribeStatus int

const (
	SubscribeCreated SubscribeStatus = iota
	SubscribeReactivated
	SubscribeAlreadyActive
)

type Subscribers struct {
	DB *database.Connection
}

func NormaliseEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Subscribe creates an active subscriber for a new address, reactivates an
// inactive one, and reports an already-active address without touching it.
// Email uniqueness is enforced at the storage layer.
func (s Subscribers) Subscribe(email string) (*database.Subscriber, SubscribeStatus, error) {
	address := NormaliseEmail(email)

	existing := database.Subscriber{}
	result := s.DB.Sql().Where("email = ?", address).First(&existing)

	if gorm.IsFoundButHasErrors(result.Error) {
		return nil, SubscribeCreated, fmt.Errorf("issue looking up subscriber [%s]: %s", address, result.Error)
	}

	if result.Error == nil {
		if existing.IsActive {
			return &existing, SubscribeAlreadyActive, nil
		}

		existing.IsActive = true
		existing.SubscribedAt = time.Now()

		if save := s.DB.Sql().Save(&existing); gorm.HasDbIssues(save.Error) {
			return nil, SubscribeReactivated, fmt.Errorf("issue reactivating subscriber [%s]: %s", address, save.Error)
		}

		return &existing, SubscribeReactivated, nil
	}

	subscriber := database.Subscriber{
		UUID:         uuid.NewString(),
		Email:        address,
		IsActive:     true,
		SubscribedAt: time.Now(),
	}

	if create := s.DB.Sql().Create(&subscriber); gorm.HasDbIssues(create.Error) {
		return nil, SubscribeCreated, fmt.Errorf("issue creating subscriber [%s]: %s", address, create.Error)
	}

	return &subscriber, SubscribeCreated, nil
}

// Unsubscribe deactivates the subscriber. It reports false when the address
// was never subscribed.
func (s Subscribers) Unsubscribe(email string) (bool, error) {
	address := NormaliseEmail(email)

	result := s.DB.Sql().
		Model(&database.Subscriber{}).
		Where("email = ?", address).
		Update("is_active", false)

	if gorm.HasDbIssues(result.Error) {
		return false, fmt.Errorf("issue unsubscribing [%s]: %s", address, result.Error)
	}

	return result.RowsAffected > 0, nil
}

// Active returns every subscriber eligible for notification fanout.
func (s Subscribers) Active() ([]database.Subscriber, error) {
	var subscribers []database.Subscriber

	result := s.DB.Sql().
		Where("is_active = ?", true).
		Order("subscribed_at ASC, id ASC").
		Find(&subscribers)

	if gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue fetching active subscribers: %s", result.Error)
	}

	return subscribers, nil
}

// All lists subscribers for the admin surface, optionally narrowed on the
// active flag, most recent subscription first.
func (s Subscribers) All(active *bool) ([]database.Subscriber, error) {
	query := s.DB.Sql().Model(&database.Subscriber{})

	if active != nil {
		query.Where("is_active = ?", *active)
	}

	var subscribers []database.Subscriber

	result := query.
		Order("subscribed_at DESC, id DESC").
		Find(&subscribers)

	if gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue listing subscribers: %s", result.Error)
	}

	return subscribers, nil
}

func (s Subscribers) Delete(subscriberUUID string) (bool, error) {
	result := s.DB.Sql().
		Where("uuid = ?", subscriberUUID).
		Delete(&database.Subscriber{})

	if gorm.HasDbIssues(result.Error) {
		return false, fmt.Errorf("issue deleting subscriber [%s]: %s", subscriberUUID, result.Error)
	}

	return result.RowsAffected > 0, nil
}
