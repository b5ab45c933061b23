package services

import (
	"errors"
	"time"

	"github.com/zakariamer/fitnessWebsite/models"

	"gorm.io/gorm"
)

// ErrNegativeCalories is returned when a caller tries to log a negative
// amount. Zero is a valid entry; negative input is rejected outright,
// never clamped.
var ErrNegativeCalories = errors.New("calories must not be negative")

// CalorieStore is the persistence contract for the append-only calorie
// log. Every operation is scoped by the owning user; the store never
// exposes another user's rows.
type CalorieStore interface {
	Insert(entry *models.CalorieEntry) error
	// ListByUser returns entries newest timestamp first.
	ListByUser(userID uint) ([]models.CalorieEntry, error)
	// Delete removes the entry only when it belongs to userID. Deleting a
	// nonexistent or non-owned id is a no-op, not an error.
	Delete(userID, entryID uint) error
	// SumWindow sums calories for entries with timestamp in the inclusive
	// [start, end] interval, 0 when nothing matches.
	SumWindow(userID uint, start, end time.Time) (float64, error)
}

type GormCalorieStore struct {
	db *gorm.DB
}

func NewGormCalorieStore(db *gorm.DB) *GormCalorieStore {
	return &GormCalorieStore{db: db}
}

func (s *GormCalorieStore) Insert(entry *models.CalorieEntry) error {
	return s.db.Create(entry).Error
}

func (s *GormCalorieStore) ListByUser(userID uint) ([]models.CalorieEntry, error) {
	var entries []models.CalorieEntry
	err := s.db.
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&entries).Error
	return entries, err
}

func (s *GormCalorieStore) Delete(userID, entryID uint) error {
	return s.db.
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.CalorieEntry{}).Error
}

func (s *GormCalorieStore) SumWindow(userID uint, start, end time.Time) (float64, error) {
	var total float64
	err := s.db.Model(&models.CalorieEntry{}).
		Where("user_id = ? AND timestamp BETWEEN ? AND ?", userID, start, end).
		Select("COALESCE(SUM(calories), 0)").
		Scan(&total).Error
	return total, err
}

// CalorieService validates input and delegates to the store. It holds no
// state across calls; concurrent appends/deletes are the store's
// consistency problem.
type CalorieService struct {
	store CalorieStore
}

func NewCalorieService(store CalorieStore) *CalorieService {
	return &CalorieService{store: store}
}

func (s *CalorieService) Append(userID uint, description string, calories float64, at time.Time) (*models.CalorieEntry, error) {
	if calories < 0 {
		return nil, ErrNegativeCalories
	}
	entry := &models.CalorieEntry{
		UserID:      userID,
		Timestamp:   at,
		Description: description,
		Calories:    calories,
	}
	if err := s.store.Insert(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *CalorieService) List(userID uint) ([]models.CalorieEntry, error) {
	return s.store.ListByUser(userID)
}

func (s *CalorieService) Delete(userID, entryID uint) error {
	return s.store.Delete(userID, entryID)
}

func (s *CalorieService) SumWindow(userID uint, start, end time.Time) (float64, error) {
	return s.store.SumWindow(userID, start, end)
}

// DayWindow returns the [00:00:00, 23:59:59] bounds of t's calendar day
// in t's own location. The ledger has no notion of "today"; callers
// compute the window and pass it down.
func DayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.Add(24*time.Hour - time.Second)
	return start, end
}

// TrailingWeekWindow returns [now − 7 days, now].
func TrailingWeekWindow(now time.Time) (time.Time, time.Time) {
	return now.AddDate(0, 0, -7), now
}
