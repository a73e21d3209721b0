package services

import "github.com/terraincognita07/kalori/internal/models"

// ProjectVitamin returns the vitamin as seen on today. The taken flag only holds for the
// stored date, so a stale record reads as untaken and dated today. The bool reports whether
// the stored row must be advanced to match the view.
func ProjectVitamin(vitamin models.UserVitamin, today string) (models.UserVitamin, bool) {
	if vitamin.Date == today {
		return vitamin, false
	}
	vitamin.IsTaken = false
	vitamin.Date = today
	return vitamin, true
}
