package db

import (
	"fmt" // Error formatting

	"classroom_balance/internal/config" // Policy constants
	"classroom_balance/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// DefaultStudents is the fixed demo roster. Under seed-if-empty it is
// installed on first boot; under purge-fixed-ids the same records are
// treated as leftovers and removed. The names are the exact strings the
// earlier deployment seeded, so the purge matches its leftover rows.
var DefaultStudents = []domain.Student{
	{Code: "101", Name: "יוסי כהן", Balance: 50},
	{Code: "102", Name: "דני לוי", Balance: 120},
	{Code: "103", Name: "אריאל מזרחי", Balance: 85},
}

// Reconcile applies exactly one startup policy to the students table.
// The wipe endpoint never calls this, so a wiped collection stays empty
// until the next process start.
func Reconcile(db *gorm.DB, policy string) error {
	switch policy {
	case config.PolicySeedIfEmpty:
		return seedIfEmpty(db) // Install defaults on first boot only
	case config.PolicyPurgeFixed:
		return purgeFixed(db) // Remove leftover demo records
	case config.PolicyNone:
		return nil // Leave the table untouched
	}
	return fmt.Errorf("unknown reconcile policy %q", policy) // Caller treats as fatal
}

// seedIfEmpty inserts the default roster when the table has no records at all
func seedIfEmpty(db *gorm.DB) error {
	var count int64 // Number of existing student records
	if err := db.Model(&domain.Student{}).Count(&count).Error; err != nil {
		return err // Count failed, cannot decide whether to seed
	}
	// Any existing record means the class was already set up
	if count > 0 {
		return nil
	}
	seed := make([]domain.Student, len(DefaultStudents)) // Fresh copies so gorm-assigned keys don't leak into the package var
	copy(seed, DefaultStudents)
	if err := db.Create(&seed).Error; err != nil {
		return err // Insert failed
	}
	// Log the seeding so an operator can tell defaults were installed
	logrus.WithFields(logrus.Fields{
		"count": len(seed), // Number of seeded records
	}).Info("Seeded empty student table with defaults")
	return nil
}

// purgeFixed deletes any record matching one of the fixed demo code+name
// pairs. Matching on both fields avoids deleting a real student who was
// assigned one of the demo codes with a different name.
func purgeFixed(db *gorm.DB) error {
	var purged int64 // Total records removed
	for _, s := range DefaultStudents {
		res := db.Where("code = ? AND name = ?", s.Code, s.Name).Delete(&domain.Student{})
		if res.Error != nil {
			return res.Error // Delete failed
		}
		purged += res.RowsAffected // Accumulate removed rows
	}
	// Only log when something was actually removed
	if purged > 0 {
		logrus.WithFields(logrus.Fields{
			"count": purged, // Number of purged records
		}).Info("Purged leftover demo students")
	}
	return nil
}
