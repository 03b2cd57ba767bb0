package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"classroom_balance/internal/domain" // Importing domain models
	"classroom_balance/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// UpdateRequest adjusts a student's balance by a signed delta
type UpdateRequest struct {
	StudentID string `json:"studentId"` // Target student code
	Amount    any    `json:"amount"`    // Signed delta, coerced via utils.CoerceInt
}

// CreateStudentRequest creates a new student record
type CreateStudentRequest struct {
	ID      string `json:"id"`      // Externally assigned student code
	Name    string `json:"name"`    // Display name
	Balance any    `json:"balance"` // Starting balance, coerced, defaults to 0
}

// MyBalanceRequest is a student's own balance query
type MyBalanceRequest struct {
	Code string `json:"code"` // Personal student code
}

// ListStudentsHandler returns every student with code, name and balance
func ListStudentsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		students := make([]domain.Student, 0) // Empty slice so an empty table serializes as []
		if err := db.Find(&students).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"error": err.Error(), // Error message
			}).Error("Failed to list students") // Log list failure
		}
		c.JSON(http.StatusOK, students) // Return the roster (possibly empty)
	}
}

// UpdateBalanceHandler applies a signed delta to a student's balance.
// The increment runs in SQL so concurrent updates never lose writes.
func UpdateBalanceHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
			return
		}
		amount := utils.CoerceInt(req.Amount) // Non-numeric input becomes 0, never corrupts the balance
		// Existence is decided by lookup, not by the update's row count:
		// MySQL reports changed rows, so a zero delta against an existing
		// student would count as zero rows and read as a miss.
		if _, err := findStudentByCode(db, req.StudentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, gin.H{"success": false, "message": "not found"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"student_id": req.StudentID, // Target student code
				"error":      err.Error(),   // Error message
			}).Error("Balance update lookup failed") // Log lookup failure
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "error updating"})
			return
		}
		// Atomic increment, not a replace
		res := db.Model(&domain.Student{}).
			Where("code = ?", req.StudentID).
			Update("balance", gorm.Expr("balance + ?", amount))
		if res.Error != nil {
			logrus.WithFields(logrus.Fields{
				"student_id": req.StudentID,     // Target student code
				"amount":     amount,            // Applied delta
				"error":      res.Error.Error(), // Error message
			}).Error("Balance update failed") // Log update failure
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "error updating"})
			return
		}
		// Re-read the record to report the new balance
		student, err := findStudentByCode(db, req.StudentID)
		if err != nil {
			// A concurrent delete between increment and re-read lands here
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, gin.H{"success": false, "message": "not found"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"student_id": req.StudentID, // Target student code
				"error":      err.Error(),   // Error message
			}).Error("Balance reload failed") // Log reload failure
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "error updating"})
			return
		}
		// Log the successful mutation
		logrus.WithFields(logrus.Fields{
			"student_id":  req.StudentID,   // Target student code
			"amount":      amount,          // Applied delta
			"new_balance": student.Balance, // Balance after the increment
		}).Info("Balance updated")
		c.JSON(http.StatusOK, gin.H{"success": true, "newBalance": student.Balance}) // Return the new balance
	}
}

// CreateStudentHandler creates a new student record.
// The pre-check gives the friendly duplicate message; the unique index
// on code is the real guard against two concurrent creations.
func CreateStudentHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateStudentRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
			return
		}
		// A code is mandatory, mirror the schema-required failure
		if req.ID == "" {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "error saving"})
			return
		}
		// Pre-check for an existing record with the same code
		if _, err := findStudentByCode(db, req.ID); err == nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "code already exists"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithFields(logrus.Fields{
				"id":    req.ID,      // Requested student code
				"error": err.Error(), // Error message
			}).Error("Duplicate check failed") // Log check failure
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "error saving"})
			return
		}
		// Build and insert the new record
		student := domain.Student{
			Code:    req.ID,                       // Externally assigned code
			Name:    req.Name,                     // Display name
			Balance: utils.CoerceInt(req.Balance), // Coerced starting balance, default 0
		}
		if err := db.Create(&student).Error; err != nil {
			// Unique-index violation (the race backstop) or any I/O failure lands here
			logrus.WithFields(logrus.Fields{
				"id":    req.ID,      // Requested student code
				"error": err.Error(), // Error message
			}).Error("Failed to create student") // Log create failure
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "error saving"})
			return
		}
		// Log the successful creation
		logrus.WithFields(logrus.Fields{
			"id":      student.Code,    // New student code
			"name":    student.Name,    // Display name
			"balance": student.Balance, // Starting balance
		}).Info("Student created")
		c.JSON(http.StatusOK, gin.H{
			"success":    true,                                 // Creation succeeded
			"message":    "student " + student.Name + " created", // Confirmation message
			"newStudent": student,                              // The stored record
		})
	}
}

// DeleteStudentHandler removes the single student with the given code
func DeleteStudentHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("id") // Student code from the path
		res := db.Where("code = ?", code).Delete(&domain.Student{})
		if res.Error != nil {
			logrus.WithFields(logrus.Fields{
				"id":    code,              // Target student code
				"error": res.Error.Error(), // Error message
			}).Error("Failed to delete student") // Log delete failure
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "error deleting"})
			return
		}
		// Zero affected rows means no student with that code
		if res.RowsAffected == 0 {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "not found"})
			return
		}
		// Log the successful deletion
		logrus.WithFields(logrus.Fields{
			"id": code, // Deleted student code
		}).Info("Student deleted")
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "student deleted"})
	}
}

// WipeStudentsHandler deletes every student record unconditionally.
// Deliberately does not re-seed: "delete everything" is distinct from
// "reset to defaults", and the table stays empty until the next start.
func WipeStudentsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := db.Where("1 = 1").Delete(&domain.Student{}) // Unconditional delete of all rows
		if res.Error != nil {
			logrus.WithFields(logrus.Fields{
				"error": res.Error.Error(), // Error message
			}).Error("Failed to wipe students") // Log wipe failure
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "error wiping students"})
			return
		}
		// Log the wipe with the number of removed records
		logrus.WithFields(logrus.Fields{
			"count": res.RowsAffected, // Number of deleted records
		}).Info("All students wiped")
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "all student data deleted"})
	}
}

// MyBalanceHandler returns a student's own balance.
// The wire contract collapses "unknown code" and "balance is zero" into
// the same {balance:0}; internally the two stay distinguishable through
// findStudentByCode.
func MyBalanceHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MyBalanceRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
			return
		}
		student, err := findStudentByCode(db, req.Code)
		if err != nil {
			// Persistence failures are logged, unknown codes are not
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				logrus.WithFields(logrus.Fields{
					"code":  req.Code,    // Queried student code
					"error": err.Error(), // Error message
				}).Error("Balance lookup failed") // Log lookup failure
			}
			c.JSON(http.StatusOK, gin.H{"balance": 0}) // Unknown code reads as zero on the wire
			return
		}
		c.JSON(http.StatusOK, gin.H{"balance": student.Balance}) // Return the current balance
	}
}
