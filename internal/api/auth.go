package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"classroom_balance/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// LoginRequest is the shared login body for both roles
type LoginRequest struct {
	Code string `json:"code"` // Admin secret or student code, depending on type
	Type string `json:"type"` // "admin" selects the teacher branch, anything else is a student
}

// matchesAdminSecret is the single place the shared teacher secret is
// compared. The contract is plaintext literal equality; hardening the
// comparison later only touches this function.
func matchesAdminSecret(secret, code string) bool {
	return code == secret // Exact string match
}

// findStudentByCode looks up a student by the externally assigned code.
// Callers can tell "no such student" (gorm.ErrRecordNotFound) apart from
// a real zero balance, even where the wire response collapses the two.
func findStudentByCode(db *gorm.DB, code string) (*domain.Student, error) {
	var student domain.Student // Student record to fill
	if err := db.Where("code = ?", code).First(&student).Error; err != nil {
		return nil, err // Not found or database error
	}
	return &student, nil // Found
}

// LoginHandler authenticates either the teacher (shared secret) or a
// student (personal code). Stateless: no token, no cookie, no session.
func LoginHandler(db *gorm.DB, adminSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
			return
		}
		// Teacher branch: compare against the shared secret
		if req.Type == "admin" {
			if matchesAdminSecret(adminSecret, req.Code) {
				c.JSON(http.StatusOK, gin.H{"success": true, "role": "admin"}) // Correct secret
			} else {
				c.JSON(http.StatusOK, gin.H{"success": false, "message": "wrong password"}) // Wrong secret
			}
			return
		}
		// Student branch: look up the record by code
		student, err := findStudentByCode(db, req.Code)
		if err != nil {
			// Unknown code is a domain outcome, anything else is a persistence failure
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				logrus.WithFields(logrus.Fields{
					"code":  req.Code,    // Attempted student code
					"error": err.Error(), // Error message
				}).Error("Student login lookup failed") // Log lookup failure
			}
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "code not found"})
			return
		}
		// Return the student's own name and balance with the role
		c.JSON(http.StatusOK, gin.H{
			"success": true,            // Login succeeded
			"role":    "student",       // Student role
			"name":    student.Name,    // Display name
			"balance": student.Balance, // Current balance
		})
	}
}
