package main

import (
	"log" // log package is needed for logging

	"classroom_balance/internal/api"        // Custom package for API handlers
	"classroom_balance/internal/config"     // Custom package for configuration
	"classroom_balance/internal/db"         // Custom package for database setup
	"classroom_balance/internal/middleware" // Custom package for middleware

	// For loading .env files
	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/gorm"               // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// The database location must be configured, refuse to start without it
	if cfg.DBHost == "" || cfg.DBName == "" {
		logrus.Fatal("database connection is not configured: set DB_HOST and DB_NAME")
	}

	// The reconciliation policy must be a known value
	if !cfg.ValidPolicy() {
		logrus.Fatalf("unknown RECONCILE_POLICY %q (want none, seed-if-empty or purge-fixed-ids)", cfg.ReconcilePolicy)
	}

	// An empty admin secret would let an empty login code grant the teacher role
	if cfg.AdminPassword == "" {
		logrus.Warn("ADMIN_PASSWORD is empty; admin login will accept an empty code")
	}

	// Connect to the database
	gdb, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Apply the configured startup policy (seed defaults, purge leftovers, or nothing)
	if err := db.Reconcile(gdb, cfg.ReconcilePolicy); err != nil {
		logrus.Fatalf("startup reconciliation failed: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Log every request with structured fields
	r.Use(middleware.RequestLogger())

	// Static assets for the classroom front end
	r.StaticFile("/", "./public/index.html") // Landing page
	r.Static("/public", "./public")          // Scripts, styles, images

	// API routes: every request carries its own credentials, no sessions
	r.POST("/api/login", api.LoginHandler(gdb, cfg.AdminPassword)) // Teacher or student login
	r.GET("/api/students", api.ListStudentsHandler(gdb))           // Full roster
	r.POST("/api/update", api.UpdateBalanceHandler(gdb))           // Balance delta
	r.POST("/api/create-student", api.CreateStudentHandler(gdb))   // New student
	r.POST("/api/wipe-students", api.WipeStudentsHandler(gdb))     // Delete everything, no reseed
	r.POST("/api/my-balance", api.MyBalanceHandler(gdb))           // Student's own balance
	r.DELETE("/api/delete-student/:id", api.DeleteStudentHandler(gdb)) // Delete one student

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
