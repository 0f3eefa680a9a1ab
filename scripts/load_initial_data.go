package main

import (
	"bill-reminder-backend/internal/config"
	"bill-reminder-backend/internal/database"
	"bill-reminder-backend/internal/database/models"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type CategoryData struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color,omitempty"`
}

type ReminderData struct {
	Title        string   `yaml:"title"`
	CategoryName string   `yaml:"category_name,omitempty"`
	DayOfMonth   int      `yaml:"day_of_month"`
	AmountApprox *float64 `yaml:"amount_approx,omitempty"`
}

// File structures
type CategoriesFile struct {
	Categories []CategoryData `yaml:"categories"`
}

type RemindersFile struct {
	Reminders []ReminderData `yaml:"reminders"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseDriver, cfg.DSN(), 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(driver, dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(driver, dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	// Load all data from YAML files
	categories, err := loadCategories(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	reminders, err := loadReminders(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load reminders: %w", err)
	}

	// Create categories first
	categoryMap := make(map[string]*models.Category)
	categoryCreated := 0
	for _, categoryData := range categories {
		category, created, err := createCategory(db, categoryData)
		if err != nil {
			return fmt.Errorf("failed to create category %s: %w", categoryData.Name, err)
		}
		categoryMap[categoryData.Name] = category
		if created {
			categoryCreated++
		}
	}
	log.Printf("📋 Categories: %d created, %d total", categoryCreated, len(categories))

	// Create reminders
	reminderCreated := 0
	for _, reminderData := range reminders {
		_, created, err := createReminder(db, reminderData, categoryMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create reminder %s: %v", reminderData.Title, err)
			continue // Continue with other reminders
		}
		if created {
			reminderCreated++
		}
	}
	log.Printf("📋 Reminders: %d created, %d total", reminderCreated, len(reminders))

	return nil
}

func loadCategories(dataDir string) ([]CategoryData, error) {
	var allCategories []CategoryData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "categories") {
			var file CategoriesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allCategories = append(allCategories, file.Categories...)
		}
		return nil
	})

	return allCategories, err
}

func loadReminders(dataDir string) ([]ReminderData, error) {
	var allReminders []ReminderData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "reminders") {
			var file RemindersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allReminders = append(allReminders, file.Reminders...)
		}
		return nil
	})

	return allReminders, err
}

func createCategory(db *gorm.DB, categoryData CategoryData) (*models.Category, bool, error) {
	var category models.Category
	if err := db.Where("name = ?", categoryData.Name).First(&category).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			color := categoryData.Color
			if color == "" {
				color = models.DefaultCategoryColor
			}

			category = models.Category{
				Name:  categoryData.Name,
				Color: color,
			}

			if err := db.Create(&category).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create category: %w", err)
			}
			return &category, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query category: %w", err)
		}
	}

	return &category, false, nil // created = false (existing)
}

func createReminder(db *gorm.DB, reminderData ReminderData, categoryMap map[string]*models.Category) (*models.Reminder, bool, error) {
	// Try to find category if specified
	var categoryID *uint
	if reminderData.CategoryName != "" {
		if category := categoryMap[reminderData.CategoryName]; category != nil {
			categoryID = &category.ID
		} else {
			// Category not found, log warning but continue
			log.Printf("⚠️  Warning: category %s not found for reminder %s", reminderData.CategoryName, reminderData.Title)
		}
	}

	if reminderData.DayOfMonth < 1 || reminderData.DayOfMonth > 31 {
		return nil, false, fmt.Errorf("day_of_month %d out of range", reminderData.DayOfMonth)
	}

	var reminder models.Reminder
	if err := db.Where("title = ?", reminderData.Title).First(&reminder).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			reminder = models.Reminder{
				Title:        reminderData.Title,
				CategoryID:   categoryID,
				DayOfMonth:   reminderData.DayOfMonth,
				AmountApprox: reminderData.AmountApprox,
			}

			if err := db.Create(&reminder).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create reminder: %w", err)
			}
			return &reminder, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query reminder: %w", err)
		}
	}

	return &reminder, false, nil // created = false (existing)
}
