package soc

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// cacheDuration determines how long scraped section data is kept before refreshing
const cacheDuration = 12 * time.Hour

// CacheEntry represents the disk data format
type CacheEntry struct {
	Timestamp time.Time    `json:"timestamp"`
	Sections  []RawSection `json:"sections"`
}

func getCachePath(termID, courseID string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	cacheDir := filepath.Join(homeDir, ".plastron_cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("could not create cache directory: %w", err)
	}

	return filepath.Join(cacheDir, fmt.Sprintf("%s_%s.json", termID, courseID)), nil
}

// readCache checks if a valid, unexpired cache exists for this course
func readCache(termID, courseID string) ([]RawSection, bool) {
	path, err := getCachePath(termID, courseID)
	if err != nil {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false // File doesn't exist or can't be read
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	// Check expiration
	if time.Since(entry.Timestamp) > cacheDuration {
		return nil, false // Expired
	}

	return entry.Sections, true
}

// writeCache saves the scraped sections to disk
func writeCache(termID, courseID string, sections []RawSection) {
	path, err := getCachePath(termID, courseID)
	if err != nil {
		return
	}

	entry := CacheEntry{
		Timestamp: time.Now(),
		Sections:  sections,
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(path, data, 0644)
}
