package utils

import (
	"regexp"
	"time"
)

var dateOnlyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// IsDateOnly verifica se a string tem o formato YYYY-MM-DD e representa um dia existente
func IsDateOnly(dateStr string) bool {
	if !dateOnlyPattern.MatchString(dateStr) {
		return false
	}

	_, err := time.Parse(time.DateOnly, dateStr)
	return err == nil
}
