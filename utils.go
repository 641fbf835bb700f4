/* utils.go
 * Utility functions used across the application
 * Authors: Zachary Bower
 */

package main

import (
	"fmt"
	"strings"
	"time"
)

// convertStrToBool converts a string of true or false into a boolean for comparisons
// Preconditions: Receives string containing either true or false (case insensitive)
// Postconditions: Returns boolean value or an error if the string is not true or false
func convertStrToBool(str string) (bool, error) {
	str = strings.TrimSpace(str)
	str = strings.ToLower(str)

	if str == "true" {
		return true, nil
	} else if str == "false" {
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean string")
}

// resolveDate resolves the -date flag into a concrete slate date
// Preconditions: Receives string containing a yyyy-mm-dd date, or an empty string
// Postconditions: Returns the date, or yesterday's date when the input is empty, or an
// error if the input is not a valid date
func resolveDate(str string) (string, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return time.Now().AddDate(0, 0, -1).Format("2006-01-02"), nil
	}

	if _, err := time.Parse("2006-01-02", str); err != nil {
		return "", fmt.Errorf("dates need to be in yyyy-mm-dd form: %w", err)
	}
	return str, nil
}
