/* reports.go
 * Contains the methods for interacting with the reports collection
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"errors"
	"fmt"

	"bet-tracker/api/shared"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// StoreReport stores an accuracy report in the db. A report already stored for the
// same date is replaced, re-running verification regenerates the report
// Preconditions: Receives a DailyReport
// Postconditions: Stores or updates the report, or returns an error if the operation was unsuccessful
func (s *Store) StoreReport(report shared.DailyReport) error {
	// Attempt to find an existing document
	var existing shared.DailyReport
	err := s.Collections.Reports.FindOne(context.TODO(), bson.M{"date": report.Date}).Decode(&existing)
	notFound := errors.Is(err, mongo.ErrNoDocuments)

	if err != nil && !notFound {
		return fmt.Errorf("lookup for existing report failed: %w", err)
	}

	// There is no report stored for this date yet so we create a new document
	if notFound {
		if _, err := s.Collections.Reports.InsertOne(context.TODO(), report); err != nil {
			return fmt.Errorf("failed to insert new report: %w", err)
		}
		return nil
	}

	filter := bson.M{"date": report.Date}
	update := bson.M{
		"$set": bson.M{
			"generated_at": report.GeneratedAt,
			"experts":      report.Experts,
			"overall":      report.Overall,
			"total_bets":   report.TotalBets,
		},
	}
	if _, err := s.Collections.Reports.UpdateOne(context.TODO(), filter, update); err != nil {
		return fmt.Errorf("failed to update existing report: %w", err)
	}
	return nil
}

// GetReport does DB lookup and gets the accuracy report for a date
// Preconditions: Receives a date string in YYYY-MM-DD form
// Postconditions: Returns the report if it exists, or an error if it occurs
func (s *Store) GetReport(date string) (shared.DailyReport, error) {
	var report shared.DailyReport
	err := s.Collections.Reports.FindOne(context.TODO(), bson.M{"date": date}).Decode(&report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return shared.DailyReport{}, err
		}
		return shared.DailyReport{}, fmt.Errorf("error fetching report from db: %w", err)
	}
	return report, nil
}
