/* handlers.go
 * Contains the HTTP handlers for fetching reports and kicking off verification runs
 * Authors: Zachary Bower
 */

package web

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// VerifyEvent is the body of a verification webhook. A scheduler (e.g. cron hitting
// this endpoint every morning) posts the date whose picks should be graded
type VerifyEvent struct {
	Date string `json:"date"`
}

// ReportHandler HTTP endpoint that returns the stored accuracy report for a date as json
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter and Http Request
// with a `date` query param in yyyy-mm-dd form
// Postconditions: Writes the report json, or 404 when no report exists for the date
func (s *Server) ReportHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	date := r.URL.Query().Get("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		http.Error(w, "date must be in yyyy-mm-dd form", http.StatusBadRequest)
		return
	}

	report, err := s.api.GetReport(date)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.Error(w, "no report for date", http.StatusNotFound)
			return
		}
		log.Println("failed to fetch report:", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(report); err != nil {
		log.Println("failed to encode report:", err)
	}
}

// VerifyWebhookHandler HTTP endpoint that receives a webhook used to kick off grading
// the tracked picks for a date and regenerating its report
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter and Http Request
// Postconditions: Kicks off the verification run for the posted date
func (s *Server) VerifyWebhookHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var event VerifyEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		log.Println("failed to decode webhook:", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// An empty date means grade yesterday's slate
	if event.Date == "" {
		event.Date = time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", event.Date); err != nil {
		http.Error(w, "date must be in yyyy-mm-dd form", http.StatusBadRequest)
		return
	}

	log.Printf("verification webhook for date=%s\n", event.Date)

	// Kick async pipeline, grading a full slate makes one feed request per sport
	go func(date string) {
		if _, err := s.api.VerifyDate(context.Background(), date); err != nil {
			log.Println("verification run failed:", err)
		}
	}(event.Date)

	w.WriteHeader(http.StatusAccepted)
}
