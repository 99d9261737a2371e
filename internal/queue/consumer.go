// Package queue runs the asynchronous advising pipeline: it consumes
// session messages from RabbitMQ, derives a student profile from uploaded
// resumes, runs the planner and gap analyzer, and persists the report.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/streadway/amqp"

	"github.com/acadmentor/advisor/internal/catalog"
	"github.com/acadmentor/advisor/internal/config"
	"github.com/acadmentor/advisor/internal/database"
	"github.com/acadmentor/advisor/internal/logger"
	"github.com/acadmentor/advisor/internal/planner"
	"github.com/acadmentor/advisor/internal/skills"
	"github.com/acadmentor/advisor/internal/storage"
)

// Session is the message published when a student submits an advising
// request. Degree and TargetRole select which parts of the report get
// computed.
type Session struct {
	ID         uuid.UUID `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Name       string    `json:"name"`
	StudentID  uuid.UUID `json:"student_id"`
	Status     string    `json:"status"`
	Degree     string    `json:"degree,omitempty"`
	Year       int       `json:"year,omitempty"`
	Term       int       `json:"term,omitempty"`
	Completed  []string  `json:"completed_courses,omitempty"`
	TargetRole string    `json:"target_role,omitempty"`
}

// Report is the persisted outcome of one advising session. Domain errors
// (bad uploads, inconsistent catalog data) are embedded rather than failing
// the session; infrastructure errors fail it.
type Report struct {
	SessionID uuid.UUID              `json:"session_id"`
	Profile   catalog.StudentProfile `json:"profile"`
	Plan      *planner.SemesterPlan  `json:"plan,omitempty"`
	Gap       *skills.GapReport      `json:"gap,omitempty"`
	Errors    []string               `json:"errors,omitempty"`
}

// Consumer owns the worker pool's shared dependencies. The catalog and
// career data are read-only, so workers share them without locking.
type Consumer struct {
	DB          *database.Queries
	R2          config.R2
	AwsConfig   *aws.Config
	RabbitMQURL string
	RabbitConn  *amqp.Connection
	Catalog     *catalog.Catalog
	Careers     *catalog.CareerData
	Analyzer    *skills.Analyzer
	Log         *logger.Logger
}

// StartWorkerPool runs numWorkers consumers and blocks until they all stop.
func (c *Consumer) StartWorkerPool(numWorkers int) {
	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for i := 0; i < numWorkers; i++ {
		c.Log.Info("worker started", "worker", i+1)
		go c.worker(i, &wg)
	}
	wg.Wait()
}

func (c *Consumer) worker(id int, wg *sync.WaitGroup) {
	defer wg.Done()
	log := c.Log.With("worker", id+1)

	conn, err := amqp.Dial(c.RabbitMQURL)
	if err != nil {
		log.Fatal("error dialling rabbitmq", "err", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal("error opening rabbitmq channel", "err", err)
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		sessionQueue, // queue name
		true,         // durable (survives broker restarts)
		false,        // auto-delete when unused
		false,        // exclusive
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		log.Fatal("failed to declare queue", "err", err)
	}

	msgs, err := ch.Consume(
		sessionQueue, // queue name
		"",           // consumer tag
		true,         // auto-ack
		false,        // exclusive
		false,        // no-local
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		log.Fatal("error consuming rabbitmq messages", "err", err)
	}

	for msg := range msgs {
		c.handleDelivery(log, msg.Body)
	}
}

// handleDelivery runs one queue message through the advising pipeline. A
// body that does not decode carries no session ID, so it is dropped without
// a status write.
func (c *Consumer) handleDelivery(log *logger.Logger, body []byte) {
	session := Session{}
	if err := json.Unmarshal(body, &session); err != nil {
		log.Error("dropping undecodable message body", "err", err)
		return
	}
	log.Info("processing session", "session_id", session.ID)
	c.markSession(session.ID, "processing", "advising started")

	if err := c.processSession(session); err != nil {
		log.Error("error processing session", "session_id", session.ID, "err", err)
		c.markSession(session.ID, "failed", "advising failed")
		return
	}
	c.markSession(session.ID, "completed", "advising completed")
}

// markSession records a status transition in the database and publishes
// the matching update event.
func (c *Consumer) markSession(sessionID uuid.UUID, status, message string) {
	if err := c.DB.UpdateSessionStatus(context.Background(), database.UpdateSessionStatusParams{
		Status: status,
		ID:     sessionID,
	}); err != nil {
		c.Log.Error("failed to update session status", "session_id", sessionID, "status", status, "err", err)
	}
	if err := PublishSessionUpdate(c.RabbitConn, sessionID.String(), status, message); err != nil {
		c.Log.Error("failed to publish update", "session_id", sessionID, "err", err)
	}
}

// processSession builds the advising report for one session: profile from
// uploads, semester plan if a degree was named, gap analysis if a target
// role was named.
func (c *Consumer) processSession(session Session) error {
	ctx := context.Background()

	uploads, err := c.DB.GetUploadsBySession(ctx, session.ID)
	if err != nil {
		return fmt.Errorf("error getting uploads for session %v: %w", session.ID, err)
	}

	report := &Report{SessionID: session.ID}

	var resumeText string
	for _, upload := range uploads {
		client := storage.NewR2Client(*c.AwsConfig, c.R2.AccountID)

		// Downloads are the transient-failure surface; retry them.
		fileBytes, err := retry(3, func() ([]byte, error) {
			return storage.Download(ctx, client, c.R2.Bucket, upload.ObjectKey)
		})
		if err != nil {
			c.Log.Warn("failed to download upload after retries", "object_key", upload.ObjectKey, "err", err)
			report.Errors = append(report.Errors, fmt.Sprintf("file download error: %v", err))
			continue
		}

		text, err := skills.ExtractText(upload.Mime, fileBytes)
		if err != nil {
			c.Log.Warn("text extraction failed", "object_key", upload.ObjectKey, "err", err)
			report.Errors = append(report.Errors, fmt.Sprintf("text extraction error: %v", err))
			continue
		}
		resumeText += "\n" + text
	}
	report.Profile = skills.ProfileFromText(resumeText, c.Careers)

	if session.Degree != "" {
		plan, err := planner.Plan(c.Catalog, planner.Request{
			Degree:    session.Degree,
			Year:      session.Year,
			Term:      session.Term,
			Completed: session.Completed,
		})
		switch {
		case err == nil:
			report.Plan = plan
		case isDomainError(err):
			report.Errors = append(report.Errors, err.Error())
		default:
			return err
		}
	}

	if session.TargetRole != "" {
		role, err := c.Careers.RoleByTitle(session.TargetRole)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("unknown target role %q", session.TargetRole))
		} else {
			gap := c.Analyzer.Analyze(report.Profile, *role)
			report.Gap = &gap
		}
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal advising report: %w", err)
	}

	_, err = retry(3, func() (any, error) {
		return nil, c.DB.CreateOrUpdateReport(ctx, database.CreateOrUpdateReportParams{
			Report:    reportJSON,
			SessionID: session.ID,
		})
	})
	if err != nil {
		return fmt.Errorf("failed to save advising report after retries: %w", err)
	}
	return nil
}

// isDomainError separates data-quality and request problems, which belong
// in the report, from infrastructure failures, which fail the session.
func isDomainError(err error) bool {
	var catErr *planner.CatalogError
	var reqErr *planner.RequestError
	return errors.As(err, &catErr) || errors.As(err, &reqErr)
}
