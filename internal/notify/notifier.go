// Package notify delivers created incidents and alerts out of band. Delivery
// is log-only; the pool decouples the engines from however slow a real
// channel might be.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rmaia/go-wildfire-monitor/internal/models"
)

type Notification struct {
	Subject string
	Body    string
	At      time.Time
}

// DeliverFunc consumes one notification. The default writes to slog.
type DeliverFunc func(n Notification)

type Notifier struct {
	numWorkers int
	jobs       chan Notification
	deliver    DeliverFunc
	wg         sync.WaitGroup
}

func New(numWorkers, bufferSize int, deliver DeliverFunc) *Notifier {
	if deliver == nil {
		deliver = logDeliver
	}
	return &Notifier{
		numWorkers: numWorkers,
		jobs:       make(chan Notification, bufferSize),
		deliver:    deliver,
	}
}

func logDeliver(n Notification) {
	slog.Info("notification", "subject", n.Subject, "body", n.Body, "at", n.At)
}

func (nt *Notifier) Start(ctx context.Context) {
	for i := 1; i <= nt.numWorkers; i++ {
		nt.wg.Add(1)
		go nt.worker(ctx)
	}
}

func (nt *Notifier) worker(ctx context.Context) {
	defer nt.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-nt.jobs:
			if !ok {
				return
			}
			nt.deliver(n)
		}
	}
}

// Submit never blocks a caller: when the buffer is full the notification is
// dropped, matching the delivery channel's best-effort contract.
func (nt *Notifier) Submit(n Notification) {
	select {
	case nt.jobs <- n:
	default:
		slog.Warn("notification dropped, buffer full", "subject", n.Subject)
	}
}

func (nt *Notifier) Stop() {
	close(nt.jobs)
	nt.wg.Wait()
}

// IncidentCreated and AlertCreated satisfy the engines' Notifier interfaces.

func (nt *Notifier) IncidentCreated(i *models.Incident) {
	nt.Submit(Notification{
		Subject: "incident created",
		Body:    string(i.Priority) + " priority incident in region " + i.RegionID + ": " + i.Description,
		At:      i.Timestamp,
	})
}

func (nt *Notifier) AlertCreated(a *models.Alert) {
	body := string(a.RiskLevel) + " risk alert for environment " + a.EnvironmentID
	if a.AssignedUserID != nil {
		body += ", assigned to user " + *a.AssignedUserID
	}
	nt.Submit(Notification{
		Subject: "alert created",
		Body:    body,
		At:      a.Timestamp,
	})
}
