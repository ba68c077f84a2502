package notify

import (
	"fmt"
	"job-portal-backend/lib/smtp"
	"job-portal-backend/models"
	"time"

	log "github.com/sirupsen/logrus"
)

// Provider sends the portal's transactional mail. Every send is synchronous
// and best-effort: a failure is logged and swallowed, the primary operation
// has already happened.
type Provider interface {
	ApplicationReceived(seekerName, seekerEmail, jobTitle, applicationID string, appliedAt time.Time)
	NewApplication(employerName, employerEmail, seekerName, seekerEmail, jobTitle, applicationID string, appliedAt time.Time)
	StatusChanged(seekerName, seekerEmail, jobTitle, newStatus string, appliedAt time.Time)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(smtp.Instance)
}

func NewInstance(sender smtp.Provider) Provider {
	return &impl{
		sender: sender,
	}
}

type impl struct {
	sender smtp.Provider
}

func (i impl) ApplicationReceived(seekerName, seekerEmail, jobTitle, applicationID string, appliedAt time.Time) {
	subject := fmt.Sprintf("Application Received for %s", jobTitle)
	body := fmt.Sprintf("Dear %s,\n\n"+
		"Your application for the position \"%s\" has been received successfully.\n\n"+
		"Application ID: %s\n"+
		"Applied on: %s\n"+
		"Status: Pending\n\n"+
		"We will notify you once the employer reviews your application.\n\n"+
		"Best regards,\nJob Portal Team",
		seekerName, jobTitle, applicationID, appliedAt.Format("2006-01-02 15:04:05"))
	i.send(seekerEmail, subject, body)
}

func (i impl) NewApplication(employerName, employerEmail, seekerName, seekerEmail, jobTitle, applicationID string, appliedAt time.Time) {
	subject := fmt.Sprintf("New Application for %s", jobTitle)
	body := fmt.Sprintf("Dear %s,\n\n"+
		"You have received a new application for the position \"%s\".\n\n"+
		"Applicant: %s\n"+
		"Email: %s\n"+
		"Application ID: %s\n"+
		"Applied on: %s\n"+
		"Current Status: Pending\n\n"+
		"Please review the application in your employer dashboard.\n\n"+
		"Best regards,\nJob Portal Team",
		employerName, jobTitle, seekerName, seekerEmail, applicationID, appliedAt.Format("2006-01-02 15:04:05"))
	i.send(employerEmail, subject, body)
}

func (i impl) StatusChanged(seekerName, seekerEmail, jobTitle, newStatus string, appliedAt time.Time) {
	subject := fmt.Sprintf("Application Status Update for %s", jobTitle)
	i.send(seekerEmail, subject, BuildStatusChangedBody(seekerName, jobTitle, newStatus, appliedAt))
}

// BuildStatusChangedBody branches on the exact literals "Accepted" and
// "Rejected"; any other status string gets the generic wording.
func BuildStatusChangedBody(seekerName, jobTitle, newStatus string, appliedAt time.Time) string {
	switch models.ApplicationStatus(newStatus) {
	case models.ApplicationStatusAccepted:
		return fmt.Sprintf("Dear %s,\n\n"+
			"Good news! Your application for the position \"%s\" has been ACCEPTED by the employer.\n\n"+
			"We congratulate you and wish you success in your new role!\n\n"+
			"Best regards,\nJob Portal Team",
			seekerName, jobTitle)
	case models.ApplicationStatusRejected:
		return fmt.Sprintf("Dear %s,\n\n"+
			"We regret to inform you that your application for the position \"%s\" has been REJECTED by the employer.\n\n"+
			"We encourage you to keep applying to other opportunities on our platform.\n\n"+
			"Best regards,\nJob Portal Team",
			seekerName, jobTitle)
	}
	return fmt.Sprintf("Dear %s,\n\n"+
		"Your application status for the position \"%s\" has been updated to: %s\n\n"+
		"Application Date: %s\n\n"+
		"Best regards,\nJob Portal Team",
		seekerName, jobTitle, newStatus, appliedAt.Format("2006-01-02 15:04:05"))
}

func (i impl) send(to, subject, body string) {
	if err := i.sender.Send(to, subject, body); err != nil {
		log.WithError(err).
			WithField("recipient", to).
			WithField("subject", subject).
			Error("failed to send notification email")
	}
}
