package services

import (
	"fmt"
	"log"

	"journal-portal-api/config"
	"journal-portal-api/models"
)

// decisionSubjects maps the statuses worth an author e-mail to a subject
// line. Internal moves (queue assignment, pre-publication staging) stay
// silent.
var decisionSubjects = map[models.Status]string{
	models.StatusRequestedForCorrection: "Correction requested for your manuscript",
	models.StatusAccepted:               "Your manuscript has been accepted",
	models.StatusRejected:               "Decision on your manuscript",
	models.StatusPublished:              "Your article has been published",
}

// NotifyDecision sends a best-effort decision e-mail to the corresponding
// author. SMTP failures are logged and never fail the transition that
// triggered them.
func NotifyDecision(submission *models.Submission, target models.Status, note string) {
	subject, ok := decisionSubjects[target]
	if !ok {
		return
	}
	if submission.ContactEmail == "" {
		return
	}

	html := fmt.Sprintf(
		"<p>Dear %s,</p><p>The status of your manuscript <b>%s</b> has changed to <b>%s</b>.</p><p>Editor's note: %s</p>",
		submission.ContactName, submission.Title, target, note,
	)

	if err := config.SendMail([]string{submission.ContactEmail}, subject, html); err != nil {
		log.Printf("Warning: failed to send decision mail for submission %d: %v", submission.SubmissionID, err)
	}
}
