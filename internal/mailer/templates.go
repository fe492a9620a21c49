package mailer

import (
	"fmt"
	"html/template"
	"strings"
)

var candidateTemplate = template.Must(template.New("candidate").Parse(`<html><body style="font-family: Arial, sans-serif; color: #333;">
<div style="background-color: #f8f9fa; padding: 20px; text-align: center; border-bottom: 3px solid #1a1a54;">
<h2 style="color: #1a1a54; margin:0;">New Horizon Recruitment</h2>
</div>
<div style="padding: 20px;">
<h3>Hi {{.Name}},</h3>
<p>Thank you for applying for the position (Job ID: <b>{{.JobID}}</b>) at New Horizon.</p>
<p>We have successfully received your application, resume, and interview details.</p>
<p>Our HR team will review your profile and get back to you shortly regarding the next steps.</p>
<br/>
<p>Best Regards,<br/><b>New Horizon HR Team</b></p>
</div>
<div style="background-color: #f1f1f1; padding: 10px; text-align: center; font-size: 12px; color: #666;">
&copy; New Horizon Educational Institution
</div>
</body></html>`))

var hrAlertTemplate = template.Must(template.New("hr").Parse(`<html><body style="font-family: Arial, sans-serif; color: #333;">
<div style="background-color: #1a1a54; padding: 15px; color: white; text-align: center;">
<h2>New Candidate Application</h2>
</div>
<div style="padding: 20px; border: 1px solid #ddd;">
<p><b>Name:</b> {{.Name}}</p>
<p><b>Email:</b> {{.Email}}</p>
<p><b>Phone:</b> {{.Phone}}</p>
<p><b>Job ID:</b> {{.JobID}}</p>
<p><b>Video Status:</b> {{.VideoStatus}}</p>
</div>
</body></html>`))

// CandidateConfirmation renders the thank-you message sent to the
// applicant after a successful submission.
func CandidateConfirmation(name string, jobID string) (subject string, body string) {
	var out strings.Builder
	_ = candidateTemplate.Execute(&out, struct {
		Name  string
		JobID string
	}{Name: name, JobID: jobID})

	return fmt.Sprintf("Application Received - Job ID: %s", jobID), out.String()
}

// HRAlert renders the new-applicant notification for the HR inbox.
func HRAlert(name string, email string, phone string, jobID string, hasVideo bool) (subject string, body string) {
	videoStatus := "No video submitted"
	if hasVideo {
		videoStatus = "Video interview completed"
	}

	var out strings.Builder
	_ = hrAlertTemplate.Execute(&out, struct {
		Name        string
		Email       string
		Phone       string
		JobID       string
		VideoStatus string
	}{Name: name, Email: email, Phone: phone, JobID: jobID, VideoStatus: videoStatus})

	return fmt.Sprintf("NEW APPLICANT: %s", name), out.String()
}
