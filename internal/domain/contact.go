package domain

import "context"

// Submission is a contact form submission. Absent fields decode to "".
type Submission struct {
	Name    string `json:"name" example:"Jane Doe"`
	Email   string `json:"email" example:"jane@example.com"`
	Subject string `json:"subject" example:"Project inquiry"`
	Message string `json:"message" example:"I would like to discuss a project."`
}

// Client-facing messages returned by ContactUsecase.Submit.
const (
	MsgAllFieldsRequired = "All fields are required."
	MsgInvalidEmail      = "Invalid email address."
	MsgNameTooShort      = "Name must be at least 2 characters long."
	MsgSubjectTooShort   = "Subject must be at least 5 characters long."
	MsgMessageTooShort   = "Message must be at least 10 characters long."
	MsgSendFailed        = "Failed to send email. Please try again later."
	MsgSent              = "Email sent successfully"
	MsgBodyTooLarge      = "Request body is too large."
)

// SubjectPrefix is prepended to the visitor's subject on the forwarded mail.
const SubjectPrefix = "Portfolio Contact: "

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// Submit validates the submission and forwards it to the site owner.
	// A nil error means the mail was accepted by the transport.
	Submit(ctx context.Context, sub *Submission) error
}
