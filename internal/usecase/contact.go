package usecase

import (
	"context"
	"net/http"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/metrics"
	"portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// submissionRules is evaluated in order; the first failure is reported.
var submissionRules = []validation.Rule[*domain.Submission]{
	{
		Tag:     "required",
		Message: domain.MsgAllFieldsRequired,
		Values: func(s *domain.Submission) []string {
			return []string{s.Name, s.Email, s.Subject, s.Message}
		},
	},
	{
		Tag:     "simple_email",
		Message: domain.MsgInvalidEmail,
		Values:  func(s *domain.Submission) []string { return []string{s.Email} },
	},
	{
		Tag:     "min=2",
		Message: domain.MsgNameTooShort,
		Values:  func(s *domain.Submission) []string { return []string{s.Name} },
	},
	{
		Tag:     "min=5",
		Message: domain.MsgSubjectTooShort,
		Values:  func(s *domain.Submission) []string { return []string{s.Subject} },
	},
	{
		Tag:     "min=10",
		Message: domain.MsgMessageTooShort,
		Values:  func(s *domain.Submission) []string { return []string{s.Message} },
	},
}

type contactUsecase struct {
	sender   email.Sender
	validate *validator.Validate
	operator string
	log      *zap.Logger
}

// NewContactUsecase creates a new contact usecase. operator is the site
// owner's mailbox, used as both sender and recipient.
func NewContactUsecase(sender email.Sender, validate *validator.Validate, operator string, log *zap.Logger) domain.ContactUsecase {
	return &contactUsecase{
		sender:   sender,
		validate: validate,
		operator: operator,
		log:      log,
	}
}

// Submit validates the submission and forwards it to the operator mailbox
func (uc *contactUsecase) Submit(ctx context.Context, sub *domain.Submission) error {
	if sub == nil {
		sub = &domain.Submission{}
	}

	if msg, failed := validation.FirstFailure(uc.validate, submissionRules, sub); failed {
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return apperror.BadRequest(msg)
	}

	body, err := email.RenderContactBody(email.ContactEmailData{
		SenderName:  sub.Name,
		SenderEmail: sub.Email,
		Subject:     sub.Subject,
		Message:     sub.Message,
	})
	if err != nil {
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeFailed).Inc()
		uc.log.Error("Failed to render contact email", zap.Error(err))
		return apperror.New(http.StatusInternalServerError, domain.MsgSendFailed, err)
	}

	// The visitor is only ever Reply-To; providers reject arbitrary From addresses
	msg := email.Message{
		From:     uc.operator,
		To:       uc.operator,
		ReplyTo:  sub.Email,
		Subject:  domain.SubjectPrefix + sub.Subject,
		HTMLBody: body,
	}

	start := time.Now()
	err = uc.sender.Send(ctx, msg)
	metrics.MailSendDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeFailed).Inc()
		uc.log.Error("Error sending email",
			zap.String("recipient", msg.To),
			zap.String("subject", msg.Subject),
			zap.Error(err),
		)
		return apperror.New(http.StatusInternalServerError, domain.MsgSendFailed, err)
	}

	metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeSent).Inc()
	uc.log.Info("Contact email sent", zap.String("subject", msg.Subject))
	return nil
}
