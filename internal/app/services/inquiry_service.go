package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/sitehub/internal/app/models"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/pkg/apperrors"
	"github.com/yigit/sitehub/internal/pkg/email"
	"github.com/yigit/sitehub/internal/pkg/validation"
)

// Earliest accepted year of completion on an online application.
const minYearCompleted = 1950

// InquiryService accepts the forms posted by visitors.
type InquiryService struct {
	inquiryRepo InquiryStore
	notifier    email.Notifier
	logger      zerolog.Logger
	now         func() time.Time
}

// NewInquiryService creates a new inquiry service
func NewInquiryService(inquiryRepo InquiryStore, notifier email.Notifier, logger zerolog.Logger) *InquiryService {
	return &InquiryService{inquiryRepo: inquiryRepo, notifier: notifier, logger: logger, now: time.Now}
}

func trimAll(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

// notify sends the staff notification. Failures are logged and never undo the
// stored submission.
func (s *InquiryService) notify(subject string, fields map[string]string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.SendInquiryNotification(subject, fields); err != nil {
		s.logger.Warn().Err(err).Str("subject", subject).Msg("Failed to send inquiry notification")
	}
}

// SubmitContact validates and stores a contact message. On a validation error
// nothing is stored.
func (s *InquiryService) SubmitContact(ctx context.Context, form dto.ContactForm) (*models.ContactMessage, error) {
	trimAll(&form.Name, &form.Email, &form.Phone, &form.Subject)
	if err := validation.Struct(form); err != nil {
		return nil, err
	}

	msg := &models.ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Subject: form.Subject,
		Message: form.Message,
	}
	if err := s.inquiryRepo.CreateContactMessage(ctx, msg); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("messageId", msg.ID).Msg("Contact message received")
	s.notify("New contact message: "+msg.Subject, map[string]string{
		"name": msg.Name, "email": msg.Email, "phone": msg.Phone, "subject": msg.Subject, "message": msg.Message,
	})
	return msg, nil
}

// SubmitVisitRequest validates and stores a facilities visit request.
func (s *InquiryService) SubmitVisitRequest(ctx context.Context, form dto.VisitRequestForm) (*models.VisitRequest, error) {
	trimAll(&form.Name, &form.Email, &form.Phone, &form.Interest)
	verr := apperrors.NewValidationError(nil)
	if err := validation.Struct(form); err != nil {
		ve, ok := apperrors.AsValidationError(err)
		if !ok {
			return nil, err
		}
		verr = ve
	}
	if form.Interest != "" && !models.VisitInterests.Contains(form.Interest) {
		verr.Add("interest", "Select a valid choice.")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	req := &models.VisitRequest{
		Name:     form.Name,
		Email:    form.Email,
		Phone:    form.Phone,
		Interest: form.Interest,
		Message:  form.Message,
	}
	if err := s.inquiryRepo.CreateVisitRequest(ctx, req); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("visitRequestId", req.ID).Msg("Visit request received")
	s.notify("New visit request: "+req.Interest, map[string]string{
		"name": req.Name, "email": req.Email, "phone": req.Phone, "interest": req.Interest, "message": req.Message,
	})
	return req, nil
}

// SubmitApplication validates and stores an online application.
func (s *InquiryService) SubmitApplication(ctx context.Context, form dto.OnlineApplicationForm) (*models.OnlineApplication, error) {
	trimAll(&form.FullName, &form.Email, &form.Phone, &form.Program, &form.PreviousInstitute, &form.YearCompleted)
	verr := apperrors.NewValidationError(nil)
	if err := validation.Struct(form); err != nil {
		ve, ok := apperrors.AsValidationError(err)
		if !ok {
			return nil, err
		}
		verr = ve
	}
	if form.Program != "" && !models.Programs.Contains(form.Program) {
		verr.Add("program", "Select a valid choice.")
	}

	year, convErr := strconv.Atoi(form.YearCompleted)
	maxYear := s.now().Year() + 1
	if form.YearCompleted != "" && (convErr != nil || year < minYearCompleted || year > maxYear) {
		verr.Add("year_completed", fmt.Sprintf("Enter a year between %d and %d.", minYearCompleted, maxYear))
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	app := &models.OnlineApplication{
		FullName:          form.FullName,
		Email:             form.Email,
		Phone:             form.Phone,
		Address:           form.Address,
		Program:           form.Program,
		PreviousInstitute: form.PreviousInstitute,
		YearCompleted:     year,
	}
	if err := s.inquiryRepo.CreateApplication(ctx, app); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("applicationId", app.ID).Str("program", app.Program).Msg("Online application received")
	s.notify("New online application: "+app.Program, map[string]string{
		"full_name": app.FullName, "email": app.Email, "phone": app.Phone, "address": app.Address,
		"program": app.Program, "previous_institute": app.PreviousInstitute, "year_completed": form.YearCompleted,
	})
	return app, nil
}

// ListContactMessages returns one page of contact messages, newest first.
func (s *InquiryService) ListContactMessages(ctx context.Context, page, size int) ([]models.ContactMessage, int64, error) {
	return s.inquiryRepo.ListContactMessages(ctx, page, size)
}

// ListVisitRequests returns one page of visit requests, newest first.
func (s *InquiryService) ListVisitRequests(ctx context.Context, page, size int) ([]models.VisitRequest, int64, error) {
	return s.inquiryRepo.ListVisitRequests(ctx, page, size)
}

// ListApplications returns one page of online applications, newest first.
func (s *InquiryService) ListApplications(ctx context.Context, page, size int) ([]models.OnlineApplication, int64, error) {
	return s.inquiryRepo.ListApplications(ctx, page, size)
}
