package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/pkg/apperrors"
)

func newInquiryService(notifier *recordingNotifier) (*InquiryService, *fakeInquiries) {
	store := &fakeInquiries{}
	svc := NewInquiryService(store, notifier, zerolog.Nop())
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	return svc, store
}

func validContact() dto.ContactForm {
	return dto.ContactForm{
		Name:    "Sara Khan",
		Email:   "sara@example.com",
		Phone:   "03001234567",
		Subject: "Admissions",
		Message: "When does the fall intake open?",
	}
}

func TestSubmitContact(t *testing.T) {
	t.Run("stored and notified", func(t *testing.T) {
		notifier := &recordingNotifier{}
		svc, store := newInquiryService(notifier)

		msg, err := svc.SubmitContact(context.Background(), validContact())
		require.NoError(t, err)
		assert.Equal(t, int64(1), msg.ID)
		assert.Len(t, store.contacts, 1)
		assert.Equal(t, []string{"New contact message: Admissions"}, notifier.subjects)
	})

	t.Run("missing field stores nothing", func(t *testing.T) {
		notifier := &recordingNotifier{}
		svc, store := newInquiryService(notifier)
		form := validContact()
		form.Phone = "  "

		_, err := svc.SubmitContact(context.Background(), form)
		ve, ok := apperrors.AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "phone")
		assert.Empty(t, store.contacts)
		assert.Empty(t, notifier.subjects)
	})

	t.Run("bad email", func(t *testing.T) {
		svc, store := newInquiryService(&recordingNotifier{})
		form := validContact()
		form.Email = "sara"

		_, err := svc.SubmitContact(context.Background(), form)
		ve, ok := apperrors.AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "email")
		assert.Empty(t, store.contacts)
	})

	t.Run("notification failure keeps the message", func(t *testing.T) {
		svc, store := newInquiryService(&recordingNotifier{err: errors.New("smtp down")})

		_, err := svc.SubmitContact(context.Background(), validContact())
		require.NoError(t, err)
		assert.Len(t, store.contacts, 1)
	})
}

func TestSubmitVisitRequest(t *testing.T) {
	svc, store := newInquiryService(&recordingNotifier{})
	form := dto.VisitRequestForm{Name: "Ali", Email: "ali@example.com", Phone: "0300", Interest: "Swimming Pool"}

	_, err := svc.SubmitVisitRequest(context.Background(), form)
	ve, ok := apperrors.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "interest")
	assert.Empty(t, store.visits)

	form.Interest = "Hostel Facilities"
	v, err := svc.SubmitVisitRequest(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, "Hostel Facilities", v.Interest)
}

func TestSubmitApplication(t *testing.T) {
	form := dto.OnlineApplicationForm{
		FullName:          "Hamza",
		Email:             "hamza@example.com",
		Phone:             "0300",
		Address:           "Lahore",
		Program:           "ICS",
		PreviousInstitute: "City School",
		YearCompleted:     "2023",
	}

	tests := []struct {
		name      string
		mutate    func(f *dto.OnlineApplicationForm)
		wantField string
	}{
		{"valid", func(f *dto.OnlineApplicationForm) {}, ""},
		{"next year allowed", func(f *dto.OnlineApplicationForm) { f.YearCompleted = "2025" }, ""},
		{"too far ahead", func(f *dto.OnlineApplicationForm) { f.YearCompleted = "2026" }, "year_completed"},
		{"too old", func(f *dto.OnlineApplicationForm) { f.YearCompleted = "1949" }, "year_completed"},
		{"not a number", func(f *dto.OnlineApplicationForm) { f.YearCompleted = "20x3" }, "year_completed"},
		{"unknown program", func(f *dto.OnlineApplicationForm) { f.Program = "MBBS" }, "program"},
		{"missing address", func(f *dto.OnlineApplicationForm) { f.Address = "" }, "address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newInquiryService(&recordingNotifier{})
			f := form
			tt.mutate(&f)

			app, err := svc.SubmitApplication(context.Background(), f)
			if tt.wantField == "" {
				require.NoError(t, err)
				assert.Len(t, store.applications, 1)
				assert.NotZero(t, app.YearCompleted)
				return
			}
			ve, ok := apperrors.AsValidationError(err)
			require.True(t, ok)
			assert.Contains(t, ve.Fields, tt.wantField)
			assert.Empty(t, store.applications)
		})
	}
}
