package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/sitehub/internal/app/models"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/pkg/apperrors"
	"github.com/yigit/sitehub/internal/pkg/helpers"
	"github.com/yigit/sitehub/internal/pkg/validation"
)

// createBlock validates req, builds the row and stores it.
func createBlock[R any, M any](ctx context.Context, log zerolog.Logger, kind models.ContentKind, req R, build func(R) (*M, error), store func(context.Context, *M) error) (*M, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	row, err := build(req)
	if err != nil {
		return nil, err
	}
	if err := store(ctx, row); err != nil {
		return nil, fmt.Errorf("error creating %s: %w", kind, err)
	}
	log.Info().Str("kind", string(kind)).Msg("Content block created")
	return row, nil
}

// cleanList trims items and drops the empty ones. The result is never nil
// because the array columns are NOT NULL.
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func (s *SiteService) CreatePrincipalMessage(ctx context.Context, req dto.PrincipalMessageRequest) (*models.PrincipalMessage, error) {
	return createBlock(ctx, s.logger, models.ContentPrincipalMessage, req, func(r dto.PrincipalMessageRequest) (*models.PrincipalMessage, error) {
		return &models.PrincipalMessage{
			Title:    defaultString(r.Title, models.DefaultPrincipalTitle),
			Subtitle: strings.TrimSpace(r.Subtitle),
			Message:  strings.TrimSpace(r.Message),
			Image:    defaultString(r.Image, models.DefaultPrincipalImage),
		}, nil
	}, s.content.CreatePrincipalMessage)
}

func (s *SiteService) CreateAcademicExcellence(ctx context.Context, req dto.AcademicExcellenceRequest) (*models.AcademicExcellence, error) {
	return createBlock(ctx, s.logger, models.ContentAcademicExcellence, req, func(r dto.AcademicExcellenceRequest) (*models.AcademicExcellence, error) {
		return &models.AcademicExcellence{
			BackgroundImage:   defaultString(r.BackgroundImage, models.DefaultBackgroundImage),
			Heading:           strings.TrimSpace(r.Heading),
			Subheading:        strings.TrimSpace(r.Subheading),
			SearchPlaceholder: strings.TrimSpace(r.SearchPlaceholder),
			StudentsEnrolled:  r.StudentsEnrolled,
			AcademicPrograms:  r.AcademicPrograms,
			EmploymentRate:    r.EmploymentRate,
		}, nil
	}, s.content.CreateAcademicExcellence)
}

func (s *SiteService) CreateTestimonial(ctx context.Context, req dto.TestimonialRequest) (*models.Testimonial, error) {
	return createBlock(ctx, s.logger, models.ContentTestimonial, req, func(r dto.TestimonialRequest) (*models.Testimonial, error) {
		return &models.Testimonial{
			Name:    strings.TrimSpace(r.Name),
			Role:    strings.TrimSpace(r.Role),
			Message: strings.TrimSpace(r.Message),
			Image:   defaultString(r.Image, models.DefaultTestimonialImage),
		}, nil
	}, s.content.CreateTestimonial)
}

// CreateFacility adds a lab. The lab type must be one of models.LabTypes.
func (s *SiteService) CreateFacility(ctx context.Context, req dto.FacilityRequest) (*models.Facility, error) {
	return createBlock(ctx, s.logger, models.ContentFacility, req, func(r dto.FacilityRequest) (*models.Facility, error) {
		name := defaultString(r.Name, "programming")
		if !models.LabTypes.Contains(name) {
			return nil, apperrors.FieldError("name", "Select a valid choice.")
		}
		return &models.Facility{
			Name:        name,
			Title:       strings.TrimSpace(r.Title),
			Description: strings.TrimSpace(r.Description),
			Image:       defaultString(r.Image, models.DefaultFacilityImage),
			Features:    cleanList(r.Features),
		}, nil
	}, s.content.CreateFacility)
}

func (s *SiteService) CreateHostelIntro(ctx context.Context, req dto.HostelIntroRequest) (*models.HostelIntro, error) {
	return createBlock(ctx, s.logger, models.ContentHostelIntro, req, func(r dto.HostelIntroRequest) (*models.HostelIntro, error) {
		return &models.HostelIntro{
			Heading:     strings.TrimSpace(r.Heading),
			Description: strings.TrimSpace(r.Description),
			Image:       defaultString(r.Image, models.DefaultHostelImage),
		}, nil
	}, s.content.CreateHostelIntro)
}

func (s *SiteService) CreateHostelFacility(ctx context.Context, req dto.HostelFacilityRequest) (*models.HostelFacility, error) {
	return createBlock(ctx, s.logger, models.ContentHostelFacility, req, func(r dto.HostelFacilityRequest) (*models.HostelFacility, error) {
		return &models.HostelFacility{
			Title:       strings.TrimSpace(r.Title),
			Description: strings.TrimSpace(r.Description),
			Image:       defaultString(r.Image, models.DefaultHostelImage),
			Features:    cleanList(r.Features),
		}, nil
	}, s.content.CreateHostelFacility)
}

func (s *SiteService) CreateAdmissionStep(ctx context.Context, req dto.AdmissionStepRequest) (*models.AdmissionStep, error) {
	return createBlock(ctx, s.logger, models.ContentAdmissionStep, req, func(r dto.AdmissionStepRequest) (*models.AdmissionStep, error) {
		return &models.AdmissionStep{
			Title:       strings.TrimSpace(r.Title),
			IconClass:   defaultString(r.IconClass, models.DefaultAdmissionStepIcon),
			Description: strings.TrimSpace(r.Description),
		}, nil
	}, s.content.CreateAdmissionStep)
}

// CreateFeeStructure adds a fee row. The department must be one of
// models.FeeDepartments.
func (s *SiteService) CreateFeeStructure(ctx context.Context, req dto.FeeStructureRequest) (*models.FeeStructure, error) {
	return createBlock(ctx, s.logger, models.ContentFeeStructure, req, func(r dto.FeeStructureRequest) (*models.FeeStructure, error) {
		department := defaultString(r.Department, "engineering")
		if !models.FeeDepartments.Contains(department) {
			return nil, apperrors.FieldError("department", "Select a valid choice.")
		}
		return &models.FeeStructure{
			Department: department,
			Program:    strings.TrimSpace(r.Program),
			FeeRange:   strings.TrimSpace(r.FeeRange),
			Duration:   strings.TrimSpace(r.Duration),
		}, nil
	}, s.content.CreateFeeStructure)
}

// CreateApplicationDownload publishes an application form. The newest form is
// the one the admission page offers.
func (s *SiteService) CreateApplicationDownload(ctx context.Context, req dto.ApplicationDownloadRequest) (*models.ApplicationDownload, error) {
	return createBlock(ctx, s.logger, models.ContentApplicationDownload, req, func(r dto.ApplicationDownloadRequest) (*models.ApplicationDownload, error) {
		return &models.ApplicationDownload{
			IntakeSeason: strings.TrimSpace(r.IntakeSeason),
			Description:  strings.TrimSpace(r.Description),
			FormFile:     strings.TrimSpace(r.FormFile),
		}, nil
	}, s.content.CreateApplicationDownload)
}

func (s *SiteService) CreateAdmission(ctx context.Context, req dto.AdmissionRequest) (*models.Admission, error) {
	return createBlock(ctx, s.logger, models.ContentAdmission, req, func(r dto.AdmissionRequest) (*models.Admission, error) {
		return &models.Admission{
			Department:  strings.TrimSpace(r.Department),
			Program:     strings.TrimSpace(r.Program),
			Duration:    strings.TrimSpace(r.Duration),
			Eligibility: strings.TrimSpace(r.Eligibility),
		}, nil
	}, s.content.CreateAdmission)
}

func (s *SiteService) CreatePhilosophyBlock(ctx context.Context, req dto.PhilosophyBlockRequest) (*models.PhilosophyBlock, error) {
	return createBlock(ctx, s.logger, models.ContentPhilosophyBlock, req, func(r dto.PhilosophyBlockRequest) (*models.PhilosophyBlock, error) {
		return &models.PhilosophyBlock{
			Title:       strings.TrimSpace(r.Title),
			Description: strings.TrimSpace(r.Description),
			Icon:        strings.TrimSpace(r.Icon),
		}, nil
	}, s.content.CreatePhilosophyBlock)
}

func (s *SiteService) CreateStatistic(ctx context.Context, req dto.StatisticRequest) (*models.Statistic, error) {
	return createBlock(ctx, s.logger, models.ContentStatistic, req, func(r dto.StatisticRequest) (*models.Statistic, error) {
		return &models.Statistic{
			Title: strings.TrimSpace(r.Title),
			Count: r.Count,
			Color: defaultString(r.Color, models.DefaultStatisticColor),
		}, nil
	}, s.content.CreateStatistic)
}

func (s *SiteService) CreateHighlightSection(ctx context.Context, req dto.HighlightSectionRequest) (*models.HighlightSection, error) {
	return createBlock(ctx, s.logger, models.ContentHighlightSection, req, func(r dto.HighlightSectionRequest) (*models.HighlightSection, error) {
		return &models.HighlightSection{
			Heading:         strings.TrimSpace(r.Heading),
			Subheading:      strings.TrimSpace(r.Subheading),
			Description:     strings.TrimSpace(r.Description),
			BackgroundImage: strings.TrimSpace(r.BackgroundImage),
			ButtonText:      strings.TrimSpace(r.ButtonText),
			ButtonURL:       strings.TrimSpace(r.ButtonURL),
		}, nil
	}, s.content.CreateHighlightSection)
}

func (s *SiteService) CreateContactInformation(ctx context.Context, req dto.ContactInformationRequest) (*models.ContactInformation, error) {
	return createBlock(ctx, s.logger, models.ContentContactInformation, req, func(r dto.ContactInformationRequest) (*models.ContactInformation, error) {
		return &models.ContactInformation{
			Address:        strings.TrimSpace(r.Address),
			Phone:          strings.TrimSpace(r.Phone),
			Email:          strings.TrimSpace(r.Email),
			FacebookLink:   strings.TrimSpace(r.FacebookLink),
			TwitterLink:    strings.TrimSpace(r.TwitterLink),
			LinkedinLink:   strings.TrimSpace(r.LinkedinLink),
			GooglePlusLink: strings.TrimSpace(r.GooglePlusLink),
		}, nil
	}, s.content.CreateContactInformation)
}

// ListContent returns every stored row of a content kind in creation order,
// including the rows a singleton policy does not pick.
func (s *SiteService) ListContent(ctx context.Context, kind models.ContentKind) (interface{}, error) {
	first := helpers.Asc("id")
	switch kind {
	case models.ContentPrincipalMessage:
		return s.content.PrincipalMessages(ctx, first, 0)
	case models.ContentAcademicExcellence:
		return s.content.AcademicExcellence(ctx, first, 0)
	case models.ContentTestimonial:
		return s.content.Testimonials(ctx)
	case models.ContentFacility:
		return s.content.Facilities(ctx)
	case models.ContentHostelIntro:
		return s.content.HostelIntros(ctx, first, 0)
	case models.ContentHostelFacility:
		return s.content.HostelFacilities(ctx)
	case models.ContentAdmissionStep:
		return s.content.AdmissionSteps(ctx)
	case models.ContentFeeStructure:
		return s.content.FeeStructures(ctx)
	case models.ContentApplicationDownload:
		return s.content.ApplicationDownloads(ctx, first, 0)
	case models.ContentAdmission:
		return s.content.Admissions(ctx)
	case models.ContentPhilosophyBlock:
		return s.content.PhilosophyBlocks(ctx)
	case models.ContentStatistic:
		return s.content.Statistics(ctx)
	case models.ContentHighlightSection:
		return s.content.HighlightSections(ctx, first, 0)
	case models.ContentContactInformation:
		return s.content.ContactInformation(ctx, first, 0)
	}
	return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("unknown content kind: %s", kind))
}

// DeleteContent removes one row of a content kind.
func (s *SiteService) DeleteContent(ctx context.Context, kind models.ContentKind, id int64) error {
	if !kind.Valid() {
		return apperrors.NewResourceNotFoundError(fmt.Sprintf("unknown content kind: %s", kind))
	}
	if err := s.content.DeleteContent(ctx, kind, id); err != nil {
		return err
	}
	s.logger.Info().Str("kind", string(kind)).Int64("id", id).Msg("Content block deleted")
	return nil
}
