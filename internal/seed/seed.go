// Package seed fills an empty database with the baseline site content.
package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/sitehub/internal/app/models/dto"
	appRepos "github.com/yigit/sitehub/internal/app/repositories"
	appServices "github.com/yigit/sitehub/internal/app/services"
	"github.com/yigit/sitehub/internal/pkg/helpers"
)

// CreateDefaultData seeds departments, news, courses and the contact,
// admission and about blocks. Each group is only written while its table is empty, so running it
// on every start is safe. Failures are collected and returned together.
func CreateDefaultData(ctx context.Context, repos *appRepos.Repositories, svcs *appServices.Services, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default site content...")
	var finalErr error

	departments, err := svcs.Department.List(ctx, helpers.Asc("id"))
	if err != nil {
		return err
	}
	if len(departments) == 0 {
		for _, req := range defaultDepartments {
			if _, err := svcs.Department.Create(ctx, req); err != nil {
				lgr.Error().Err(err).Str("department", req.Name).Msg("Error creating default department")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	news, err := svcs.News.List(ctx, appServices.DefaultNewsOrder)
	if err != nil {
		return errors.Join(finalErr, err)
	}
	if len(news) == 0 {
		for _, req := range defaultNews {
			if _, err := svcs.News.Create(ctx, req); err != nil {
				lgr.Error().Err(err).Str("news", req.Title).Msg("Error creating default news")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	courses, err := svcs.Course.List(ctx, helpers.Asc("id"))
	if err != nil {
		return errors.Join(finalErr, err)
	}
	if len(courses) == 0 {
		for _, req := range defaultCourses {
			if _, err := svcs.Course.Create(ctx, req); err != nil {
				lgr.Error().Err(err).Str("course", req.Title).Msg("Error creating default course")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	content := repos.SiteContent
	seedTable(ctx, content, appRepos.TableContactInformation, lgr, &finalErr, func() error {
		_, err := svcs.Site.CreateContactInformation(ctx, dto.ContactInformationRequest{
			Address: "Government College of Management Sciences, Peshawar",
			Phone:   "+92 91 0000000",
			Email:   "info@gcms.edu.pk",
		})
		return err
	})
	seedTable(ctx, content, appRepos.TableAdmissionSteps, lgr, &finalErr, func() error {
		for _, step := range defaultAdmissionSteps {
			if _, err := svcs.Site.CreateAdmissionStep(ctx, step); err != nil {
				return err
			}
		}
		return nil
	})
	seedTable(ctx, content, appRepos.TableStatistics, lgr, &finalErr, func() error {
		for _, stat := range defaultStatistics {
			if _, err := svcs.Site.CreateStatistic(ctx, stat); err != nil {
				return err
			}
		}
		return nil
	})

	if finalErr == nil {
		lgr.Info().Msg("Default site content is in place")
	}
	return finalErr
}

func seedTable(ctx context.Context, content *appRepos.SiteContentRepository, table string, lgr zerolog.Logger, finalErr *error, create func() error) {
	n, err := content.Count(ctx, table)
	if err != nil {
		lgr.Error().Err(err).Str("table", table).Msg("Error counting rows")
		*finalErr = errors.Join(*finalErr, err)
		return
	}
	if n > 0 {
		return
	}
	if err := create(); err != nil {
		lgr.Error().Err(err).Str("table", table).Msg("Error creating default rows")
		*finalErr = errors.Join(*finalErr, err)
		return
	}
	lgr.Info().Str("table", table).Msg("Default rows created")
}

var defaultDepartments = []dto.DepartmentRequest{
	{Name: "Computer Science", Faculty: "Computing", DegreeType: "BS", Description: "Programming, data structures, networks and software engineering."},
	{Name: "Management Sciences", Faculty: "Management", DegreeType: "BBA", Description: "Business administration, accounting and finance."},
	{Name: "Commerce", Faculty: "Management", DegreeType: "Diploma", Description: "D.Com and I.Com programs."},
}

var defaultNews = []dto.NewsRequest{
	{Title: "Admissions Open", Author: "Admission Office", Description: "Applications for the new session are now being accepted online."},
	{Title: "Welcome to the New Website", Author: "Administration", Description: "Departments, events, the library catalog and examination notices are now available online."},
}

var defaultCourses = []dto.CourseRequest{
	{Title: "Computer Science", Duration: "4 years", Description: "BS Computer Science."},
	{Title: "DIT", Duration: "1 year", Description: "Diploma in Information Technology."},
}

var defaultAdmissionSteps = []dto.AdmissionStepRequest{
	{Title: "Apply Online", IconClass: "fa-laptop", Description: "Fill in the online application form."},
	{Title: "Submit Documents", IconClass: "fa-file", Description: "Bring attested copies of your certificates to the admission office."},
	{Title: "Merit List", IconClass: "fa-list", Description: "Check the merit list on the notice board and the news page."},
	{Title: "Fee Submission", IconClass: "fa-money", Description: "Deposit the fee to confirm your seat."},
}

var defaultStatistics = []dto.StatisticRequest{
	{Title: "Students", Count: 1500, Color: "blue"},
	{Title: "Faculty Members", Count: 60, Color: "green"},
	{Title: "Programs", Count: 9, Color: "orange"},
}
