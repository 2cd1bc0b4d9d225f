package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/sitehub/internal/app/models"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/pkg/apperrors"
	"github.com/yigit/sitehub/internal/pkg/helpers"
)

func newSiteService(content *fakeContent, logger zerolog.Logger) *SiteService {
	events := NewEventService(&fakeEvents{}, nil, logger)
	return NewSiteService(content, newFakeDepartments(), newFakeNews(), nil, events, logger)
}

func TestSingleton_Empty(t *testing.T) {
	svc := newSiteService(&fakeContent{}, zerolog.Nop())

	msg, err := svc.PrincipalMessage(context.Background())
	require.NoError(t, err)
	assert.Nil(t, msg)

	v, err := svc.Singleton(context.Background(), models.SingletonPrincipalMessage)
	require.NoError(t, err)
	assert.True(t, v == nil, "missing block must be an untyped nil")
}

func TestSingleton_PolicyPicks(t *testing.T) {
	var buf bytes.Buffer
	content := &fakeContent{
		principals: []models.PrincipalMessage{{ID: 2, Title: "Second"}, {ID: 1, Title: "First"}},
		downloads:  []models.ApplicationDownload{{ID: 1, IntakeSeason: "Spring"}, {ID: 3, IntakeSeason: "Fall"}},
	}
	svc := newSiteService(content, zerolog.New(&buf))
	ctx := context.Background()

	msg, err := svc.PrincipalMessage(ctx)
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Equal(t, "First", msg.Title)

	v, err := svc.Singleton(ctx, models.SingletonApplicationDownload)
	require.NoError(t, err)
	form, ok := v.(*models.ApplicationDownload)
	require.True(t, ok)
	assert.Equal(t, "Fall", form.IntakeSeason)

	assert.Equal(t, []helpers.SortSpec{helpers.Asc("id"), helpers.Desc("id")}, content.sorts)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"kind":"application_download"`)
}

func TestSingleton_SingleRowDoesNotWarn(t *testing.T) {
	var buf bytes.Buffer
	content := &fakeContent{principals: []models.PrincipalMessage{{ID: 1, Title: "Only"}}}
	svc := newSiteService(content, zerolog.New(&buf))

	msg, err := svc.PrincipalMessage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Only", msg.Title)
	assert.Empty(t, buf.String())
}

func TestSingleton_UnknownKind(t *testing.T) {
	svc := newSiteService(&fakeContent{}, zerolog.Nop())
	_, err := svc.Singleton(context.Background(), models.SingletonKind("banner"))
	assert.Error(t, err)
}

func TestFacilities_LabsSortedByType(t *testing.T) {
	content := &fakeContent{facilities: []models.Facility{
		{ID: 1, Name: "research"},
		{ID: 2, Name: "multimedia"},
		{ID: 3, Name: "programming"},
	}}
	svc := newSiteService(content, zerolog.Nop())

	page, err := svc.Facilities(context.Background())
	require.NoError(t, err)
	var names []string
	for _, l := range page.Labs {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"multimedia", "programming", "research"}, names)
	assert.Nil(t, page.HostelIntro)
	assert.Equal(t, models.VisitInterests, page.VisitInterests)
}

func TestAddGalleryImage(t *testing.T) {
	content := &fakeContent{}
	svc := newSiteService(content, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.AddGalleryImage(ctx, dto.GalleryImageRequest{})
	_, ok := apperrors.AsValidationError(err)
	assert.True(t, ok)

	img, err := svc.AddGalleryImage(ctx, dto.GalleryImageRequest{Image: "gallery/a.jpg", Caption: "Campus"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), img.ID)
	assert.Len(t, content.gallery, 1)
}
