package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/sitehub/internal/pkg/apperrors"
	"github.com/yigit/sitehub/internal/pkg/slug"
)

// slugRequest describes how the slug of a record is chosen on one save.
type slugRequest struct {
	entity     string // used in log and error messages
	titleField string // field reported when the title has no usable characters
	title      string
	explicit   string // caller supplied slug, used verbatim
	current    string // slug already stored; kept when explicit is empty
	id         int64  // row being saved, 0 on create
}

func slugTakenError(s string) error {
	return (&apperrors.CustomError{
		Err:     apperrors.ErrResourceAlreadyExists,
		Message: fmt.Sprintf("slug %q is already in use", s),
	}).WithDetails(map[string]interface{}{"field": "slug"})
}

// pickSlug resolves the slug for one save attempt. Existing slugs are re-read
// on every call so a retry sees rows committed by a concurrent writer.
func pickSlug(ctx context.Context, store SlugLister, req slugRequest) (string, error) {
	if req.explicit != "" {
		if !slug.Valid(req.explicit) {
			return "", apperrors.FieldError("slug", "Slug may only contain lowercase letters, digits and single hyphens.")
		}
		existing, err := store.ListSlugs(ctx, req.explicit, req.id)
		if err != nil {
			return "", err
		}
		if _, taken := existing[req.explicit]; taken {
			return "", slugTakenError(req.explicit)
		}
		return req.explicit, nil
	}

	if req.current != "" {
		return req.current, nil
	}

	base := slug.Slugify(req.title)
	if base == "" {
		return "", apperrors.FieldError(req.titleField, "Must contain at least one letter or digit.")
	}
	existing, err := store.ListSlugs(ctx, base, req.id)
	if err != nil {
		return "", fmt.Errorf("error loading existing slugs: %w", err)
	}
	return slug.Assign(req.title, existing)
}

// saveWithSlug picks a slug and hands it to save, retrying the pair when save
// loses a race on the slug unique constraint. An explicit slug is never
// rewritten: losing the race with one is reported as a conflict.
func saveWithSlug(ctx context.Context, log zerolog.Logger, store SlugLister, req slugRequest, save func(ctx context.Context, slug string) error) error {
	req.explicit = strings.TrimSpace(req.explicit)
	attempt := 0

	return slug.WithRetry(ctx, slug.DefaultAttempts, func(ctx context.Context) error {
		attempt++
		chosen, err := pickSlug(ctx, store, req)
		if err != nil {
			return err
		}

		err = save(ctx, chosen)
		if errors.Is(err, apperrors.ErrSlugConflict) {
			if req.explicit != "" {
				return slugTakenError(chosen)
			}
			log.Warn().Str("entity", req.entity).Str("slug", chosen).Int("attempt", attempt).
				Msg("Slug claimed concurrently, choosing another")
		}
		return err
	})
}

// slugChange interprets an optional slug field of an update request: nil keeps
// the stored slug, an empty string clears it so it is derived again, and any
// other value replaces it.
func slugChange(requested *string, stored string) (explicit, current string) {
	if requested == nil {
		return "", stored
	}
	if v := strings.TrimSpace(*requested); v != "" {
		return v, ""
	}
	return "", ""
}
