// Package slug derives URL-safe identifiers from titles and resolves
// collisions against the slugs already stored for an entity type.
package slug

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/yigit/sitehub/internal/pkg/apperrors"
	"golang.org/x/text/unicode/norm"
)

// MaxBaseLength bounds the base part of a slug. Suffixes are added on top.
const MaxBaseLength = 200

// DefaultAttempts is the retry budget used by services when a concurrent
// writer claims the same slug between selection and insert.
const DefaultAttempts = 5

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reValid    = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// ErrEmptyBase is returned when a title contains no letters or digits.
var ErrEmptyBase = errors.New("title must contain at least one letter or digit")

// Slugify lowercases title, strips diacritics and collapses every run of
// characters outside [a-z0-9] into a single hyphen. Leading and trailing
// hyphens are removed. The result may be empty.
func Slugify(title string) string {
	var b strings.Builder
	for _, r := range norm.NFKD.String(strings.ToLower(title)) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}

	s := reNonAlnum.ReplaceAllString(b.String(), "-")
	s = strings.Trim(s, "-")
	if len(s) > MaxBaseLength {
		s = strings.TrimRight(s[:MaxBaseLength], "-")
	}
	return s
}

// Valid reports whether s is already in canonical slug form.
func Valid(s string) bool {
	return len(s) <= MaxBaseLength+12 && reValid.MatchString(s)
}

// Assign returns the first slug derived from title that is not in existing:
// the base itself, then base-1, base-2, and so on. existing must hold the
// slugs of every other persisted record of the same type.
func Assign(title string, existing map[string]struct{}) (string, error) {
	base := Slugify(title)
	if base == "" {
		return "", ErrEmptyBase
	}
	if _, taken := existing[base]; !taken {
		return base, nil
	}
	for n := 1; ; n++ {
		candidate := base + "-" + strconv.Itoa(n)
		if _, taken := existing[candidate]; !taken {
			return candidate, nil
		}
	}
}

// Set builds the lookup set expected by Assign.
func Set(slugs ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(slugs))
	for _, s := range slugs {
		set[s] = struct{}{}
	}
	return set
}

// WithRetry runs attempt until it succeeds or fails with something other than
// apperrors.ErrSlugConflict. attempt is expected to re-read the existing slugs
// and pick a new candidate on every call. After maxAttempts conflicts the
// result wraps apperrors.ErrSlugUnavailable.
func WithRetry(ctx context.Context, maxAttempts int, attempt func(ctx context.Context) error) error {
	if maxAttempts <= 0 {
		maxAttempts = DefaultAttempts
	}

	var err error
	for i := 0; i < maxAttempts; i++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		err = attempt(ctx)
		if !errors.Is(err, apperrors.ErrSlugConflict) {
			return err
		}
	}
	return fmt.Errorf("%w after %d attempts: %v", apperrors.ErrSlugUnavailable, maxAttempts, err)
}
