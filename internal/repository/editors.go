package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/octobees/wellness-site/internal/entity"
)

// ErrUserNotFound is returned when no editor matches the lookup criteria.
var ErrUserNotFound = errors.New("user not found")

// EditorsRepository declares readonly operations for editors.
type EditorsRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.Editor, error)
}

// StaticEditorsRepository serves editors configured at startup.
type StaticEditorsRepository struct {
	byEmail map[string]entity.Editor
}

// NewStaticEditorsRepository indexes editors by email. Editors without an
// email or password hash are skipped.
func NewStaticEditorsRepository(editors ...entity.Editor) *StaticEditorsRepository {
	byEmail := make(map[string]entity.Editor, len(editors))
	for _, editor := range editors {
		if editor.Email == "" || editor.PasswordHash == "" {
			continue
		}
		byEmail[strings.ToLower(editor.Email)] = editor
	}
	return &StaticEditorsRepository{byEmail: byEmail}
}

// FindByEmail fetches an editor by email if present.
func (r *StaticEditorsRepository) FindByEmail(ctx context.Context, email string) (*entity.Editor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	editor, ok := r.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &editor, nil
}

// Len reports how many editors can sign in.
func (r *StaticEditorsRepository) Len() int {
	return len(r.byEmail)
}
