// Package admin manages the privileged account directory.
package admin

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"time"

	"github.com/akobirdev/surveybot/internal/models"
	"github.com/akobirdev/surveybot/internal/store"
)

// adminIDPattern accepts the practical range of Telegram account ids.
var adminIDPattern = regexp.MustCompile(`^\d{9,10}$`)

// ParseAdminID validates a raw id string and converts it. The input must
// be exactly 9 or 10 digits with no sign or separators.
func ParseAdminID(raw string) (int64, error) {
	if !adminIDPattern.MatchString(raw) {
		return 0, fmt.Errorf("%w: %q", models.ErrInvalidAdminID, raw)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", models.ErrInvalidAdminID, raw)
	}
	return id, nil
}

// Directory answers privilege checks and mutates the admin roster.
type Directory struct {
	store store.Store
}

// NewDirectory creates a Directory backed by the given store.
func NewDirectory(st store.Store) *Directory {
	return &Directory{store: st}
}

// IsPrivileged reports whether an account may use the admin panel.
// A nil Directory means the bot runs without admin features and denies
// everyone. Store failures deny access rather than failing open.
func (d *Directory) IsPrivileged(id int64) bool {
	if d == nil {
		return false
	}
	ok, err := d.store.IsAdmin(id)
	if err != nil {
		slog.Error("Directory IsPrivileged check failed", "error", err, "id", id)
		return false
	}
	return ok
}

// Add grants privileges to an account. Returns true when the account was
// newly added, false when it already had privileges.
func (d *Directory) Add(id, addedBy int64) (bool, error) {
	exists, err := d.store.IsAdmin(id)
	if err != nil {
		return false, fmt.Errorf("failed to check admin %d: %w", id, err)
	}
	if exists {
		return false, nil
	}
	err = d.store.AddAdmin(models.Admin{
		ID:      id,
		AddedAt: time.Now(),
		AddedBy: addedBy,
	})
	if err != nil {
		return false, fmt.Errorf("failed to add admin %d: %w", id, err)
	}
	slog.Info("Directory admin added", "id", id, "added_by", addedBy)
	return true, nil
}

// Remove revokes privileges. Returns false when the account was not an
// admin.
func (d *Directory) Remove(id int64) (bool, error) {
	removed, err := d.store.RemoveAdmin(id)
	if err != nil {
		return false, fmt.Errorf("failed to remove admin %d: %w", id, err)
	}
	if removed {
		slog.Info("Directory admin removed", "id", id)
	}
	return removed, nil
}

// List returns the current roster.
func (d *Directory) List() ([]models.Admin, error) {
	admins, err := d.store.ListAdmins()
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return admins, nil
}
