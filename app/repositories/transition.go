// Package repositories is the gorm storage layer. Each repository owns one
// table; not-found lookups return gorm.ErrRecordNotFound.
package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/venuebook/app/models"
)

// ErrStateConflict means the row exists but its state does not allow the
// requested transition.
var ErrStateConflict = errors.New("state does not allow transition")

func stateCodes(states []models.State) []int {
	out := make([]int, len(states))
	for i, s := range states {
		out[i] = int(s)
	}
	return out
}

// applyTransition moves the row with primary key id through t in one
// transaction. The UPDATE is conditional on the current state; when it
// touches nothing the state is re-read so that a no-op update (same values)
// is not mistaken for a conflict.
func applyTransition(ctx context.Context, db *gorm.DB, model interface{}, pk string, id uint, t models.Transition, set map[string]interface{}) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"state": int(t.To)}
		for k, v := range set {
			updates[k] = v
		}

		res := tx.Model(model).
			Where(pk+" = ? AND state IN ?", id, stateCodes(t.From)).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}

		var current struct{ State int }
		err := tx.Model(model).Select("state").Where(pk+" = ?", id).Take(&current).Error
		if err != nil {
			return err
		}
		if t.Allows(models.State(current.State)) {
			return nil
		}
		return fmt.Errorf("%w: cannot %s from %s", ErrStateConflict, t.Name, models.State(current.State))
	})
}
