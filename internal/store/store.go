// Package store is the data-access layer. Every type takes an injected
// *gorm.DB; nothing here owns the connection lifecycle.
package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"newsdesk/internal/apperr"
)

// Exists converts "no row with column = value in table" into a NotFound
// failure. An empty value is nothing to check and passes, which lets
// handlers fan out optional-parameter checks unconditionally. Table and
// column names always come from call-site constants; only the value is
// user-supplied and it is bound, never interpolated.
func Exists(ctx context.Context, db *gorm.DB, table, column string, value any) error {
	if value == nil || value == "" {
		return nil
	}
	var count int64
	err := db.WithContext(ctx).
		Table(table).
		Where(fmt.Sprintf("%s = ?", column), value).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return apperr.NotFound("Data not found")
	}
	return nil
}

// Unique is the inverse guard, used before inserting a new unique key.
func Unique(ctx context.Context, db *gorm.DB, table, column string, value any) error {
	if value == nil || value == "" {
		return nil
	}
	var count int64
	err := db.WithContext(ctx).
		Table(table).
		Where(fmt.Sprintf("%s = ?", column), value).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("Already exists")
	}
	return nil
}
