package services

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel shown in place of missing client fields on the single-record read
// path. List reads pass nulls through unchanged.
const NotIdentified = "Nao identificado"

// rowExists is the existence probe: a lightweight count used to validate that
// a referenced row exists before a dependent write.
func rowExists(tx *gorm.DB, model interface{}, column string, id int) (bool, error) {
	var n int64
	if err := tx.Model(model).Where(column+" = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// probeReference validates a single foreign key and normalizes the failure
// into a ReferenceError carrying the offending field name.
func probeReference(tx *gorm.DB, model interface{}, column, field, message string, id int) error {
	ok, err := rowExists(tx, model, column, id)
	if err != nil {
		return err
	}
	if !ok {
		return &ReferenceError{Field: field, Message: message}
	}
	return nil
}

// wrapWriteError classifies backend write failures. Unique-constraint and
// foreign-key rejections become ConstraintError; everything else passes
// through untouched so the handler reports it as a server error.
func wrapWriteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &ConstraintError{Err: err}
	}
	return err
}

// coalesce applies the single-record sentinel rule to a nullable text field
func coalesce(s *string) string {
	if s == nil {
		return NotIdentified
	}
	return *s
}
