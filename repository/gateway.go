package repository

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Gateway is the key-based access shared by every table: insert, get, update
// and delete by primary key. Errors keep their gorm identity under the wrap, so
// errors.Is(err, gorm.ErrRecordNotFound) and errors.Is(err, gorm.ErrDuplicatedKey)
// still hold for callers.
type Gateway[T any] struct {
	DB    *gorm.DB
	table string
}

func NewGateway[T any](db *gorm.DB, table string) Gateway[T] {
	return Gateway[T]{DB: db, table: table}
}

func (g Gateway[T]) Insert(row *T) error {
	if err := g.DB.Omit(clause.Associations).Create(row).Error; err != nil {
		return errors.Wrapf(constraintError(err), "insert %s", g.table)
	}
	return nil
}

func (g Gateway[T]) Get(id uint) (*T, error) {
	var row T
	if err := g.DB.First(&row, id).Error; err != nil {
		return nil, errors.Wrapf(err, "get %s %d", g.table, id)
	}
	return &row, nil
}

func (g Gateway[T]) Exists(id uint) (bool, error) {
	var cnt int64
	if err := g.DB.Model(new(T)).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, errors.Wrapf(err, "lookup %s %d", g.table, id)
	}
	return cnt > 0, nil
}

// Update writes fields on the row with the given id. A missing row is not an
// error here; callers check existence first (MySQL reports zero affected rows
// for no-op updates, so RowsAffected cannot tell the two apart).
func (g Gateway[T]) Update(id uint, fields map[string]interface{}) error {
	if err := g.DB.Model(new(T)).Where("id = ?", id).Updates(fields).Error; err != nil {
		return errors.Wrapf(constraintError(err), "update %s %d", g.table, id)
	}
	return nil
}

// Delete removes the row and reports whether it existed.
func (g Gateway[T]) Delete(id uint) (bool, error) {
	res := g.DB.Delete(new(T), id)
	if res.Error != nil {
		return false, errors.Wrapf(constraintError(res.Error), "delete %s %d", g.table, id)
	}
	return res.RowsAffected > 0, nil
}

// constraintError only matters for drivers that hand back untranslated
// constraint errors.
func constraintError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return err
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"), strings.Contains(msg, "Duplicate entry"):
		return errors.Wrap(gorm.ErrDuplicatedKey, msg)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"), strings.Contains(msg, "foreign key constraint fails"):
		return errors.Wrap(gorm.ErrForeignKeyViolated, msg)
	}
	return err
}
