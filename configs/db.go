package configs

import (
	"strings"
	"time"

	"orderapi/entity"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// ConnectionDB opens the configured database. Driver errors are translated so
// that unique and foreign key violations come back as gorm.ErrDuplicatedKey and
// gorm.ErrForeignKeyViolated.
func ConnectionDB(driver, source string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite:
		dialector = sqlite.Open(sqliteDSN(source))
	case DriverMySQL:
		dialector = mysql.Open(source)
	default:
		return nil, errors.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: logger.New(log.StandardLogger(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open %s database", driver)
	}
	return db, nil
}

// sqlite only enforces foreign keys when asked to, per connection.
func sqliteDSN(source string) string {
	params := []string{}
	if !strings.Contains(source, "_foreign_keys") && !strings.Contains(source, "_fk") {
		params = append(params, "_foreign_keys=on")
	}
	if !strings.Contains(source, "_busy_timeout") {
		params = append(params, "_busy_timeout=5000")
	}
	if len(params) == 0 {
		return source
	}

	sep := "?"
	if strings.Contains(source, "?") {
		sep = "&"
	}
	return source + sep + strings.Join(params, "&")
}

// SetupDatabase creates or upgrades the four tables.
func SetupDatabase(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entity.Customer{},
		&entity.Item{},
		&entity.Order{},
		&entity.OrderItem{},
	); err != nil {
		return errors.Wrap(err, "migrate schema")
	}
	return nil
}

// CloseDB releases the connection pool, logging a failure at warn level.
func CloseDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.Close()
	}
	if err != nil {
		log.WithError(err).Warn("closing database")
	}
}
