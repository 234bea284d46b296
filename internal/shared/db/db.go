package db

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"social-feed-service/configs"
)

// Open connects to Postgres with exponential backoff. TranslateError is on so
// unique violations surface as gorm.ErrDuplicatedKey.
func Open(cfg *configs.Config) (*gorm.DB, error) {
	var g *gorm.DB
	var last error
	for i := 0; i < 8; i++ {
		g, last = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Warn),
			TranslateError: true,
		})
		if last == nil {
			sqlDB, err := g.DB()
			if err != nil {
				return nil, err
			}
			sqlDB.SetMaxOpenConns(40)
			sqlDB.SetMaxIdleConns(10)
			sqlDB.SetConnMaxLifetime(30 * time.Minute)
			return g, nil
		}
		time.Sleep(time.Duration(1<<i) * time.Second)
	}
	return nil, last
}

func Close(g *gorm.DB) error {
	sqlDB, err := g.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
