package db

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Sole248k/Task-Management-Application/internal/config"
)

// ConnectDB opens the application database, creating it first when it
// does not exist yet. The create step uses a short-lived connection
// with no schema selected.
func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	params := conf.DbParams
	if params == "" {
		params = "parseTime=true&multiStatements=true"
	}

	admin, err := sqlx.Connect("mysql", mysqlDSN(conf, "", params))
	if err != nil {
		return nil, err
	}
	if _, err := admin.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", conf.DbName)); err != nil {
		_ = admin.Close()
		return nil, err
	}
	if err := admin.Close(); err != nil {
		zap.L().Warn("failed to close admin connection", zap.Error(err))
	}

	database, err := sqlx.Connect("mysql", mysqlDSN(conf, conf.DbName, params))
	if err != nil {
		return nil, err
	}

	return database, nil
}

func mysqlDSN(conf *config.Config, schema, params string) string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		schema,
		params,
	)
}
