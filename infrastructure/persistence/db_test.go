package persistence

import (
	"context"
	"errors"
	"testing"

	"tagtube/infrastructure/configuration"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               gormlogger.Default.LogMode(gormlogger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestPostgresDSN(t *testing.T) {
	dsn := PostgresDSN(configuration.Db{Name: "tagtube", Host: "db", Port: "5432", User: "app", Password: "secret"})
	assert.Equal(t, "host=db user=app password=secret dbname=tagtube port=5432 sslmode=disable TimeZone=UTC", dsn)

	dsn = PostgresDSN(configuration.Db{Host: "db", SSLMode: "require"})
	assert.Contains(t, dsn, "sslmode=require")
}

func TestMySQLDSN(t *testing.T) {
	dsn := MySQLDSN(configuration.Db{Name: "tagtube", Host: "db", Port: "3306", User: "root", Password: "pw"})
	assert.Equal(t, "root:pw@tcp(db:3306)/tagtube?charset=utf8mb4&parseTime=True&loc=UTC", dsn)
}

func TestDialector(t *testing.T) {
	d, err := Dialector(configuration.Database{Vendor: configuration.VendorPostgres})
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	d, err = Dialector(configuration.Database{})
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	d, err = Dialector(configuration.Database{Vendor: configuration.VendorMySQL})
	require.NoError(t, err)
	assert.Equal(t, "mysql", d.Name())

	_, err = Dialector(configuration.Database{Vendor: "oracle"})
	assert.EqualError(t, err, `unsupported database vendor "oracle"`)
}

func TestNewDatabase_UnsupportedVendor(t *testing.T) {
	db, err := NewDatabase(configuration.Database{Vendor: "sqlite"})
	assert.Nil(t, db)
	assert.Error(t, err)
}

func TestPing(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectPing()
	require.NoError(t, Ping(context.Background(), db))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	err := Ping(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping database")

	require.NoError(t, mock.ExpectationsWereMet())
}
