package helpers

import (
	"log"
	"net/http/httptest"
	"os"
	"testing"

	"lounge_backend/internal/app"
	"lounge_backend/internal/config"
	"lounge_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TestServer - приложение поверх httptest и тестовой БД.
// Тесты требуют реальный Postgres: DSN берется из TEST_DATABASE_URL,
// без него интеграционные тесты пропускаются.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// RequireTestDB возвращает DSN тестовой БД или пропускает тест
func RequireTestDB(t *testing.T) string {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set, skipping integration tests")
	}
	return dsn
}

// NewTestServer поднимает приложение на тестовой БД
func NewTestServer(t *testing.T, dsn string) *TestServer {
	t.Helper()

	os.Setenv("DATABASE_URL", dsn)
	if os.Getenv("JWT_SECRET") == "" {
		os.Setenv("JWT_SECRET", "integration-test-secret")
	}
	os.Setenv("SERVER_ENV", "test")

	config.LoadConfig()
	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Не удалось подключиться к тестовой БД (%s): %v", dsn, err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Lounge{},
		&models.Booking{},
		&models.Subscription{},
		&models.SubscriptionTransaction{},
	)
	if err != nil {
		t.Fatalf("Не удалось выполнить AutoMigrate для тестовой БД: %v", err)
	}

	// Redis в интеграционных тестах не поднимаем, кеш отключен
	router := app.SetupRouter(cfg, db, nil)
	server := httptest.NewServer(router)

	log.Printf("Тестовый сервер запущен: %s", server.URL)

	return &TestServer{
		Server: server,
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// ClearTables очищает все таблицы приложения
func (ts *TestServer) ClearTables(t *testing.T) {
	t.Helper()

	err := ts.DB.Exec("TRUNCATE TABLE users, lounges, bookings, subscriptions, subscription_transactions RESTART IDENTITY CASCADE").Error
	if err != nil {
		t.Fatalf("Не удалось очистить таблицы: %v", err)
	}
}
