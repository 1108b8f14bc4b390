package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"devlens_backend/internal/feature/analysis/domain/entity"
)

// mockReportRepository is a mock ReportRepository for testing.
type mockReportRepository struct {
	createFn     func(ctx context.Context, report *entity.Report) error
	listByRepoFn func(ctx context.Context, repoID uint) ([]entity.Report, error)
}

func (m *mockReportRepository) Create(ctx context.Context, report *entity.Report) error {
	if m.createFn != nil {
		return m.createFn(ctx, report)
	}
	return nil
}

func (m *mockReportRepository) ListByRepo(ctx context.Context, repoID uint) ([]entity.Report, error) {
	if m.listByRepoFn != nil {
		return m.listByRepoFn(ctx, repoID)
	}
	return nil, nil
}

func TestNewCachingReportRepository_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{
			name:              "default values when zero/empty",
			ttl:               0,
			namespace:         "",
			expectedTTL:       5 * time.Minute,
			expectedNamespace: "reports",
		},
		{
			name:              "negative ttl uses default",
			ttl:               -1 * time.Minute,
			namespace:         "",
			expectedTTL:       5 * time.Minute,
			expectedNamespace: "reports",
		},
		{
			name:              "custom values preserved",
			ttl:               10 * time.Minute,
			namespace:         "custom",
			expectedTTL:       10 * time.Minute,
			expectedNamespace: "custom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingReportRepository(nil, tt.ttl, &mockReportRepository{}, tt.namespace)

			if repo.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, repo.ttl)
			}
			if repo.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, repo.namespace)
			}
		})
	}
}

func TestCachingReportRepository_ListByRepo_NilRedis(t *testing.T) {
	t.Parallel()

	expected := []entity.Report{{ID: 1, Format: "pdf", RepoID: 3}}

	inner := &mockReportRepository{
		listByRepoFn: func(ctx context.Context, repoID uint) ([]entity.Report, error) {
			return expected, nil
		},
	}

	// Redis is nil - should bypass cache and call inner directly
	repo := NewCachingReportRepository(nil, 5*time.Minute, inner, "reports")

	reports, err := repo.ListByRepo(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports) != len(expected) {
		t.Errorf("expected %d reports, got %d", len(expected), len(reports))
	}
}

func TestCachingReportRepository_ListByRepo_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cached := []entity.Report{{ID: 1, Format: "pdf", RepoID: 3}}
	cachedJSON, _ := json.Marshal(cached)

	mock.ExpectGet("reports:3:list").SetVal(string(cachedJSON))

	innerCalled := false
	inner := &mockReportRepository{
		listByRepoFn: func(ctx context.Context, repoID uint) ([]entity.Report, error) {
			innerCalled = true
			return nil, nil
		},
	}

	repo := NewCachingReportRepository(rdb, 5*time.Minute, inner, "reports")
	reports, err := repo.ListByRepo(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if innerCalled {
		t.Error("inner repository should not be called on cache hit")
	}
	if len(reports) != 1 {
		t.Errorf("expected 1 report, got %d", len(reports))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingReportRepository_ListByRepo_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected := []entity.Report{{ID: 1, Format: "pdf", RepoID: 3}}
	expectedJSON, _ := json.Marshal(expected)

	// Cache miss
	mock.ExpectGet("reports:3:list").RedisNil()
	// Set cache after fetching from inner
	mock.ExpectSet("reports:3:list", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockReportRepository{
		listByRepoFn: func(ctx context.Context, repoID uint) ([]entity.Report, error) {
			return expected, nil
		},
	}

	repo := NewCachingReportRepository(rdb, 5*time.Minute, inner, "reports")
	reports, err := repo.ListByRepo(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports) != 1 {
		t.Errorf("expected 1 report, got %d", len(reports))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingReportRepository_ListByRepo_CorruptedCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected := []entity.Report{{ID: 1, Format: "pdf", RepoID: 3}}
	expectedJSON, _ := json.Marshal(expected)

	// Return invalid JSON from cache
	mock.ExpectGet("reports:3:list").SetVal("invalid json")
	// Delete corrupted cache
	mock.ExpectDel("reports:3:list").SetVal(1)
	// Set new cache after fetching from inner
	mock.ExpectSet("reports:3:list", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockReportRepository{
		listByRepoFn: func(ctx context.Context, repoID uint) ([]entity.Report, error) {
			return expected, nil
		},
	}

	repo := NewCachingReportRepository(rdb, 5*time.Minute, inner, "reports")
	reports, err := repo.ListByRepo(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports) != 1 {
		t.Errorf("expected 1 report, got %d", len(reports))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingReportRepository_ListByRepo_InnerError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedErr := errors.New("database error")

	mock.ExpectGet("reports:3:list").RedisNil()

	inner := &mockReportRepository{
		listByRepoFn: func(ctx context.Context, repoID uint) ([]entity.Report, error) {
			return nil, expectedErr
		},
	}

	repo := NewCachingReportRepository(rdb, 5*time.Minute, inner, "reports")
	_, err := repo.ListByRepo(context.Background(), 3)

	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}

func TestCachingReportRepository_Create_NilRedis(t *testing.T) {
	t.Parallel()

	innerCalled := false
	inner := &mockReportRepository{
		createFn: func(ctx context.Context, report *entity.Report) error {
			innerCalled = true
			return nil
		},
	}

	repo := NewCachingReportRepository(nil, 5*time.Minute, inner, "reports")
	err := repo.Create(context.Background(), &entity.Report{Format: "pdf", RepoID: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !innerCalled {
		t.Error("expected inner repository to be called")
	}
}

func TestCachingReportRepository_Create_InnerError(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("insert error")
	inner := &mockReportRepository{
		createFn: func(ctx context.Context, report *entity.Report) error {
			return expectedErr
		},
	}

	repo := NewCachingReportRepository(nil, 5*time.Minute, inner, "reports")
	err := repo.Create(context.Background(), &entity.Report{Format: "pdf", RepoID: 3})

	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}

func TestCachingReportRepository_Create_CacheInvalidation(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	inner := &mockReportRepository{
		createFn: func(ctx context.Context, report *entity.Report) error {
			return nil
		},
	}

	// Expect cache invalidation via SCAN and DEL
	mock.ExpectScan(0, "reports:3:*", 200).SetVal([]string{"reports:3:list"}, 0)
	mock.ExpectDel("reports:3:list").SetVal(1)

	repo := NewCachingReportRepository(rdb, 5*time.Minute, inner, "reports")
	err := repo.Create(context.Background(), &entity.Report{Format: "pdf", RepoID: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}
