package usecase

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"devlens_backend/internal/feature/auth/domain"
	"devlens_backend/internal/feature/auth/domain/entity"
)

// mockUserRepository simulates the user store during testing.
type mockUserRepository struct {
	CreateFunc   func(ctx context.Context, user *entity.User) error
	FindByIDFunc func(ctx context.Context, id uint) (*entity.User, error)
	FindAllFunc  func(ctx context.Context) ([]entity.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

// repoWith wires a fixed set of users into a mock repository.
func repoWith(users ...*entity.User) *mockUserRepository {
	byID := map[uint]*entity.User{}
	for _, u := range users {
		byID[u.ID] = u
	}
	return &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
			if u, ok := byID[id]; ok {
				return u, nil
			}
			return nil, domain.ErrUserNotFound
		},
		FindAllFunc: func(ctx context.Context) ([]entity.User, error) {
			out := make([]entity.User, 0, len(users))
			for _, u := range users {
				out = append(out, *u)
			}
			return out, nil
		},
	}
}

var (
	adminUser = &entity.User{ID: 1, FirstName: "Root", Email: "root@example.com", Role: entity.RoleAdmin}
	alice     = &entity.User{ID: 5, FirstName: "Alice", Email: "alice@example.com", Role: entity.RoleUser}
	bob       = &entity.User{ID: 6, FirstName: "Bob", Email: "bob@example.com", Role: entity.RoleUser}
)

func TestUsersUsecase_Get(t *testing.T) {
	ctx := context.Background()
	uc := NewUsersUsecase(repoWith(adminUser, alice, bob))

	t.Run("user reads own row", func(t *testing.T) {
		got, err := uc.Get(ctx, alice.ID, alice.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Email != alice.Email {
			t.Errorf("expected %q, got %q", alice.Email, got.Email)
		}
	})

	t.Run("user denied another row", func(t *testing.T) {
		_, err := uc.Get(ctx, alice.ID, bob.ID)
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("admin reads any row", func(t *testing.T) {
		got, err := uc.Get(ctx, adminUser.ID, bob.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Email != bob.Email {
			t.Errorf("expected %q, got %q", bob.Email, got.Email)
		}
	})

	t.Run("admin gets not-found for a missing row", func(t *testing.T) {
		_, err := uc.Get(ctx, adminUser.ID, 999)
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("denial hides existence from non-admins", func(t *testing.T) {
		// Policy runs before the target lookup, so a missing target still
		// yields forbidden, not not-found.
		_, err := uc.Get(ctx, alice.ID, 999)
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("vanished actor is unauthenticated", func(t *testing.T) {
		_, err := uc.Get(ctx, 999, alice.ID)
		if !errors.Is(err, domain.ErrUnauthenticated) {
			t.Errorf("expected ErrUnauthenticated, got %v", err)
		}
	})
}

func TestUsersUsecase_List(t *testing.T) {
	ctx := context.Background()
	uc := NewUsersUsecase(repoWith(adminUser, alice, bob))

	t.Run("admin receives every row", func(t *testing.T) {
		users, err := uc.List(ctx, adminUser.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(users) != 3 {
			t.Errorf("expected 3 users, got %d", len(users))
		}
	})

	t.Run("non-admin receives only their own row", func(t *testing.T) {
		users, err := uc.List(ctx, alice.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(users) != 1 || users[0].ID != alice.ID {
			t.Errorf("expected only alice, got %v", users)
		}
	})
}

func TestUsersUsecase_Create(t *testing.T) {
	ctx := context.Background()

	input := CreateUserInput{
		FirstName: "Carol",
		LastName:  "White",
		Email:     "carol@example.com",
		Password:  "Passw0rd",
		Role:      entity.RoleAdmin,
	}

	t.Run("admin creates a user with an explicit role", func(t *testing.T) {
		repo := repoWith(adminUser)
		var created *entity.User
		repo.CreateFunc = func(ctx context.Context, user *entity.User) error {
			created = user
			return nil
		}
		uc := NewUsersUsecase(repo)

		user, err := uc.Create(ctx, adminUser.ID, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created == nil {
			t.Fatal("expected user to be persisted")
		}
		if user.Role != entity.RoleAdmin {
			t.Errorf("expected role admin, got %q", user.Role)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			t.Errorf("invalid bcrypt hash: %v", err)
		}
	})

	t.Run("empty role defaults to user", func(t *testing.T) {
		repo := repoWith(adminUser)
		uc := NewUsersUsecase(repo)

		in := input
		in.Role = ""
		user, err := uc.Create(ctx, adminUser.ID, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Role != entity.RoleUser {
			t.Errorf("expected role user, got %q", user.Role)
		}
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		uc := NewUsersUsecase(repoWith(adminUser))

		in := input
		in.Role = "superuser"
		_, err := uc.Create(ctx, adminUser.ID, in)
		if !errors.Is(err, ErrInvalidRole) {
			t.Errorf("expected ErrInvalidRole, got %v", err)
		}
	})

	t.Run("non-admin denied", func(t *testing.T) {
		uc := NewUsersUsecase(repoWith(alice))

		_, err := uc.Create(ctx, alice.ID, input)
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("duplicate email propagates", func(t *testing.T) {
		repo := repoWith(adminUser)
		repo.CreateFunc = func(ctx context.Context, user *entity.User) error {
			return domain.ErrEmailAlreadyExists
		}
		uc := NewUsersUsecase(repo)

		_, err := uc.Create(ctx, adminUser.ID, input)
		if !errors.Is(err, domain.ErrEmailAlreadyExists) {
			t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
		}
	})
}
