package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/request-management/request-system/internal/core/domain"
	"github.com/request-management/request-system/internal/core/mapper"
	"github.com/request-management/request-system/internal/core/ports"
)

// stubAccountRepo is an in-memory ports.AccountRepository mimicking the
// mongo repository's behaviour: sequential ids, field-tagged duplicate
// errors, and a referential-integrity check on delete.
type stubAccountRepo struct {
	accounts map[int64]*domain.Account
	nextID   int64
	inUse    map[int64]bool
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{
		accounts: make(map[int64]*domain.Account),
		inUse:    make(map[int64]bool),
	}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) FindByID(_ context.Context, id int64) (*domain.Account, error) {
	if a, ok := r.accounts[id]; ok {
		return cloneAccount(a), nil
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindAllSorted(_ context.Context, _ ports.SortDirection, _ string) ([]domain.Account, error) {
	out := make([]domain.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubAccountRepo) Save(_ context.Context, a *domain.Account) (*domain.Account, error) {
	for id, existing := range r.accounts {
		if id == a.ID {
			continue
		}
		switch {
		case existing.Username == a.Username:
			return nil, domain.ErrDuplicateUsername
		case existing.NationalID == a.NationalID:
			return nil, domain.ErrDuplicateNationalID
		case existing.Email == a.Email:
			return nil, domain.ErrDuplicateEmail
		}
	}

	saved := cloneAccount(a)
	if saved.ID == 0 {
		r.nextID++
		saved.ID = r.nextID
	} else if _, ok := r.accounts[saved.ID]; !ok {
		return nil, domain.ErrAccountNotFound
	}
	r.accounts[saved.ID] = cloneAccount(saved)
	return saved, nil
}

func (r *stubAccountRepo) DeleteByID(_ context.Context, id int64) error {
	if _, ok := r.accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}
	if r.inUse[id] {
		return domain.ErrAccountInUse
	}
	delete(r.accounts, id)
	return nil
}

func (r *stubAccountRepo) FindByUsername(_ context.Context, username string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Username == username {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByNationalID(_ context.Context, nationalID string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.NationalID == nationalID {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func newAccountService(repo *stubAccountRepo) *AccountService {
	return NewAccountService(repo, mapper.NewAccountMapper(), NewBcryptHasher(), zerolog.Nop())
}

func seedAccount(t *testing.T, svc *AccountService, username, nationalID, email, role string) *ports.AccountData {
	t.Helper()
	created, err := svc.Create(context.Background(), &ports.AccountData{
		Username:           username,
		NationalID:         nationalID,
		Email:              email,
		Password:           "s3cret",
		Role:               role,
		Name:               "Test Person",
		RegistrationNumber: "REG-" + username,
	})
	if err != nil {
		t.Fatalf("seed account %s: %v", username, err)
	}
	return created
}

func TestAccountService_Create(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAccountService(repo)

	created := seedAccount(t, svc, "alice", "12345678909", "alice@example.com", domain.RoleAuthor)

	if created.ID == 0 {
		t.Fatalf("expected an assigned id")
	}
	if created.NationalID != "123.456.789-09" {
		t.Fatalf("national id not normalized: %s", created.NationalID)
	}
	if created.Password == "s3cret" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be stamped")
	}
}

func TestAccountService_Create_InvalidNationalID(t *testing.T) {
	svc := newAccountService(newStubAccountRepo())

	_, err := svc.Create(context.Background(), &ports.AccountData{
		Username: "alice", NationalID: "11111111111", Email: "alice@example.com",
		Password: "s3cret", Role: domain.RoleAuthor,
	})
	if err != domain.ErrInvalidNationalID {
		t.Fatalf("expected ErrInvalidNationalID, got %v", err)
	}
}

func TestAccountService_Create_InvalidGender(t *testing.T) {
	svc := newAccountService(newStubAccountRepo())

	_, err := svc.Create(context.Background(), &ports.AccountData{
		Username: "alice", NationalID: "12345678909", Email: "alice@example.com",
		Password: "s3cret", Role: domain.RoleAuthor, Gender: "unspecified",
	})
	if err != domain.ErrInvalidGender {
		t.Fatalf("expected ErrInvalidGender, got %v", err)
	}
}

func TestAccountService_Create_EmptyGenderAccepted(t *testing.T) {
	svc := newAccountService(newStubAccountRepo())

	created, err := svc.Create(context.Background(), &ports.AccountData{
		Username: "alice", NationalID: "12345678909", Email: "alice@example.com",
		Password: "s3cret", Role: domain.RoleAuthor,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Gender != "" {
		t.Fatalf("expected gender to stay empty, got %q", created.Gender)
	}
}

func TestAccountService_Update_CarriesForwardEmptyFields(t *testing.T) {
	svc := newAccountService(newStubAccountRepo())
	created := seedAccount(t, svc, "alice", "12345678909", "alice@example.com", domain.RoleAuthor)
	self := ports.Identity{AccountID: created.ID, Username: "alice", Role: domain.RoleAuthor}

	updated, err := svc.Update(context.Background(), created.ID, &ports.AccountData{
		Name: "Alice Renamed",
	}, self)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated.Name != "Alice Renamed" {
		t.Fatalf("name not updated: %s", updated.Name)
	}
	if updated.Username != "alice" || updated.Email != "alice@example.com" {
		t.Fatalf("empty fields did not carry forward: %+v", updated)
	}
	if updated.NationalID != created.NationalID {
		t.Fatalf("national id changed on update")
	}
	if updated.RegistrationNumber != created.RegistrationNumber {
		t.Fatalf("registration number changed on update")
	}
	if updated.Password != created.Password {
		t.Fatalf("password digest changed without a new password")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("created timestamp changed on update")
	}
}

func TestAccountService_Update_NationalIDImmutable(t *testing.T) {
	svc := newAccountService(newStubAccountRepo())
	created := seedAccount(t, svc, "alice", "12345678909", "alice@example.com", domain.RoleAuthor)
	self := ports.Identity{AccountID: created.ID, Role: domain.RoleAuthor}

	updated, err := svc.Update(context.Background(), created.ID, &ports.AccountData{
		NationalID: "529.982.247-25",
	}, self)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.NationalID != "123.456.789-09" {
		t.Fatalf("national id was overwritten: %s", updated.NationalID)
	}
}

func TestAccountService_Update_RoleChange(t *testing.T) {
	svc := newAccountService(newStubAccountRepo())
	created := seedAccount(t, svc, "alice", "12345678909", "alice@example.com", domain.RoleAuthor)

	self := ports.Identity{AccountID: created.ID, Role: domain.RoleAuthor}
	if _, err := svc.Update(context.Background(), created.ID, &ports.AccountData{Role: domain.RoleReviewer}, self); err != domain.ErrRoleImmutable {
		t.Fatalf("expected ErrRoleImmutable for non-admin role change, got %v", err)
	}

	// Re-submitting the current role is not a change.
	if _, err := svc.Update(context.Background(), created.ID, &ports.AccountData{Role: domain.RoleAuthor}, self); err != nil {
		t.Fatalf("same-role update failed: %v", err)
	}

	admin := ports.Identity{AccountID: 999, Role: domain.RoleAdmin}
	updated, err := svc.Update(context.Background(), created.ID, &ports.AccountData{Role: domain.RoleReviewer}, admin)
	if err != nil {
		t.Fatalf("admin role change failed: %v", err)
	}
	if updated.Role != domain.RoleReviewer {
		t.Fatalf("role not changed: %s", updated.Role)
	}
}

func TestAccountService_Update_Forbidden(t *testing.T) {
	svc := newAccountService(newStubAccountRepo())
	created := seedAccount(t, svc, "alice", "12345678909", "alice@example.com", domain.RoleAuthor)

	other := ports.Identity{AccountID: created.ID + 1, Role: domain.RoleReviewer}
	if _, err := svc.Update(context.Background(), created.ID, &ports.AccountData{Name: "X"}, other); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestAccountService_Update_RehashesNewPassword(t *testing.T) {
	svc := newAccountService(newStubAccountRepo())
	created := seedAccount(t, svc, "alice", "12345678909", "alice@example.com", domain.RoleAuthor)
	self := ports.Identity{AccountID: created.ID, Role: domain.RoleAuthor}

	updated, err := svc.Update(context.Background(), created.ID, &ports.AccountData{Password: "n3w-pass"}, self)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("n3w-pass")); err != nil {
		t.Fatalf("new password not hashed into digest: %v", err)
	}
}

func TestAccountService_Delete(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAccountService(repo)
	created := seedAccount(t, svc, "alice", "12345678909", "alice@example.com", domain.RoleAuthor)

	other := ports.Identity{AccountID: created.ID + 1, Role: domain.RoleReviewer}
	if err := svc.Delete(context.Background(), created.ID, other); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	self := ports.Identity{AccountID: created.ID, Role: domain.RoleAuthor}
	if err := svc.Delete(context.Background(), created.ID, self); err != nil {
		t.Fatalf("self delete failed: %v", err)
	}
	if _, err := svc.Find(context.Background(), created.ID); err != domain.ErrAccountNotFound {
		t.Fatalf("expected account to be gone, got %v", err)
	}
}

func TestAccountService_Delete_StillOwnsRequests(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAccountService(repo)
	created := seedAccount(t, svc, "alice", "12345678909", "alice@example.com", domain.RoleAuthor)
	repo.inUse[created.ID] = true

	self := ports.Identity{AccountID: created.ID, Role: domain.RoleAuthor}
	if err := svc.Delete(context.Background(), created.ID, self); err != domain.ErrAccountInUse {
		t.Fatalf("expected ErrAccountInUse, got %v", err)
	}
	if _, err := svc.Find(context.Background(), created.ID); err != nil {
		t.Fatalf("account should survive a rejected delete: %v", err)
	}
}
