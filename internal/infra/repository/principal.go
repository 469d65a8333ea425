package repository

import (
	"context"

	"restaurant-reservation/internal/domain/principal"
	"restaurant-reservation/internal/infra"
	"restaurant-reservation/internal/infra/repository/converter"
	sqlc "restaurant-reservation/internal/infra/sqlc/generated"
)

type PrincipalQueries interface {
	CreateCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCustomerParams) (int64, error)
	GetCustomerByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Customers, error)
	GetCustomerByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Customers, error)
	CustomerExistsByEmail(ctx context.Context, db sqlc.DBTX, email string) (bool, error)
	CreateManager(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateManagerParams) (int64, error)
	GetManagerByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Managers, error)
	GetManagerByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Managers, error)
	ManagerExistsByEmail(ctx context.Context, db sqlc.DBTX, email string) (bool, error)
}

// roleStore is the per-role credential table.
type roleStore interface {
	findByID(ctx context.Context, id int64) (*principal.Principal, error)
	findByEmail(ctx context.Context, email string) (*principal.Principal, error)
	existsByEmail(ctx context.Context, email string) (bool, error)
	create(ctx context.Context, p *principal.Principal) (int64, error)
}

// PrincipalRepository dispatches on role to the customers or managers table.
type PrincipalRepository struct {
	stores map[principal.Role]roleStore
}

func NewPrincipalRepository(queries PrincipalQueries, db sqlc.DBTX) *PrincipalRepository {
	return &PrincipalRepository{
		stores: map[principal.Role]roleStore{
			principal.RoleCustomer: &customerStore{queries: queries, db: db},
			principal.RoleManager:  &managerStore{queries: queries, db: db},
		},
	}
}

func (r *PrincipalRepository) store(role principal.Role) (roleStore, error) {
	s, ok := r.stores[role]
	if !ok {
		return nil, principal.ErrInvalidRole
	}
	return s, nil
}

func (r *PrincipalRepository) FindByID(ctx context.Context, role principal.Role, id int64) (*principal.Principal, error) {
	s, err := r.store(role)
	if err != nil {
		return nil, err
	}
	return s.findByID(ctx, id)
}

func (r *PrincipalRepository) FindByEmail(ctx context.Context, role principal.Role, email string) (*principal.Principal, error) {
	s, err := r.store(role)
	if err != nil {
		return nil, err
	}
	return s.findByEmail(ctx, email)
}

func (r *PrincipalRepository) ExistsByEmail(ctx context.Context, role principal.Role, email string) (bool, error) {
	s, err := r.store(role)
	if err != nil {
		return false, err
	}
	return s.existsByEmail(ctx, email)
}

func (r *PrincipalRepository) Create(ctx context.Context, p *principal.Principal) (int64, error) {
	s, err := r.store(p.Role())
	if err != nil {
		return 0, err
	}
	return s.create(ctx, p)
}

type customerStore struct {
	queries PrincipalQueries
	db      sqlc.DBTX
}

func (s *customerStore) findByID(ctx context.Context, id int64) (*principal.Principal, error) {
	row, err := s.queries.GetCustomerByID(ctx, s.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find customer by id", err)
	}
	return converter.CustomerFromRow(row), nil
}

func (s *customerStore) findByEmail(ctx context.Context, email string) (*principal.Principal, error) {
	row, err := s.queries.GetCustomerByEmail(ctx, s.db, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find customer by email", err)
	}
	return converter.CustomerFromRow(row), nil
}

func (s *customerStore) existsByEmail(ctx context.Context, email string) (bool, error) {
	exists, err := s.queries.CustomerExistsByEmail(ctx, s.db, email)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check customer email", err)
	}
	return exists, nil
}

func (s *customerStore) create(ctx context.Context, p *principal.Principal) (int64, error) {
	id, err := s.queries.CreateCustomer(ctx, s.db, converter.PrincipalToCreateCustomerParams(p))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create customer", err)
	}
	return id, nil
}

type managerStore struct {
	queries PrincipalQueries
	db      sqlc.DBTX
}

func (s *managerStore) findByID(ctx context.Context, id int64) (*principal.Principal, error) {
	row, err := s.queries.GetManagerByID(ctx, s.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find manager by id", err)
	}
	return converter.ManagerFromRow(row), nil
}

func (s *managerStore) findByEmail(ctx context.Context, email string) (*principal.Principal, error) {
	row, err := s.queries.GetManagerByEmail(ctx, s.db, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find manager by email", err)
	}
	return converter.ManagerFromRow(row), nil
}

func (s *managerStore) existsByEmail(ctx context.Context, email string) (bool, error) {
	exists, err := s.queries.ManagerExistsByEmail(ctx, s.db, email)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check manager email", err)
	}
	return exists, nil
}

func (s *managerStore) create(ctx context.Context, p *principal.Principal) (int64, error) {
	id, err := s.queries.CreateManager(ctx, s.db, converter.PrincipalToCreateManagerParams(p))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create manager", err)
	}
	return id, nil
}
