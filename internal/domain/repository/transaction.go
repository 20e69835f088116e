package repository

import "context"

// RepositoryFactory creates repository instances bound to one transaction.
// Deleting a token record and repairing its owner's device-id set must happen
// in the same logical operation, so both repositories are exposed here.
type RepositoryFactory interface {
	NewTokenRepository() TokenRepository
	NewMemberRepository() MemberRepository
}

// TransactionManager runs a function inside a single database transaction.
type TransactionManager interface {
	// Execute begins a transaction, invokes fn with a factory bound to it,
	// and commits if fn returns nil or rolls back otherwise.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
