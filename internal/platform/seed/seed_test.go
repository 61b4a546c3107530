package seed_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	"github.com/SscSPs/scan_payroll_app/internal/platform/seed"
	"github.com/SscSPs/scan_payroll_app/internal/repositories/memory"
	"github.com/SscSPs/scan_payroll_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_CreatesOneAccountPerRoleAndIsRepeatable(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.NewStore())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	first, err := seed.Run(ctx, repos, "", now, logger)
	require.NoError(t, err)
	assert.NotEmpty(t, first.Password, "empty password is replaced")
	require.Len(t, first.Staff, len(seed.DefaultAccounts))
	require.NotNil(t, first.Project)
	assert.True(t, first.Project.IsActive)

	roles := map[domain.Role]bool{}
	for _, s := range first.Staff {
		roles[s.Role] = true
		assert.True(t, s.IsActive())
		assert.True(t, utils.CheckPasswordHash(first.Password, s.PasswordHash))
	}
	assert.Len(t, roles, len(seed.DefaultAccounts))

	second, err := seed.Run(ctx, repos, "other-password", now, logger)
	require.NoError(t, err)
	assert.Equal(t, first.Project.ProjectID, second.Project.ProjectID)
	for i := range second.Staff {
		assert.Equal(t, first.Staff[i].StaffID, second.Staff[i].StaffID, "existing accounts are kept")
	}

	projects, err := repos.ProjectRepo.ListProjects(ctx, false)
	require.NoError(t, err)
	assert.Len(t, projects, 1)
}
