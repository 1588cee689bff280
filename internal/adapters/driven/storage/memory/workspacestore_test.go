package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/worklens/internal/core/domain"
)

func TestWorkspaceStore_CreateAndGet(t *testing.T) {
	store := NewWorkspaceStore()
	ctx := context.Background()

	ws := &domain.Workspace{ID: "ws-1", Name: "Acme"}
	require.NoError(t, store.CreateWorkspace(ctx, ws))

	got, err := store.GetWorkspace(ctx, "ws-1")
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)
}

func TestWorkspaceStore_CreateDuplicate(t *testing.T) {
	store := NewWorkspaceStore()
	ctx := context.Background()

	require.NoError(t, store.CreateWorkspace(ctx, &domain.Workspace{ID: "ws-1", Name: "Acme"}))
	err := store.CreateWorkspace(ctx, &domain.Workspace{ID: "ws-1", Name: "Other"})

	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestWorkspaceStore_GetNotFound(t *testing.T) {
	store := NewWorkspaceStore()

	_, err := store.GetWorkspace(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWorkspaceStore_ListOrderedByCreation(t *testing.T) {
	store := NewWorkspaceStore()
	ctx := context.Background()

	require.NoError(t, store.CreateWorkspace(ctx, &domain.Workspace{
		ID: "ws-2", Name: "Second", CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, store.CreateWorkspace(ctx, &domain.Workspace{
		ID: "ws-1", Name: "First", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}))

	workspaces, err := store.ListWorkspaces(ctx)
	require.NoError(t, err)
	require.Len(t, workspaces, 2)
	assert.Equal(t, "ws-1", workspaces[0].ID)
}

func TestWorkspaceStore_AddMemberRequiresWorkspace(t *testing.T) {
	store := NewWorkspaceStore()

	err := store.AddMember(context.Background(), &domain.Member{
		ID: "m-1", WorkspaceID: "missing", Name: "Alice",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWorkspaceStore_Membership(t *testing.T) {
	store := NewWorkspaceStore()
	ctx := context.Background()

	require.NoError(t, store.CreateWorkspace(ctx, &domain.Workspace{ID: "ws-1", Name: "Acme"}))
	require.NoError(t, store.AddMember(ctx, &domain.Member{
		ID: "m-1", WorkspaceID: "ws-1", Name: "Alice",
	}))

	members, err := store.ListMembers(ctx, "ws-1")
	require.NoError(t, err)
	require.Len(t, members, 1)

	ok, err := store.IsMember(ctx, "ws-1", "m-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.IsMember(ctx, "ws-2", "m-1")
	require.NoError(t, err)
	assert.False(t, ok)
}
