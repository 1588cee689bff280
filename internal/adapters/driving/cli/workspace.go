package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/worklens/internal/core/domain"
)

var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Manage workspaces and their members",
	Long: `Create workspaces, link them to sources, and manage membership.

A workspace links one GitHub repository and optional Notion and Google
Drive sources. Members of a workspace may search it.

Examples:
  worklens workspace create --name "Acme" --repo acme/widgets
  worklens workspace list
  worklens workspace members <workspace-id>
  worklens workspace add-member <workspace-id> --name "Alice" --email alice@acme.dev`,
}

var workspaceCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new workspace",
	RunE:  runWorkspaceCreate,
}

var workspaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workspaces",
	RunE:  runWorkspaceList,
}

var workspaceMembersCmd = &cobra.Command{
	Use:   "members [workspace-id]",
	Short: "List the members of a workspace",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkspaceMembers,
}

var workspaceAddMemberCmd = &cobra.Command{
	Use:   "add-member [workspace-id]",
	Short: "Add a member to a workspace",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkspaceAddMember,
}

// Flags for workspace create.
var (
	workspaceCreateName   string
	workspaceCreateRepo   string
	workspaceCreateNotion string
	workspaceCreateDrive  string
	workspaceCreateUse    bool
)

// Flags for workspace add-member.
var (
	memberName  string
	memberEmail string
	memberRole  string
)

func init() {
	workspaceCreateCmd.Flags().StringVar(
		&workspaceCreateName, "name", "", "workspace name (required)")
	workspaceCreateCmd.Flags().StringVar(
		&workspaceCreateRepo, "repo", "", "linked repository as owner/name (required)")
	workspaceCreateCmd.Flags().StringVar(
		&workspaceCreateNotion, "notion-database", "", "linked Notion database ID")
	workspaceCreateCmd.Flags().StringVar(
		&workspaceCreateDrive, "drive-folder", "", "linked Google Drive folder ID")
	workspaceCreateCmd.Flags().BoolVar(
		&workspaceCreateUse, "use", false, "set the new workspace as the default")

	workspaceAddMemberCmd.Flags().StringVar(
		&memberName, "name", "", "member display name (required)")
	workspaceAddMemberCmd.Flags().StringVar(
		&memberEmail, "email", "", "member email address")
	workspaceAddMemberCmd.Flags().StringVar(
		&memberRole, "role", "member", "member role (owner, member)")

	workspaceCmd.AddCommand(workspaceCreateCmd)
	workspaceCmd.AddCommand(workspaceListCmd)
	workspaceCmd.AddCommand(workspaceMembersCmd)
	workspaceCmd.AddCommand(workspaceAddMemberCmd)
	rootCmd.AddCommand(workspaceCmd)
}

func runWorkspaceCreate(cmd *cobra.Command, _ []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}
	if workspaceCreateName == "" {
		return errors.New("--name is required")
	}

	owner, repo, err := splitRepo(workspaceCreateRepo)
	if err != nil {
		return err
	}

	ws := domain.Workspace{
		Name:             workspaceCreateName,
		RepoOwner:        owner,
		RepoName:         repo,
		NotionDatabaseID: workspaceCreateNotion,
		DriveFolderID:    workspaceCreateDrive,
	}

	created, err := workspaceService.CreateWorkspace(cmd.Context(), ws)
	if err != nil {
		return fmt.Errorf("failed to create workspace: %w", err)
	}

	cmd.Printf("Created workspace: %s (%s)\n", created.Name, created.ID)

	if workspaceCreateUse {
		if configStore == nil {
			return errors.New("config store not configured")
		}
		if err := configStore.Set("workspace.default", created.ID); err != nil {
			return fmt.Errorf("failed to set default workspace: %w", err)
		}
		cmd.Println("Set as default workspace.")
	}

	return nil
}

func runWorkspaceList(cmd *cobra.Command, _ []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	workspaces, err := workspaceService.ListWorkspaces(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list workspaces: %w", err)
	}

	if len(workspaces) == 0 {
		cmd.Println("No workspaces.")
		cmd.Println("Create one with: worklens workspace create --name <name> --repo <owner/name>")
		return nil
	}

	defaultID := ""
	if configStore != nil {
		defaultID = configStore.GetString("workspace.default")
	}

	cmd.Println("Workspaces:")
	cmd.Println()
	for i := range workspaces {
		ws := &workspaces[i]
		marker := " "
		if ws.ID == defaultID {
			marker = "*"
		}
		cmd.Printf("%s %s\n", marker, ws.ID)
		cmd.Printf("    Name: %s\n", ws.Name)
		if ws.HasRepo() {
			cmd.Printf("    Repo: %s/%s\n", ws.RepoOwner, ws.RepoName)
		}
		if ws.NotionDatabaseID != "" {
			cmd.Printf("    Notion database: %s\n", ws.NotionDatabaseID)
		}
		if ws.DriveFolderID != "" {
			cmd.Printf("    Drive folder: %s\n", ws.DriveFolderID)
		}
		cmd.Printf("    Created: %s\n", ws.CreatedAt.Format(time.RFC3339))
		cmd.Println()
	}

	return nil
}

func runWorkspaceMembers(cmd *cobra.Command, args []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	members, err := workspaceService.ListMembers(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to list members: %w", err)
	}

	if len(members) == 0 {
		cmd.Println("No members.")
		return nil
	}

	cmd.Println("Members:")
	cmd.Println()
	for i := range members {
		m := &members[i]
		cmd.Printf("  %s\n", m.ID)
		cmd.Printf("    Name: %s\n", m.Name)
		if m.Email != "" {
			cmd.Printf("    Email: %s\n", m.Email)
		}
		cmd.Printf("    Role: %s\n", m.Role)
		cmd.Printf("    Joined: %s\n", m.JoinedAt.Format(time.RFC3339))
		cmd.Println()
	}

	return nil
}

func runWorkspaceAddMember(cmd *cobra.Command, args []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}
	if memberName == "" {
		return errors.New("--name is required")
	}

	member := domain.Member{
		WorkspaceID: args[0],
		Name:        memberName,
		Email:       memberEmail,
		Role:        memberRole,
	}

	added, err := workspaceService.AddMember(cmd.Context(), member)
	if err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}

	cmd.Printf("Added member: %s (%s)\n", added.Name, added.ID)
	return nil
}

// splitRepo parses an owner/name repository reference.
func splitRepo(ref string) (string, string, error) {
	if ref == "" {
		return "", "", errors.New("--repo is required (owner/name)")
	}
	for i := 0; i < len(ref); i++ {
		if ref[i] == '/' {
			owner, name := ref[:i], ref[i+1:]
			if owner == "" || name == "" {
				return "", "", fmt.Errorf("invalid repository reference: %s", ref)
			}
			return owner, name, nil
		}
	}
	return "", "", fmt.Errorf("invalid repository reference: %s (expected owner/name)", ref)
}
