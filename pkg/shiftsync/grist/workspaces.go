package grist

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/models"
	"go.uber.org/zap"
)

// ListWorkspaces lists all workspaces of the organization, with their documents.
func (c *Client) ListWorkspaces(ctx context.Context) ([]models.Workspace, error) {
	var workspaces []models.Workspace
	err := c.request(ctx, http.MethodGet, "/orgs/{org}/workspaces", pathParams{"org": c.org}, nil, &workspaces)
	if err != nil {
		return nil, err
	}
	return workspaces, nil
}

// GetWorkspace finds a workspace by id or name. An empty ref resolves to the
// configured workspace, falling back to the org name.
func (c *Client) GetWorkspace(ctx context.Context, ref string) (*models.Workspace, error) {
	if ref == "" {
		ref = c.workspace
	}
	if ref == "" {
		ref = c.org
	}

	workspaces, err := c.ListWorkspaces(ctx)
	if err != nil {
		return nil, err
	}

	for i := range workspaces {
		ws := &workspaces[i]
		if strconv.Itoa(ws.ID) == ref || ws.Name == ref {
			return ws, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrWorkspaceNotFound, ref)
}

// ListDocuments lists the documents in a workspace. A zero id uses the
// default workspace.
func (c *Client) ListDocuments(ctx context.Context, workspaceID int) ([]models.Document, error) {
	if workspaceID == 0 {
		ws, err := c.GetWorkspace(ctx, "")
		if err != nil {
			return nil, err
		}
		workspaceID = ws.ID
	}

	var ws models.Workspace
	err := c.request(ctx, http.MethodGet, "/workspaces/{wsId}", pathParams{"wsId": strconv.Itoa(workspaceID)}, nil, &ws)
	if err != nil {
		return nil, err
	}
	return ws.Docs, nil
}

// GetOrCreateDocument returns the first document named name in the
// workspace, creating it when absent. A zero id uses the default workspace.
func (c *Client) GetOrCreateDocument(ctx context.Context, name string, workspaceID int) (*models.Document, error) {
	if workspaceID == 0 {
		ws, err := c.GetWorkspace(ctx, "")
		if err != nil {
			return nil, err
		}
		workspaceID = ws.ID
	}

	docs, err := c.ListDocuments(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		if doc.Name == name {
			return &doc, nil
		}
	}

	var docID string
	err = c.request(ctx, http.MethodPost, "/workspaces/{wsId}/docs",
		pathParams{"wsId": strconv.Itoa(workspaceID)},
		map[string]string{"name": name},
		&docID)
	if err != nil {
		return nil, err
	}

	c.logger.Info("created document", zap.String("name", name), zap.String("id", docID), zap.Int("workspace", workspaceID))
	return &models.Document{ID: docID, Name: name}, nil
}
