package workspace_usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"fieldboard/domain"
	"fieldboard/port/workspace_port"
	errs "fieldboard/utils/errors"
	"fieldboard/utils/metrics"
)

// WorkspaceUsecase validates and persists board snapshots. The client always
// sends the whole snapshot; the server normalizes ids and positions before
// storing it.
type WorkspaceUsecase struct {
	store workspace_port.WorkspacePort
}

func NewWorkspaceUsecase(store workspace_port.WorkspacePort) *WorkspaceUsecase {
	return &WorkspaceUsecase{store: store}
}

// GetWorkspace returns the user's snapshot. Accounts that have never saved
// get an empty snapshot, not an error.
func (u *WorkspaceUsecase) GetWorkspace(ctx context.Context, userID string) (*domain.Workspace, error) {
	workspace, err := u.store.FetchWorkspace(ctx, userID)
	metrics.WorkspaceOperations.WithLabelValues("get", metrics.OutcomeLabel(err)).Inc()
	if err != nil {
		return nil, errs.DatabaseError("failed to load workspace", err, map[string]interface{}{
			"user_id": userID,
		})
	}
	if workspace == nil {
		return domain.EmptyWorkspace(), nil
	}
	return workspace, nil
}

// SaveWorkspace validates, normalizes and stores a snapshot, returning the
// stored form with its new version.
func (u *WorkspaceUsecase) SaveWorkspace(ctx context.Context, userID string, workspace *domain.Workspace) (*domain.Workspace, error) {
	if err := validateWorkspace(workspace); err != nil {
		metrics.WorkspaceOperations.WithLabelValues("save", "invalid").Inc()
		return nil, err
	}
	normalizeWorkspace(workspace)

	saved, err := u.store.SaveWorkspace(ctx, userID, workspace)
	metrics.WorkspaceOperations.WithLabelValues("save", metrics.OutcomeLabel(err)).Inc()
	if err != nil {
		return nil, errs.DatabaseError("failed to save workspace", err, map[string]interface{}{
			"user_id": userID,
		})
	}
	return saved, nil
}

func validateWorkspace(workspace *domain.Workspace) error {
	if workspace == nil {
		return fmt.Errorf("%w: missing snapshot", errs.ErrInvalidWorkspace)
	}
	if len(workspace.Fields) > domain.WorkspaceMaxFields {
		return fmt.Errorf("%w: %d fields exceeds limit %d", errs.ErrInvalidWorkspace, len(workspace.Fields), domain.WorkspaceMaxFields)
	}
	for _, field := range workspace.Fields {
		if len(field.Name) > domain.WorkspaceMaxNameLength {
			return fmt.Errorf("%w: field name exceeds %d characters", errs.ErrInvalidWorkspace, domain.WorkspaceMaxNameLength)
		}
		if len(field.Images) > domain.WorkspaceMaxImagesPerField {
			return fmt.Errorf("%w: field %q holds %d images, limit %d", errs.ErrInvalidWorkspace, field.Name, len(field.Images), domain.WorkspaceMaxImagesPerField)
		}
		for _, image := range field.Images {
			if image.URL == "" {
				return fmt.Errorf("%w: image without url in field %q", errs.ErrInvalidWorkspace, field.Name)
			}
			if len(image.URL) > domain.WorkspaceMaxURLLength {
				return fmt.Errorf("%w: image url exceeds %d characters", errs.ErrInvalidWorkspace, domain.WorkspaceMaxURLLength)
			}
			if len(image.Note) > domain.WorkspaceMaxNoteLength {
				return fmt.Errorf("%w: image note exceeds %d characters", errs.ErrInvalidWorkspace, domain.WorkspaceMaxNoteLength)
			}
		}
	}
	return nil
}

// normalizeWorkspace assigns ids to fields and images arriving without one
// and rewrites image positions to match their array order, which is the
// order the client rendered.
func normalizeWorkspace(workspace *domain.Workspace) {
	for fi := range workspace.Fields {
		field := &workspace.Fields[fi]
		if field.ID == "" {
			field.ID = uuid.NewString()
		}
		for ii := range field.Images {
			image := &field.Images[ii]
			if image.ID == "" {
				image.ID = uuid.NewString()
			}
			image.Position = ii
		}
	}
}
