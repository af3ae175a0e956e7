package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/reference"
	"helpdesk/internal/shared/logger"
)

// ListOrganizationsUseCase returns every organization for the dashboard's
// reference dropdowns.
type ListOrganizationsUseCase struct {
	orgRepo reference.OrganizationRepository
	logger  logger.Interface
}

func NewListOrganizationsUseCase(orgRepo reference.OrganizationRepository, logger logger.Interface) *ListOrganizationsUseCase {
	return &ListOrganizationsUseCase{orgRepo: orgRepo, logger: logger}
}

func (uc *ListOrganizationsUseCase) Execute(ctx context.Context) ([]dto.ReferenceDTO, error) {
	orgs, err := uc.orgRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list organizations", "error", err)
		return nil, err
	}
	return dto.ToOrganizationDTOs(orgs), nil
}

type ListPlatformsUseCase struct {
	platformRepo reference.PlatformRepository
	logger       logger.Interface
}

func NewListPlatformsUseCase(platformRepo reference.PlatformRepository, logger logger.Interface) *ListPlatformsUseCase {
	return &ListPlatformsUseCase{platformRepo: platformRepo, logger: logger}
}

func (uc *ListPlatformsUseCase) Execute(ctx context.Context) ([]dto.ReferenceDTO, error) {
	platforms, err := uc.platformRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list platforms", "error", err)
		return nil, err
	}
	return dto.ToPlatformDTOs(platforms), nil
}
