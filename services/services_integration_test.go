//go:build integration

package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/opex-tool/database"
	"github.com/opex-tool/dto"
	"github.com/opex-tool/models"
	"github.com/opex-tool/repositories"
	"github.com/opex-tool/testutil/containers"
	"github.com/opex-tool/utils"
)

type ServicesIntegrationSuite struct {
	suite.Suite
	pg           *containers.PostgresContainer
	ctx          context.Context
	projectRepo  *repositories.ProjectRepository
	instRepo     *repositories.InstitutionRepository
	fondRepo     *repositories.FondRepository
	invRepo      *repositories.InventoryRepository
	projects     *ProjectService
	institutions *InstitutionService
	fonds        *FondService
	inventories  *InventoryService
}

func TestServicesIntegrationSuite(t *testing.T) {
	suite.Run(t, new(ServicesIntegrationSuite))
}

func (s *ServicesIntegrationSuite) SetupSuite() {
	s.pg = containers.NewPostgresContainer(s.T())
	s.ctx = context.Background()

	retry := database.RetryPolicy{Attempts: 3, Delay: 10 * time.Millisecond, Logger: utils.DiscardLogger()}
	s.projectRepo = repositories.NewProjectRepository(s.pg.DB, retry)
	s.instRepo = repositories.NewInstitutionRepository(s.pg.DB, retry)
	s.fondRepo = repositories.NewFondRepository(s.pg.DB, retry)
	s.invRepo = repositories.NewInventoryRepository(s.pg.DB, retry)

	s.projects = NewProjectService(s.projectRepo)
	s.institutions = NewInstitutionService(s.instRepo)
	s.fonds = NewFondService(s.fondRepo)
	s.inventories = NewInventoryService(s.invRepo)
}

func (s *ServicesIntegrationSuite) SetupTest() {
	s.Require().NoError(s.pg.Truncate(s.ctx))
}

func (s *ServicesIntegrationSuite) fond() *models.Fond {
	project, err := s.projects.AddProject(s.ctx, "test")
	s.Require().NoError(err)
	institution, err := s.institutions.AddInstitution(s.ctx, 1, "Archive", project)
	s.Require().NoError(err)
	fond, err := s.fonds.AddFond(s.ctx, dto.CreateFondRequest{
		FondCode:         "EAA.1",
		ArchAbbreviation: "EAA",
		ArchTitle:        "National Archives",
		FondNumber:       1,
		FondTitle:        "City Council",
	}, institution)
	s.Require().NoError(err)
	return fond
}

func (s *ServicesIntegrationSuite) TestAddProjectTwice() {
	_, err := s.projects.AddProject(s.ctx, "test")
	s.Require().NoError(err)

	_, err = s.projects.AddProject(s.ctx, "test")
	s.ErrorIs(err, ErrProjectExists)

	count, err := s.projectRepo.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), count)

	project, err := s.projects.GetProjectByName(s.ctx, "test")
	s.Require().NoError(err)
	s.Equal("test", project.Name)
}

func (s *ServicesIntegrationSuite) TestValidationStatusIsPersisted() {
	project, err := s.projects.AddProject(s.ctx, "test")
	s.Require().NoError(err)

	validated, err := s.projects.IsValidated(s.ctx, project.ID)
	s.Require().NoError(err)
	s.False(validated)

	s.Require().NoError(s.projects.ChangeValidationStatus(s.ctx, project))
	s.Require().NoError(s.projects.ChangeValidationStatus(s.ctx, project))

	validated, err = s.projects.IsValidated(s.ctx, project.ID)
	s.Require().NoError(err)
	s.True(validated)
}

func (s *ServicesIntegrationSuite) TestInventoryRoundTrip() {
	fond := s.fond()

	created, err := s.inventories.AddInventoryFromVVAIS(s.ctx, map[string]interface{}{
		"number":       2,
		"postfix":      "a",
		"type":         "photo",
		"electronic":   true,
		"last_gv":      55,
		"total_items":  60,
		"storage_term": "permanent-retention",
	}, fond)
	s.Require().NoError(err)

	found, err := s.inventories.GetInventoryByNumber(s.ctx, 2)
	s.Require().NoError(err)
	s.Equal(created.ID, found.ID)
	s.Equal("a", found.Postfix)
	s.Equal(models.InventoryTypePhoto, found.Type)
	s.True(found.Electronic)
	s.Equal(55, found.LastGV)
	s.Require().NotNil(found.TotalItems)
	s.Equal(60, *found.TotalItems)
	s.Equal(models.StorageTermPermanent, found.StorageTerm)
	s.Equal("EAA.1, 2.US", found.String())

	_, err = s.inventories.AddInventoryFromVVAIS(s.ctx, map[string]interface{}{"number": 2}, fond)
	s.ErrorIs(err, ErrInventoryExists)

	count, err := s.invRepo.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), count)
}

func (s *ServicesIntegrationSuite) TestDuplicatesLeaveTablesUnchanged() {
	fond := s.fond()

	institution, err := s.institutions.GetInstitutionByRegNr(s.ctx, 1)
	s.Require().NoError(err)

	byName, err := s.institutions.GetInstitutionByName(s.ctx, "Archive")
	s.Require().NoError(err)
	s.Equal(institution.ID, byName.ID)
	s.Equal(institution.RegNr, byName.RegNr)

	other, err := s.projects.AddProject(s.ctx, "other")
	s.Require().NoError(err)
	_, err = s.institutions.AddInstitution(s.ctx, 1, "Elsewhere", other)
	s.ErrorIs(err, ErrInstitutionExists)
	_, err = s.institutions.AddInstitution(s.ctx, 2, "Archive", other)
	s.ErrorIs(err, ErrInstitutionExists)
	_, err = s.institutions.AddInstitution(s.ctx, 3, "Second", &models.Project{ID: institution.ProjectID})
	s.ErrorIs(err, ErrInstitutionExists)

	_, err = s.fonds.AddFond(s.ctx, dto.CreateFondRequest{
		FondCode: fond.FondCode, ArchAbbreviation: "EAA", ArchTitle: "x", FondTitle: "y",
	}, institution)
	s.ErrorIs(err, ErrFondExists)

	institutionCount, err := s.instRepo.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), institutionCount)

	fondCount, err := s.fondRepo.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), fondCount)

	s.Require().NoError(s.institutions.UpdateInstitution(s.ctx, institution.ID, map[string]interface{}{"signer": "Jaan Tamm"}))
	s.Require().NoError(s.fonds.UpdateFond(s.ctx, fond.InstitutionID, map[string]interface{}{"subfond": true}))

	updated, err := s.fonds.GetFondByCode(s.ctx, fond.FondCode)
	s.Require().NoError(err)
	s.True(updated.Subfond)
}
