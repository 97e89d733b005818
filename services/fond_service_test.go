package services

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/opex-tool/dto"
	"github.com/opex-tool/metrics"
	"github.com/opex-tool/models"
	"github.com/opex-tool/services/mocks"
)

type FondServiceSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockStore   *mocks.MockFondStore
	metrics     *metrics.Metrics
	service     *FondService
	institution *models.Institution
	ctx         context.Context
}

func TestFondServiceSuite(t *testing.T) {
	suite.Run(t, new(FondServiceSuite))
}

func (s *FondServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStore = mocks.NewMockFondStore(s.ctrl)
	s.ctx = context.Background()
	s.institution = &models.Institution{ID: 4, RegNr: 1, Name: "Archive", ProjectID: 1}
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.service = NewFondService(s.mockStore, WithMetrics(s.metrics))
}

func (s *FondServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *FondServiceSuite) failures(reason string) float64 {
	return testutil.ToFloat64(s.metrics.EntityCreateFailures.WithLabelValues("fond", reason))
}

func fondRequest() dto.CreateFondRequest {
	return dto.CreateFondRequest{
		FondCode:         "EAA.1234",
		ArchAbbreviation: "EAA",
		ArchTitle:        "National Archives",
		FondNumber:       1234,
		FondTitle:        "City Council",
	}
}

func (s *FondServiceSuite) TestAddFond() {
	s.mockStore.EXPECT().ExistsByCode(gomock.Any(), "EAA.1234").Return(false, nil)
	s.mockStore.EXPECT().Create(gomock.Any(), models.Fond{
		InstitutionID:    4,
		FondCode:         "EAA.1234",
		ArchAbbreviation: "EAA",
		ArchTitle:        "National Archives",
		FondNumber:       1234,
		FondTitle:        "City Council",
	}).DoAndReturn(func(_ context.Context, f models.Fond) (models.Fond, error) {
		return f, nil
	})

	fond, err := s.service.AddFond(s.ctx, fondRequest(), s.institution)
	s.Require().NoError(err)
	s.Equal(uint(4), fond.InstitutionID)
	s.Equal("EAA.1234", fond.String())
	s.Same(s.institution, fond.Institution)
}

func (s *FondServiceSuite) TestAddFondDuplicates() {
	s.Run("code taken", func() {
		s.mockStore.EXPECT().ExistsByCode(gomock.Any(), "EAA.1234").Return(true, nil)
		fond, err := s.service.AddFond(s.ctx, fondRequest(), s.institution)
		s.Nil(fond)
		s.ErrorIs(err, ErrFondExists)
	})

	s.Run("institution already has a fond", func() {
		s.mockStore.EXPECT().ExistsByCode(gomock.Any(), "EAA.1234").Return(false, nil)
		s.mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Fond{}, gorm.ErrDuplicatedKey)
		_, err := s.service.AddFond(s.ctx, fondRequest(), s.institution)
		s.ErrorIs(err, ErrFondExists)
	})
}

func (s *FondServiceSuite) TestAddFondRejectsWrongValues() {
	s.Run("abbreviation too long", func() {
		req := fondRequest()
		req.ArchAbbreviation = "TOOLONG"
		_, err := s.service.AddFond(s.ctx, req, s.institution)
		s.ErrorIs(err, ErrWrongValue)
	})

	s.Run("missing code", func() {
		req := fondRequest()
		req.FondCode = ""
		_, err := s.service.AddFond(s.ctx, req, s.institution)
		s.ErrorIs(err, ErrWrongValue)
	})

	s.Run("missing institution", func() {
		s.mockStore.EXPECT().ExistsByCode(gomock.Any(), "EAA.1234").Return(false, nil)
		_, err := s.service.AddFond(s.ctx, fondRequest(), nil)
		s.ErrorIs(err, ErrWrongValue)
	})

	s.Run("institution removed meanwhile", func() {
		s.mockStore.EXPECT().ExistsByCode(gomock.Any(), "EAA.1234").Return(false, nil)
		s.mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Fond{}, &pgconn.PgError{Code: "23503"})
		_, err := s.service.AddFond(s.ctx, fondRequest(), s.institution)
		s.ErrorIs(err, ErrWrongValue)
	})

	s.Equal(4.0, s.failures(metrics.ReasonWrongValue))
	s.Zero(s.failures(metrics.ReasonInvalid))
}

func (s *FondServiceSuite) TestGetFondByCode() {
	s.mockStore.EXPECT().FindByCode(gomock.Any(), "EAA.1234").Return(models.Fond{InstitutionID: 4, FondCode: "EAA.1234"}, nil)
	fond, err := s.service.GetFondByCode(s.ctx, "EAA.1234")
	s.Require().NoError(err)
	s.Equal(uint(4), fond.InstitutionID)

	s.mockStore.EXPECT().FindByCode(gomock.Any(), "nope").Return(models.Fond{}, gorm.ErrRecordNotFound)
	_, err = s.service.GetFondByCode(s.ctx, "nope")
	s.ErrorIs(err, ErrNotFound)
}

func (s *FondServiceSuite) TestUpdateFond() {
	for _, field := range []string{"institution_id", "fond_code"} {
		s.ErrorIs(s.service.UpdateFond(s.ctx, 4, map[string]interface{}{field: "x"}), ErrFieldNotUpdatable)
	}

	fields := map[string]interface{}{"subfond": true, "fond_title": "City Council 1918-1940"}
	s.mockStore.EXPECT().Updates(gomock.Any(), uint(4), fields).Return(nil)
	s.NoError(s.service.UpdateFond(s.ctx, 4, fields))
}
