package handlers_test

import (
	"net/http"
	"testing"

	"coach-planner-backend/internal/api/handlers"
	"coach-planner-backend/internal/database/models"
	apperrors "coach-planner-backend/internal/errors"
	"coach-planner-backend/internal/mocks"
	"coach-planner-backend/internal/service"
	"coach-planner-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TrashHandlerTestSuite defines the test suite for TrashHandler
type TrashHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockStateServiceInterface
	httpSuite   *testutils.HTTPTestSuite
	factories   *testutils.FactorySet
}

func (suite *TrashHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockStateServiceInterface(suite.ctrl)
	suite.factories = testutils.NewFactorySet()

	handler := handlers.NewTrashHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	trash := suite.httpSuite.Router.Group("/api/v1/trash")
	{
		trash.GET("", handler.ListTrash)
		trash.POST("", handler.TrashEntity)
		trash.DELETE("", handler.ClearTrash)
		trash.POST("/:itemId/restore", handler.RestoreItem)
		trash.DELETE("/:itemId", handler.DeleteItem)
	}
}

func (suite *TrashHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TrashHandlerTestSuite) TestListTrash_AddsHeadlines() {
	team := suite.factories.Team.WithName("Infantil B")
	team.Category = models.CategoryInfantil
	match := suite.factories.Match.WithOpponent("UD Sur")
	items := []models.TrashItem{
		models.NewTeamTrashItem("t1", *team, 1),
		models.NewPlayerTrashItem("t2", "team-1", *suite.factories.Player.WithName("Pablo"), 2),
		models.NewMatchTrashItem("t3", "team-1", *match, 3),
	}
	suite.mockService.EXPECT().ListTrash(gomock.Any()).Return(items, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/trash", nil)

	var got []map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Require().Len(got, 3)

	suite.Equal("Infantil B", got[0]["title"])
	suite.Equal("Infantil", got[0]["subtitle"])
	suite.Equal("team", got[0]["type"])

	suite.Equal("Pablo", got[1]["title"])
	suite.Equal("Mediocentro", got[1]["subtitle"])
	suite.Equal("team-1", got[1]["originTeamId"])

	suite.Equal("vs UD Sur", got[2]["title"])
	suite.Equal(match.Date, got[2]["subtitle"])
	suite.Equal(float64(3), got[2]["deletedAt"])
}

func (suite *TrashHandlerTestSuite) TestListTrash_Empty() {
	suite.mockService.EXPECT().ListTrash(gomock.Any()).Return([]models.TrashItem{}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/trash", nil)
	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`[]`, recorder.Body.String())
}

func (suite *TrashHandlerTestSuite) TestTrashEntity() {
	player := suite.factories.Player.Create()
	item := models.NewPlayerTrashItem("trash-1", "team-1", *player, 10)
	req := service.TrashEntityRequest{Type: models.TrashTypePlayer, ID: player.ID}

	suite.mockService.EXPECT().TrashEntity(gomock.Any(), &req).Return(&item, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/trash", req)

	var got map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Equal("trash-1", got["id"])
	suite.Equal(player.ID, got["data"].(map[string]interface{})["id"])
}

func (suite *TrashHandlerTestSuite) TestTrashEntity_InvalidType() {
	suite.mockService.EXPECT().TrashEntity(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrInvalidTrashType)

	recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, "/api/v1/trash", `{"type":"chat","id":"c1"}`)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid trash type")
}

func (suite *TrashHandlerTestSuite) TestTrashEntity_Missing() {
	suite.mockService.EXPECT().TrashEntity(gomock.Any(), gomock.Any()).Return(nil, nil)

	recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, "/api/v1/trash", `{"type":"match","id":"nope"}`)
	testutils.AssertNoContent(suite.T(), recorder)
}

func (suite *TrashHandlerTestSuite) TestRestoreItem() {
	training := suite.factories.Training.Create()
	item := models.NewTrainingTrashItem("trash-1", "team-1", *training, 10)

	suite.mockService.EXPECT().RestoreTrashItem(gomock.Any(), "trash-1").Return(&service.RestoreResult{Item: item, Restored: true}, nil)
	suite.mockService.EXPECT().RestoreTrashItem(gomock.Any(), "orphan").Return(&service.RestoreResult{Item: item, Restored: false}, nil)
	suite.mockService.EXPECT().RestoreTrashItem(gomock.Any(), "gone").Return(nil, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/trash/trash-1/restore", nil)
	var got map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Equal(true, got["restored"])
	suite.Equal("training", got["item"].(map[string]interface{})["type"])

	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/trash/orphan/restore", nil)
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Equal(false, got["restored"])

	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/trash/gone/restore", nil)
	testutils.AssertNoContent(suite.T(), recorder)
}

func (suite *TrashHandlerTestSuite) TestDeleteAndClear() {
	suite.mockService.EXPECT().PermanentDelete(gomock.Any(), "trash-1").Return(true, nil)
	suite.mockService.EXPECT().PermanentDelete(gomock.Any(), "gone").Return(false, nil)
	suite.mockService.EXPECT().ClearTrash(gomock.Any()).Return(nil)

	testutils.AssertNoContent(suite.T(), suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/trash/trash-1", nil))
	testutils.AssertNoContent(suite.T(), suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/trash/gone", nil))
	testutils.AssertNoContent(suite.T(), suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/trash", nil))
}

func (suite *TrashHandlerTestSuite) TestClearTrash_StorageFailure() {
	suite.mockService.EXPECT().ClearTrash(gomock.Any()).
		Return(apperrors.NewStorageWriteError("coach-planner-state", apperrors.ErrQuotaExceeded))

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/trash", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInsufficientStorage, "could not be saved")
}

func TestTrashHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TrashHandlerTestSuite))
}
