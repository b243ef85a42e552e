package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mohanapra/personal-diary-web-app/internal/apperrors"
	"github.com/mohanapra/personal-diary-web-app/internal/core/domain"
	portssvc "github.com/mohanapra/personal-diary-web-app/internal/core/ports/services"
	"github.com/mohanapra/personal-diary-web-app/internal/core/services"
	"github.com/mohanapra/personal-diary-web-app/internal/dto"
)

// --- Mock EntryRepository ---
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, userID string, entryID string) (*domain.DiaryEntry, error) {
	args := m.Called(ctx, userID, entryID)
	var entry *domain.DiaryEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.DiaryEntry)
	}
	return entry, args.Error(1)
}

func (m *MockEntryRepository) FindEntries(ctx context.Context, userID string, limit int) ([]domain.DiaryEntry, error) {
	args := m.Called(ctx, userID, limit)
	var entries []domain.DiaryEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.DiaryEntry)
	}
	return entries, args.Error(1)
}

func (m *MockEntryRepository) SaveEntry(ctx context.Context, entry domain.DiaryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) UpdateEntry(ctx context.Context, entry domain.DiaryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) DeleteEntry(ctx context.Context, userID string, entryID string) error {
	args := m.Called(ctx, userID, entryID)
	return args.Error(0)
}

// --- Test Suite ---
type EntryServiceTestSuite struct {
	suite.Suite
	mockEntryRepo *MockEntryRepository
	service       portssvc.EntrySvcFacade
	userID        string
}

func (suite *EntryServiceTestSuite) SetupTest() {
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.service = services.NewEntryService(suite.mockEntryRepo)
	suite.userID = uuid.NewString()
}

// --- CreateEntry Tests ---

func (suite *EntryServiceTestSuite) TestCreateEntry_Success() {
	ctx := context.Background()
	entryDate := time.Date(2025, 4, 12, 9, 30, 0, 0, time.UTC)
	req := dto.CreateEntryRequest{
		Title:   "A good day",
		Content: "Went hiking.",
		Mood:    "happy",
		Date:    &entryDate,
		Tags:    []string{"outdoors", " hiking "},
	}

	suite.mockEntryRepo.On("SaveEntry", ctx, mock.MatchedBy(func(e domain.DiaryEntry) bool {
		return e.UserID == suite.userID && e.Title == "A good day" && e.Mood == domain.MoodHappy
	})).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.EntryID)
	suite.Equal(suite.userID, entry.UserID)
	suite.Equal(domain.MoodHappy, entry.Mood)
	suite.Equal(entryDate, entry.EntryDate)
	suite.Equal([]string{"outdoors", "hiking"}, entry.Tags)
	suite.Equal(suite.userID, entry.CreatedBy)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestCreateEntry_DefaultsDateAndTags() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{
		Title:   "Untagged",
		Content: "Nothing much.",
		Mood:    "neutral",
	}

	before := time.Now()
	suite.mockEntryRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.DiaryEntry")).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.False(entry.EntryDate.Before(before))
	suite.False(entry.EntryDate.After(time.Now()))
	suite.NotNil(entry.Tags)
	suite.Empty(entry.Tags)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestCreateEntry_InvalidMood() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{
		Title:   "Bad mood value",
		Content: "Content.",
		Mood:    "ecstatic",
	}

	entry, err := suite.service.CreateEntry(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntry")
}

func (suite *EntryServiceTestSuite) TestCreateEntry_TitleTooLong() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{
		Title:   strings.Repeat("a", 201),
		Content: "Content.",
		Mood:    "sad",
	}

	entry, err := suite.service.CreateEntry(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_TrimsTitle() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{
		Title:   "  padded title  ",
		Content: "Content.",
		Mood:    "very-happy",
	}

	suite.mockEntryRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.DiaryEntry")).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal("padded title", entry.Title)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_MissingContent() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{
		Title: "No content",
		Mood:  "happy",
	}

	entry, err := suite.service.CreateEntry(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_SaveError() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{
		Title:   "Doomed",
		Content: "Content.",
		Mood:    "very-sad",
	}

	suite.mockEntryRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.DiaryEntry")).Return(assert.AnError).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, assert.AnError)
}

// --- ListEntries Tests ---

func (suite *EntryServiceTestSuite) TestListEntries_Success() {
	ctx := context.Background()
	expected := []domain.DiaryEntry{
		{EntryID: uuid.NewString(), UserID: suite.userID},
		{EntryID: uuid.NewString(), UserID: suite.userID},
	}

	suite.mockEntryRepo.On("FindEntries", ctx, suite.userID, 10).Return(expected, nil).Once()

	entries, err := suite.service.ListEntries(ctx, suite.userID, 10)

	suite.Require().NoError(err)
	suite.Equal(expected, entries)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

// --- GetEntryByID Tests ---

func (suite *EntryServiceTestSuite) TestGetEntryByID_NotFound() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.userID, entryID).Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.GetEntryByID(ctx, suite.userID, entryID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- UpdateEntry Tests ---

func (suite *EntryServiceTestSuite) TestUpdateEntry_OnlyTags() {
	ctx := context.Background()
	entryID := uuid.NewString()
	existing := &domain.DiaryEntry{
		EntryID:   entryID,
		UserID:    suite.userID,
		Title:     "Original title",
		Content:   "Original content",
		Mood:      domain.MoodNeutral,
		EntryDate: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Tags:      []string{"old"},
	}
	newTags := []string{"fresh", "tags"}
	req := dto.UpdateEntryRequest{Tags: &newTags}

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.userID, entryID).Return(existing, nil).Once()
	suite.mockEntryRepo.On("UpdateEntry", ctx, mock.MatchedBy(func(e domain.DiaryEntry) bool {
		return e.Title == "Original title" && e.Mood == domain.MoodNeutral && len(e.Tags) == 2
	})).Return(nil).Once()

	entry, err := suite.service.UpdateEntry(ctx, suite.userID, entryID, req)

	suite.Require().NoError(err)
	suite.Equal([]string{"fresh", "tags"}, entry.Tags)
	suite.Equal("Original title", entry.Title)
	suite.Equal("Original content", entry.Content)
	suite.Equal(domain.MoodNeutral, entry.Mood)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestUpdateEntry_EmptyTagsClears() {
	ctx := context.Background()
	entryID := uuid.NewString()
	existing := &domain.DiaryEntry{
		EntryID: entryID,
		UserID:  suite.userID,
		Title:   "Tagged",
		Content: "Content",
		Mood:    domain.MoodHappy,
		Tags:    []string{"a", "b"},
	}
	empty := []string{}
	req := dto.UpdateEntryRequest{Tags: &empty}

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.userID, entryID).Return(existing, nil).Once()
	suite.mockEntryRepo.On("UpdateEntry", ctx, mock.AnythingOfType("domain.DiaryEntry")).Return(nil).Once()

	entry, err := suite.service.UpdateEntry(ctx, suite.userID, entryID, req)

	suite.Require().NoError(err)
	suite.Empty(entry.Tags)
}

func (suite *EntryServiceTestSuite) TestUpdateEntry_InvalidMood() {
	ctx := context.Background()
	entryID := uuid.NewString()
	existing := &domain.DiaryEntry{EntryID: entryID, UserID: suite.userID, Title: "t", Content: "c", Mood: domain.MoodSad}
	badMood := "furious"
	req := dto.UpdateEntryRequest{Mood: &badMood}

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.userID, entryID).Return(existing, nil).Once()

	entry, err := suite.service.UpdateEntry(ctx, suite.userID, entryID, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "UpdateEntry")
}

func (suite *EntryServiceTestSuite) TestUpdateEntry_NotFound() {
	ctx := context.Background()
	entryID := uuid.NewString()
	newTitle := "Updated"
	req := dto.UpdateEntryRequest{Title: &newTitle}

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.userID, entryID).Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.UpdateEntry(ctx, suite.userID, entryID, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- DeleteEntry Tests ---

func (suite *EntryServiceTestSuite) TestDeleteEntry_Success() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.mockEntryRepo.On("DeleteEntry", ctx, suite.userID, entryID).Return(nil).Once()

	err := suite.service.DeleteEntry(ctx, suite.userID, entryID)

	suite.Require().NoError(err)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestDeleteEntry_NotFound() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.mockEntryRepo.On("DeleteEntry", ctx, suite.userID, entryID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteEntry(ctx, suite.userID, entryID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestEntryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EntryServiceTestSuite))
}
