package services

import (
	"net/http"
	"testing"

	"devconnector_backend/internal/models"
	"devconnector_backend/internal/services/dto"
	"devconnector_backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileFixture(t *testing.T) (ProfileService, *fakeProfileRepo, *fakeUserRepo, string) {
	t.Helper()
	profileRepo := newFakeProfileRepo()
	userRepo := newFakeUserRepo()

	user := &models.User{Name: "Jane Dev", Email: "jane@example.com", Avatar: "http://avatar"}
	require.NoError(t, userRepo.Create(user))

	return NewProfileService(profileRepo, userRepo), profileRepo, userRepo, user.ID
}

func TestParseSkills_TrimsAndPreservesOrder(t *testing.T) {
	assert.Equal(t, []string{"go", "rust", "ts"}, ParseSkills("go, rust , ts"))
}

func TestParseSkills_EmptyEntriesKept(t *testing.T) {
	// empty entries are not specially filtered
	assert.Equal(t, []string{"go", "", "rust"}, ParseSkills("go,,rust"))
	assert.Equal(t, []string{""}, ParseSkills(""))
}

func TestUpsert_CreatesWhenAbsent(t *testing.T) {
	svc, _, _, userID := newProfileFixture(t)

	resp, err := svc.Upsert(userID, &dto.UpsertProfileRequest{
		Status: "dev",
		Skills: "go, rust , ts",
	})
	require.NoError(t, err)

	assert.Equal(t, "dev", resp.Status)
	assert.Equal(t, []string{"go", "rust", "ts"}, resp.Skills)
	assert.Equal(t, userID, resp.User.ID)
}

func TestUpsert_PartialUpdatePreservesAbsentFields(t *testing.T) {
	svc, _, _, userID := newProfileFixture(t)

	_, err := svc.Upsert(userID, &dto.UpsertProfileRequest{
		Status:  "dev",
		Skills:  "go",
		Company: "Acme",
		Bio:     "hello",
	})
	require.NoError(t, err)

	// second call omits company and bio; they must survive
	resp, err := svc.Upsert(userID, &dto.UpsertProfileRequest{
		Status: "senior dev",
		Skills: "go,rust",
	})
	require.NoError(t, err)

	assert.Equal(t, "senior dev", resp.Status)
	assert.Equal(t, "Acme", resp.Company)
	assert.Equal(t, "hello", resp.Bio)
	assert.Equal(t, []string{"go", "rust"}, resp.Skills)
}

func TestUpsert_Idempotent(t *testing.T) {
	svc, _, _, userID := newProfileFixture(t)

	req := &dto.UpsertProfileRequest{Status: "dev", Skills: "go", Twitter: "@jane"}
	first, err := svc.Upsert(userID, req)
	require.NoError(t, err)
	second, err := svc.Upsert(userID, req)
	require.NoError(t, err)

	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Skills, second.Skills)
	assert.Equal(t, first.Social, second.Social)
}

func TestGetMine_NoProfile(t *testing.T) {
	svc, _, _, userID := newProfileFixture(t)

	_, err := svc.GetMine(userID)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	assert.Equal(t, "There is no profile for this user", appErr.Message)
}

func TestGetByUserID_MalformedVsMissing(t *testing.T) {
	svc, _, _, _ := newProfileFixture(t)

	// malformed identifier: 404 with the malformed classification
	_, err := svc.GetByUserID("not-a-uuid")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
	assert.Equal(t, apperrors.CodeMalformedID, appErr.Code)

	// well-formed but absent: 400 with the not-found classification
	_, err = svc.GetByUserID(uuid.NewString())
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestAddExperience_InsertsAtHead(t *testing.T) {
	svc, _, _, userID := newProfileFixture(t)
	mustCreateProfile(t, svc, userID)

	_, err := svc.AddExperience(userID, &dto.AddExperienceRequest{
		Title: "Junior", Company: "Acme", From: "2018-01-01",
	})
	require.NoError(t, err)

	resp, err := svc.AddExperience(userID, &dto.AddExperienceRequest{
		Title: "Senior", Company: "Acme", From: "2021-01-01",
	})
	require.NoError(t, err)

	require.Len(t, resp.Experience, 2)
	assert.Equal(t, "Senior", resp.Experience[0].Title)
	assert.Equal(t, "Junior", resp.Experience[1].Title)
	assert.NotEmpty(t, resp.Experience[0].ID)
}

func TestAddExperience_CurrentClearsEndDate(t *testing.T) {
	svc, _, _, userID := newProfileFixture(t)
	mustCreateProfile(t, svc, userID)

	resp, err := svc.AddExperience(userID, &dto.AddExperienceRequest{
		Title: "Dev", Company: "Acme", From: "2020-01-01",
		To: "2022-01-01", Current: true,
	})
	require.NoError(t, err)

	assert.True(t, resp.Experience[0].Current)
	assert.Empty(t, resp.Experience[0].To)
}

func TestDeleteExperience_RoundTripAndNoOp(t *testing.T) {
	svc, _, _, userID := newProfileFixture(t)
	mustCreateProfile(t, svc, userID)

	before, err := svc.AddExperience(userID, &dto.AddExperienceRequest{
		Title: "Keep", Company: "Acme", From: "2019-01-01",
	})
	require.NoError(t, err)

	added, err := svc.AddExperience(userID, &dto.AddExperienceRequest{
		Title: "Temp", Company: "Acme", From: "2020-01-01",
	})
	require.NoError(t, err)

	// removing the added entry restores the prior sequence exactly
	after, err := svc.DeleteExperience(userID, added.Experience[0].ID)
	require.NoError(t, err)
	assert.Equal(t, before.Experience, after.Experience)

	// removing an unknown id is a no-op, not an error
	again, err := svc.DeleteExperience(userID, "ffffffff-ffff-ffff-ffff-ffffffffffff")
	require.NoError(t, err)
	assert.Equal(t, after.Experience, again.Experience)
}

func TestEducationLifecycle(t *testing.T) {
	svc, _, _, userID := newProfileFixture(t)
	mustCreateProfile(t, svc, userID)

	resp, err := svc.AddEducation(userID, &dto.AddEducationRequest{
		School: "MIT", Degree: "BSc", FieldOfStudy: "CS", From: "2014-09-01",
	})
	require.NoError(t, err)
	require.Len(t, resp.Education, 1)

	resp, err = svc.DeleteEducation(userID, resp.Education[0].ID)
	require.NoError(t, err)
	assert.Empty(t, resp.Education)
}

func TestDeleteAccount_RemovesProfileAndUser(t *testing.T) {
	svc, profileRepo, userRepo, userID := newProfileFixture(t)
	mustCreateProfile(t, svc, userID)

	require.NoError(t, svc.DeleteAccount(userID))

	_, err := profileRepo.FindByUserID(userID)
	assert.Error(t, err)
	_, err = userRepo.FindByID(userID)
	assert.Error(t, err)
}

func mustCreateProfile(t *testing.T, svc ProfileService, userID string) {
	t.Helper()
	_, err := svc.Upsert(userID, &dto.UpsertProfileRequest{Status: "dev", Skills: "go"})
	require.NoError(t, err)
}
