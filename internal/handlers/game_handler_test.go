package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reelstreak/internal/archive"
	"reelstreak/internal/models"
	"reelstreak/internal/service"
)

func testGameHandler(rolesCount int) *GameHandler {
	a := &archive.Archive{}
	for i := 0; i < rolesCount; i++ {
		a.Roles = append(a.Roles, models.RolesPuzzle{
			Actor:     "Actor",
			Character: "Character",
			Movie:     "Movie",
			Year:      2000,
		})
	}
	return NewGameHandler(service.NewGameService(a, nil), nil)
}

func withUser(r *http.Request, user *models.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), UserContextKey, user))
}

func decodeDaily(t *testing.T, rec *httptest.ResponseRecorder) service.DailyRoles {
	t.Helper()
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var daily service.DailyRoles
	if err := json.NewDecoder(rec.Body).Decode(&daily); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return daily
}

func TestDailyRoles(t *testing.T) {
	h := testGameHandler(40)

	req := httptest.NewRequest(http.MethodGet, "/api/roles/daily", nil)
	rec := httptest.NewRecorder()
	h.DailyRoles(rec, req)

	daily := decodeDaily(t, rec)
	if daily.Puzzle == nil {
		t.Error("expected a puzzle")
	}
	if daily.Number <= 0 {
		t.Errorf("expected positive puzzle number, got %d", daily.Number)
	}
}

func TestDailyRolesEmptyArchive(t *testing.T) {
	h := testGameHandler(0)

	req := httptest.NewRequest(http.MethodGet, "/api/roles/daily", nil)
	rec := httptest.NewRecorder()
	h.DailyRoles(rec, req)

	daily := decodeDaily(t, rec)
	if daily.Puzzle != nil {
		t.Errorf("expected no puzzle, got %+v", daily.Puzzle)
	}
	if daily.Number != 0 {
		t.Errorf("expected puzzle number 0, got %d", daily.Number)
	}
}

func TestDailyRolesAsOfPreview(t *testing.T) {
	h := testGameHandler(40)
	admin := &models.User{ID: 1, IsAdmin: true}
	player := &models.User{ID: 2}

	tests := []struct {
		name       string
		user       *models.User
		wantDayKey string
	}{
		{name: "admin gets the requested day", user: admin, wantDayKey: "2024-05-10"},
		{name: "non-admin gets today", user: player, wantDayKey: ""},
		{name: "anonymous gets today", user: nil, wantDayKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/roles/daily?asOf=2024-05-10", nil)
			if tt.user != nil {
				req = withUser(req, tt.user)
			}
			rec := httptest.NewRecorder()
			h.DailyRoles(rec, req)

			daily := decodeDaily(t, rec)
			if tt.wantDayKey != "" && daily.DayKey != tt.wantDayKey {
				t.Errorf("expected day key %s, got %s", tt.wantDayKey, daily.DayKey)
			}
			if tt.wantDayKey == "" && daily.DayKey == "2024-05-10" {
				t.Error("preview should be ignored without admin rights")
			}
		})
	}
}

func TestBonusRolesUsesSyntheticKey(t *testing.T) {
	h := testGameHandler(40)

	req := httptest.NewRequest(http.MethodGet, "/api/roles/bonus?asOf=2024-05-10", nil)
	req = withUser(req, &models.User{ID: 1, IsAdmin: true})
	rec := httptest.NewRecorder()
	h.BonusRoles(rec, req)

	daily := decodeDaily(t, rec)
	if daily.DayKey != "bonus-2024-05-10" {
		t.Errorf("expected synthetic bonus key, got %s", daily.DayKey)
	}
}

func TestSubmitResultRejectsUnknownGame(t *testing.T) {
	h := testGameHandler(40)

	body := `{"game":"chess","time_secs":10}`
	req := httptest.NewRequest(http.MethodPost, "/api/results", strings.NewReader(body))
	req = withUser(req, &models.User{ID: 1})
	rec := httptest.NewRecorder()
	h.SubmitResult(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestSubmitResultRequiresAuth(t *testing.T) {
	h := testGameHandler(40)

	req := httptest.NewRequest(http.MethodPost, "/api/results", strings.NewReader(`{"game":"roles"}`))
	rec := httptest.NewRecorder()
	h.SubmitResult(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}
