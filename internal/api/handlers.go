package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	apperrors "github.com/louisbranch/tfc.fitness/internal/platform/errors"
	"github.com/louisbranch/tfc.fitness/internal/storage"
	"github.com/louisbranch/tfc.fitness/internal/user"
	"github.com/louisbranch/tfc.fitness/internal/workout"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type userPayload struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	CreatedAt string  `json:"created_at"`
	LastLogin *string `json:"last_login"`
}

type workoutPayload struct {
	ID        int64                   `json:"id,omitempty"`
	Name      string                  `json:"name"`
	StartTime string                  `json:"start_time,omitempty"`
	EndTime   string                  `json:"end_time,omitempty"`
	Duration  int                     `json:"duration"`
	Exercises []workout.ExerciseEntry `json:"exercises"`
	Notes     string                  `json:"notes,omitempty"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	result, err := s.svc.RegisterUser(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"user_id": result.UserID})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	result, err := s.svc.LoginUser(r.Context(), req.Identifier, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	token, err := s.tokens.Issue(result.User.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  toUserPayload(result.User),
	})
}

func (s *Server) handleCheckUsername(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		writeError(w, apperrors.New(apperrors.CodeInvalidArgument, "username is required"))
		return
	}
	exists, err := s.svc.CheckUsernameExists(r.Context(), username)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"exists": exists})
}

func (s *Server) handleCheckEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, apperrors.New(apperrors.CodeInvalidArgument, "email is required"))
		return
	}
	exists, err := s.svc.CheckEmailExists(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"exists": exists})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request, userID int64) {
	u, err := s.svc.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// The token outlived the account.
			writeError(w, ErrInvalidToken)
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserPayload(u))
}

// handleGetUser serves only the authenticated user's own record; other ids
// report not found rather than confirming they exist.
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request, userID int64) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, apperrors.New(apperrors.CodeInvalidArgument, "user id must be numeric"))
		return
	}
	if id != userID {
		writeError(w, apperrors.New(apperrors.CodeNotFound, "user not found"))
		return
	}
	s.handleMe(w, r, userID)
}

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request, userID int64) {
	workouts, err := s.svc.GetUserWorkouts(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	payloads := make([]workoutPayload, 0, len(workouts))
	for _, wk := range workouts {
		payloads = append(payloads, toWorkoutPayload(wk))
	}
	writeJSON(w, http.StatusOK, map[string][]workoutPayload{"workouts": payloads})
}

func (s *Server) handleSaveWorkout(w http.ResponseWriter, r *http.Request, userID int64) {
	var req workoutPayload
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	draft, err := toDraft(req)
	if err != nil {
		writeError(w, err)
		return
	}
	result, err := s.svc.SaveWorkout(r.Context(), userID, draft)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"workout_id": result.WorkoutID})
}

func (s *Server) handleMuscleGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := s.svc.MuscleGroups(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"muscle_groups": groups})
}

func (s *Server) handleExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := s.svc.Exercises(r.Context(), r.URL.Query().Get("muscle_group"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"exercises": exercises})
}

func toUserPayload(u user.User) userPayload {
	payload := userPayload{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
	if u.LastLogin != nil {
		formatted := u.LastLogin.UTC().Format(time.RFC3339)
		payload.LastLogin = &formatted
	}
	return payload
}

func toWorkoutPayload(wk workout.Workout) workoutPayload {
	return workoutPayload{
		ID:        wk.ID,
		Name:      wk.Name,
		StartTime: wk.StartTime.UTC().Format(time.RFC3339),
		EndTime:   wk.EndTime.UTC().Format(time.RFC3339),
		Duration:  wk.Duration,
		Exercises: wk.Exercises,
		Notes:     wk.Notes,
	}
}

func toDraft(req workoutPayload) (workout.Draft, error) {
	draft := workout.Draft{
		Name:      req.Name,
		Duration:  req.Duration,
		Exercises: req.Exercises,
		Notes:     req.Notes,
	}

	var err error
	if draft.StartTime, err = parseOptionalTime(req.StartTime, "start_time"); err != nil {
		return workout.Draft{}, err
	}
	if draft.EndTime, err = parseOptionalTime(req.EndTime, "end_time"); err != nil {
		return workout.Draft{}, err
	}

	for _, entry := range req.Exercises {
		for _, set := range entry.Sets {
			if set.SetType != "" && !set.SetType.Valid() {
				return workout.Draft{}, apperrors.New(apperrors.CodeInvalidArgument,
					fmt.Sprintf("unknown set type %q", set.SetType))
			}
		}
	}
	return draft, nil
}

func parseOptionalTime(raw, field string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, apperrors.New(apperrors.CodeInvalidArgument,
			fmt.Sprintf("%s must be RFC 3339", field))
	}
	return t, nil
}
