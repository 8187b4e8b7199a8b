package api

import (
	"net/http"
	"strconv"

	"github.com/KirkDiggler/moodmeet/internal/common/apperrors"
	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/services/orchestrator"
)

func (h *Handler) createEvent(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	event, err := h.orchestrator.CreateEvent(r.Context(), &orchestrator.CreateEventInput{
		Token:       token(r),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		MoodTag:     req.MoodTag,
		Capacity:    *req.Capacity,
		Location:    req.Location,
		Date:        req.Date,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, event)
}

func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := listEventsQuery{Status: models.EventStatus(q.Get("status"))}
	if err := h.check(&query); err != nil {
		h.fail(w, r, err)
		return
	}

	list, err := h.orchestrator.ListEvents(r.Context(), &orchestrator.ListEventsInput{
		Host:     q.Get("host"),
		Status:   query.Status,
		Category: q.Get("category"),
		MoodTag:  q.Get("moodTag"),
		Tag:      q.Get("tag"),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) lookupEvent(w http.ResponseWriter, r *http.Request) {
	details, err := h.orchestrator.LookupEventDetails(r.Context(), &orchestrator.LookupEventDetailsInput{
		EventID: r.PathValue("id"),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, details)
}

func (h *Handler) updateEvent(w http.ResponseWriter, r *http.Request) {
	var req updateEventRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	event, err := h.orchestrator.UpdateEventDetails(r.Context(), &orchestrator.UpdateEventDetailsInput{
		Token:       token(r),
		EventID:     r.PathValue("id"),
		Description: req.Description,
		Location:    req.Location,
		Capacity:    req.Capacity,
		Category:    req.Category,
		MoodTag:     req.MoodTag,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, event)
}

func (h *Handler) cancelEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.orchestrator.CancelEvent(r.Context(), h.eventAction(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, event)
}

func (h *Handler) advanceEvent(w http.ResponseWriter, r *http.Request) {
	var req eventStatusRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	event, err := h.orchestrator.AdvanceEventStatus(r.Context(), &orchestrator.AdvanceEventStatusInput{
		Token:   token(r),
		EventID: r.PathValue("id"),
		Status:  req.Status,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, event)
}

func (h *Handler) rsvp(w http.ResponseWriter, r *http.Request) {
	rsvp, err := h.orchestrator.RSVP(r.Context(), h.eventAction(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, rsvp)
}

func (h *Handler) cancelRSVP(w http.ResponseWriter, r *http.Request) {
	rsvp, err := h.orchestrator.CancelRSVP(r.Context(), h.eventAction(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rsvp)
}

func (h *Handler) tagEvent(w http.ResponseWriter, r *http.Request) {
	var req tagEventRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	event, err := h.orchestrator.TagEvent(r.Context(), &orchestrator.TagEventInput{
		Token:   token(r),
		EventID: r.PathValue("id"),
		TagID:   req.Tag,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, event)
}

func (h *Handler) markAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendanceRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	out, err := h.orchestrator.MarkAttendance(r.Context(), &orchestrator.MarkAttendanceInput{
		Token:    token(r),
		EventID:  r.PathValue("id"),
		UserID:   req.UserID,
		Attended: *req.Attended,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Streak)
}

func (h *Handler) syncMood(w http.ResponseWriter, r *http.Request) {
	out, err := h.orchestrator.SyncMoodWithEvent(r.Context(), h.eventAction(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"synced":       out.Synced,
		"alternatives": out.Alternatives,
	})
}

func (h *Handler) listRSVPs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	active := false
	if raw := q.Get("active"); raw != "" {
		var err error
		if active, err = strconv.ParseBool(raw); err != nil {
			h.fail(w, r, apperrors.Invalid("active must be true or false"))
			return
		}
	}

	list, err := h.orchestrator.ListRSVPs(r.Context(), &orchestrator.ListRSVPsInput{
		UserID:     q.Get("user"),
		EventID:    q.Get("event"),
		ActiveOnly: active,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) getRSVP(w http.ResponseWriter, r *http.Request) {
	rsvp, err := h.orchestrator.GetRSVP(r.Context(), &orchestrator.GetRSVPInput{RSVPID: r.PathValue("id")})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rsvp)
}

func (h *Handler) recommend(w http.ResponseWriter, r *http.Request) {
	out, err := h.orchestrator.RecommendEvents(r.Context(), &orchestrator.SessionInput{Token: token(r)})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"mood":     out.Mood,
		"fallback": out.Fallback,
		"events":   out.Events,
	})
}

func (h *Handler) getStreak(w http.ResponseWriter, r *http.Request) {
	streak, err := h.orchestrator.GetStreak(r.Context(), &orchestrator.GetStreakInput{
		UserID: r.PathValue("userID"),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, streak)
}

func (h *Handler) eventAction(r *http.Request) *orchestrator.EventActionInput {
	return &orchestrator.EventActionInput{
		Token:   token(r),
		EventID: r.PathValue("id"),
	}
}
