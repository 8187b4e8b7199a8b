package api

import (
	"net/http"
	"strconv"

	"github.com/KirkDiggler/moodmeet/internal/common/apperrors"
	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/services/orchestrator"
)

func (h *Handler) listMoods(w http.ResponseWriter, r *http.Request) {
	moods, err := h.orchestrator.ListMoods(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, moods)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.orchestrator.ListCategories(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) listTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.orchestrator.ListTags(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tags)
}

func (h *Handler) createTag(w http.ResponseWriter, r *http.Request) {
	var req createTagRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	tag, err := h.orchestrator.CreateTag(r.Context(), &orchestrator.CreateTagInput{
		Token: token(r),
		Name:  req.Name,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, tag)
}

func (h *Handler) countUpvotes(w http.ResponseWriter, r *http.Request) {
	count, err := h.orchestrator.CountUpvotes(r.Context(), &orchestrator.CountUpvotesInput{
		EventID: r.PathValue("eventID"),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, countResponse{Count: count})
}

func (h *Handler) upvote(w http.ResponseWriter, r *http.Request) {
	upvote, err := h.orchestrator.Upvote(r.Context(), &orchestrator.EventActionInput{
		Token:   token(r),
		EventID: r.PathValue("eventID"),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, upvote)
}

func (h *Handler) removeUpvote(w http.ResponseWriter, r *http.Request) {
	err := h.orchestrator.RemoveUpvote(r.Context(), &orchestrator.EventActionInput{
		Token:   token(r),
		EventID: r.PathValue("eventID"),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, message{Msg: "Upvote removed!"})
}

func (h *Handler) invite(w http.ResponseWriter, r *http.Request) {
	var req inviteRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	invitation, err := h.orchestrator.Invite(r.Context(), &orchestrator.InviteInput{
		Token:   token(r),
		EventID: req.EventID,
		To:      req.To,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, invitation)
}

func (h *Handler) listInvitations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := listInvitationsQuery{Status: models.InvitationStatus(q.Get("status"))}
	if err := h.check(&query); err != nil {
		h.fail(w, r, err)
		return
	}

	sent := false
	if raw := q.Get("sent"); raw != "" {
		var err error
		if sent, err = strconv.ParseBool(raw); err != nil {
			h.fail(w, r, apperrors.Invalid("sent must be true or false"))
			return
		}
	}

	list, err := h.orchestrator.ListInvitations(r.Context(), &orchestrator.ListInvitationsInput{
		Token:  token(r),
		Sent:   sent,
		Status: query.Status,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) acceptInvitation(w http.ResponseWriter, r *http.Request) {
	invitation, err := h.orchestrator.AcceptInvitation(r.Context(), h.invitationAction(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, invitation)
}

func (h *Handler) rejectInvitation(w http.ResponseWriter, r *http.Request) {
	invitation, err := h.orchestrator.RejectInvitation(r.Context(), h.invitationAction(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, invitation)
}

func (h *Handler) invitationAction(r *http.Request) *orchestrator.InvitationActionInput {
	return &orchestrator.InvitationActionInput{
		Token:        token(r),
		InvitationID: r.PathValue("id"),
	}
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	list, err := h.orchestrator.ListPosts(r.Context(), &orchestrator.ListPostsInput{
		Author: r.URL.Query().Get("author"),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	post, err := h.orchestrator.CreatePost(r.Context(), &orchestrator.CreatePostInput{
		Token:   token(r),
		Content: req.Content,
		Options: req.Options,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	var req updatePostRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	post, err := h.orchestrator.UpdatePost(r.Context(), &orchestrator.UpdatePostInput{
		Token:   token(r),
		PostID:  r.PathValue("id"),
		Content: req.Content,
		Options: req.Options,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	err := h.orchestrator.DeletePost(r.Context(), &orchestrator.PostActionInput{
		Token:  token(r),
		PostID: r.PathValue("id"),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, message{Msg: "Post deleted!"})
}
