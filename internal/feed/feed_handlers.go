package feed

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/metacogna-lab/be-timelesslove-v1.0.0/internal/common"
)

// FeedHandlers wires the HTTP surface to the feed engine. Identity comes
// from the auth middleware; everything else is parameter parsing and
// error translation.
type FeedHandlers struct {
	feed      *FeedService
	reactions *ReactionService
	comments  *CommentService
}

func NewFeedHandlers(f *FeedService, r *ReactionService, c *CommentService) *FeedHandlers {
	return &FeedHandlers{feed: f, reactions: r, comments: c}
}

func (h *FeedHandlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/feed", common.AuthMiddleware(h.GetFeed)).Methods("GET")

	router.HandleFunc("/memories/{id}/comments", common.AuthMiddleware(h.GetComments)).Methods("GET")
	router.HandleFunc("/memories/{id}/comments", common.AuthMiddleware(h.CreateComment)).Methods("POST")
	router.HandleFunc("/comments/{id}", common.AuthMiddleware(h.UpdateComment)).Methods("PUT")
	router.HandleFunc("/comments/{id}", common.AuthMiddleware(h.DeleteComment)).Methods("DELETE")

	router.HandleFunc("/memories/{id}/reactions", common.AuthMiddleware(h.CreateReaction)).Methods("POST")
	router.HandleFunc("/memories/{id}/reactions/{reactionId}", common.AuthMiddleware(h.DeleteReaction)).Methods("DELETE")
}

// GetFeed handles GET /feed
func (h *FeedHandlers) GetFeed(w http.ResponseWriter, r *http.Request) {
	identity, ok := common.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	filters, page, err := parseFeedQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}

	feedPage, err := h.feed.GetFeed(r.Context(), identity.FamilyUnitID, identity.UserID, filters, page)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, feedPage)
}

// GetComments handles GET /memories/{id}/comments
func (h *FeedHandlers) GetComments(w http.ResponseWriter, r *http.Request) {
	identity, ok := common.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	memoryID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "invalid memory ID")
		return
	}

	thread, err := h.comments.ThreadForMemory(r.Context(), memoryID, identity.FamilyUnitID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"comments": thread})
}

// CreateComment handles POST /memories/{id}/comments
func (h *FeedHandlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	identity, ok := common.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	memoryID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "invalid memory ID")
		return
	}

	var body struct {
		Content         string     `json:"content"`
		ParentCommentID *uuid.UUID `json:"parent_comment_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	comment, err := h.comments.CreateComment(r.Context(), memoryID, identity.UserID, identity.FamilyUnitID, CreateCommentInput{
		Content:         body.Content,
		ParentCommentID: body.ParentCommentID,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

// UpdateComment handles PUT /comments/{id}
func (h *FeedHandlers) UpdateComment(w http.ResponseWriter, r *http.Request) {
	identity, ok := common.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	commentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "invalid comment ID")
		return
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	comment, err := h.comments.UpdateComment(r.Context(), commentID, identity.UserID, body.Content)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, comment)
}

// DeleteComment handles DELETE /comments/{id}
func (h *FeedHandlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	identity, ok := common.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	commentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "invalid comment ID")
		return
	}

	if err := h.comments.DeleteComment(r.Context(), commentID, identity.UserID, identity.FamilyUnitID, identity.Role); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "comment deleted successfully"})
}

// CreateReaction handles POST /memories/{id}/reactions
func (h *FeedHandlers) CreateReaction(w http.ResponseWriter, r *http.Request) {
	identity, ok := common.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	memoryID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "invalid memory ID")
		return
	}

	var body struct {
		Emoji string `json:"emoji"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	reaction, err := h.reactions.CreateReaction(r.Context(), memoryID, identity.UserID, identity.FamilyUnitID, body.Emoji)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, reaction)
}

// DeleteReaction handles DELETE /memories/{id}/reactions/{reactionId}
func (h *FeedHandlers) DeleteReaction(w http.ResponseWriter, r *http.Request) {
	identity, ok := common.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	reactionID, err := uuid.Parse(mux.Vars(r)["reactionId"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "invalid reaction ID")
		return
	}

	if err := h.reactions.DeleteReaction(r.Context(), reactionID, identity.UserID); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "reaction deleted successfully"})
}

func parseFeedQuery(r *http.Request) (Filters, Pagination, error) {
	q := r.URL.Query()
	var filters Filters
	var page Pagination

	if status := q.Get("status"); status != "" {
		switch status {
		case "draft", "published", "archived":
			filters.Status = status
		default:
			return filters, page, errors.New("status must be draft, published or archived")
		}
	}

	if raw := q.Get("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filters, page, errors.New("invalid user_id")
		}
		filters.UserID = &id
	}

	if raw := q.Get("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				filters.Tags = append(filters.Tags, tag)
			}
		}
	}

	var err error
	if filters.DateFrom, err = parseTimeParam(q.Get("date_from")); err != nil {
		return filters, page, errors.New("invalid date_from")
	}
	if filters.DateTo, err = parseTimeParam(q.Get("date_to")); err != nil {
		return filters, page, errors.New("invalid date_to")
	}

	filters.SearchQuery = q.Get("search_query")

	if orderBy := q.Get("order_by"); orderBy != "" {
		switch orderBy {
		case OrderByFeedScore, OrderByCreatedAt, OrderByMemoryDate:
			filters.OrderBy = orderBy
		default:
			return filters, page, errors.New("order_by must be feed_score, created_at or memory_date")
		}
	}

	if dir := q.Get("order_direction"); dir != "" {
		if dir != "asc" && dir != "desc" {
			return filters, page, errors.New("order_direction must be asc or desc")
		}
		filters.OrderDirection = dir
	}

	if raw := q.Get("page"); raw != "" {
		if page.Page, err = strconv.Atoi(raw); err != nil || page.Page < 1 {
			return filters, page, errors.New("page must be a positive integer")
		}
	}
	if raw := q.Get("page_size"); raw != "" {
		if page.PageSize, err = strconv.Atoi(raw); err != nil || page.PageSize < 1 || page.PageSize > 100 {
			return filters, page, errors.New("page_size must be between 1 and 100")
		}
	}

	return filters, page, nil
}

func parseTimeParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		// allow bare dates for memory_date filtering
		if t, err = time.Parse("2006-01-02", raw); err != nil {
			return nil, err
		}
	}
	return &t, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("feed: failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, map[string]string{"error": kind, "message": message})
}

// writeDomainError maps the closed business-rule error set onto client
// status codes; anything else is an infrastructure failure surfaced as a
// bare 500.
func writeDomainError(w http.ResponseWriter, err error) {
	var derr *Error
	if errors.As(err, &derr) {
		writeError(w, statusForKind(derr.Kind), derr.Kind.String(), derr.Message)
		return
	}
	log.Printf("feed: internal error: %v", err)
	writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
}

func statusForKind(kind ErrorKind) int {
	switch kind {
	case KindNotFoundOrAccessDenied:
		return http.StatusNotFound
	case KindDuplicateReaction:
		return http.StatusConflict
	default:
		return http.StatusUnprocessableEntity
	}
}
