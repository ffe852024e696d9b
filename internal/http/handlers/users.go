package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/calverts/userhub/internal/domain/user"
	"github.com/calverts/userhub/internal/store"
	"github.com/gin-gonic/gin"
)

// UserStore is the slice of the file store the handlers need; tests fake
// it with function fields.
type UserStore interface {
	List() ([]user.User, error)
	Create(name, email string, age int) (user.User, error)
	Get(id int) (user.User, error)
	Update(id int, req user.UpdateUserRequest) (user.User, error)
	Delete(id int) error
}

type UsersHandler struct {
	store UserStore
}

func NewUsersHandler(st UserStore) *UsersHandler {
	return &UsersHandler{store: st}
}

func (h *UsersHandler) ListUsers(ctx *gin.Context) {
	users, err := h.store.List()

	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

func (h *UsersHandler) CreateUser(ctx *gin.Context) {
	var req user.CreateUserRequest

	if !BindJSON(ctx, &req, "Request body is required") {
		return
	}

	if missing := req.MissingFields(); len(missing) > 0 {
		RespondBadRequest(ctx, "Missing required fields: "+user.JoinFields(missing))
		return
	}

	created, err := h.store.Create(*req.Name, *req.Email, *req.Age)

	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

func (h *UsersHandler) GetUserByID(ctx *gin.Context) {
	id, ok := userID(ctx)
	if !ok {
		return
	}

	u, err := h.store.Get(id)

	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, u)
}

func (h *UsersHandler) UpdateUser(ctx *gin.Context) {
	id, ok := userID(ctx)
	if !ok {
		return
	}

	var req user.UpdateUserRequest

	if !BindJSON(ctx, &req, "Request body is required") {
		return
	}

	if req.Empty() {
		RespondBadRequest(ctx, "Request body is required")
		return
	}

	updated, err := h.store.Update(id, req)

	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

func (h *UsersHandler) DeleteUser(ctx *gin.Context) {
	id, ok := userID(ctx)
	if !ok {
		return
	}

	if err := h.store.Delete(id); err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("User %d deleted", id),
	})
}

// userID parses the :id path param. A non-numeric id matches no user, so
// it reports the same 404 as an unknown one.
func userID(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))

	if err != nil {
		RespondNotFound(ctx, "User not found")
		return 0, false
	}

	return id, true
}

func respondStoreError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		RespondNotFound(ctx, "User not found")
	case errors.Is(err, store.ErrCorrupt):
		RespondInternal(ctx, "User data file is corrupted")
	default:
		RespondInternal(ctx, "Could not access user data")
	}
}
