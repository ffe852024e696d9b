package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/calverts/userhub/internal/domain/user"
	"github.com/calverts/userhub/internal/http/handlers"
	"github.com/calverts/userhub/internal/store"
	"github.com/gin-gonic/gin"
)

// Make sure Gin does not spam the console during the test

func init() {
	gin.SetMode(gin.TestMode)
}

// Fake store implementing the handlers.UserStore interface

type fakeStore struct {
	listFn   func() ([]user.User, error)
	createFn func(name, email string, age int) (user.User, error)
	getFn    func(id int) (user.User, error)
	updateFn func(id int, req user.UpdateUserRequest) (user.User, error)
	deleteFn func(id int) error
}

func (f *fakeStore) List() ([]user.User, error) {
	if f.listFn != nil {
		return f.listFn()
	}
	return []user.User{}, nil
}

func (f *fakeStore) Create(name, email string, age int) (user.User, error) {
	if f.createFn != nil {
		return f.createFn(name, email, age)
	}
	return user.User{}, nil
}

func (f *fakeStore) Get(id int) (user.User, error) {
	if f.getFn != nil {
		return f.getFn(id)
	}
	return user.User{}, nil
}

func (f *fakeStore) Update(id int, req user.UpdateUserRequest) (user.User, error) {
	if f.updateFn != nil {
		return f.updateFn(id, req)
	}
	return user.User{}, nil
}

func (f *fakeStore) Delete(id int) error {
	if f.deleteFn != nil {
		return f.deleteFn(id)
	}
	return nil
}

func usersRouter(st handlers.UserStore) *gin.Engine {
	r := gin.New()
	h := handlers.NewUsersHandler(st)
	r.GET("/users", h.ListUsers)
	r.POST("/users", h.CreateUser)
	r.GET("/users/:id", h.GetUserByID)
	r.PUT("/users/:id", h.UpdateUser)
	r.DELETE("/users/:id", h.DeleteUser)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorField(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response %q is not a JSON object: %v", w.Body.String(), err)
	}
	return body["error"]
}

func TestCreateUser(t *testing.T) {
	st := &fakeStore{
		createFn: func(name, email string, age int) (user.User, error) {
			return user.User{ID: 1, Name: name, Email: email, Age: age}, nil
		},
	}
	r := usersRouter(st)

	w := doJSON(t, r, http.MethodPost, "/users", `{"name":"Alice","email":"a@a.com","age":25}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", w.Code, w.Body.String())
	}

	var got user.User
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}

	want := user.User{ID: 1, Name: "Alice", Email: "a@a.com", Age: 25}
	if got != want {
		t.Errorf("created = %+v, want %+v", got, want)
	}
}

func TestCreateUserMissingFields(t *testing.T) {
	r := usersRouter(&fakeStore{})

	tests := []struct {
		name string
		body string
		want string
	}{
		{"no body", "", "Request body is required"},
		{"all missing", `{}`, "Missing required fields: name, email, age"},
		{"age missing", `{"name":"A","email":"a@a.com"}`, "Missing required fields: age"},
		{"email and age missing", `{"name":"A"}`, "Missing required fields: email, age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/users", tt.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			if got := errorField(t, w); got != tt.want {
				t.Errorf("error = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestListUsers(t *testing.T) {
	st := &fakeStore{
		listFn: func() ([]user.User, error) {
			return []user.User{
				{ID: 1, Name: "Alice", Email: "a@a.com", Age: 25},
				{ID: 2, Name: "Bob", Email: "b@b.com", Age: 40},
			}, nil
		},
	}
	r := usersRouter(st)

	w := doJSON(t, r, http.MethodGet, "/users", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var got []user.User
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("list length = %d, want 2", len(got))
	}
}

func TestListUsersEmptyIsArray(t *testing.T) {
	r := usersRouter(&fakeStore{})

	w := doJSON(t, r, http.MethodGet, "/users", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != "[]" {
		t.Errorf("body = %q, want []", w.Body.String())
	}
}

func TestGetUserNotFound(t *testing.T) {
	st := &fakeStore{
		getFn: func(id int) (user.User, error) {
			return user.User{}, store.ErrNotFound
		},
	}
	r := usersRouter(st)

	w := doJSON(t, r, http.MethodGet, "/users/999", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if got := errorField(t, w); got != "User not found" {
		t.Errorf("error = %q, want User not found", got)
	}
}

func TestGetUserNonNumericID(t *testing.T) {
	r := usersRouter(&fakeStore{})

	w := doJSON(t, r, http.MethodGet, "/users/abc", "")

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestUpdateUserEmptyBody(t *testing.T) {
	r := usersRouter(&fakeStore{})

	for _, body := range []string{"", "{}"} {
		w := doJSON(t, r, http.MethodPut, "/users/1", body)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status for body %q = %d, want 400", body, w.Code)
		}
		if got := errorField(t, w); got != "Request body is required" {
			t.Errorf("error = %q, want Request body is required", got)
		}
	}
}

func TestUpdateUserPartial(t *testing.T) {
	var gotReq user.UpdateUserRequest

	st := &fakeStore{
		updateFn: func(id int, req user.UpdateUserRequest) (user.User, error) {
			gotReq = req
			return user.User{ID: id, Name: "Alice", Email: "a@a.com", Age: *req.Age}, nil
		},
	}
	r := usersRouter(st)

	w := doJSON(t, r, http.MethodPut, "/users/1", `{"age":30}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	if gotReq.Name != nil || gotReq.Email != nil {
		t.Error("absent fields should stay nil in the update request")
	}
	if gotReq.Age == nil || *gotReq.Age != 30 {
		t.Errorf("age = %v, want 30", gotReq.Age)
	}
}

func TestUpdateUserNotFound(t *testing.T) {
	st := &fakeStore{
		updateFn: func(id int, req user.UpdateUserRequest) (user.User, error) {
			return user.User{}, store.ErrNotFound
		},
	}
	r := usersRouter(st)

	w := doJSON(t, r, http.MethodPut, "/users/7", `{"age":30}`)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestDeleteUser(t *testing.T) {
	st := &fakeStore{}
	r := usersRouter(st)

	w := doJSON(t, r, http.MethodDelete, "/users/1", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["message"] != "User 1 deleted" {
		t.Errorf("message = %q, want User 1 deleted", body["message"])
	}
}

func TestDeleteUserNotFound(t *testing.T) {
	st := &fakeStore{
		deleteFn: func(id int) error { return store.ErrNotFound },
	}
	r := usersRouter(st)

	w := doJSON(t, r, http.MethodDelete, "/users/42", "")

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestCorruptStoreIsServerError(t *testing.T) {
	st := &fakeStore{
		listFn: func() ([]user.User, error) {
			return nil, store.ErrCorrupt
		},
	}
	r := usersRouter(st)

	w := doJSON(t, r, http.MethodGet, "/users", "")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if got := errorField(t, w); got != "User data file is corrupted" {
		t.Errorf("error = %q", got)
	}
}
