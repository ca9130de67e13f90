package sdk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollPostsNestedRecords(t *testing.T) {
	posted := make(chan map[string]json.RawMessage, 1)
	mux := http.NewServeMux()
	mux.HandleFunc("/usuarios/5", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": 5, "nombre": "Ana", "email": "ana@example.com", "telefono": "987654321"})
	})
	mux.HandleFunc("/cursos/9", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sdk.Course{ID: 9, Titulo: "Go", Descripcion: "Concurrencia", Estado: sdk.CourseActive})
	})
	mux.HandleFunc("/cursoregistros", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body map[string]json.RawMessage
		_ = json.NewDecoder(r.Body).Decode(&body)
		posted <- body
		writeJSON(w, http.StatusOK, map[string]any{
			"id":      30,
			"usuario": map[string]any{"id": 5, "nombre": "Ana"},
			"curso":   map[string]any{"id": 9, "titulo": "Go", "estado": "ACTIVO"},
		})
	})
	stack := newTestStack(t, mux)

	enrollment, err := stack.client.Enroll(context.Background(), 5, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(30), enrollment.ID)
	assert.Equal(t, int64(5), enrollment.Usuario.ID)
	assert.Equal(t, int64(9), enrollment.Curso.ID)

	body := <-posted
	var user map[string]any
	require.NoError(t, json.Unmarshal(body["usuario"], &user))
	assert.Equal(t, "987654321", user["telefono"])
	var course sdk.Course
	require.NoError(t, json.Unmarshal(body["curso"], &course))
	assert.Equal(t, "Go", course.Titulo)
}

func TestEnrollFailsWhenPrefetchFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/usuarios/5", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": 5})
	})
	mux.HandleFunc("/cursos/404", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Curso no encontrado"})
	})
	mux.HandleFunc("/cursoregistros", func(w http.ResponseWriter, r *http.Request) {
		t.Error("enrollment must not be posted")
	})
	stack := newTestStack(t, mux)

	_, err := stack.client.Enroll(context.Background(), 5, 404)
	require.Error(t, err)
	assert.True(t, sdk.IsStatus(err, http.StatusNotFound))
	assert.Equal(t, "Curso no encontrado", sdk.UserMessage(err))
}

func TestEnrollConflict(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/usuarios/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": 1})
	})
	mux.HandleFunc("/cursos/2", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": 2})
	})
	mux.HandleFunc("/cursoregistros", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})
	stack := newTestStack(t, mux)

	_, err := stack.client.Enroll(context.Background(), 1, 2)
	require.Error(t, err)
	assert.True(t, sdk.IsStatus(err, http.StatusConflict))
}

func TestEnrollmentQueries(t *testing.T) {
	all := []map[string]any{
		{"id": 1, "usuario": map[string]any{"id": 5}, "curso": map[string]any{"id": 9}},
		{"id": 2, "usuario": map[string]any{"id": 6}, "curso": map[string]any{"id": 9}},
		{"id": 3, "usuario": map[string]any{"id": 5}, "curso": map[string]any{"id": 11}},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/cursoregistros", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, all)
	})
	mux.HandleFunc("/cursoregistros/2", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusOK)
			return
		}
		writeJSON(w, http.StatusOK, all[1])
	})
	mux.HandleFunc("/cursoregistros/usuario/5", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{all[0], all[2]})
	})
	mux.HandleFunc("/cursoregistros/verificar/5/9", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, true)
	})
	mux.HandleFunc("/cursoregistros/verificar/6/11", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, false)
	})
	stack := newTestStack(t, mux)
	ctx := context.Background()

	list, err := stack.client.ListEnrollments(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)

	mine := sdk.MyEnrollments(list, 5)
	require.Len(t, mine, 2)
	assert.Equal(t, int64(1), mine[0].ID)
	assert.Equal(t, int64(3), mine[1].ID)
	assert.NotNil(t, sdk.MyEnrollments(list, 99))
	assert.Empty(t, sdk.MyEnrollments(list, 99))

	byUser, err := stack.client.ListUserEnrollments(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	one, err := stack.client.GetEnrollment(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(6), one.Usuario.ID)

	enrolled, err := stack.client.IsEnrolled(ctx, 5, 9)
	require.NoError(t, err)
	assert.True(t, enrolled)
	enrolled, err = stack.client.IsEnrolled(ctx, 6, 11)
	require.NoError(t, err)
	assert.False(t, enrolled)

	require.NoError(t, stack.client.CancelEnrollment(ctx, 2))
}

func TestCancelEnrollmentRequiresID(t *testing.T) {
	stack := newTestStack(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))

	err := stack.client.CancelEnrollment(context.Background(), 0)
	assert.ErrorIs(t, err, sdk.ErrEnrollmentIDMissing)
}
