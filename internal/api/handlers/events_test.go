package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eventhub/server/internal/domain/events"
)

type stubEventsRepo struct {
	calls int

	listFn   func() ([]events.Event, error)
	getFn    func(id string) (*events.Event, error)
	insertFn func(event events.Event) (primitive.ObjectID, error)
	updateFn func(id string, params events.UpdateEventParams) (int64, error)
	deleteFn func(id string) (int64, error)
}

func (s *stubEventsRepo) List(_ context.Context) ([]events.Event, error) {
	s.calls++
	return s.listFn()
}

func (s *stubEventsRepo) GetByID(_ context.Context, id string) (*events.Event, error) {
	s.calls++
	return s.getFn(id)
}

func (s *stubEventsRepo) Insert(_ context.Context, event events.Event) (primitive.ObjectID, error) {
	s.calls++
	return s.insertFn(event)
}

func (s *stubEventsRepo) UpdateByID(_ context.Context, id string, params events.UpdateEventParams) (int64, error) {
	s.calls++
	return s.updateFn(id, params)
}

func (s *stubEventsRepo) DeleteByID(_ context.Context, id string) (int64, error) {
	s.calls++
	return s.deleteFn(id)
}

type errorEnvelope struct {
	Error struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
	Errors []struct {
		Field string `json:"field"`
		Msg   string `json:"msg"`
	} `json:"errors"`
}

func decodeErrorBody(t *testing.T, res *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var body errorEnvelope
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	return body
}

const validID = "65b1e0f0a1b2c3d4e5f60718"

func TestEventsList(t *testing.T) {
	stored := []events.Event{
		{ID: primitive.NewObjectID(), Name: "GopherCon", Location: "Chicago", Date: time.Now().UTC(), Time: "9:00 AM", Venue: "McCormick Place"},
		{ID: primitive.NewObjectID(), Name: "DevFest", Location: "Austin", Date: time.Now().UTC(), Time: "10:30 AM", Venue: "Convention Center"},
	}
	repo := &stubEventsRepo{listFn: func() ([]events.Event, error) { return stored, nil }}
	handler := NewEventsHandler(events.NewService(repo))

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	res := httptest.NewRecorder()
	handler.List(res, req)

	require.Equal(t, http.StatusOK, res.Code)

	var got []events.Event
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &got))
	require.Len(t, got, 2)
	require.Equal(t, "GopherCon", got[0].Name)
}

func TestEventsList_EmptyIsArray(t *testing.T) {
	repo := &stubEventsRepo{listFn: func() ([]events.Event, error) { return []events.Event{}, nil }}
	handler := NewEventsHandler(events.NewService(repo))

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	res := httptest.NewRecorder()
	handler.List(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	require.Equal(t, "[]", strings.TrimSpace(res.Body.String()))
}

func TestEventsList_StoreError(t *testing.T) {
	repo := &stubEventsRepo{listFn: func() ([]events.Event, error) { return nil, errors.New("boom") }}
	handler := NewEventsHandler(events.NewService(repo))

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	res := httptest.NewRecorder()
	handler.List(res, req)

	require.Equal(t, http.StatusInternalServerError, res.Code)
	body := decodeErrorBody(t, res)
	require.Equal(t, "server_error", body.Error.Kind)
	require.Equal(t, "An error occurred while fetching events", body.Error.Message)
}

func TestEventsGet_InvalidIDNeverTouchesStore(t *testing.T) {
	repo := &stubEventsRepo{getFn: func(string) (*events.Event, error) { t.Fatal("store must not be called"); return nil, nil }}
	handler := NewEventsHandler(events.NewService(repo))

	req := httptest.NewRequest(http.MethodGet, "/events/not-hex", nil)
	req.SetPathValue("id", "not-hex")
	res := httptest.NewRecorder()
	handler.Get(res, req)

	require.Equal(t, http.StatusBadRequest, res.Code)
	require.Zero(t, repo.calls)

	body := decodeErrorBody(t, res)
	require.Equal(t, "validation", body.Error.Kind)
	require.Equal(t, "Invalid event ID format", body.Error.Message)
}

func TestEventsGet_NotFound(t *testing.T) {
	repo := &stubEventsRepo{getFn: func(string) (*events.Event, error) { return nil, events.ErrNotFound }}
	handler := NewEventsHandler(events.NewService(repo))

	req := httptest.NewRequest(http.MethodGet, "/events/"+validID, nil)
	req.SetPathValue("id", validID)
	res := httptest.NewRecorder()
	handler.Get(res, req)

	require.Equal(t, http.StatusNotFound, res.Code)
	body := decodeErrorBody(t, res)
	require.Equal(t, "not_found", body.Error.Kind)
	require.Equal(t, "Event not found", body.Error.Message)
}

func TestEventsCreate(t *testing.T) {
	oid := primitive.NewObjectID()
	var inserted events.Event
	repo := &stubEventsRepo{insertFn: func(event events.Event) (primitive.ObjectID, error) {
		inserted = event
		return oid, nil
	}}
	handler := NewEventsHandler(events.NewService(repo))

	payload := `{"name":"GopherCon","location":"Chicago","date":"2026-10-01","time":"9:00 AM","venue":"McCormick Place"}`
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(payload))
	res := httptest.NewRecorder()
	handler.Create(res, req)

	require.Equal(t, http.StatusCreated, res.Code)
	require.Equal(t, "GopherCon", inserted.Name)

	var created events.Event
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &created))
	require.Equal(t, oid, created.ID)
	require.Equal(t, "9:00 AM", created.Time)
}

func TestEventsCreate_AggregatesValidationErrors(t *testing.T) {
	repo := &stubEventsRepo{insertFn: func(events.Event) (primitive.ObjectID, error) {
		t.Fatal("store must not be called")
		return primitive.NilObjectID, nil
	}}
	handler := NewEventsHandler(events.NewService(repo))

	payload := `{"name":"","location":"Chicago","date":"bad","time":"bad","venue":""}`
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(payload))
	res := httptest.NewRecorder()
	handler.Create(res, req)

	require.Equal(t, http.StatusBadRequest, res.Code)
	require.Zero(t, repo.calls)

	body := decodeErrorBody(t, res)
	require.Equal(t, "validation", body.Error.Kind)
	require.GreaterOrEqual(t, len(body.Errors), 3)

	messages := map[string]string{}
	for _, fieldErr := range body.Errors {
		messages[fieldErr.Field] = fieldErr.Msg
	}
	require.Equal(t, "Event name is required", messages["name"])
	require.Equal(t, "Date must be a valid ISO 8601 date", messages["date"])
	require.Equal(t, "Time must be in the format hh:mm AM/PM (12-hour format)", messages["time"])
	require.Equal(t, "Venue is required", messages["venue"])
}

func TestEventsUpdate(t *testing.T) {
	var gotParams events.UpdateEventParams
	repo := &stubEventsRepo{updateFn: func(id string, params events.UpdateEventParams) (int64, error) {
		gotParams = params
		return 1, nil
	}}
	handler := NewEventsHandler(events.NewService(repo))

	req := httptest.NewRequest(http.MethodPut, "/events/"+validID, strings.NewReader(`{"name":"Renamed"}`))
	req.SetPathValue("id", validID)
	res := httptest.NewRecorder()
	handler.Update(res, req)

	require.Equal(t, http.StatusNoContent, res.Code)
	require.Empty(t, res.Body.String())
	require.NotNil(t, gotParams.Name)
	require.Equal(t, "Renamed", *gotParams.Name)
	require.Nil(t, gotParams.Location)
}

func TestEventsUpdate_UnknownID(t *testing.T) {
	repo := &stubEventsRepo{updateFn: func(string, events.UpdateEventParams) (int64, error) { return 0, nil }}
	handler := NewEventsHandler(events.NewService(repo))

	req := httptest.NewRequest(http.MethodPut, "/events/"+validID, strings.NewReader(`{"name":"Renamed"}`))
	req.SetPathValue("id", validID)
	res := httptest.NewRecorder()
	handler.Update(res, req)

	require.Equal(t, http.StatusNotFound, res.Code)
	body := decodeErrorBody(t, res)
	require.Equal(t, "Event not found", body.Error.Message)
}

func TestEventsUpdate_PresentButInvalidField(t *testing.T) {
	repo := &stubEventsRepo{updateFn: func(string, events.UpdateEventParams) (int64, error) {
		t.Fatal("store must not be called")
		return 0, nil
	}}
	handler := NewEventsHandler(events.NewService(repo))

	req := httptest.NewRequest(http.MethodPut, "/events/"+validID, strings.NewReader(`{"time":"25:00"}`))
	req.SetPathValue("id", validID)
	res := httptest.NewRecorder()
	handler.Update(res, req)

	require.Equal(t, http.StatusBadRequest, res.Code)
	body := decodeErrorBody(t, res)
	require.Len(t, body.Errors, 1)
	require.Equal(t, "time", body.Errors[0].Field)
}

func TestEventsDelete_Idempotence(t *testing.T) {
	deleted := false
	repo := &stubEventsRepo{deleteFn: func(string) (int64, error) {
		if deleted {
			return 0, nil
		}
		deleted = true
		return 1, nil
	}}
	handler := NewEventsHandler(events.NewService(repo))

	first := httptest.NewRequest(http.MethodDelete, "/events/"+validID, nil)
	first.SetPathValue("id", validID)
	firstRes := httptest.NewRecorder()
	handler.Delete(firstRes, first)
	require.Equal(t, http.StatusNoContent, firstRes.Code)

	second := httptest.NewRequest(http.MethodDelete, "/events/"+validID, nil)
	second.SetPathValue("id", validID)
	secondRes := httptest.NewRecorder()
	handler.Delete(secondRes, second)
	require.Equal(t, http.StatusNotFound, secondRes.Code)

	body := decodeErrorBody(t, secondRes)
	require.Equal(t, "Event not found", body.Error.Message)
}

func TestEventsCreate_MalformedJSON(t *testing.T) {
	repo := &stubEventsRepo{}
	handler := NewEventsHandler(events.NewService(repo))

	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(`{"name":`))
	res := httptest.NewRecorder()
	handler.Create(res, req)

	require.Equal(t, http.StatusBadRequest, res.Code)
	require.Zero(t, repo.calls)

	body := decodeErrorBody(t, res)
	require.Equal(t, "validation", body.Error.Kind)
	require.Equal(t, "Invalid request body", body.Error.Message)
}
