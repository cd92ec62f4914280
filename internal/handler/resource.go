package handler

import (
	"context"
	"net/http"

	"github.com/mmynk/hoard/internal/service"
)

// resourceService is the operation set shared by users, items and
// collections. T is the entity and In its client payload.
type resourceService[T, In any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, in In) (*T, error)
	Patch(ctx context.Context, in In) (*T, error)
	Put(ctx context.Context, in In) (*T, service.Outcome, error)
	PutAt(ctx context.Context, in In, routeID int64) (*T, service.Outcome, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// registerResource wires the CRUD routes for one entity kind under prefix.
func registerResource[T, In any](mux *http.ServeMux, prefix string, svc resourceService[T, In]) {
	mux.HandleFunc("GET "+prefix, listHandler(svc))
	mux.HandleFunc("GET "+prefix+"/{id}", getHandler(svc))
	mux.HandleFunc("POST "+prefix, createHandler(svc))
	mux.HandleFunc("PATCH "+prefix, patchHandler(svc))
	mux.HandleFunc("PUT "+prefix, putHandler(svc))
	mux.HandleFunc("PUT "+prefix+"/{id}", putAtHandler(svc))
	mux.HandleFunc("DELETE "+prefix+"/{id}", deleteHandler(svc))
}

func listHandler[T, In any](svc resourceService[T, In]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeList(w, list)
	}
}

func getHandler[T, In any](svc resourceService[T, In]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		entity, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if entity == nil {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		writeJSON(w, http.StatusOK, entity)
	}
}

func createHandler[T, In any](svc resourceService[T, In]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in In
		if err := readJSON(r, &in); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		entity, err := svc.Create(r.Context(), in)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, entity)
	}
}

func patchHandler[T, In any](svc resourceService[T, In]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in In
		if err := readJSON(r, &in); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		entity, err := svc.Patch(r.Context(), in)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if entity == nil {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		writeJSON(w, http.StatusOK, entity)
	}
}

func putHandler[T, In any](svc resourceService[T, In]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in In
		if err := readJSON(r, &in); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		entity, outcome, err := svc.Put(r.Context(), in)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		// The row can vanish between the existence check and the update.
		if entity == nil {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		writeJSON(w, outcomeStatus(outcome), entity)
	}
}

func putAtHandler[T, In any](svc resourceService[T, In]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		var in In
		if err := readJSON(r, &in); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		entity, outcome, err := svc.PutAt(r.Context(), in, id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, outcomeStatus(outcome), entity)
	}
}

func deleteHandler[T, In any](svc resourceService[T, In]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		deleted, err := svc.Delete(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if !deleted {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

// writeList encodes a nil slice as an empty JSON array.
func writeList[T any](w http.ResponseWriter, list []T) {
	if list == nil {
		list = []T{}
	}
	writeJSON(w, http.StatusOK, list)
}
