package handler

import (
	"context"
	"net/http"
)

func (h *Handler) itemsByOwner(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	items, err := h.opts.Items.ListByOwner(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeList(w, items)
}

func (h *Handler) collectionsByOwner(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	collections, err := h.opts.Collections.ListByOwner(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeList(w, collections)
}

func (h *Handler) usersByItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	users, err := h.opts.Users.ListByItem(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeList(w, users)
}

func (h *Handler) usersByCollection(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	users, err := h.opts.Users.ListByCollection(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeList(w, users)
}

func (h *Handler) addPossession(w http.ResponseWriter, r *http.Request) {
	h.link(w, r, "itemID", h.opts.Users.AddItem)
}

func (h *Handler) addCollector(w http.ResponseWriter, r *http.Request) {
	h.link(w, r, "collectionID", h.opts.Users.AddCollection)
}

func (h *Handler) addItemToCollection(w http.ResponseWriter, r *http.Request) {
	h.link(w, r, "itemID", h.opts.Collections.AddItem)
}

// link parses the {id} and target path segments and records the relation.
func (h *Handler) link(w http.ResponseWriter, r *http.Request, target string, add func(ctx context.Context, from, to int64) error) {
	from, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	to, err := pathID(r, target)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := add(r.Context(), from, to); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
