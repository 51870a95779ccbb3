package adapthttp

import (
	"net/http"
)

type folderRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleFolderList(w http.ResponseWriter, r *http.Request) {
	folders, err := s.folders.List(r.Context(), currentUser(r).ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, folders)
}

func (s *Server) handleFolderGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeErrors(w, http.StatusBadRequest, "invalid id")
		return
	}
	folder, err := s.folders.Get(r.Context(), currentUser(r).ID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, folder)
}

func (s *Server) handleFolderCreate(w http.ResponseWriter, r *http.Request) {
	var req folderRequest
	if err := parseJSON(r, &req); err != nil {
		writeErrors(w, http.StatusBadRequest, "invalid request")
		return
	}
	folder, err := s.folders.Create(r.Context(), currentUser(r).ID, req.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, folder)
}

func (s *Server) handleFolderUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeErrors(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req folderRequest
	if err := parseJSON(r, &req); err != nil {
		writeErrors(w, http.StatusBadRequest, "invalid request")
		return
	}
	folder, err := s.folders.Rename(r.Context(), currentUser(r).ID, id, req.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, folder)
}

func (s *Server) handleFolderDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeErrors(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := s.folders.Delete(r.Context(), currentUser(r).ID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
